package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"eventease/internal/domain"
	"eventease/internal/kv"
)

type userRepository struct {
	store kv.Store
}

// NewUserRepository returns a UserRepository over the single "users"
// blob. Every operation reads the whole array; Create rewrites it.
func NewUserRepository(store kv.Store) domain.UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) load(ctx context.Context) ([]domain.User, error) {
	raw, err := r.store.Get(ctx, usersKey)
	if errors.Is(err, kv.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}
	var users []domain.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	users, err := r.load(ctx)
	if err != nil {
		return err
	}
	// Exact, case-sensitive match: the natural key as stored.
	for _, u := range users {
		if u.Email == user.Email {
			return domain.ErrDuplicateEmail
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	users = append(users, *user)

	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to encode users: %w", err)
	}
	if err := r.store.Set(ctx, usersKey, raw); err != nil {
		return fmt.Errorf("failed to write users: %w", err)
	}
	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, domain.ErrUserNotFound
}
