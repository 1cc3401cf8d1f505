package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"eventease/internal/domain"
)

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a PasswordHasher backed by bcrypt. The stored
// hash carries its own salt; cost 10 matches the deployed data.
func NewBcryptHasher(cost int) domain.PasswordHasher {
	if cost == 0 {
		cost = 10
	}
	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (h *bcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
