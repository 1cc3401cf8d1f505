package kvstore

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventease/internal/domain"
	"eventease/internal/kv"
)

func TestUserRepository_CreateAssignsID(t *testing.T) {
	store := kv.NewMemoryStore()
	repo := NewUserRepository(store)
	ctx := context.Background()

	u := &domain.User{Email: "a@x.com", PasswordHash: "hash", Name: "Alice"}
	require.NoError(t, repo.Create(ctx, u))
	assert.NotEmpty(t, u.ID)

	got, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, "hash", got.PasswordHash)
}

func TestUserRepository_DuplicateEmailLeavesStoreUnchanged(t *testing.T) {
	store := kv.NewMemoryStore()
	repo := NewUserRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.User{Email: "a@x.com", PasswordHash: "h1", Name: "Alice"}))

	before, err := store.Get(ctx, "users")
	require.NoError(t, err)

	err = repo.Create(ctx, &domain.User{Email: "a@x.com", PasswordHash: "h2", Name: "Impostor"})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)

	after, err := store.Get(ctx, "users")
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after), "failed signup must not rewrite the users blob")

	var users []domain.User
	require.NoError(t, json.Unmarshal(after, &users))
	require.Len(t, users, 1)
	assert.Equal(t, "Alice", users[0].Name)
}

func TestUserRepository_DuplicateCheckIsCaseSensitive(t *testing.T) {
	store := kv.NewMemoryStore()
	repo := NewUserRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.User{Email: "a@x.com", Name: "Alice"}))
	// Exact-match scan: a different casing is a different key.
	require.NoError(t, repo.Create(ctx, &domain.User{Email: "A@x.com", Name: "Other"}))
}

func TestUserRepository_GetByEmailMissing(t *testing.T) {
	repo := NewUserRepository(kv.NewMemoryStore())
	_, err := repo.GetByEmail(context.Background(), "nobody@x.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepository_GetByEmailNeverReturnsOtherRecord(t *testing.T) {
	store := kv.NewMemoryStore()
	repo := NewUserRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.User{Email: "a@x.com", Name: "Alice"}))
	require.NoError(t, repo.Create(ctx, &domain.User{Email: "b@x.com", Name: "Bob"}))

	got, err := repo.GetByEmail(ctx, "b@x.com")
	require.NoError(t, err)
	assert.Equal(t, "b@x.com", got.Email)
	assert.Equal(t, "Bob", got.Name)
}
