package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	userID string
	err    error
}

func (s stubVerifier) Verify(token string) (string, error) {
	return s.userID, s.err
}

func TestRequireAuth_ValidToken(t *testing.T) {
	wrap := RequireAuth(stubVerifier{userID: "user-1"})
	var gotUserID string
	handler := wrap(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/events", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", gotUserID)
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	wrap := RequireAuth(stubVerifier{userID: "user-1"})
	handler := wrap(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next should not be called")
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodPost, "/events", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	wrap := RequireAuth(stubVerifier{err: errors.New("expired")})
	handler := wrap(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next should not be called")
	})

	req := httptest.NewRequest(http.MethodPost, "/events", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec := httptest.NewRecorder()
	handler(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOptionalAuth_NoHeaderPassesThrough(t *testing.T) {
	wrap := OptionalAuth(stubVerifier{userID: "user-1"})
	handler := wrap(func(w http.ResponseWriter, r *http.Request) {
		_, ok := UserIDFromContext(r.Context())
		assert.False(t, ok)
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/db", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOptionalAuth_ValidTokenSetsUserID(t *testing.T) {
	wrap := OptionalAuth(stubVerifier{userID: "user-1"})
	var gotUserID string
	handler := wrap(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/db", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	handler(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", gotUserID)
}
