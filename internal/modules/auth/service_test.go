package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	checker, err := NewStaticChecker("admin", "secret")
	require.NoError(t, err)
	return NewService(checker, []byte("test-key"))
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	svc := newTestService(t)

	token, err := svc.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.NoError(t, svc.Verify(token))
}

func TestLoginRejectsBadPassword(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsUnknownUsername(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(context.Background(), "intruder", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	svc := newTestService(t)

	assert.ErrorIs(t, svc.Verify("not-a-token"), ErrInvalidCredentials)
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	svc := newTestService(t)
	checker, err := NewStaticChecker("admin", "secret")
	require.NoError(t, err)
	other := NewService(checker, []byte("different-key"))

	token, err := other.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Verify(token), ErrInvalidCredentials)
}

func TestRequireAdmin(t *testing.T) {
	svc := newTestService(t)
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	guarded := RequireAdmin(svc)(next)

	t.Run("missing header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		guarded.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("bad token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer nope")
		rec := httptest.NewRecorder()
		guarded.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		token, err := svc.Login(context.Background(), "admin", "secret")
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		guarded.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
