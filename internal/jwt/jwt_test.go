package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmss-tech/vmss-backend/internal/domain"
	internal_errors "github.com/vmss-tech/vmss-backend/internal/errors"
)

func TestNewToken_DecodeToken_RoundTrip(t *testing.T) {
	j := New("test-secret", time.Hour)
	user := domain.User{Id: 42, Email: "admin@example.com"}

	token, err := j.NewToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := j.DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserId)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestDecodeToken_Expired(t *testing.T) {
	j := New("test-secret", -time.Minute)

	token, err := j.NewToken(domain.User{Id: 1, Email: "a@b.c"})
	require.NoError(t, err)

	_, err = j.DecodeToken(token)
	require.Error(t, err)
	assertUnauthorized(t, err)
}

func TestDecodeToken_WrongSecret(t *testing.T) {
	token, err := New("secret-one", time.Hour).NewToken(domain.User{Id: 1, Email: "a@b.c"})
	require.NoError(t, err)

	_, err = New("secret-two", time.Hour).DecodeToken(token)
	require.Error(t, err)
	assertUnauthorized(t, err)
}

func TestDecodeToken_TamperedSignature(t *testing.T) {
	j := New("test-secret", time.Hour)
	token, err := j.NewToken(domain.User{Id: 1, Email: "a@b.c"})
	require.NoError(t, err)

	tampered := []byte(token)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	_, err = j.DecodeToken(string(tampered))
	require.Error(t, err)
	assertUnauthorized(t, err)
}

func TestDecodeToken_Malformed(t *testing.T) {
	j := New("test-secret", time.Hour)

	for _, tc := range []string{"", "not-a-token", "a.b.c"} {
		t.Run("value_"+tc, func(t *testing.T) {
			_, err := j.DecodeToken(tc)
			require.Error(t, err)
			assertUnauthorized(t, err)
		})
	}
}

func assertUnauthorized(t *testing.T, err error) {
	t.Helper()
	e, ok := err.(*internal_errors.ErrorWithStatusCode)
	require.True(t, ok, "expected ErrorWithStatusCode, got %T", err)
	assert.Equal(t, 401, e.StatusCode)
	assert.Equal(t, "Invalid token", e.Message)
}
