package identity

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return tok
}

func TestTokenSession_SignInExtractsSubject(t *testing.T) {
	s := NewTokenSession()

	_, ok := s.CurrentUserID()
	assert.False(t, ok)

	tok := signedToken(t, jwt.MapClaims{"sub": "u1"})
	require.NoError(t, s.SignIn(tok))

	id, ok := s.CurrentUserID()
	assert.True(t, ok)
	assert.Equal(t, "u1", id)
	assert.Equal(t, tok, s.Token())
}

func TestTokenSession_SignInRejectsGarbage(t *testing.T) {
	s := NewTokenSession()
	assert.Error(t, s.SignIn("not-a-jwt"))
	assert.Error(t, s.SignIn(signedToken(t, jwt.MapClaims{"aud": "x"})), "missing subject")
}

func TestTokenSession_SignOut(t *testing.T) {
	s := NewTokenSession()
	require.NoError(t, s.SignIn(signedToken(t, jwt.MapClaims{"sub": "u1"})))

	s.SignOut()
	_, ok := s.CurrentUserID()
	assert.False(t, ok)
	assert.Empty(t, s.Token())
}

func TestStatic(t *testing.T) {
	id, ok := Static("u9").CurrentUserID()
	assert.True(t, ok)
	assert.Equal(t, "u9", id)

	_, ok = Static("").CurrentUserID()
	assert.False(t, ok)
}
