package core

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signedToken() failed: %v", err)
	}
	return s
}

func TestNewSession(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{
		"nombre":   "Ana",
		"apellido": "Rojas",
		"rol":      "Administrador",
	})

	sess := NewSession(token)
	assert.Equal(t, token, sess.Token)
	assert.False(t, sess.IsAnonymous())
	assert.Equal(t, "Ana Rojas", sess.DisplayName())
	assert.Equal(t, "Administrador", sess.Profile.Role)
}

func TestNewSessionMalformedToken(t *testing.T) {
	// profile decoding is best-effort display sugar; a token the client
	// cannot read is still attached to calls as-is
	sess := NewSession("not-a-jwt")
	assert.Equal(t, "not-a-jwt", sess.Token)
	assert.Equal(t, "Usuario", sess.DisplayName())
}

func TestSessionAnonymous(t *testing.T) {
	sess := Session{}
	assert.True(t, sess.IsAnonymous())
	assert.Equal(t, "Usuario", sess.DisplayName())
}

func TestSessionPartialProfile(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"nombre": "Ana"})
	sess := NewSession(token)
	assert.Equal(t, "Usuario", sess.DisplayName())
}
