package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIssueAndParse(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	token, err := tm.Issue("user-42")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := tm.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-42", claims.UserID)
	assert.NotEmpty(t, claims.TokenID)
	assert.Greater(t, claims.RemainingTTL(time.Now()), 55*time.Minute)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	tm := NewTokenManager("test-secret", -time.Minute)

	token, err := tm.Issue("user-42")
	assert.NoError(t, err)

	_, err = tm.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	token, err := issuer.Issue("user-42")
	assert.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	_, err := tm.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIDsAreUnique(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	a, err := tm.Issue("user-42")
	assert.NoError(t, err)
	b, err := tm.Issue("user-42")
	assert.NoError(t, err)

	ca, err := tm.Parse(a)
	assert.NoError(t, err)
	cb, err := tm.Parse(b)
	assert.NoError(t, err)

	assert.NotEqual(t, ca.TokenID, cb.TokenID)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("azerty", 4)
	assert.NoError(t, err)

	assert.True(t, VerifyPassword(hash, "azerty"))
	assert.False(t, VerifyPassword(hash, "qwerty"))
}
