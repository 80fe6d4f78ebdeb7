package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssuer_IssueAndVerify(t *testing.T) {
	issuer := NewIssuer("test-secret", 30*time.Minute)

	tokenString, err := issuer.Issue(42)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	userID, err := issuer.Verify(tokenString)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestIssuer_VerifyExpired(t *testing.T) {
	issuer := NewIssuer("test-secret", -time.Minute)

	tokenString, err := issuer.Issue(42)
	require.NoError(t, err)

	_, err = issuer.Verify(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssuer_VerifyWrongSecret(t *testing.T) {
	issuer := NewIssuer("test-secret", 30*time.Minute)
	other := NewIssuer("another-secret", 30*time.Minute)

	tokenString, err := issuer.Issue(42)
	require.NoError(t, err)

	_, err = other.Verify(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssuer_VerifyMalformed(t *testing.T) {
	issuer := NewIssuer("test-secret", 30*time.Minute)

	for _, tokenString := range []string{
		"",
		"not-a-token",
		"a.b.c",
	} {
		_, err := issuer.Verify(tokenString)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", tokenString)
	}
}

func TestIssuer_VerifyMissingSubject(t *testing.T) {
	issuer := NewIssuer("test-secret", 30*time.Minute)

	claims := jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = issuer.Verify(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssuer_VerifyRejectsForeignAlgorithm(t *testing.T) {
	issuer := NewIssuer("test-secret", 30*time.Minute)

	// A token claiming alg=none must never verify, even with a valid shape.
	claims := jwt.MapClaims{
		"sub": 42,
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = issuer.Verify(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
