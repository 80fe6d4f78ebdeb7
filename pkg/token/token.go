package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// signingMethod is fixed; tokens presenting any other algorithm are rejected
// during verification.
var signingMethod = jwt.SigningMethodHS256

// ErrInvalidToken covers every verification failure: bad signature, wrong
// algorithm, malformed structure, missing subject, or expiry in the past.
var ErrInvalidToken = errors.New("invalid or expired token")

// Issuer signs and verifies access tokens with a symmetric secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer creates an Issuer from the configured signing secret and
// access-token lifetime.
func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// Issue creates a new signed token for a given user ID.
func (i *Issuer) Issue(userID uint) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": now.Add(i.ttl).Unix(),
		"iat": now.Unix(),
	}

	t := jwt.NewWithClaims(signingMethod, claims)

	return t.SignedString(i.secret)
}

// Verify checks the signature and expiry of a token and returns the user ID
// it was issued for.
func (i *Issuer) Verify(tokenString string) (uint, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil || !parsed.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return 0, ErrInvalidToken
	}

	return uint(sub), nil
}
