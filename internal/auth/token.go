package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenLifetime is how long an issued token stays valid.
const DefaultTokenLifetime = 72 * time.Hour

// ErrInvalidToken covers every verification failure: bad signature,
// expired, or undecodable token. Callers get no finer detail.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the signed payload carried by every token.
type Claims struct {
	UserID uint64 `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenIssuer mints and verifies signed user tokens. Verification is a
// pure function of the token and the secret; it performs no store
// lookup, so a user deactivated after issuance stays valid per-token
// until expiry.
type TokenIssuer struct {
	secret   []byte
	lifetime time.Duration
}

// NewTokenIssuer creates a TokenIssuer. A non-positive lifetime falls
// back to DefaultTokenLifetime.
func NewTokenIssuer(secret string, lifetime time.Duration) *TokenIssuer {
	if lifetime <= 0 {
		lifetime = DefaultTokenLifetime
	}
	return &TokenIssuer{secret: []byte(secret), lifetime: lifetime}
}

// Issue creates a signed token asserting the given user identity.
func (t *TokenIssuer) Issue(userID uint64) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.lifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token, returning the user ID it
// asserts. Any failure collapses to ErrInvalidToken.
func (t *TokenIssuer) Verify(tokenStr string) (uint64, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, ErrInvalidToken
	}

	return claims.UserID, nil
}
