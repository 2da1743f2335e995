package crypto

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/msomdec/signup-api/internal/domain"
)

var (
	_ domain.Encrypter = (*JWTAdapter)(nil)
	_ domain.Decrypter = (*JWTAdapter)(nil)
)

// JWTAdapter issues and verifies HS256 access tokens.
type JWTAdapter struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTAdapter creates a JWTAdapter that signs with secret and issues
// tokens valid for ttl.
func NewJWTAdapter(secret string, ttl time.Duration) *JWTAdapter {
	return &JWTAdapter{secret: []byte(secret), ttl: ttl}
}

// Encrypt issues a signed HS256 token for subject.
func (a *JWTAdapter) Encrypt(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("sign jwt: %w", err)
	}
	return signed, nil
}

// Decrypt validates the token and returns its subject.
// Any parse or validation failure is reported as domain.ErrUnauthorized.
func (a *JWTAdapter) Decrypt(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil || !token.Valid {
		return "", domain.ErrUnauthorized
	}

	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", domain.ErrUnauthorized
	}
	return sub, nil
}
