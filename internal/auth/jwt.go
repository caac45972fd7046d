package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"hrms-backend/internal/apperrors"
)

// TokenService issues and validates stateless bearer tokens. There is no
// revocation list; logout is client-side token discard.
type TokenService struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

// NewTokenService creates a token service for the given secret and signing
// algorithm identifier (e.g. "HS256"). Only HMAC algorithms are accepted
// since validation uses the same shared secret.
func NewTokenService(secret, algorithm string, ttl time.Duration) (*TokenService, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("signing algorithm %q is not HMAC-based", algorithm)
	}
	return &TokenService{secret: []byte(secret), method: method, ttl: ttl}, nil
}

// Issue signs a token binding the user id as subject with the configured expiry.
func (s *TokenService) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	return jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
}

// Validate checks signature and expiry and returns the subject user id.
func (s *TokenService) Validate(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", apperrors.ErrInvalidToken
	}
	return claims.Subject, nil
}
