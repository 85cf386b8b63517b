package services

import (
	"errors"
	"fmt"
	"time"

	"geopost-api/config"
	"geopost-api/models"

	"github.com/golang-jwt/jwt/v4"
)

// TokenService issues and validates signed bearer tokens. A token carries
// only the subject username and its lifetime; entitlement flags are never
// embedded, they are re-read from the store on every request.
type TokenService interface {
	Issue(username string, ttl time.Duration) (string, error)
	Validate(token string) (string, error)
	DefaultTTL() time.Duration
}

type tokenService struct {
	keys       config.KeyProvider
	defaultTTL time.Duration
}

func NewTokenService(keys config.KeyProvider, defaultTTL time.Duration) TokenService {
	return &tokenService{keys: keys, defaultTTL: defaultTTL}
}

func (s *tokenService) DefaultTTL() time.Duration {
	return s.defaultTTL
}

func (s *tokenService) Issue(username string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.keys.SigningKey())
}

// Validate returns the subject username. Every key in the verification
// ring is tried, so tokens signed before a rotation stay valid.
func (s *tokenService) Validate(tokenString string) (string, error) {
	var lastErr error
	for _, key := range s.keys.VerificationKeys() {
		claims := &jwt.RegisteredClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return key, nil
		})
		if err == nil && token.Valid {
			if claims.Subject == "" {
				return "", models.ErrInvalidToken
			}
			return claims.Subject, nil
		}
		if errors.Is(err, jwt.ErrTokenExpired) && !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			// The signature checked out; no other key will change that.
			return "", fmt.Errorf("%w: %v", models.ErrTokenExpired, err)
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = errors.New("no verification keys configured")
	}
	return "", fmt.Errorf("%w: %v", models.ErrInvalidToken, lastErr)
}
