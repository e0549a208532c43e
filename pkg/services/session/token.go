package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "cloud-portal"

// TokenSigner turns a session id into the signed value stored in the browser
// cookie and back.
type TokenSigner struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

func NewTokenSigner(secret string, ttl time.Duration) (*TokenSigner, error) {
	if secret == "" {
		return nil, errors.New("session token secret cannot be empty")
	}
	return &TokenSigner{key: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (s *TokenSigner) Sign(sessionID string) (string, error) {
	now := s.now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:  sessionID,
		Issuer:   tokenIssuer,
		IssuedAt: jwt.NewNumericDate(now),
	}
	if s.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Parse returns the session id carried by token. Any invalid, foreign or
// expired token is reported as ErrNoSession.
func (s *TokenSigner) Parse(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (interface{}, error) { return s.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoSession, err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", fmt.Errorf("%w: token has no subject", ErrNoSession)
	}
	return claims.Subject, nil
}
