// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"agenda/config"
	"agenda/internal/domain/service"
	"agenda/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any token that fails verification.
var ErrInvalidToken = errors.New("invalid token")

// jwtService implements service.TokenService with HS256 tokens.
type jwtService struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	svc := &jwtService{now: time.Now}
	if cfg.Auth == nil || !cfg.Auth.Enabled {
		return svc, nil
	}
	if cfg.Auth.Secret == "" {
		return nil, errors.New("jwt secret must be provided when auth is enabled")
	}
	svc.secret = []byte(cfg.Auth.Secret)
	svc.issuer = cfg.Auth.Issuer

	return svc, nil
}

// IssueToken signs a token for subject valid for ttl.
func (s *jwtService) IssueToken(subject string, ttl time.Duration) (string, error) {
	if len(s.secret) == 0 {
		return "", errors.New("jwt secret is not configured")
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return signed, nil
}

// ValidateToken checks the token and returns its subject.
func (s *jwtService) ValidateToken(tokenString string) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrInvalidToken
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, opts...)
	if err != nil || !token.Valid {
		return "", errors.Join(ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return "", errors.Wrap(ErrInvalidToken, "subject missing")
	}

	return claims.Subject, nil
}
