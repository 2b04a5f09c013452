package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any token that fails verification,
// whether the signature is bad or the expiry has passed.
var ErrInvalidToken = errors.New("invalid or expired token")

// IssueToken creates a signed access token for the subject with the
// service default TTL.
func (s *Service) IssueToken(subject string) (string, error) {
	return s.IssueTokenWithTTL(subject, s.tokenTTL)
}

// IssueTokenWithTTL creates a signed HS256 access token embedding the
// subject and an absolute expiry of now + ttl.
func (s *Service) IssueTokenWithTTL(subject string, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	})

	return token.SignedString(s.jwtSecret)
}

// VerifyToken validates the token signature and expiry and returns the
// subject. Not wired to any route; the contract exists for clients that
// need to protect resources with issued tokens.
func (s *Service) VerifyToken(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
