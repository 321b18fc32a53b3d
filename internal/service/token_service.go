package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"socialCPT/internal/apperror"
)

// MinSecretLength is the shortest accepted HMAC signing secret in bytes.
const MinSecretLength = 32

var ErrWeakSecret = errors.New("jwt secret must be at least 32 bytes")

// TokenService issues and checks signed bearer tokens whose subject is the
// user's e-mail. Tokens are stateless and cannot be revoked before expiry.
type TokenService interface {
	Issue(identity string) (string, error)
	Validate(token string) bool
	ExtractIdentity(token string) (string, error)
}

type tokenService struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// NewTokenService builds the signer. An empty secret selects a random key
// that lives as long as the process, so tokens do not survive a restart.
func NewTokenService(secret string, ttl time.Duration, now func() time.Time, log logrus.FieldLogger) (TokenService, error) {
	if now == nil {
		now = time.Now
	}

	var key []byte
	switch {
	case secret == "":
		key = make([]byte, MinSecretLength)
		if _, err := rand.Read(key); err != nil {
			return nil, fmt.Errorf("failed to generate signing key: %w", err)
		}
		log.Warn("JWT_SECRET_KEY is not set, using a random signing key; tokens will not survive a restart")
	case len(secret) < MinSecretLength:
		return nil, ErrWeakSecret
	default:
		key = []byte(secret)
	}

	return &tokenService{key: key, ttl: ttl, now: now}, nil
}

func (s *tokenService) Issue(identity string) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   identity,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

func (s *tokenService) Validate(token string) bool {
	_, err := s.parse(token)
	return err == nil
}

func (s *tokenService) ExtractIdentity(token string) (string, error) {
	claims, err := s.parse(token)
	if err != nil {
		return "", apperror.MalformedToken("Invalid or expired token")
	}
	if claims.Subject == "" {
		return "", apperror.MalformedToken("Token has no subject")
	}
	return claims.Subject, nil
}

func (s *tokenService) parse(tokenString string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	return claims, nil
}
