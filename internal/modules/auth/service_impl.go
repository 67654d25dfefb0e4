package auth

import (
	"context"
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers both unknown usernames and bad passwords.
var ErrInvalidCredentials = errors.New("invalid credentials")

// StaticChecker holds one bcrypt-hashed credential pair.
type StaticChecker struct {
	username string
	hash     []byte
}

// NewStaticChecker hashes the configured password once at construction.
func NewStaticChecker(username, password string) (*StaticChecker, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &StaticChecker{username: username, hash: hash}, nil
}

func (c *StaticChecker) Check(_ context.Context, username, password string) error {
	if username != c.username {
		// Run the comparison anyway so both failure paths cost the same.
		_ = bcrypt.CompareHashAndPassword(c.hash, []byte(password))
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(c.hash, []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

type service struct {
	checker CredentialChecker
	jwtKey  []byte
}

// NewService creates a new auth service.
func NewService(checker CredentialChecker, jwtKey []byte) Service {
	return &service{checker: checker, jwtKey: jwtKey}
}

func (s *service) Login(ctx context.Context, username, password string) (string, error) {
	if err := s.checker.Check(ctx, username, password); err != nil {
		return "", err
	}

	expirationTime := time.Now().Add(24 * time.Hour)
	claims := &jwt.StandardClaims{
		Subject:   username,
		ExpiresAt: expirationTime.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtKey)
}

func (s *service) Verify(tokenString string) error {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.StandardClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtKey, nil
	})
	if err != nil || !token.Valid {
		return ErrInvalidCredentials
	}
	return nil
}
