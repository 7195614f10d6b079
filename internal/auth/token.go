package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/natur-festival/natur.eco/internal/platform/errors"
)

const tokenIssuer = "natur.eco"

// DefaultSessionTTL bounds how long a signed session token stays valid.
const DefaultSessionTTL = 30 * 24 * time.Hour

// ErrInvalidToken indicates a session token that failed verification.
var ErrInvalidToken = apperrors.New(apperrors.CodeAuthInvalidToken, "invalid session token")

type sessionClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// TokenSigner signs and verifies browser session tokens with an HMAC key.
type TokenSigner struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// NewTokenSigner builds a signer for the given HMAC key.
func NewTokenSigner(key []byte, ttl time.Duration, now func() time.Time) (*TokenSigner, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("signing key is required")
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	if now == nil {
		now = time.Now
	}
	return &TokenSigner{key: key, ttl: ttl, now: now}, nil
}

// Sign issues a session token for the account.
func (s *TokenSigner) Sign(account Account) (string, error) {
	issuedAt := s.now().UTC()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   account.ID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
		Email: account.Email,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Verify parses a session token and returns the account identity it carries.
func (s *TokenSigner) Verify(raw string) (userID string, email string, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", "", ErrInvalidToken
	}
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.key, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil || !token.Valid {
		return "", "", ErrInvalidToken
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return "", "", ErrInvalidToken
	}
	return claims.Subject, claims.Email, nil
}
