// Package scope issues and verifies the HS256 access tokens used by the API.
package scope

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
	ErrRevokedToken = errors.New("token revoked")
)

// Manager creates and verifies access tokens.
type Manager interface {
	CreateToken(p Payload) (token string, expiresAt time.Time, err error)
	Verify(token string) (Payload, error)
	Revoke(tokenID string)
	TTL() time.Duration
}

type implManager struct {
	secretKey []byte
	issuer    string
	ttl       time.Duration
	revoked   *Blocklist
	now       func() time.Time
}

// New creates a Manager. secretKey must be non-empty.
func New(secretKey, issuer string, ttl time.Duration) (Manager, error) {
	if secretKey == "" {
		return nil, errors.New("scope: secret key is required")
	}
	if ttl <= 0 {
		return nil, errors.New("scope: ttl must be positive")
	}
	return &implManager{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		ttl:       ttl,
		revoked:   NewBlocklist(ttl),
		now:       time.Now,
	}, nil
}

func (m *implManager) TTL() time.Duration { return m.ttl }

func (m *implManager) CreateToken(p Payload) (string, time.Time, error) {
	issuedAt := m.now()
	expiresAt := issuedAt.Add(m.ttl)

	p.RegisteredClaims = jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    m.issuer,
		Subject:   fmt.Sprint(p.UserID),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		NotBefore: jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, p).SignedString(m.secretKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

func (m *implManager) Verify(token string) (Payload, error) {
	var p Payload
	parsed, err := jwt.ParseWithClaims(token, &p, func(t *jwt.Token) (any, error) {
		return m.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Payload{}, ErrExpiredToken
		}
		return Payload{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return Payload{}, ErrInvalidToken
	}
	if m.revoked.Contains(p.ID) {
		return Payload{}, ErrRevokedToken
	}
	return p, nil
}

// Revoke rejects tokenID until the token would have expired anyway.
func (m *implManager) Revoke(tokenID string) {
	if tokenID == "" {
		return
	}
	m.revoked.Add(tokenID)
}
