package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"stayease-backend/models"
)

// CookieName is the HttpOnly cookie that carries the session token.
const CookieName = "stayease_session"

var ErrInvalidToken = errors.New("invalid or expired session")

// Claims is what a session token carries about its user.
type Claims struct {
	UserID   uint   `json:"uid"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Manager issues and verifies HS256-signed session tokens and tracks logouts.
type Manager struct {
	secret  []byte
	ttl     time.Duration
	revoked RevocationStore
	now     func() time.Time
}

func NewManager(secret string, ttl time.Duration, revoked RevocationStore) *Manager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Manager{
		secret:  []byte(secret),
		ttl:     ttl,
		revoked: revoked,
		now:     time.Now,
	}
}

// TTL is the lifetime of newly issued tokens.
func (m *Manager) TTL() time.Duration { return m.ttl }

func (m *Manager) Issue(user *models.User) (string, time.Time, error) {
	now := m.now()
	expires := now.Add(m.ttl)
	claims := &Claims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   fmt.Sprint(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session token: %w", err)
	}
	return token, expires, nil
}

func (m *Manager) Parse(ctx context.Context, raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (interface{}, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !token.Valid || claims.UserID == 0 {
		return nil, ErrInvalidToken
	}

	revoked, err := m.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("check session revocation: %w", err)
	}
	if revoked {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Revoke blocks the token until it would have expired anyway.
func (m *Manager) Revoke(ctx context.Context, claims *Claims) error {
	if claims == nil {
		return nil
	}
	ttl := time.Minute
	if claims.ExpiresAt != nil {
		ttl = claims.ExpiresAt.Time.Sub(m.now())
	}
	if ttl <= 0 {
		return nil
	}
	return m.revoked.Revoke(ctx, claims.ID, ttl)
}
