package session

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayease-backend/models"
)

func TestManager_IssueAndParse(t *testing.T) {
	m := NewManager("test-secret", time.Hour, NewMemoryRevocations())
	user := &models.User{ID: 7, Username: "ana"}

	token, expires, err := m.Issue(user)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expires, 5*time.Second)

	claims, err := m.Parse(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "ana", claims.Username)
	assert.NotEmpty(t, claims.ID)
}

func TestManager_RejectsForeignSignature(t *testing.T) {
	issuer := NewManager("secret-a", time.Hour, NewMemoryRevocations())
	verifier := NewManager("secret-b", time.Hour, NewMemoryRevocations())

	token, _, err := issuer.Issue(&models.User{ID: 1, Username: "x"})
	require.NoError(t, err)

	_, err = verifier.Parse(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_RejectsExpiredToken(t *testing.T) {
	m := NewManager("secret", time.Minute, NewMemoryRevocations())
	issuedAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return issuedAt }

	token, _, err := m.Issue(&models.User{ID: 3, Username: "late"})
	require.NoError(t, err)

	m.now = func() time.Time { return issuedAt.Add(2 * time.Minute) }
	_, err = m.Parse(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_RevokedTokenIsRejected(t *testing.T) {
	ctx := context.Background()
	m := NewManager("secret", time.Hour, NewMemoryRevocations())

	token, _, err := m.Issue(&models.User{ID: 9, Username: "bye"})
	require.NoError(t, err)
	claims, err := m.Parse(ctx, token)
	require.NoError(t, err)

	require.NoError(t, m.Revoke(ctx, claims))

	_, err = m.Parse(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_RejectsGarbage(t *testing.T) {
	m := NewManager("secret", time.Hour, NewMemoryRevocations())
	_, err := m.Parse(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMemoryRevocations_KeepsEveryIDUntilExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryRevocations()

	require.NoError(t, store.Revoke(ctx, "first", time.Hour))
	for i := 0; i < 120000; i++ {
		require.NoError(t, store.Revoke(ctx, fmt.Sprintf("other-%d", i), time.Hour))
	}

	revoked, err := store.IsRevoked(ctx, "first")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestMemoryRevocations_ExpiresAndSweeps(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryRevocations().(*memoryRevocations)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	require.NoError(t, store.Revoke(ctx, "short", time.Minute))
	require.NoError(t, store.Revoke(ctx, "long", time.Hour))

	now = now.Add(2 * time.Minute)
	revoked, err := store.IsRevoked(ctx, "short")
	require.NoError(t, err)
	assert.False(t, revoked)
	revoked, err = store.IsRevoked(ctx, "long")
	require.NoError(t, err)
	assert.True(t, revoked)

	require.NoError(t, store.Revoke(ctx, "later", time.Hour))
	assert.NotContains(t, store.expires, "short")
	assert.Contains(t, store.expires, "long")
}
