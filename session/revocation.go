package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationStore remembers logged-out token ids until they expire.
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// memoryRevocations never drops an id before its ttl runs out; expired ids
// are swept on write.
type memoryRevocations struct {
	mu        sync.Mutex
	expires   map[string]time.Time
	now       func() time.Time
	nextSweep time.Time
}

const revocationSweepEvery = time.Minute

// NewMemoryRevocations keeps revoked ids in process; fine for a single instance.
func NewMemoryRevocations() RevocationStore {
	return &memoryRevocations{expires: make(map[string]time.Time), now: time.Now}
}

func (r *memoryRevocations) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if now.After(r.nextSweep) {
		for id, exp := range r.expires {
			if !now.Before(exp) {
				delete(r.expires, id)
			}
		}
		r.nextSweep = now.Add(revocationSweepEvery)
	}
	if exp := now.Add(ttl); exp.After(r.expires[tokenID]) {
		r.expires[tokenID] = exp
	}
	return nil
}

func (r *memoryRevocations) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	exp, ok := r.expires[tokenID]
	return ok && r.now().Before(exp), nil
}

type redisRevocations struct {
	client *redis.Client
}

// NewRedisRevocations shares revoked ids between API instances.
func NewRedisRevocations(client *redis.Client) RevocationStore {
	return &redisRevocations{client: client}
}

func revokedKey(tokenID string) string {
	return "stayease:revoked:" + tokenID
}

func (r *redisRevocations) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if err := r.client.Set(ctx, revokedKey(tokenID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("redis revoke: %w", err)
	}
	return nil
}

func (r *redisRevocations) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, revokedKey(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("redis revoked lookup: %w", err)
	}
	return n > 0, nil
}

// NewRedisClient builds a client and checks the connection.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}
	return client, nil
}
