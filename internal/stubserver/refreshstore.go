// ABOUTME: Refresh token storage for the stub admin API
// ABOUTME: Single-use hashed tokens in memory or Redis

package stubserver

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrRefreshTokenInvalid covers unknown, expired and already-consumed tokens.
var ErrRefreshTokenInvalid = errors.New("invalid refresh token")

// RefreshStore persists refresh token hashes. Consume validates and revokes
// in one step, so a token can never be exchanged twice.
type RefreshStore interface {
	Save(ctx context.Context, hash, userID string, expiresAt time.Time) error
	Consume(ctx context.Context, hash string) (userID string, err error)
}

type memoryEntry struct {
	userID    string
	expiresAt time.Time
}

// MemoryRefreshStore keeps tokens in a map. The default for tests and
// short-lived dev runs.
type MemoryRefreshStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

func NewMemoryRefreshStore() *MemoryRefreshStore {
	return &MemoryRefreshStore{entries: make(map[string]memoryEntry)}
}

func (m *MemoryRefreshStore) Save(_ context.Context, hash, userID string, expiresAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[hash] = memoryEntry{userID: userID, expiresAt: expiresAt}
	return nil
}

func (m *MemoryRefreshStore) Consume(_ context.Context, hash string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.entries[hash]
	if !ok {
		return "", ErrRefreshTokenInvalid
	}
	delete(m.entries, hash)
	if time.Now().After(entry.expiresAt) {
		return "", ErrRefreshTokenInvalid
	}
	return entry.userID, nil
}

// RedisRefreshStore keeps tokens in Redis with a TTL, so a stub shared by a
// team survives restarts. Keys are the token hashes, values the user ID.
type RedisRefreshStore struct {
	client *redis.Client
	prefix string
}

func NewRedisRefreshStore(client *redis.Client) *RedisRefreshStore {
	return &RedisRefreshStore{client: client, prefix: "stub:refresh:"}
}

func (r *RedisRefreshStore) Save(ctx context.Context, hash, userID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return ErrRefreshTokenInvalid
	}
	return r.client.Set(ctx, r.prefix+hash, userID, ttl).Err()
}

func (r *RedisRefreshStore) Consume(ctx context.Context, hash string) (string, error) {
	userID, err := r.client.GetDel(ctx, r.prefix+hash).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrRefreshTokenInvalid
	}
	if err != nil {
		return "", err
	}
	return userID, nil
}
