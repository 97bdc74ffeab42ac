package repository

import (
	"context"
	"errors"
	"time"

	"studio-site/internal/database"
	"studio-site/internal/domain"
)

const (
	progressKeyPrefix = "intake:"
	progressTTL       = 24 * time.Hour
)

// KVProgressRepository persists intake progress in a key/value database
type KVProgressRepository struct {
	kv  database.KV
	ttl time.Duration
}

var _ domain.ProgressStore = (*KVProgressRepository)(nil)

// NewKVProgressRepository creates a progress store over kv with a 24h TTL per entry
func NewKVProgressRepository(kv database.KV) *KVProgressRepository {
	if kv == nil {
		panic("key/value database cannot be nil")
	}

	return &KVProgressRepository{kv: kv, ttl: progressTTL}
}

func (r *KVProgressRepository) Load(ctx context.Context, sessionID string) ([]byte, error) {
	value, err := r.kv.Get(ctx, progressKeyPrefix+sessionID)
	if errors.Is(err, database.ErrKeyNotFound) {
		return nil, domain.ErrProgressNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}

func (r *KVProgressRepository) Save(ctx context.Context, sessionID string, data []byte) error {
	return r.kv.Set(ctx, progressKeyPrefix+sessionID, string(data), r.ttl)
}

func (r *KVProgressRepository) Clear(ctx context.Context, sessionID string) error {
	return r.kv.Delete(ctx, progressKeyPrefix+sessionID)
}
