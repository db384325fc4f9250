package cachesnapshotrepo

import (
	"context"
	"time"

	cacherepo "dochub/internal/repositories/cache"
)

type repository struct {
	cache       cacherepo.Cache
	snapshotTTL time.Duration
}

func New(cache cacherepo.Cache, snapshotTTL time.Duration) *repository {
	return &repository{
		cache:       cache,
		snapshotTTL: snapshotTTL,
	}
}

func (r *repository) Get(ctx context.Context, docID string) (string, error) {
	snapJSON, err := r.cache.Get(ctx, snapshotKey(docID)).Result()
	if err != nil {
		return "", err
	}

	return snapJSON, nil
}

func (r *repository) Set(ctx context.Context, docID string, value interface{}) error {
	return r.cache.Set(ctx, snapshotKey(docID), value, r.snapshotTTL).Err()
}

func (r *repository) Del(ctx context.Context, docIDs ...string) error {
	keys := make([]string, 0, len(docIDs))
	for _, id := range docIDs {
		keys = append(keys, snapshotKey(id))
	}

	return r.cache.Del(ctx, keys...).Err()
}

func snapshotKey(docID string) string {
	return "snapshot:" + docID
}
