package packages

import (
	"context"
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"
)

const packageCacheTTL = time.Hour

// CachedRepo caches single package lookups in front of the real repo.
// Workout templates change rarely but are read on every session start,
// so a short lived in-memory cache takes that load off the database.
type CachedRepo struct {
	repo  *Repo
	cache *ristretto.Cache
}

func NewCachedRepo(repo *Repo) (*CachedRepo, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e5,     // number of keys to track frequency of
		MaxCost:     1 << 24, // maximum cost of cache (~16M)
		BufferItems: 64,      // number of keys per Get buffer
	})
	if err != nil {
		return nil, fmt.Errorf("new ristretto cache: %w", err)
	}

	return &CachedRepo{
		repo:  repo,
		cache: cache,
	}, nil
}

func (r *CachedRepo) Add(ctx context.Context, pack Package) (*Package, error) {
	added, err := r.repo.Add(ctx, pack)
	if err != nil {
		return nil, err
	}
	r.cache.SetWithTTL(added.ID, *added, 1, packageCacheTTL)
	return added, nil
}

func (r *CachedRepo) Get(ctx context.Context, id string) (*Package, error) {
	if cached, found := r.cache.Get(id); found {
		if pack, ok := cached.(Package); ok {
			return &pack, nil
		}
	}

	pack, err := r.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	r.cache.SetWithTTL(pack.ID, *pack, 1, packageCacheTTL)

	return pack, nil
}

func (r *CachedRepo) ListForUser(ctx context.Context, userID string) ([]Package, error) {
	return r.repo.ListForUser(ctx, userID)
}

func (r *CachedRepo) Update(ctx context.Context, pack *Package) error {
	if err := r.repo.Update(ctx, pack); err != nil {
		return err
	}
	r.cache.SetWithTTL(pack.ID, *pack, 1, packageCacheTTL)
	return nil
}

func (r *CachedRepo) Delete(ctx context.Context, id string) error {
	if err := r.repo.Delete(ctx, id); err != nil {
		return err
	}
	r.cache.Del(id)
	return nil
}
