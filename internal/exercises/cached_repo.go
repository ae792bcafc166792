package exercises

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const exerciseCacheExpireSeconds = 60 * 60

// CachedRepo keeps exercise definitions in an in-memory cache in front
// of the database. Definitions change rarely but are read on every
// session start from a workout package, so the cache takes most of the
// read load off postgres.
type CachedRepo struct {
	repo  *Repo
	cache *freecache.Cache
}

func NewCachedRepo(repo *Repo) *CachedRepo {
	megabyte := 1024 * 1024
	cacheSize := 10 * megabyte
	return &CachedRepo{
		repo:  repo,
		cache: freecache.NewCache(cacheSize),
	}
}

func (cr *CachedRepo) Add(ctx context.Context, exercise Exercise) (*Exercise, error) {
	added, err := cr.repo.Add(ctx, exercise)
	if err != nil {
		return nil, err
	}
	cr.cacheSet(added)
	return added, nil
}

func (cr *CachedRepo) Get(ctx context.Context, id string) (*Exercise, error) {
	if exerciseBytes, err := cr.cache.Get([]byte(id)); err == nil {
		var exercise Exercise
		if err := json.Unmarshal(exerciseBytes, &exercise); err == nil {
			return &exercise, nil
		}
		log.Errorf("failed to unmarshal cached exercise [%s]: %s", id, err)
	} else if !errors.Is(err, freecache.ErrNotFound) {
		log.Debugf("get exercise [%s] from cache: %s", id, err)
	}

	exercise, err := cr.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	cr.cacheSet(exercise)
	return exercise, nil
}

func (cr *CachedRepo) List(ctx context.Context, exerciseType, category string) ([]Exercise, error) {
	return cr.repo.List(ctx, exerciseType, category)
}

func (cr *CachedRepo) Delete(ctx context.Context, id string) error {
	if err := cr.repo.Delete(ctx, id); err != nil {
		return err
	}
	cr.cache.Del([]byte(id))
	return nil
}

func (cr *CachedRepo) cacheSet(exercise *Exercise) {
	exerciseBytes, err := json.Marshal(exercise)
	if err != nil {
		log.Errorf("failed to marshal exercise [%s] for cache: %s", exercise.ID, err)
		return
	}
	if err := cr.cache.Set([]byte(exercise.ID), exerciseBytes, exerciseCacheExpireSeconds); err != nil {
		log.Errorf("failed to cache exercise [%s]: %s", exercise.ID, err)
	}
}
