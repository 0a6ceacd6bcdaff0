package datasource

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"rentroll/src/models"
	redis_utils "rentroll/src/utils/redis"
)

// KeyValueCache stores JSON values under a key for a limited time.
type KeyValueCache interface {
	Get(ctx context.Context, key string, result interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

// RedisCachedSource serves the rent roll from Redis and falls back to the wrapped source on
// a miss. Cache failures are logged and never fail a load.
type RedisCachedSource struct {
	source Source
	cache  KeyValueCache
	ttl    time.Duration
	key    string
	logger *logrus.Logger
}

func NewRedisCachedSource(source Source, cache KeyValueCache, ttl time.Duration, logger *logrus.Logger) *RedisCachedSource {
	return &RedisCachedSource{
		source: source,
		cache:  cache,
		ttl:    ttl,
		key:    "rentroll:" + redis_utils.GenerateUUID(source.Name()),
		logger: logger,
	}
}

func (s *RedisCachedSource) Name() string {
	return s.source.Name()
}

func (s *RedisCachedSource) Load(ctx context.Context) ([]models.RentRollRecord, error) {
	var records []models.RentRollRecord
	err := s.cache.Get(ctx, s.key, &records)
	if err == nil {
		return records, nil
	}
	if !errors.Is(err, redis_utils.ErrKeyNotFound) {
		s.logger.Warnf("rent roll cache read failed: %v", err)
	}

	records, err = s.source.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, s.key, records, s.ttl); err != nil {
		s.logger.Warnf("rent roll cache write failed: %v", err)
	}
	return records, nil
}

// Invalidate drops the cached copy so the next load reads the wrapped source.
func (s *RedisCachedSource) Invalidate(ctx context.Context) error {
	deleter, ok := s.cache.(interface {
		Delete(ctx context.Context, key string) error
	})
	if !ok {
		return nil
	}
	return deleter.Delete(ctx, s.key)
}
