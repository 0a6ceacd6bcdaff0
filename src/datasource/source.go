package datasource

import (
	"context"
	"fmt"

	"rentroll/src/config"
	"rentroll/src/database"
	"rentroll/src/models"
	redis_utils "rentroll/src/utils/redis"

	"github.com/sirupsen/logrus"
)

// Source yields the rent roll in source order.
type Source interface {
	Name() string
	Load(ctx context.Context) ([]models.RentRollRecord, error)
}

// NewSource builds the source selected by dataSource.driver, wrapped in the Redis cache when
// it is enabled.
func NewSource(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (Source, error) {
	var source Source
	switch cfg.DataSource.Driver {
	case config.CSV, "":
		source = NewCSVSource(cfg.DataSource.CSV.Path)
	case config.S3:
		s3Source, err := NewS3Source(ctx, cfg.AWS.Region, cfg.DataSource.S3)
		if err != nil {
			return nil, err
		}
		source = s3Source
	case config.POSTGRES:
		secrets, err := database.SecretsFor(ctx, cfg)
		if err != nil {
			return nil, err
		}
		pool, err := database.SetupDB(ctx, cfg, secrets)
		if err != nil {
			return nil, err
		}
		source = NewPostgresSource(pool)
	default:
		return nil, fmt.Errorf("unknown data source driver %q", cfg.DataSource.Driver)
	}

	if cfg.DataSource.RedisCache.Enabled {
		handler, err := redis_utils.NewRedisHandler(ctx, cfg)
		if err != nil {
			return nil, err
		}
		logger.Infof("caching %s rent roll in redis for %s", source.Name(), cfg.DataSource.RedisCache.TTL)
		source = NewRedisCachedSource(source, handler, cfg.DataSource.RedisCache.TTL, logger)
	}
	return source, nil
}
