package application

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/enrollhub/backend/internal/domain/entity"
	"github.com/enrollhub/backend/pkg/helpers"
)

const catalogCacheKey = "courses:all"

// catalogFromCache returns the cached course list, or nil on a miss.
// Cache failures are logged and treated as misses; the store stays
// authoritative.
func catalogFromCache(ctx context.Context, rdb *redis.Client, logger *logrus.Logger) []*entity.Course {
	if rdb == nil {
		return nil
	}
	var courses []*entity.Course
	ok, err := helpers.RedisGetJSON(ctx, rdb, catalogCacheKey, &courses)
	if err != nil {
		if logger != nil {
			logger.WithError(err).Warn("catalog cache read failed")
		}
		return nil
	}
	if !ok {
		return nil
	}
	return courses
}

func catalogToCache(ctx context.Context, rdb *redis.Client, logger *logrus.Logger, courses []*entity.Course, ttl time.Duration) {
	if rdb == nil {
		return
	}
	if err := helpers.RedisSetJSON(ctx, rdb, catalogCacheKey, courses, ttl); err != nil && logger != nil {
		logger.WithError(err).Warn("catalog cache write failed")
	}
}

// invalidateCatalog drops the cached list. Called on every course or
// enrollment mutation so listings never serve deleted or stale courses.
func invalidateCatalog(ctx context.Context, rdb *redis.Client, logger *logrus.Logger) {
	if rdb == nil {
		return
	}
	if err := helpers.RedisDel(ctx, rdb, catalogCacheKey); err != nil && logger != nil {
		logger.WithError(err).Warn("catalog cache invalidation failed")
	}
}
