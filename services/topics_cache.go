package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"social-marketing-platform/internal/logger"
	"social-marketing-platform/models"

	"github.com/redis/go-redis/v9"
)

// TopicsCache caches generated topic lists in Redis keyed by the
// validated request. Topic suggestions for a given month/industry/
// platform/language combination are stable enough to reuse for a
// while, and each provider round trip is expensive.
//
// The cache fails open: any Redis error is treated as a miss so a
// cache outage never blocks generation.
type TopicsCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewTopicsCache(rdb *redis.Client, ttl time.Duration) *TopicsCache {
	return &TopicsCache{rdb: rdb, ttl: ttl}
}

func (tc *TopicsCache) Get(ctx context.Context, req *models.TopicsRequest) ([]models.Topic, bool) {
	raw, err := tc.rdb.Get(ctx, topicsKey(req)).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Debug("topics cache read failed", "error", err)
		}
		return nil, false
	}

	var topics []models.Topic
	if err := json.Unmarshal(raw, &topics); err != nil {
		logger.Warn("topics cache entry corrupt, ignoring", "error", err)
		return nil, false
	}
	return topics, true
}

func (tc *TopicsCache) Set(ctx context.Context, req *models.TopicsRequest, topics []models.Topic) {
	raw, err := json.Marshal(topics)
	if err != nil {
		return
	}
	if err := tc.rdb.Set(ctx, topicsKey(req), raw, tc.ttl).Err(); err != nil {
		logger.Debug("topics cache write failed", "error", err)
	}
}

func topicsKey(req *models.TopicsRequest) string {
	return fmt.Sprintf("topics:%s:%d:%s:%s", req.Language, req.Month, req.Industry, req.Platform)
}
