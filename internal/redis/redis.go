package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var Rdb *redis.Client

func InitRedis(redisAddress string, redisUsername string, redisPassword string) {
	Rdb = redis.NewClient(&redis.Options{
		Addr:     redisAddress,
		Username: redisUsername,
		Password: redisPassword,
		DB:       0,
	})
}

// TimingsCache caches raw prayer timings per (cityKey, dateKey) so a cache
// hit skips the upstream API for the rest of the calendar day. A broken or
// unreachable Redis degrades to cache misses; it never fails a request.
type TimingsCache struct {
	client *redis.Client
}

func NewTimingsCache(client *redis.Client) *TimingsCache {
	return &TimingsCache{client: client}
}

func timingsKey(cityKey, dateKey string) string {
	return "timings:" + cityKey + ":" + dateKey
}

func (c *TimingsCache) GetTimings(ctx context.Context, cityKey, dateKey string) (map[string]string, bool) {
	raw, err := c.client.Get(ctx, timingsKey(cityKey, dateKey)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Str("city", cityKey).Msg("redis get failed, treating as miss")
		}
		return nil, false
	}
	var timings map[string]string
	if err := json.Unmarshal(raw, &timings); err != nil {
		log.Warn().Err(err).Str("city", cityKey).Msg("corrupt cached timings, treating as miss")
		return nil, false
	}
	return timings, true
}

func (c *TimingsCache) SetTimings(ctx context.Context, cityKey, dateKey string, timings map[string]string, ttl time.Duration) {
	payload, err := json.Marshal(timings)
	if err != nil {
		log.Error().Err(err).Str("city", cityKey).Msg("failed to marshal timings for cache")
		return
	}
	if err := c.client.Set(ctx, timingsKey(cityKey, dateKey), payload, ttl).Err(); err != nil {
		log.Warn().Err(err).Str("city", cityKey).Msg("redis set failed")
	}
}
