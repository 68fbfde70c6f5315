package service

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// SentimentCache evita recalcular el sentimiento promedio de un perro en
// cada request de ranking. Los fallos de cache se tratan como miss: el
// ranking nunca depende de que redis esté disponible.
type SentimentCache interface {
	Get(ctx context.Context, dogID string) (float64, bool)
	Set(ctx context.Context, dogID string, score float64)
}

type noopSentimentCache struct{}

// NewNoopSentimentCache es el cache usado cuando redis no está configurado.
func NewNoopSentimentCache() SentimentCache {
	return noopSentimentCache{}
}

func (noopSentimentCache) Get(context.Context, string) (float64, bool) { return 0, false }
func (noopSentimentCache) Set(context.Context, string, float64)        {}

type redisCacheClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type redisSentimentCache struct {
	client redisCacheClient
	ttl    time.Duration
	prefix string
}

func NewRedisSentimentCache(client *redis.Client, ttl time.Duration) SentimentCache {
	if client == nil {
		return NewNoopSentimentCache()
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &redisSentimentCache{
		client: client,
		ttl:    ttl,
		prefix: "sentiment:avg:",
	}
}

func (c *redisSentimentCache) Get(ctx context.Context, dogID string) (float64, bool) {
	if dogID == "" {
		return 0, false
	}
	raw, err := c.client.Get(ctx, c.prefix+dogID).Result()
	if err != nil {
		return 0, false
	}
	score, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return score, true
}

func (c *redisSentimentCache) Set(ctx context.Context, dogID string, score float64) {
	if dogID == "" {
		return
	}
	value := strconv.FormatFloat(score, 'f', -1, 64)
	_ = c.client.Set(ctx, c.prefix+dogID, value, c.ttl).Err()
}
