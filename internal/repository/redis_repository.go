package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	model "agro-trade/internal/models"
)

// RedisRepo stores the whole crop collection as a JSON document under a
// single key, keeping the same load-all/save-all contract as the other
// backends. Each call runs under its own timeout.
type RedisRepo struct {
	client  *redis.Client
	key     string
	timeout time.Duration
}

// NewRedisRepo creates a Redis-backed repository using client, storing the
// collection under key. A non-positive timeout falls back to 5s.
func NewRedisRepo(client *redis.Client, key string, timeout time.Duration) *RedisRepo {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &RedisRepo{client: client, key: key, timeout: timeout}
}

// LoadAll fetches and decodes the crop collection. An absent key means the
// collection has never been saved and is treated as empty.
func (r *RedisRepo) LoadAll() ([]model.Crop, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	data, err := r.client.Get(ctx, r.key).Result()
	if err != nil {
		if err == redis.Nil {
			return []model.Crop{}, nil
		}
		return nil, fmt.Errorf("redis repo: get %s: %w", r.key, err)
	}

	var crops []model.Crop
	if err := json.Unmarshal([]byte(data), &crops); err != nil {
		return nil, fmt.Errorf("redis repo: decode %s: %w", r.key, err)
	}
	if crops == nil {
		crops = []model.Crop{}
	}
	return crops, nil
}

// SaveAll encodes crops and replaces the stored collection in one SET.
func (r *RedisRepo) SaveAll(crops []model.Crop) error {
	data, err := json.Marshal(crops)
	if err != nil {
		return fmt.Errorf("redis repo: encode crops: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis repo: set %s: %w", r.key, err)
	}
	return nil
}
