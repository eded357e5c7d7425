/*
 * Copyright 2026 EdgeFleet Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package aggregator

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/edgefleet/fleetstate/pkg/models"
)

const (
	dashboardKeyPrefix = "fleetstate:dashboard:"

	// DefaultCacheTTL keeps dashboard reads cheap while bounding staleness
	// well below the liveness window.
	DefaultCacheTTL = 15 * time.Second
)

// SnapshotCache is the aggregator's read-side cache. Implementations return
// (nil, nil) on a miss; cache failures are soft and never fail a dashboard
// read.
type SnapshotCache interface {
	Get(ctx context.Context, orgID string) ([]byte, error)
	Set(ctx context.Context, orgID string, payload []byte) error
	Invalidate(ctx context.Context, orgID string) error
	Close() error
}

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects a snapshot cache to Redis.
func NewRedisCache(cfg *models.RedisConfig) SnapshotCache {
	ttl := time.Duration(cfg.TTL)
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return &redisCache{client: client, ttl: ttl}
}

func (c *redisCache) Get(ctx context.Context, orgID string) ([]byte, error) {
	payload, err := c.client.Get(ctx, dashboardKeyPrefix+orgID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}

		return nil, err
	}

	return payload, nil
}

func (c *redisCache) Set(ctx context.Context, orgID string, payload []byte) error {
	return c.client.Set(ctx, dashboardKeyPrefix+orgID, payload, c.ttl).Err()
}

func (c *redisCache) Invalidate(ctx context.Context, orgID string) error {
	return c.client.Del(ctx, dashboardKeyPrefix+orgID).Err()
}

func (c *redisCache) Close() error {
	return c.client.Close()
}

// NopCache misses on every read. Used when no Redis address is configured.
type NopCache struct{}

func (NopCache) Get(_ context.Context, _ string) ([]byte, error) { return nil, nil }

func (NopCache) Set(_ context.Context, _ string, _ []byte) error { return nil }

func (NopCache) Invalidate(_ context.Context, _ string) error { return nil }

func (NopCache) Close() error { return nil }
