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

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgefleet/fleetstate/pkg/logger"
	"github.com/edgefleet/fleetstate/pkg/models"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fleetstated.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadAndValidate(t *testing.T) {
	ctx := context.Background()

	t.Run("loads_and_normalizes", func(t *testing.T) {
		path := writeConfigFile(t, `{
			"listen_addr": ":9000",
			"liveness_window": "600s",
			"nats": {
				"url": "nats://localhost:4222",
				"stream": "fleet-heartbeats",
				"subject": "fleet.heartbeat.>",
				"consumer_name": "fleetstate-heartbeats"
			}
		}`)

		var cfg models.CoreServiceConfig
		require.NoError(t, NewConfig(logger.NewTestLogger()).LoadAndValidate(ctx, path, &cfg))

		assert.Equal(t, ":9000", cfg.ListenAddr)
		assert.Equal(t, models.Duration(600*time.Second), cfg.LivenessWindow)
		// reap interval defaults to half the window
		assert.Equal(t, models.Duration(300*time.Second), cfg.ReapInterval)
		assert.Equal(t, models.Duration(models.DefaultStorageTimeout), cfg.StorageTimeout)
		require.NotNil(t, cfg.NATS)
		assert.Equal(t, "fleet.heartbeat.>", cfg.NATS.Subject)
	})

	t.Run("numeric_durations_accepted", func(t *testing.T) {
		path := writeConfigFile(t, `{"liveness_window": 300000000000}`)

		var cfg models.CoreServiceConfig
		require.NoError(t, NewConfig(logger.NewTestLogger()).LoadAndValidate(ctx, path, &cfg))
		assert.Equal(t, models.Duration(300*time.Second), cfg.LivenessWindow)
	})

	t.Run("missing_file", func(t *testing.T) {
		var cfg models.CoreServiceConfig

		err := NewConfig(logger.NewTestLogger()).LoadAndValidate(ctx, "/does/not/exist.json", &cfg)
		assert.Error(t, err)
	})

	t.Run("malformed_json", func(t *testing.T) {
		path := writeConfigFile(t, `{"listen_addr": `)

		var cfg models.CoreServiceConfig

		err := NewConfig(logger.NewTestLogger()).LoadAndValidate(ctx, path, &cfg)
		assert.Error(t, err)
	})

	t.Run("nil_destination", func(t *testing.T) {
		err := NewConfig(logger.NewTestLogger()).LoadAndValidate(ctx, "ignored.json", nil)
		assert.Error(t, err)
	})
}

func TestEnvOverrides(t *testing.T) {
	ctx := context.Background()

	t.Run("overrides_addresses", func(t *testing.T) {
		t.Setenv("FLEETSTATE_DB_HOST", "pg.internal")
		t.Setenv("FLEETSTATE_DB_PASSWORD", "s3cret")
		t.Setenv("FLEETSTATE_NATS_URL", "nats://broker:4222")
		t.Setenv("FLEETSTATE_REDIS_ADDR", "redis:6379")
		t.Setenv("FLEETSTATE_LISTEN_ADDR", ":7070")

		path := writeConfigFile(t, `{
			"database": {"host": "localhost", "port": 5432, "database": "fleet", "username": "fleet"}
		}`)

		var cfg models.CoreServiceConfig
		require.NoError(t, NewConfig(logger.NewTestLogger()).LoadAndValidate(ctx, path, &cfg))

		assert.Equal(t, "pg.internal", cfg.Database.Host)
		assert.Equal(t, "s3cret", cfg.Database.Password)
		require.NotNil(t, cfg.NATS)
		assert.Equal(t, "nats://broker:4222", cfg.NATS.URL)
		require.NotNil(t, cfg.Redis)
		assert.Equal(t, "redis:6379", cfg.Redis.Addr)
		assert.Equal(t, ":7070", cfg.ListenAddr)
	})

	t.Run("file_values_kept_without_env", func(t *testing.T) {
		path := writeConfigFile(t, `{"listen_addr": ":8090"}`)

		var cfg models.CoreServiceConfig
		require.NoError(t, NewConfig(logger.NewTestLogger()).LoadAndValidate(ctx, path, &cfg))
		assert.Equal(t, ":8090", cfg.ListenAddr)
		assert.Nil(t, cfg.Database)
	})
}
