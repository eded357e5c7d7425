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
	"os"

	"github.com/edgefleet/fleetstate/pkg/models"
)

// Environment overrides for deployment-specific endpoints. Only connection
// addresses and credentials are overridable; behavioral tuning stays in the
// config file.
const (
	envDBHost     = "FLEETSTATE_DB_HOST"
	envDBPassword = "FLEETSTATE_DB_PASSWORD"
	envNATSURL    = "FLEETSTATE_NATS_URL"
	envRedisAddr  = "FLEETSTATE_REDIS_ADDR"
	envInfluxURL  = "FLEETSTATE_INFLUX_URL"
	envInfluxTok  = "FLEETSTATE_INFLUX_TOKEN"
	envListenAddr = "FLEETSTATE_LISTEN_ADDR"
)

func applyEnvOverrides(dst interface{}) {
	cfg, ok := dst.(*models.CoreServiceConfig)
	if !ok {
		return
	}

	if v := os.Getenv(envListenAddr); v != "" {
		cfg.ListenAddr = v
	}

	if v := os.Getenv(envDBHost); v != "" {
		if cfg.Database == nil {
			cfg.Database = &models.DatabaseConfig{}
		}

		cfg.Database.Host = v
	}

	if v := os.Getenv(envDBPassword); v != "" && cfg.Database != nil {
		cfg.Database.Password = v
	}

	if v := os.Getenv(envNATSURL); v != "" {
		if cfg.NATS == nil {
			cfg.NATS = &models.NATSConfig{}
		}

		cfg.NATS.URL = v
	}

	if v := os.Getenv(envRedisAddr); v != "" {
		if cfg.Redis == nil {
			cfg.Redis = &models.RedisConfig{}
		}

		cfg.Redis.Addr = v
	}

	if v := os.Getenv(envInfluxURL); v != "" {
		if cfg.Influx == nil {
			cfg.Influx = &models.InfluxConfig{}
		}

		cfg.Influx.URL = v
	}

	if v := os.Getenv(envInfluxTok); v != "" && cfg.Influx != nil {
		cfg.Influx.Token = v
	}
}
