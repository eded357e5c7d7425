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

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/edgefleet/fleetstate/pkg/logger"
)

var errInvalidDuration = errors.New("invalid duration")

// Duration is a time.Duration that unmarshals from either a duration string
// ("300s") or nanoseconds.
type Duration time.Duration

func (d Duration) String() string {
	return time.Duration(d).String()
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		// numeric durations are nanoseconds
		*d = Duration(time.Duration(value))
		return nil
	case string:
		dur, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%w: %s", errInvalidDuration, value)
		}

		*d = Duration(dur)

		return nil
	default:
		return errInvalidDuration
	}
}

// DatabaseConfig configures the Postgres storage backend. When Host is empty
// the daemon falls back to the in-memory store.
type DatabaseConfig struct {
	Host             string   `json:"host"`
	Port             int      `json:"port"`
	Database         string   `json:"database"`
	Username         string   `json:"username"`
	Password         string   `json:"password"`
	SSLMode          string   `json:"ssl_mode,omitempty"`
	ApplicationName  string   `json:"application_name,omitempty"`
	MaxConnections   int32    `json:"max_connections,omitempty"`
	MinConnections   int32    `json:"min_connections,omitempty"`
	MaxConnLifetime  Duration `json:"max_conn_lifetime,omitempty"`
	StatementTimeout Duration `json:"statement_timeout,omitempty"`
}

// NATSConfig configures the heartbeat ingest stream.
type NATSConfig struct {
	URL          string `json:"url"`
	Stream       string `json:"stream"`
	Subject      string `json:"subject"`
	ConsumerName string `json:"consumer_name"`
}

// RedisConfig configures the aggregator's read-side cache. Optional; an
// empty Addr disables caching.
type RedisConfig struct {
	Addr     string   `json:"addr"`
	Password string   `json:"password,omitempty"`
	DB       int      `json:"db,omitempty"`
	TTL      Duration `json:"ttl,omitempty"`
}

// InfluxConfig configures the optional hardware-metrics history sink.
type InfluxConfig struct {
	URL    string `json:"url"`
	Token  string `json:"token"`
	Org    string `json:"org"`
	Bucket string `json:"bucket"`
}

// CoreServiceConfig is the top-level daemon configuration.
type CoreServiceConfig struct {
	ListenAddr     string          `json:"listen_addr"`
	LivenessWindow Duration        `json:"liveness_window"`
	ReapInterval   Duration        `json:"reap_interval,omitempty"`
	StorageTimeout Duration        `json:"storage_timeout,omitempty"`
	MaxClockSkew   Duration        `json:"max_clock_skew,omitempty"`
	Database       *DatabaseConfig `json:"database,omitempty"`
	NATS           *NATSConfig     `json:"nats,omitempty"`
	Redis          *RedisConfig    `json:"redis,omitempty"`
	Influx         *InfluxConfig   `json:"influx,omitempty"`
	Logger         *logger.Config  `json:"logger,omitempty"`
}

const (
	// DefaultLivenessWindow is the maximum heartbeat gap before a device is
	// considered offline.
	DefaultLivenessWindow = 300 * time.Second

	// DefaultStorageTimeout bounds every registry storage call.
	DefaultStorageTimeout = 5 * time.Second

	// DefaultMaxClockSkew is how far in the future a heartbeat timestamp may
	// be before the report is rejected.
	DefaultMaxClockSkew = 5 * time.Minute
)

// Normalize fills unset tuning knobs with defaults. The reap interval
// defaults to half the liveness window so a stale device is demoted at most
// one interval after crossing the window.
func (c *CoreServiceConfig) Normalize() {
	if c.LivenessWindow <= 0 {
		c.LivenessWindow = Duration(DefaultLivenessWindow)
	}

	if c.ReapInterval <= 0 {
		c.ReapInterval = c.LivenessWindow / 2
	}

	if c.StorageTimeout <= 0 {
		c.StorageTimeout = Duration(DefaultStorageTimeout)
	}

	if c.MaxClockSkew <= 0 {
		c.MaxClockSkew = Duration(DefaultMaxClockSkew)
	}

	if c.ListenAddr == "" {
		c.ListenAddr = ":8090"
	}
}
