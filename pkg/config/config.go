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

// Package config loads service configuration from JSON files with
// environment-variable overrides for deployment-specific addresses.
package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/edgefleet/fleetstate/pkg/logger"
	"github.com/edgefleet/fleetstate/pkg/models"
)

var errInvalidConfigPtr = errors.New("config must be a non-nil pointer")

// ConfigLoader loads configuration from a source into dst.
type ConfigLoader interface {
	Load(ctx context.Context, path string, dst interface{}) error
}

// Config holds the configuration loading dependencies.
type Config struct {
	loader ConfigLoader
	logger logger.Logger
}

// NewConfig initializes a Config with the default file loader.
func NewConfig(log logger.Logger) *Config {
	if log == nil {
		log = logger.NewTestLogger()
	}

	return &Config{
		loader: &FileConfigLoader{},
		logger: log,
	}
}

// LoadAndValidate loads the file at path into dst, applies environment
// overrides, and validates the result when dst implements Validator.
func (c *Config) LoadAndValidate(ctx context.Context, path string, dst interface{}) error {
	if dst == nil {
		return errInvalidConfigPtr
	}

	if err := c.loader.Load(ctx, path, dst); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	applyEnvOverrides(dst)

	if v, ok := dst.(Validator); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
	}

	if cfg, ok := dst.(*models.CoreServiceConfig); ok {
		cfg.Normalize()

		c.logger.Info().
			Str("path", path).
			Str("liveness_window", cfg.LivenessWindow.String()).
			Str("reap_interval", cfg.ReapInterval.String()).
			Msg("Configuration loaded")
	}

	return nil
}

// Validator lets config structs enforce their own invariants after loading.
type Validator interface {
	Validate() error
}
