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

// Package reaper demotes online devices whose heartbeats have gone quiet.
package reaper

import (
	"context"
	"errors"
	"time"

	"github.com/edgefleet/fleetstate/pkg/db"
	"github.com/edgefleet/fleetstate/pkg/logger"
	"github.com/edgefleet/fleetstate/pkg/models"
	"github.com/edgefleet/fleetstate/pkg/registry"
)

// Reaper periodically sweeps the registry for online devices whose last
// heartbeat is older than the liveness window and demotes them to offline.
// Demotions are compare-and-set per device, so a heartbeat racing the sweep
// always wins.
type Reaper struct {
	registry registry.Manager
	logger   logger.Logger
	window   time.Duration
	interval time.Duration
	nowFn    func() time.Time
}

// NewReaper creates a reaper over the given registry. The interval defaults
// to half the liveness window.
func NewReaper(reg registry.Manager, log logger.Logger, interval time.Duration) *Reaper {
	window := reg.LivenessWindow()
	if interval <= 0 {
		interval = window / 2
	}

	return &Reaper{
		registry: reg,
		logger:   log.WithComponent("reaper"),
		window:   window,
		interval: interval,
		nowFn:    time.Now,
	}
}

// SetClock overrides the reaper's wall clock. Test hook.
func (r *Reaper) SetClock(nowFn func() time.Time) {
	r.nowFn = nowFn
}

// Start runs the sweep loop until ctx is cancelled. Sweeps run inline on the
// ticker goroutine, so a slow sweep delays the next tick instead of piling
// up concurrent sweeps.
func (r *Reaper) Start(ctx context.Context) {
	r.logger.Info().
		Dur("interval", r.interval).
		Dur("liveness_window", r.window).
		Msg("Starting stale device reaper")

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info().Msg("Stopping stale device reaper")
			return
		case <-ticker.C:
			r.Sweep(ctx)
		}
	}
}

// Sweep demotes every online device not seen within the liveness window. A
// device that heartbeats mid-sweep loses its online status only if the
// stored status is still online at demotion time.
func (r *Reaper) Sweep(ctx context.Context) {
	cutoff := r.nowFn().Add(-r.window)

	stale, err := r.registry.ListStaleOnline(ctx, cutoff)
	if err != nil {
		r.logger.Error().Err(err).Msg("Failed to list stale devices")
		return
	}

	if len(stale) == 0 {
		return
	}

	demoted := 0

	for _, device := range stale {
		err := r.registry.TransitionStatus(ctx, device.DeviceID, models.DeviceStatusOnline, models.DeviceStatusOffline)
		if err != nil {
			// The device changed status between the list and the CAS; a
			// fresh heartbeat or a deployment signal won the race.
			if errors.Is(err, db.ErrStatusConflict) || errors.Is(err, db.ErrDeviceNotFound) {
				continue
			}

			r.logger.Error().Err(err).Str("device_id", device.DeviceID).Msg("Failed to demote stale device")

			continue
		}

		demoted++
	}

	if demoted > 0 {
		r.logger.Info().
			Int("demoted", demoted).
			Int("candidates", len(stale)).
			Time("cutoff", cutoff).
			Msg("Demoted stale devices to offline")
	}
}
