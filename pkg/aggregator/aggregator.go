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

// Package aggregator serves per-organization dashboard reads: status
// counters, fleet totals, and the recent-devices list, all from one
// consistent storage snapshot.
package aggregator

import (
	"context"
	"encoding/json"
	"time"

	"github.com/edgefleet/fleetstate/pkg/logger"
	"github.com/edgefleet/fleetstate/pkg/models"
	"github.com/edgefleet/fleetstate/pkg/registry"
)

const (
	// DefaultRecentDevices is the recent-devices list length when the caller
	// does not ask for a specific limit.
	DefaultRecentDevices = 10

	// MaxRecentDevices caps the recent-devices list regardless of the
	// requested limit.
	MaxRecentDevices = 100
)

// Aggregator answers dashboard queries. Counters and the recent-device list
// for one response always come from the same snapshot, so the status counts
// sum to the device total even while heartbeats land concurrently.
type Aggregator struct {
	registry registry.Manager
	cache    SnapshotCache
	logger   logger.Logger
	nowFn    func() time.Time
}

// NewAggregator creates an aggregator. cache may be nil to disable caching.
func NewAggregator(reg registry.Manager, cache SnapshotCache, log logger.Logger) *Aggregator {
	if cache == nil {
		cache = NopCache{}
	}

	return &Aggregator{
		registry: reg,
		cache:    cache,
		logger:   log.WithComponent("aggregator"),
		nowFn:    time.Now,
	}
}

// SetClock overrides the aggregator's wall clock. Test hook.
func (a *Aggregator) SetClock(nowFn func() time.Time) {
	a.nowFn = nowFn
}

// DashboardStats returns the dashboard response for an organization, served
// from cache when a fresh entry exists. "Updates today" counts devices in
// the organization's local day, resolved from its IANA timezone.
func (a *Aggregator) DashboardStats(ctx context.Context, orgID string) (*models.DashboardResponse, error) {
	if cached, err := a.cache.Get(ctx, orgID); err != nil {
		a.logger.Warn().Err(err).Str("org_id", orgID).Msg("Dashboard cache read failed")
	} else if cached != nil {
		var resp models.DashboardResponse
		if err := json.Unmarshal(cached, &resp); err == nil {
			return &resp, nil
		}

		a.logger.Warn().Str("org_id", orgID).Msg("Discarding undecodable dashboard cache entry")
	}

	org, err := a.registry.GetOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}

	dayStart, dayEnd := a.localDay(org)

	snapshot, err := a.registry.Snapshot(ctx, orgID, dayStart, dayEnd, DefaultRecentDevices)
	if err != nil {
		return nil, err
	}

	resp := buildResponse(snapshot)

	if payload, err := json.Marshal(resp); err == nil {
		if err := a.cache.Set(ctx, orgID, payload); err != nil {
			a.logger.Warn().Err(err).Str("org_id", orgID).Msg("Dashboard cache write failed")
		}
	}

	return resp, nil
}

// RecentDevices returns the organization's most recently seen devices,
// newest first, devices never seen last. limit defaults to
// DefaultRecentDevices and is capped at MaxRecentDevices. Bypasses the
// cache: callers asking for a specific window want live data.
func (a *Aggregator) RecentDevices(ctx context.Context, orgID string, limit int) ([]models.RecentDeviceEntry, error) {
	if limit <= 0 {
		limit = DefaultRecentDevices
	}

	if limit > MaxRecentDevices {
		limit = MaxRecentDevices
	}

	org, err := a.registry.GetOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}

	dayStart, dayEnd := a.localDay(org)

	snapshot, err := a.registry.Snapshot(ctx, orgID, dayStart, dayEnd, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]models.RecentDeviceEntry, 0, len(snapshot.RecentDevices))
	for _, recent := range snapshot.RecentDevices {
		entries = append(entries, models.NewRecentDeviceEntry(recent.Device, recent.FleetName))
	}

	return entries, nil
}

// FleetStats returns per-fleet device counts for an organization. Online
// counts use the registry's liveness rule, not the stored status, so a
// device past its window reads offline here even before the reaper sweeps.
func (a *Aggregator) FleetStats(ctx context.Context, orgID string) ([]models.FleetStats, error) {
	fleets, err := a.registry.ListFleets(ctx, orgID)
	if err != nil {
		return nil, err
	}

	now := a.nowFn()
	stats := make([]models.FleetStats, 0, len(fleets))

	for _, fleet := range fleets {
		devices, err := a.registry.ListDevicesByFleet(ctx, fleet.ID)
		if err != nil {
			return nil, err
		}

		fs := models.FleetStats{FleetID: fleet.ID, DeviceCount: len(devices)}

		for _, device := range devices {
			if a.registry.IsLive(device, now) {
				fs.OnlineCount++
			}
		}

		stats = append(stats, fs)
	}

	return stats, nil
}

// Invalidate drops the cached dashboard for an organization. Called after
// mutations that must be visible immediately, like fleet deletion.
func (a *Aggregator) Invalidate(ctx context.Context, orgID string) {
	if err := a.cache.Invalidate(ctx, orgID); err != nil {
		a.logger.Warn().Err(err).Str("org_id", orgID).Msg("Dashboard cache invalidation failed")
	}
}

// localDay resolves the [start, end) bounds of the current day in the
// organization's timezone. Unknown or empty zones fall back to UTC.
func (a *Aggregator) localDay(org *models.Organization) (time.Time, time.Time) {
	loc := time.UTC

	if org.Timezone != "" {
		parsed, err := time.LoadLocation(org.Timezone)
		if err != nil {
			a.logger.Warn().Str("org_id", org.ID).Str("timezone", org.Timezone).Msg("Unknown organization timezone, using UTC")
		} else {
			loc = parsed
		}
	}

	now := a.nowFn().In(loc)
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	return dayStart, dayStart.AddDate(0, 0, 1)
}

func buildResponse(snapshot *models.DashboardSnapshot) *models.DashboardResponse {
	entries := make([]models.RecentDeviceEntry, 0, len(snapshot.RecentDevices))
	for _, recent := range snapshot.RecentDevices {
		entries = append(entries, models.NewRecentDeviceEntry(recent.Device, recent.FleetName))
	}

	return &models.DashboardResponse{
		Stats:         snapshot.Stats,
		RecentDevices: entries,
	}
}
