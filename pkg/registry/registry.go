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

// Package registry is the authoritative owner of device, fleet, and
// organization state. Everything that mutates a device row goes through
// here; ingest and reaping compose through its compare-and-set transitions.
package registry

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/edgefleet/fleetstate/pkg/db"
	"github.com/edgefleet/fleetstate/pkg/logger"
	"github.com/edgefleet/fleetstate/pkg/models"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// CacheInvalidator drops derived read-side state for an organization. The
// registry calls it after deletions so cached dashboards never outlive the
// rows they were built from.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, orgID string)
}

// DeviceRegistry implements Manager over a db.Service. Every storage call is
// bounded by the configured timeout; a deadline hit surfaces as
// ErrStorageTimeout so one slow device never starves the rest.
type DeviceRegistry struct {
	store       db.Service
	logger      logger.Logger
	window      time.Duration
	timeout     time.Duration
	nowFn       func() time.Time
	invalidator CacheInvalidator
}

// NewDeviceRegistry creates a registry with the given liveness window and
// per-call storage timeout.
func NewDeviceRegistry(store db.Service, log logger.Logger, window, timeout time.Duration) *DeviceRegistry {
	if window <= 0 {
		window = models.DefaultLivenessWindow
	}

	if timeout <= 0 {
		timeout = models.DefaultStorageTimeout
	}

	return &DeviceRegistry{
		store:   store,
		logger:  log.WithComponent("registry"),
		window:  window,
		timeout: timeout,
		nowFn:   time.Now,
	}
}

// SetClock overrides the registry's wall clock. Test hook.
func (r *DeviceRegistry) SetClock(nowFn func() time.Time) {
	r.nowFn = nowFn
}

// SetCacheInvalidator wires the read-side cache drop performed after
// deletions. Optional; nil means there is no cache to keep in sync.
func (r *DeviceRegistry) SetCacheInvalidator(inv CacheInvalidator) {
	r.invalidator = inv
}

func (r *DeviceRegistry) CreateOrganization(ctx context.Context, org *models.Organization) error {
	if org == nil || org.Name == "" {
		return ErrNameRequired
	}

	if !slugPattern.MatchString(org.Slug) {
		return ErrInvalidSlug
	}

	if org.ID == "" {
		org.ID = uuid.New().String()
	}

	return r.call(ctx, func(ctx context.Context) error {
		return r.store.CreateOrganization(ctx, org)
	})
}

func (r *DeviceRegistry) GetOrganization(ctx context.Context, id string) (*models.Organization, error) {
	return callValue(r, ctx, func(ctx context.Context) (*models.Organization, error) {
		return r.store.GetOrganization(ctx, id)
	})
}

func (r *DeviceRegistry) GetOrganizationBySlug(ctx context.Context, slug string) (*models.Organization, error) {
	return callValue(r, ctx, func(ctx context.Context) (*models.Organization, error) {
		return r.store.GetOrganizationBySlug(ctx, slug)
	})
}

func (r *DeviceRegistry) ListOrganizations(ctx context.Context) ([]*models.Organization, error) {
	return callValue(r, ctx, func(ctx context.Context) ([]*models.Organization, error) {
		return r.store.ListOrganizations(ctx)
	})
}

func (r *DeviceRegistry) DeleteOrganization(ctx context.Context, id string) error {
	err := r.call(ctx, func(ctx context.Context) error {
		return r.store.DeleteOrganization(ctx, id)
	})
	if err != nil {
		return err
	}

	r.logger.Info().Str("organization_id", id).Msg("Organization deleted with owned fleets and devices")
	r.invalidate(ctx, id)

	return nil
}

func (r *DeviceRegistry) CreateFleet(ctx context.Context, fleet *models.Fleet) error {
	if fleet == nil || fleet.Name == "" {
		return ErrNameRequired
	}

	if fleet.OrganizationID == "" {
		return ErrOrganizationIDRequired
	}

	if !slugPattern.MatchString(fleet.Slug) {
		return ErrInvalidSlug
	}

	if fleet.ID == "" {
		fleet.ID = uuid.New().String()
	}

	return r.call(ctx, func(ctx context.Context) error {
		return r.store.CreateFleet(ctx, fleet)
	})
}

func (r *DeviceRegistry) GetFleet(ctx context.Context, id string) (*models.Fleet, error) {
	return callValue(r, ctx, func(ctx context.Context) (*models.Fleet, error) {
		return r.store.GetFleet(ctx, id)
	})
}

func (r *DeviceRegistry) ListFleets(ctx context.Context, orgID string) ([]*models.Fleet, error) {
	return callValue(r, ctx, func(ctx context.Context) ([]*models.Fleet, error) {
		return r.store.ListFleetsByOrganization(ctx, orgID)
	})
}

func (r *DeviceRegistry) DeleteFleet(ctx context.Context, id string) error {
	// Resolve the owning organization before the rows disappear.
	fleet, err := r.GetFleet(ctx, id)
	if err != nil {
		return err
	}

	err = r.call(ctx, func(ctx context.Context) error {
		return r.store.DeleteFleet(ctx, id)
	})
	if err != nil {
		return err
	}

	r.logger.Info().Str("fleet_id", id).Msg("Fleet deleted with owned devices")
	r.invalidate(ctx, fleet.OrganizationID)

	return nil
}

// ProvisionDevice registers a new device. Status always starts at
// provisioning with no last_seen; external writes cannot pick a status.
func (r *DeviceRegistry) ProvisionDevice(ctx context.Context, device *models.Device) error {
	if device == nil || device.Name == "" {
		return ErrNameRequired
	}

	if device.DeviceID == "" {
		return ErrDeviceIDRequired
	}

	if device.FleetID == "" {
		return ErrFleetIDRequired
	}

	if device.ID == "" {
		device.ID = uuid.New().String()
	}

	if device.UUID == "" {
		device.UUID = uuid.New().String()
	}

	device.Status = models.DeviceStatusProvisioning
	device.LastSeen = nil

	return r.call(ctx, func(ctx context.Context) error {
		return r.store.CreateDevice(ctx, device)
	})
}

func (r *DeviceRegistry) GetDevice(ctx context.Context, deviceID string) (*models.Device, error) {
	return callValue(r, ctx, func(ctx context.Context) (*models.Device, error) {
		return r.store.GetDevice(ctx, deviceID)
	})
}

func (r *DeviceRegistry) ListDevicesByFleet(ctx context.Context, fleetID string) ([]*models.Device, error) {
	return callValue(r, ctx, func(ctx context.Context) ([]*models.Device, error) {
		return r.store.ListDevicesByFleet(ctx, fleetID)
	})
}

func (r *DeviceRegistry) DeprovisionDevice(ctx context.Context, deviceID string) error {
	device, err := r.GetDevice(ctx, deviceID)
	if err != nil {
		return err
	}

	err = r.call(ctx, func(ctx context.Context) error {
		return r.store.DeleteDevice(ctx, deviceID)
	})
	if err != nil {
		return err
	}

	r.invalidateForFleet(ctx, device.FleetID)

	return nil
}

func (r *DeviceRegistry) UpsertHeartbeat(ctx context.Context, report *models.HeartbeatReport) (*models.Device, error) {
	if report == nil || report.DeviceID == "" {
		return nil, ErrDeviceIDRequired
	}

	return callValue(r, ctx, func(ctx context.Context) (*models.Device, error) {
		return r.store.UpdateDeviceHeartbeat(ctx, report)
	})
}

func (r *DeviceRegistry) TransitionStatus(ctx context.Context, deviceID string, from, to models.DeviceStatus) error {
	if !from.Valid() || !to.Valid() {
		return ErrInvalidStatus
	}

	return r.call(ctx, func(ctx context.Context) error {
		return r.store.CompareAndSetDeviceStatus(ctx, deviceID, from, to, r.nowFn())
	})
}

// MarkUpdating moves a device into updating on behalf of the deployment
// system. Read-then-CAS; a conflict means some other transition won and the
// caller decides whether to retry.
func (r *DeviceRegistry) MarkUpdating(ctx context.Context, deviceID string) error {
	return r.signalStatus(ctx, deviceID, models.DeviceStatusUpdating)
}

// MarkError moves a device into error on behalf of the deployment system.
func (r *DeviceRegistry) MarkError(ctx context.Context, deviceID string) error {
	return r.signalStatus(ctx, deviceID, models.DeviceStatusError)
}

func (r *DeviceRegistry) signalStatus(ctx context.Context, deviceID string, to models.DeviceStatus) error {
	device, err := r.GetDevice(ctx, deviceID)
	if err != nil {
		return err
	}

	if device.Status == to {
		return nil
	}

	return r.TransitionStatus(ctx, deviceID, device.Status, to)
}

func (r *DeviceRegistry) ListStaleOnline(ctx context.Context, cutoff time.Time) ([]*models.Device, error) {
	return callValue(r, ctx, func(ctx context.Context) ([]*models.Device, error) {
		return r.store.ListStaleOnlineDevices(ctx, cutoff)
	})
}

func (r *DeviceRegistry) Snapshot(
	ctx context.Context, orgID string, dayStart, dayEnd time.Time, recentLimit int) (*models.DashboardSnapshot, error) {
	return callValue(r, ctx, func(ctx context.Context) (*models.DashboardSnapshot, error) {
		return r.store.GetOrganizationSnapshot(ctx, orgID, dayStart, dayEnd, recentLimit)
	})
}

// IsLive reports whether the device is inside the liveness window. This is
// the only liveness rule in the system; the reaper's stale cutoff is the
// exact complement.
func (r *DeviceRegistry) IsLive(device *models.Device, now time.Time) bool {
	if device == nil || device.LastSeen == nil {
		return false
	}

	return now.Sub(*device.LastSeen) < r.window
}

func (r *DeviceRegistry) LivenessWindow() time.Duration {
	return r.window
}

func (r *DeviceRegistry) invalidate(ctx context.Context, orgID string) {
	if r.invalidator != nil {
		r.invalidator.Invalidate(ctx, orgID)
	}
}

func (r *DeviceRegistry) invalidateForFleet(ctx context.Context, fleetID string) {
	if r.invalidator == nil {
		return
	}

	fleet, err := r.GetFleet(ctx, fleetID)
	if err != nil {
		r.logger.Warn().Err(err).Str("fleet_id", fleetID).Msg("Could not resolve organization for cache invalidation")
		return
	}

	r.invalidator.Invalidate(ctx, fleet.OrganizationID)
}

// call runs a storage operation under the registry's bounded timeout,
// translating a deadline hit into ErrStorageTimeout. Caller cancellation
// passes through untouched.
func (r *DeviceRegistry) call(ctx context.Context, fn func(context.Context) error) error {
	opCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	err := fn(opCtx)
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
		return ErrStorageTimeout
	}

	return err
}

func callValue[T any](r *DeviceRegistry, ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
	var result T

	err := r.call(ctx, func(opCtx context.Context) error {
		var innerErr error

		result, innerErr = fn(opCtx)

		return innerErr
	})

	return result, err
}
