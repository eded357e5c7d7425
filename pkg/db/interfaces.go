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

//go:generate mockgen -destination=mock_db.go -package=db github.com/edgefleet/fleetstate/pkg/db Service

package db

import (
	"context"
	"time"

	"github.com/edgefleet/fleetstate/pkg/models"
)

// Service is the storage contract for fleet state. It is the only layer
// permitted to mutate device rows; callers go through the registry, which
// composes these operations into the liveness contract.
//
// Every mutation updates the row's updated_at and is visible to subsequent
// reads immediately.
type Service interface {
	// Organizations. DeleteOrganization removes the organization together
	// with its fleets and devices in one transaction.
	CreateOrganization(ctx context.Context, org *models.Organization) error
	GetOrganization(ctx context.Context, id string) (*models.Organization, error)
	GetOrganizationBySlug(ctx context.Context, slug string) (*models.Organization, error)
	ListOrganizations(ctx context.Context) ([]*models.Organization, error)
	DeleteOrganization(ctx context.Context, id string) error

	// Fleets. DeleteFleet removes the fleet and its devices in one
	// transaction.
	CreateFleet(ctx context.Context, fleet *models.Fleet) error
	GetFleet(ctx context.Context, id string) (*models.Fleet, error)
	ListFleetsByOrganization(ctx context.Context, orgID string) ([]*models.Fleet, error)
	DeleteFleet(ctx context.Context, id string) error

	// Devices are keyed by their external device_id.
	CreateDevice(ctx context.Context, device *models.Device) error
	GetDevice(ctx context.Context, deviceID string) (*models.Device, error)
	ListDevicesByFleet(ctx context.Context, fleetID string) ([]*models.Device, error)
	DeleteDevice(ctx context.Context, deviceID string) error

	// UpdateDeviceHeartbeat applies a heartbeat's last_seen and metric
	// snapshot in one conditional write. The write only succeeds when the
	// report timestamp is strictly newer than the stored last_seen, keeping
	// last_seen monotonically non-decreasing per device; otherwise it fails
	// with ErrStaleTimestamp and mutates nothing.
	UpdateDeviceHeartbeat(ctx context.Context, report *models.HeartbeatReport) (*models.Device, error)

	// CompareAndSetDeviceStatus transitions a device's status only when the
	// current status equals from; a mismatch fails with ErrStatusConflict.
	CompareAndSetDeviceStatus(ctx context.Context, deviceID string, from, to models.DeviceStatus, now time.Time) error

	// ListStaleOnlineDevices returns online devices whose last_seen is at or
	// before cutoff (or never set).
	ListStaleOnlineDevices(ctx context.Context, cutoff time.Time) ([]*models.Device, error)

	// GetOrganizationSnapshot computes the dashboard counters and the
	// recent-device list from a single consistent view of the device set.
	// UpdatesToday counts online devices whose updated_at falls in
	// [dayStart, dayEnd).
	GetOrganizationSnapshot(ctx context.Context, orgID string, dayStart, dayEnd time.Time, recentLimit int) (*models.DashboardSnapshot, error)

	Close() error
}
