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

//go:generate mockgen -destination=mock_registry.go -package=registry github.com/edgefleet/fleetstate/pkg/registry Manager

package registry

import (
	"context"
	"time"

	"github.com/edgefleet/fleetstate/pkg/models"
)

// Manager is the authoritative interface over device, fleet, and
// organization state. Status only moves through TransitionStatus and the
// deployment-signal helpers, all compare-and-set, so concurrent ingest and
// reaping compose without lost updates.
type Manager interface {
	CreateOrganization(ctx context.Context, org *models.Organization) error
	GetOrganization(ctx context.Context, id string) (*models.Organization, error)
	GetOrganizationBySlug(ctx context.Context, slug string) (*models.Organization, error)
	ListOrganizations(ctx context.Context) ([]*models.Organization, error)
	DeleteOrganization(ctx context.Context, id string) error

	CreateFleet(ctx context.Context, fleet *models.Fleet) error
	GetFleet(ctx context.Context, id string) (*models.Fleet, error)
	ListFleets(ctx context.Context, orgID string) ([]*models.Fleet, error)
	DeleteFleet(ctx context.Context, id string) error

	// ProvisionDevice registers a device in status provisioning with no
	// last_seen. DeprovisionDevice is the only way a device leaves the
	// registry outside fleet deletion.
	ProvisionDevice(ctx context.Context, device *models.Device) error
	GetDevice(ctx context.Context, deviceID string) (*models.Device, error)
	ListDevicesByFleet(ctx context.Context, fleetID string) ([]*models.Device, error)
	DeprovisionDevice(ctx context.Context, deviceID string) error

	// UpsertHeartbeat applies a liveness report to the stored device row.
	// Monotonicity of last_seen is enforced by storage.
	UpsertHeartbeat(ctx context.Context, report *models.HeartbeatReport) (*models.Device, error)

	// TransitionStatus is the compare-and-set status change used by the
	// ingestor's promotion rule and the reaper's demotion rule.
	TransitionStatus(ctx context.Context, deviceID string, from, to models.DeviceStatus) error

	// Deployment-system signals. CAS-based like every other transition.
	MarkUpdating(ctx context.Context, deviceID string) error
	MarkError(ctx context.Context, deviceID string) error

	// ListStaleOnline returns online devices not seen since cutoff.
	ListStaleOnline(ctx context.Context, cutoff time.Time) ([]*models.Device, error)

	// Snapshot reads the dashboard counters and recent devices from one
	// consistent view of the device set.
	Snapshot(ctx context.Context, orgID string, dayStart, dayEnd time.Time, recentLimit int) (*models.DashboardSnapshot, error)

	// IsLive is the authoritative liveness rule: last_seen is set and
	// now-last_seen is inside the liveness window. The reaper derives its
	// cutoff from the same window, so the two can never diverge.
	IsLive(device *models.Device, now time.Time) bool

	// LivenessWindow returns the configured window.
	LivenessWindow() time.Duration
}
