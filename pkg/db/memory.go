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

package db

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/edgefleet/fleetstate/pkg/models"
)

// MemoryStore is an in-memory Service implementation. It backs single-node
// deployments without Postgres and doubles as the storage fixture in tests.
// All operations take the store lock, so every mutation is linearized.
type MemoryStore struct {
	mu      sync.RWMutex
	orgs    map[string]*models.Organization // by org ID
	fleets  map[string]*models.Fleet        // by fleet ID
	devices map[string]*models.Device       // by external device_id
	nowFn   func() time.Time
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		orgs:    make(map[string]*models.Organization),
		fleets:  make(map[string]*models.Fleet),
		devices: make(map[string]*models.Device),
		nowFn:   time.Now,
	}
}

// SetClock overrides the store's wall clock. Test hook.
func (m *MemoryStore) SetClock(nowFn func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nowFn = nowFn
}

func (m *MemoryStore) CreateOrganization(_ context.Context, org *models.Organization) error {
	if org == nil {
		return ErrOrganizationNil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.orgs {
		if existing.Slug == org.Slug {
			return ErrDuplicateSlug
		}
	}

	now := m.nowFn()

	stored := *org
	stored.CreatedAt = now
	stored.UpdatedAt = now
	m.orgs[stored.ID] = &stored

	return nil
}

func (m *MemoryStore) GetOrganization(_ context.Context, id string) (*models.Organization, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	org, ok := m.orgs[id]
	if !ok {
		return nil, ErrOrganizationNotFound
	}

	cloned := *org

	return &cloned, nil
}

func (m *MemoryStore) GetOrganizationBySlug(_ context.Context, slug string) (*models.Organization, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, org := range m.orgs {
		if org.Slug == slug {
			cloned := *org
			return &cloned, nil
		}
	}

	return nil, ErrOrganizationNotFound
}

func (m *MemoryStore) ListOrganizations(_ context.Context) ([]*models.Organization, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	orgs := make([]*models.Organization, 0, len(m.orgs))

	for _, org := range m.orgs {
		cloned := *org
		orgs = append(orgs, &cloned)
	}

	sort.Slice(orgs, func(i, j int) bool { return orgs[i].Name < orgs[j].Name })

	return orgs, nil
}

func (m *MemoryStore) DeleteOrganization(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.orgs[id]; !ok {
		return ErrOrganizationNotFound
	}

	// Owned entities go with the owner, all under the same lock hold.
	for fleetID, fleet := range m.fleets {
		if fleet.OrganizationID != id {
			continue
		}

		m.deleteFleetDevicesLocked(fleetID)
		delete(m.fleets, fleetID)
	}

	delete(m.orgs, id)

	return nil
}

func (m *MemoryStore) CreateFleet(_ context.Context, fleet *models.Fleet) error {
	if fleet == nil {
		return ErrFleetNil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.orgs[fleet.OrganizationID]; !ok {
		return ErrOrganizationNotFound
	}

	for _, existing := range m.fleets {
		if existing.OrganizationID == fleet.OrganizationID && existing.Slug == fleet.Slug {
			return ErrDuplicateSlug
		}
	}

	now := m.nowFn()

	stored := *fleet
	stored.CreatedAt = now
	stored.UpdatedAt = now
	m.fleets[stored.ID] = &stored

	return nil
}

func (m *MemoryStore) GetFleet(_ context.Context, id string) (*models.Fleet, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	fleet, ok := m.fleets[id]
	if !ok {
		return nil, ErrFleetNotFound
	}

	cloned := *fleet

	return &cloned, nil
}

func (m *MemoryStore) ListFleetsByOrganization(_ context.Context, orgID string) ([]*models.Fleet, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	fleets := make([]*models.Fleet, 0)

	for _, fleet := range m.fleets {
		if fleet.OrganizationID == orgID {
			cloned := *fleet
			fleets = append(fleets, &cloned)
		}
	}

	sort.Slice(fleets, func(i, j int) bool { return fleets[i].Name < fleets[j].Name })

	return fleets, nil
}

func (m *MemoryStore) DeleteFleet(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.fleets[id]; !ok {
		return ErrFleetNotFound
	}

	m.deleteFleetDevicesLocked(id)
	delete(m.fleets, id)

	return nil
}

func (m *MemoryStore) deleteFleetDevicesLocked(fleetID string) {
	for deviceID, device := range m.devices {
		if device.FleetID == fleetID {
			delete(m.devices, deviceID)
		}
	}
}

func (m *MemoryStore) CreateDevice(_ context.Context, device *models.Device) error {
	if device == nil {
		return ErrDeviceNil
	}

	if device.DeviceID == "" {
		return ErrDeviceIDMissing
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.fleets[device.FleetID]; !ok {
		return ErrFleetNotFound
	}

	if _, ok := m.devices[device.DeviceID]; ok {
		return ErrDuplicateDevice
	}

	for _, existing := range m.devices {
		if existing.UUID == device.UUID {
			return ErrDuplicateDevice
		}
	}

	now := m.nowFn()

	stored := cloneDevice(device)
	stored.CreatedAt = now
	stored.UpdatedAt = now
	m.devices[stored.DeviceID] = stored

	return nil
}

func (m *MemoryStore) GetDevice(_ context.Context, deviceID string) (*models.Device, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	device, ok := m.devices[deviceID]
	if !ok {
		return nil, ErrDeviceNotFound
	}

	return cloneDevice(device), nil
}

func (m *MemoryStore) ListDevicesByFleet(_ context.Context, fleetID string) ([]*models.Device, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	devices := make([]*models.Device, 0)

	for _, device := range m.devices {
		if device.FleetID == fleetID {
			devices = append(devices, cloneDevice(device))
		}
	}

	sortDevicesByRecency(devices)

	return devices, nil
}

func (m *MemoryStore) DeleteDevice(_ context.Context, deviceID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.devices[deviceID]; !ok {
		return ErrDeviceNotFound
	}

	delete(m.devices, deviceID)

	return nil
}

func (m *MemoryStore) UpdateDeviceHeartbeat(_ context.Context, report *models.HeartbeatReport) (*models.Device, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	device, ok := m.devices[report.DeviceID]
	if !ok {
		return nil, ErrDeviceNotFound
	}

	if device.LastSeen != nil && !report.Timestamp.After(*device.LastSeen) {
		return nil, ErrStaleTimestamp
	}

	ts := report.Timestamp
	device.LastSeen = &ts

	applyMetrics(device, &report.Metrics)

	if report.IPAddress != "" {
		device.IPAddress = report.IPAddress
	}

	if report.OSVersion != "" {
		device.OSVersion = report.OSVersion
	}

	if report.SupervisorVersion != "" {
		device.SupervisorVersion = report.SupervisorVersion
	}

	device.UpdatedAt = m.nowFn()

	return cloneDevice(device), nil
}

func (m *MemoryStore) CompareAndSetDeviceStatus(
	_ context.Context, deviceID string, from, to models.DeviceStatus, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	device, ok := m.devices[deviceID]
	if !ok {
		return ErrDeviceNotFound
	}

	if device.Status != from {
		return ErrStatusConflict
	}

	device.Status = to
	device.UpdatedAt = now

	return nil
}

func (m *MemoryStore) ListStaleOnlineDevices(_ context.Context, cutoff time.Time) ([]*models.Device, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stale := make([]*models.Device, 0)

	for _, device := range m.devices {
		if device.Status != models.DeviceStatusOnline {
			continue
		}

		if device.LastSeen == nil || !device.LastSeen.After(cutoff) {
			stale = append(stale, cloneDevice(device))
		}
	}

	return stale, nil
}

func (m *MemoryStore) GetOrganizationSnapshot(
	_ context.Context, orgID string, dayStart, dayEnd time.Time, recentLimit int) (*models.DashboardSnapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, ok := m.orgs[orgID]; !ok {
		return nil, ErrOrganizationNotFound
	}

	fleetNames := make(map[string]string)

	for _, fleet := range m.fleets {
		if fleet.OrganizationID == orgID {
			fleetNames[fleet.ID] = fleet.Name
		}
	}

	snapshot := &models.DashboardSnapshot{
		OrganizationID: orgID,
		Stats:          models.OrgStats{TotalFleets: len(fleetNames)},
	}

	orgDevices := make([]*models.Device, 0)

	for _, device := range m.devices {
		if _, ok := fleetNames[device.FleetID]; !ok {
			continue
		}

		countDevice(&snapshot.Stats, device, dayStart, dayEnd)
		orgDevices = append(orgDevices, cloneDevice(device))
	}

	sortDevicesByRecency(orgDevices)

	if recentLimit > 0 && len(orgDevices) > recentLimit {
		orgDevices = orgDevices[:recentLimit]
	}

	snapshot.RecentDevices = make([]models.RecentDevice, 0, len(orgDevices))

	for _, device := range orgDevices {
		snapshot.RecentDevices = append(snapshot.RecentDevices, models.RecentDevice{
			Device:    device,
			FleetName: fleetNames[device.FleetID],
		})
	}

	return snapshot, nil
}

func (*MemoryStore) Close() error { return nil }

func countDevice(stats *models.OrgStats, device *models.Device, dayStart, dayEnd time.Time) {
	stats.TotalDevices++

	switch device.Status {
	case models.DeviceStatusOnline:
		stats.OnlineDevices++
	case models.DeviceStatusOffline:
		stats.OfflineDevices++
	case models.DeviceStatusUpdating:
		stats.UpdatingDevices++
	case models.DeviceStatusProvisioning:
		stats.ProvisioningDevices++
	case models.DeviceStatusError:
		stats.ErrorDevices++
	}

	if device.Status == models.DeviceStatusOnline &&
		!device.UpdatedAt.Before(dayStart) && device.UpdatedAt.Before(dayEnd) {
		stats.UpdatesToday++
	}
}

// sortDevicesByRecency orders by last_seen descending with nulls last,
// breaking ties by name ascending. Matches the Postgres ordering so
// pagination stays stable across backends.
func sortDevicesByRecency(devices []*models.Device) {
	sort.Slice(devices, func(i, j int) bool {
		a, b := devices[i], devices[j]

		switch {
		case a.LastSeen == nil && b.LastSeen == nil:
			return strings.Compare(a.Name, b.Name) < 0
		case a.LastSeen == nil:
			return false
		case b.LastSeen == nil:
			return true
		case a.LastSeen.Equal(*b.LastSeen):
			return strings.Compare(a.Name, b.Name) < 0
		default:
			return a.LastSeen.After(*b.LastSeen)
		}
	})
}

func applyMetrics(device *models.Device, metrics *models.HardwareMetrics) {
	if metrics.CPUUsage != nil {
		device.CPUUsage = cloneFloat(metrics.CPUUsage)
	}

	if metrics.MemoryUsage != nil {
		device.MemoryUsage = cloneFloat(metrics.MemoryUsage)
	}

	if metrics.StorageUsage != nil {
		device.StorageUsage = cloneFloat(metrics.StorageUsage)
	}

	if metrics.Temperature != nil {
		device.Temperature = cloneFloat(metrics.Temperature)
	}
}

func cloneDevice(device *models.Device) *models.Device {
	cloned := *device

	if device.LastSeen != nil {
		ts := *device.LastSeen
		cloned.LastSeen = &ts
	}

	cloned.CPUUsage = cloneFloat(device.CPUUsage)
	cloned.MemoryUsage = cloneFloat(device.MemoryUsage)
	cloned.StorageUsage = cloneFloat(device.StorageUsage)
	cloned.Temperature = cloneFloat(device.Temperature)

	return &cloned
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}

	cloned := *v

	return &cloned
}
