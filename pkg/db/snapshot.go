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
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/edgefleet/fleetstate/pkg/models"
)

const (
	snapshotStatusCountsSQL = `
SELECT d.status, COUNT(*)
FROM devices d
JOIN fleets f ON d.fleet_id = f.id
WHERE f.organization_id = $1
GROUP BY d.status`

	snapshotFleetCountSQL = `SELECT COUNT(*) FROM fleets WHERE organization_id = $1`

	snapshotUpdatesTodaySQL = `
SELECT COUNT(*)
FROM devices d
JOIN fleets f ON d.fleet_id = f.id
WHERE f.organization_id = $1
  AND d.status = 'online'
  AND d.updated_at >= $2
  AND d.updated_at < $3`

	snapshotRecentDevicesSQL = `
SELECT ` + deviceColumnsQualified + `, f.name
FROM devices d
JOIN fleets f ON d.fleet_id = f.id
WHERE f.organization_id = $1
ORDER BY d.last_seen DESC NULLS LAST, d.name ASC
LIMIT $2`

	snapshotOrgExistsSQL = `SELECT 1 FROM organizations WHERE id = $1`
)

const deviceColumnsQualified = `
d.id, d.fleet_id, d.name, d.device_id, d.uuid, d.status, d.device_type,
d.os_version, d.supervisor_version, d.ip_address, d.mac_address, d.last_seen,
d.cpu_usage, d.memory_usage, d.storage_usage, d.temperature, d.created_at, d.updated_at`

// GetOrganizationSnapshot runs all dashboard reads inside one REPEATABLE
// READ read-only transaction so the counts and the recent-device list come
// from the same snapshot of the device set.
func (db *DB) GetOrganizationSnapshot(
	ctx context.Context, orgID string, dayStart, dayEnd time.Time, recentLimit int) (*models.DashboardSnapshot, error) {
	tx, err := db.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}

	defer func() { _ = tx.Rollback(ctx) }()

	var exists int
	if err := tx.QueryRow(ctx, snapshotOrgExistsSQL, orgID).Scan(&exists); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrganizationNotFound
		}

		return nil, fmt.Errorf("%w: %w", ErrFailedToQuery, err)
	}

	snapshot := &models.DashboardSnapshot{OrganizationID: orgID}

	if err := db.snapshotCounts(ctx, tx, orgID, &snapshot.Stats); err != nil {
		return nil, err
	}

	if err := tx.QueryRow(ctx, snapshotFleetCountSQL, orgID).Scan(&snapshot.Stats.TotalFleets); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToQuery, err)
	}

	if err := tx.QueryRow(ctx, snapshotUpdatesTodaySQL, orgID, dayStart, dayEnd).
		Scan(&snapshot.Stats.UpdatesToday); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToQuery, err)
	}

	recent, err := db.snapshotRecentDevices(ctx, tx, orgID, recentLimit)
	if err != nil {
		return nil, err
	}

	snapshot.RecentDevices = recent

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit snapshot transaction: %w", err)
	}

	return snapshot, nil
}

func (db *DB) snapshotCounts(ctx context.Context, tx pgx.Tx, orgID string, stats *models.OrgStats) error {
	rows, err := tx.Query(ctx, snapshotStatusCountsSQL, orgID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			status models.DeviceStatus
			count  int
		)

		if err := rows.Scan(&status, &count); err != nil {
			return fmt.Errorf("%w: %w", ErrFailedToScan, err)
		}

		stats.TotalDevices += count

		switch status {
		case models.DeviceStatusOnline:
			stats.OnlineDevices = count
		case models.DeviceStatusOffline:
			stats.OfflineDevices = count
		case models.DeviceStatusUpdating:
			stats.UpdatingDevices = count
		case models.DeviceStatusProvisioning:
			stats.ProvisioningDevices = count
		case models.DeviceStatusError:
			stats.ErrorDevices = count
		}
	}

	return rows.Err()
}

func (db *DB) snapshotRecentDevices(
	ctx context.Context, tx pgx.Tx, orgID string, limit int) ([]models.RecentDevice, error) {
	rows, err := tx.Query(ctx, snapshotRecentDevicesSQL, orgID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToQuery, err)
	}
	defer rows.Close()

	recent := make([]models.RecentDevice, 0, limit)

	for rows.Next() {
		device := &models.Device{}

		var fleetName string

		if err := rows.Scan(&device.ID, &device.FleetID, &device.Name, &device.DeviceID,
			&device.UUID, &device.Status, &device.DeviceType, &device.OSVersion,
			&device.SupervisorVersion, &device.IPAddress, &device.MACAddress,
			&device.LastSeen, &device.CPUUsage, &device.MemoryUsage,
			&device.StorageUsage, &device.Temperature, &device.CreatedAt,
			&device.UpdatedAt, &fleetName); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFailedToScan, err)
		}

		recent = append(recent, models.RecentDevice{Device: device, FleetName: fleetName})
	}

	return recent, rows.Err()
}
