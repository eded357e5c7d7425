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

const deviceColumns = `
id, fleet_id, name, device_id, uuid, status, device_type,
os_version, supervisor_version, ip_address, mac_address, last_seen,
cpu_usage, memory_usage, storage_usage, temperature, created_at, updated_at`

const (
	insertDeviceSQL = `
INSERT INTO devices (
	id, fleet_id, name, device_id, uuid, status, device_type,
	os_version, supervisor_version, ip_address, mac_address
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	selectDeviceSQL = `SELECT ` + deviceColumns + ` FROM devices WHERE device_id = $1`

	listDevicesByFleetSQL = `
SELECT ` + deviceColumns + `
FROM devices
WHERE fleet_id = $1
ORDER BY last_seen DESC NULLS LAST, name ASC`

	deleteDeviceSQL = `DELETE FROM devices WHERE device_id = $1`

	// last_seen must be strictly newer than the stored value. The guard makes
	// replayed and reordered heartbeats no-ops at the storage layer.
	updateHeartbeatSQL = `
UPDATE devices SET
	last_seen = $2,
	cpu_usage = COALESCE($3, cpu_usage),
	memory_usage = COALESCE($4, memory_usage),
	storage_usage = COALESCE($5, storage_usage),
	temperature = COALESCE($6, temperature),
	ip_address = COALESCE(NULLIF($7, ''), ip_address),
	os_version = COALESCE(NULLIF($8, ''), os_version),
	supervisor_version = COALESCE(NULLIF($9, ''), supervisor_version),
	updated_at = now()
WHERE device_id = $1 AND (last_seen IS NULL OR last_seen < $2)
RETURNING ` + deviceColumns

	casStatusSQL = `
UPDATE devices SET status = $3, updated_at = $4
WHERE device_id = $1 AND status = $2`

	deviceExistsSQL = `SELECT 1 FROM devices WHERE device_id = $1`

	listStaleOnlineSQL = `
SELECT ` + deviceColumns + `
FROM devices
WHERE status = 'online' AND (last_seen IS NULL OR last_seen <= $1)`
)

func (db *DB) CreateDevice(ctx context.Context, device *models.Device) error {
	if device == nil {
		return ErrDeviceNil
	}

	if device.DeviceID == "" {
		return ErrDeviceIDMissing
	}

	status := device.Status
	if status == "" {
		status = models.DeviceStatusProvisioning
	}

	_, err := db.pool.Exec(ctx, insertDeviceSQL,
		device.ID, device.FleetID, device.Name, device.DeviceID, device.UUID,
		status, device.DeviceType, device.OSVersion, device.SupervisorVersion,
		device.IPAddress, device.MACAddress)
	if err != nil {
		return mapWriteError(err, "device")
	}

	return nil
}

func (db *DB) GetDevice(ctx context.Context, deviceID string) (*models.Device, error) {
	return scanDevice(db.pool.QueryRow(ctx, selectDeviceSQL, deviceID))
}

func (db *DB) ListDevicesByFleet(ctx context.Context, fleetID string) ([]*models.Device, error) {
	rows, err := db.pool.Query(ctx, listDevicesByFleetSQL, fleetID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToQuery, err)
	}
	defer rows.Close()

	return collectDevices(rows)
}

func (db *DB) DeleteDevice(ctx context.Context, deviceID string) error {
	tag, err := db.pool.Exec(ctx, deleteDeviceSQL, deviceID)
	if err != nil {
		return fmt.Errorf("failed to delete device: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrDeviceNotFound
	}

	return nil
}

func (db *DB) UpdateDeviceHeartbeat(ctx context.Context, report *models.HeartbeatReport) (*models.Device, error) {
	row := db.pool.QueryRow(ctx, updateHeartbeatSQL,
		report.DeviceID, report.Timestamp,
		report.Metrics.CPUUsage, report.Metrics.MemoryUsage,
		report.Metrics.StorageUsage, report.Metrics.Temperature,
		report.IPAddress, report.OSVersion, report.SupervisorVersion)

	device, err := scanDevice(row)
	if err == nil {
		return device, nil
	}

	if !errors.Is(err, ErrDeviceNotFound) {
		return nil, err
	}

	// The guarded update matched nothing: either the device is unknown or
	// the report is out of order. Tell them apart for the caller.
	var exists int
	if lookupErr := db.pool.QueryRow(ctx, deviceExistsSQL, report.DeviceID).Scan(&exists); lookupErr != nil {
		if errors.Is(lookupErr, pgx.ErrNoRows) {
			return nil, ErrDeviceNotFound
		}

		return nil, fmt.Errorf("%w: %w", ErrFailedToQuery, lookupErr)
	}

	return nil, ErrStaleTimestamp
}

func (db *DB) CompareAndSetDeviceStatus(
	ctx context.Context, deviceID string, from, to models.DeviceStatus, now time.Time) error {
	tag, err := db.pool.Exec(ctx, casStatusSQL, deviceID, from, to, now)
	if err != nil {
		return fmt.Errorf("failed to update device status: %w", err)
	}

	if tag.RowsAffected() > 0 {
		return nil
	}

	var exists int
	if lookupErr := db.pool.QueryRow(ctx, deviceExistsSQL, deviceID).Scan(&exists); lookupErr != nil {
		if errors.Is(lookupErr, pgx.ErrNoRows) {
			return ErrDeviceNotFound
		}

		return fmt.Errorf("%w: %w", ErrFailedToQuery, lookupErr)
	}

	return ErrStatusConflict
}

func (db *DB) ListStaleOnlineDevices(ctx context.Context, cutoff time.Time) ([]*models.Device, error) {
	rows, err := db.pool.Query(ctx, listStaleOnlineSQL, cutoff)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToQuery, err)
	}
	defer rows.Close()

	return collectDevices(rows)
}

func scanDevice(row pgx.Row) (*models.Device, error) {
	device := &models.Device{}

	err := row.Scan(&device.ID, &device.FleetID, &device.Name, &device.DeviceID,
		&device.UUID, &device.Status, &device.DeviceType, &device.OSVersion,
		&device.SupervisorVersion, &device.IPAddress, &device.MACAddress,
		&device.LastSeen, &device.CPUUsage, &device.MemoryUsage,
		&device.StorageUsage, &device.Temperature, &device.CreatedAt, &device.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrDeviceNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToScan, err)
	}

	return device, nil
}

func collectDevices(rows pgx.Rows) ([]*models.Device, error) {
	devices := make([]*models.Device, 0)

	for rows.Next() {
		device, err := scanDevice(rows)
		if err != nil {
			return nil, err
		}

		devices = append(devices, device)
	}

	return devices, rows.Err()
}
