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
	"fmt"
)

// Deletion order is enforced by the store inside one transaction, so the
// schema carries plain references without ON DELETE CASCADE.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS organizations (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		slug TEXT NOT NULL UNIQUE,
		timezone TEXT NOT NULL DEFAULT 'UTC',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS fleets (
		id TEXT PRIMARY KEY,
		organization_id TEXT NOT NULL REFERENCES organizations(id),
		name TEXT NOT NULL,
		slug TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		device_type TEXT NOT NULL DEFAULT '',
		application_name TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (organization_id, slug)
	)`,
	`CREATE TABLE IF NOT EXISTS devices (
		id TEXT PRIMARY KEY,
		fleet_id TEXT NOT NULL REFERENCES fleets(id),
		name TEXT NOT NULL,
		device_id TEXT NOT NULL UNIQUE,
		uuid TEXT NOT NULL UNIQUE,
		status TEXT NOT NULL DEFAULT 'provisioning',
		device_type TEXT NOT NULL DEFAULT '',
		os_version TEXT NOT NULL DEFAULT '',
		supervisor_version TEXT NOT NULL DEFAULT '',
		ip_address TEXT NOT NULL DEFAULT '',
		mac_address TEXT NOT NULL DEFAULT '',
		last_seen TIMESTAMPTZ,
		cpu_usage DOUBLE PRECISION,
		memory_usage DOUBLE PRECISION,
		storage_usage DOUBLE PRECISION,
		temperature DOUBLE PRECISION,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_devices_fleet ON devices (fleet_id)`,
	`CREATE INDEX IF NOT EXISTS idx_devices_status_last_seen ON devices (status, last_seen)`,
	`CREATE INDEX IF NOT EXISTS idx_fleets_org ON fleets (organization_id)`,
}

func (db *DB) migrate(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("%w: %w", ErrFailedToInit, err)
		}
	}

	return nil
}
