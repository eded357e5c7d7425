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

// Package db implements fleet state storage over Postgres, with an
// in-memory fallback for single-node deployments and tests.
package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edgefleet/fleetstate/pkg/logger"
	"github.com/edgefleet/fleetstate/pkg/models"
)

const pgUniqueViolation = "23505"

// DB is the Postgres-backed Service implementation.
type DB struct {
	pool   *pgxpool.Pool
	logger logger.Logger
}

// New connects to Postgres and ensures the schema exists.
func New(ctx context.Context, cfg *models.DatabaseConfig, log logger.Logger) (*DB, error) {
	pool, err := NewPool(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	database := &DB{pool: pool, logger: log}

	if err := database.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return database, nil
}

// Close releases the connection pool.
func (db *DB) Close() error {
	db.pool.Close()
	return nil
}

const (
	insertOrganizationSQL = `
INSERT INTO organizations (id, name, slug, timezone)
VALUES ($1, $2, $3, $4)`

	selectOrganizationSQL = `
SELECT id, name, slug, timezone, created_at, updated_at
FROM organizations`

	deleteOrgDevicesSQL = `
DELETE FROM devices
WHERE fleet_id IN (SELECT id FROM fleets WHERE organization_id = $1)`

	deleteOrgFleetsSQL = `DELETE FROM fleets WHERE organization_id = $1`
	deleteOrgSQL       = `DELETE FROM organizations WHERE id = $1`
)

func (db *DB) CreateOrganization(ctx context.Context, org *models.Organization) error {
	if org == nil {
		return ErrOrganizationNil
	}

	timezone := org.Timezone
	if timezone == "" {
		timezone = "UTC"
	}

	_, err := db.pool.Exec(ctx, insertOrganizationSQL, org.ID, org.Name, org.Slug, timezone)
	if err != nil {
		return mapWriteError(err, "organization")
	}

	return nil
}

func (db *DB) GetOrganization(ctx context.Context, id string) (*models.Organization, error) {
	return db.scanOrganization(db.pool.QueryRow(ctx, selectOrganizationSQL+" WHERE id = $1", id))
}

func (db *DB) GetOrganizationBySlug(ctx context.Context, slug string) (*models.Organization, error) {
	return db.scanOrganization(db.pool.QueryRow(ctx, selectOrganizationSQL+" WHERE slug = $1", slug))
}

func (db *DB) ListOrganizations(ctx context.Context) ([]*models.Organization, error) {
	rows, err := db.pool.Query(ctx, selectOrganizationSQL+" ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToQuery, err)
	}
	defer rows.Close()

	orgs := make([]*models.Organization, 0)

	for rows.Next() {
		org := &models.Organization{}

		if err := rows.Scan(&org.ID, &org.Name, &org.Slug, &org.Timezone, &org.CreatedAt, &org.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFailedToScan, err)
		}

		orgs = append(orgs, org)
	}

	return orgs, rows.Err()
}

// DeleteOrganization removes the organization, its fleets, and their devices
// inside a single transaction.
func (db *DB) DeleteOrganization(ctx context.Context, id string) error {
	return db.withTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, deleteOrgDevicesSQL, id); err != nil {
			return fmt.Errorf("failed to delete organization devices: %w", err)
		}

		if _, err := tx.Exec(ctx, deleteOrgFleetsSQL, id); err != nil {
			return fmt.Errorf("failed to delete organization fleets: %w", err)
		}

		tag, err := tx.Exec(ctx, deleteOrgSQL, id)
		if err != nil {
			return fmt.Errorf("failed to delete organization: %w", err)
		}

		if tag.RowsAffected() == 0 {
			return ErrOrganizationNotFound
		}

		return nil
	})
}

const (
	insertFleetSQL = `
INSERT INTO fleets (id, organization_id, name, slug, description, device_type, application_name)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	selectFleetSQL = `
SELECT id, organization_id, name, slug, description, device_type, application_name, created_at, updated_at
FROM fleets`

	deleteFleetDevicesSQL = `DELETE FROM devices WHERE fleet_id = $1`
	deleteFleetSQL        = `DELETE FROM fleets WHERE id = $1`
)

func (db *DB) CreateFleet(ctx context.Context, fleet *models.Fleet) error {
	if fleet == nil {
		return ErrFleetNil
	}

	_, err := db.pool.Exec(ctx, insertFleetSQL,
		fleet.ID, fleet.OrganizationID, fleet.Name, fleet.Slug,
		fleet.Description, fleet.DeviceType, fleet.ApplicationName)
	if err != nil {
		return mapWriteError(err, "fleet")
	}

	return nil
}

func (db *DB) GetFleet(ctx context.Context, id string) (*models.Fleet, error) {
	return db.scanFleet(db.pool.QueryRow(ctx, selectFleetSQL+" WHERE id = $1", id))
}

func (db *DB) ListFleetsByOrganization(ctx context.Context, orgID string) ([]*models.Fleet, error) {
	rows, err := db.pool.Query(ctx, selectFleetSQL+" WHERE organization_id = $1 ORDER BY name", orgID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToQuery, err)
	}
	defer rows.Close()

	fleets := make([]*models.Fleet, 0)

	for rows.Next() {
		fleet := &models.Fleet{}

		if err := rows.Scan(&fleet.ID, &fleet.OrganizationID, &fleet.Name, &fleet.Slug,
			&fleet.Description, &fleet.DeviceType, &fleet.ApplicationName,
			&fleet.CreatedAt, &fleet.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFailedToScan, err)
		}

		fleets = append(fleets, fleet)
	}

	return fleets, rows.Err()
}

// DeleteFleet removes the fleet and its devices inside a single transaction.
func (db *DB) DeleteFleet(ctx context.Context, id string) error {
	return db.withTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, deleteFleetDevicesSQL, id); err != nil {
			return fmt.Errorf("failed to delete fleet devices: %w", err)
		}

		tag, err := tx.Exec(ctx, deleteFleetSQL, id)
		if err != nil {
			return fmt.Errorf("failed to delete fleet: %w", err)
		}

		if tag.RowsAffected() == 0 {
			return ErrFleetNotFound
		}

		return nil
	})
}

func (db *DB) withTx(ctx context.Context, fn func(pgx.Tx) error) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (db *DB) scanOrganization(row pgx.Row) (*models.Organization, error) {
	org := &models.Organization{}

	err := row.Scan(&org.ID, &org.Name, &org.Slug, &org.Timezone, &org.CreatedAt, &org.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrOrganizationNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToScan, err)
	}

	return org, nil
}

func (db *DB) scanFleet(row pgx.Row) (*models.Fleet, error) {
	fleet := &models.Fleet{}

	err := row.Scan(&fleet.ID, &fleet.OrganizationID, &fleet.Name, &fleet.Slug,
		&fleet.Description, &fleet.DeviceType, &fleet.ApplicationName,
		&fleet.CreatedAt, &fleet.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrFleetNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToScan, err)
	}

	return fleet, nil
}

func mapWriteError(err error, entity string) error {
	var pgErr *pgconn.PgError

	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		if entity == "device" {
			return ErrDuplicateDevice
		}

		return ErrDuplicateSlug
	}

	return fmt.Errorf("%w: %s: %w", ErrFailedToInsert, entity, err)
}
