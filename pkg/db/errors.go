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

import "errors"

var (

	// Lookup errors.

	ErrOrganizationNotFound = errors.New("organization not found")
	ErrFleetNotFound        = errors.New("fleet not found")
	ErrDeviceNotFound       = errors.New("device not found")

	// Write conflicts.

	ErrStatusConflict  = errors.New("device status conflict")
	ErrStaleTimestamp  = errors.New("heartbeat timestamp is not newer than stored last_seen")
	ErrDuplicateSlug   = errors.New("slug already in use")
	ErrDuplicateDevice = errors.New("device id or uuid already registered")

	// Validation errors.

	ErrOrganizationNil = errors.New("organization is nil")
	ErrFleetNil        = errors.New("fleet is nil")
	ErrDeviceNil       = errors.New("device is nil")
	ErrDeviceIDMissing = errors.New("device id is required")

	// Operation errors.

	ErrFailedToScan   = errors.New("failed to scan")
	ErrFailedToQuery  = errors.New("failed to query")
	ErrFailedToInsert = errors.New("failed to insert")
	ErrFailedToInit   = errors.New("failed to initialize schema")
	ErrFailedOpenDB   = errors.New("failed to open database")
)
