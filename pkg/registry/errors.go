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

package registry

import "errors"

var (
	// ErrStorageTimeout reports that a storage call exceeded the registry's
	// bounded timeout. Callers retry with backoff; the registry never blocks
	// indefinitely.
	ErrStorageTimeout = errors.New("storage operation timed out")

	// Validation errors.

	ErrNameRequired           = errors.New("name is required")
	ErrInvalidSlug            = errors.New("slug must be lowercase alphanumeric with hyphens")
	ErrOrganizationIDRequired = errors.New("organization id is required")
	ErrFleetIDRequired        = errors.New("fleet id is required")
	ErrDeviceIDRequired       = errors.New("device id is required")
	ErrInvalidStatus          = errors.New("invalid device status")
)
