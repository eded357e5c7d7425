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

// Package metricstore records device hardware metrics as time series.
package metricstore

import (
	"context"
	"time"

	"github.com/edgefleet/fleetstate/pkg/models"
)

// Recorder persists one hardware metric sample per heartbeat. Recording is
// best-effort from the ingest path's point of view: a failed write is
// logged, never surfaced to the device.
type Recorder interface {
	RecordDeviceMetrics(ctx context.Context, device *models.Device, ts time.Time) error
	Close()
}

// NopRecorder discards all samples. Used when no metrics sink is configured.
type NopRecorder struct{}

func (NopRecorder) RecordDeviceMetrics(_ context.Context, _ *models.Device, _ time.Time) error {
	return nil
}

func (NopRecorder) Close() {}
