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

// Package ingest turns inbound heartbeat reports into registry mutations.
package ingest

import (
	"context"
	"errors"
	"time"

	"github.com/edgefleet/fleetstate/pkg/db"
	"github.com/edgefleet/fleetstate/pkg/logger"
	"github.com/edgefleet/fleetstate/pkg/metricstore"
	"github.com/edgefleet/fleetstate/pkg/models"
	"github.com/edgefleet/fleetstate/pkg/registry"
)

// Ingestor validates heartbeat reports and applies them to the registry.
// Errors are per-report; one bad device never blocks the ingest path for
// others.
type Ingestor struct {
	registry     registry.Manager
	recorder     metricstore.Recorder
	logger       logger.Logger
	maxClockSkew time.Duration
	nowFn        func() time.Time
}

// NewIngestor creates an ingestor. recorder may be nil when no metrics sink
// is configured.
func NewIngestor(reg registry.Manager, recorder metricstore.Recorder, log logger.Logger, maxClockSkew time.Duration) *Ingestor {
	if maxClockSkew <= 0 {
		maxClockSkew = models.DefaultMaxClockSkew
	}

	if recorder == nil {
		recorder = metricstore.NopRecorder{}
	}

	return &Ingestor{
		registry:     reg,
		recorder:     recorder,
		logger:       log.WithComponent("ingest"),
		maxClockSkew: maxClockSkew,
		nowFn:        time.Now,
	}
}

// SetClock overrides the ingestor's wall clock. Test hook.
func (i *Ingestor) SetClock(nowFn func() time.Time) {
	i.nowFn = nowFn
}

// HandleReport applies one heartbeat: upsert last_seen and metrics, then
// promote the device to online when its current status allows it. Heartbeats
// never override an in-progress update.
func (i *Ingestor) HandleReport(ctx context.Context, report *models.HeartbeatReport) (*models.Device, error) {
	if err := i.validate(report); err != nil {
		return nil, err
	}

	device, err := i.registry.UpsertHeartbeat(ctx, report)
	if err != nil {
		switch {
		case errors.Is(err, db.ErrDeviceNotFound):
			return nil, ErrUnknownDevice
		case errors.Is(err, db.ErrStaleTimestamp):
			return nil, ErrOutOfOrder
		default:
			return nil, err
		}
	}

	if promoted := i.promote(ctx, device); promoted {
		device.Status = models.DeviceStatusOnline
	}

	if err := i.recorder.RecordDeviceMetrics(ctx, device, report.Timestamp); err != nil {
		i.logger.Warn().Err(err).Str("device_id", device.DeviceID).Msg("Failed to record device metrics")
	}

	return device, nil
}

func (i *Ingestor) validate(report *models.HeartbeatReport) error {
	if report == nil || report.DeviceID == "" {
		return ErrMissingDeviceID
	}

	if report.Timestamp.IsZero() {
		return ErrMissingTimestamp
	}

	if report.Timestamp.After(i.nowFn().Add(i.maxClockSkew)) {
		return ErrTimestampInFuture
	}

	return nil
}

// promote attempts the status transition to online for devices currently
// offline, provisioning, or error. A CAS conflict means a concurrent
// transition won; the read-then-CAS sequence is retried once, then the
// promotion is dropped. The next heartbeat reconciles.
func (i *Ingestor) promote(ctx context.Context, device *models.Device) bool {
	status := device.Status

	for attempt := 0; ; attempt++ {
		if !promotable(status) {
			return false
		}

		err := i.registry.TransitionStatus(ctx, device.DeviceID, status, models.DeviceStatusOnline)
		if err == nil {
			return true
		}

		if !errors.Is(err, db.ErrStatusConflict) {
			i.logger.Error().Err(err).Str("device_id", device.DeviceID).Msg("Status promotion failed")
			return false
		}

		if attempt >= 1 {
			break
		}

		current, readErr := i.registry.GetDevice(ctx, device.DeviceID)
		if readErr != nil {
			i.logger.Error().Err(readErr).Str("device_id", device.DeviceID).Msg("Re-read after CAS conflict failed")
			return false
		}

		status = current.Status
	}

	i.logger.Debug().Str("device_id", device.DeviceID).Msg("Dropping promotion after repeated CAS conflict")

	return false
}

func promotable(status models.DeviceStatus) bool {
	switch status {
	case models.DeviceStatusOffline, models.DeviceStatusProvisioning, models.DeviceStatusError:
		return true
	default:
		return false
	}
}
