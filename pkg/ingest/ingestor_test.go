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

package ingest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/edgefleet/fleetstate/pkg/db"
	"github.com/edgefleet/fleetstate/pkg/logger"
	"github.com/edgefleet/fleetstate/pkg/models"
	"github.com/edgefleet/fleetstate/pkg/registry"
)

var testNow = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

type capturingRecorder struct {
	devices []string
	err     error
}

func (r *capturingRecorder) RecordDeviceMetrics(_ context.Context, device *models.Device, _ time.Time) error {
	r.devices = append(r.devices, device.DeviceID)
	return r.err
}

func (r *capturingRecorder) Close() {}

func newTestIngestor(t *testing.T) (*Ingestor, *registry.MockManager) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockReg := registry.NewMockManager(ctrl)

	ingestor := NewIngestor(mockReg, nil, logger.NewTestLogger(), 5*time.Minute)
	ingestor.SetClock(func() time.Time { return testNow })

	return ingestor, mockReg
}

func validReport() *models.HeartbeatReport {
	return &models.HeartbeatReport{
		DeviceID:  "dev-1",
		Timestamp: testNow,
	}
}

func TestHandleReportValidation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		report   *models.HeartbeatReport
		expected error
	}{
		{"nil_report", nil, ErrMissingDeviceID},
		{"missing_device_id", &models.HeartbeatReport{Timestamp: testNow}, ErrMissingDeviceID},
		{"zero_timestamp", &models.HeartbeatReport{DeviceID: "dev-1"}, ErrMissingTimestamp},
		{
			"timestamp_beyond_clock_skew",
			&models.HeartbeatReport{DeviceID: "dev-1", Timestamp: testNow.Add(6 * time.Minute)},
			ErrTimestampInFuture,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ingestor, _ := newTestIngestor(t)

			_, err := ingestor.HandleReport(ctx, tc.report)
			assert.ErrorIs(t, err, tc.expected)
			assert.ErrorIs(t, err, ErrInvalidReport)
		})
	}

	t.Run("timestamp_within_clock_skew_accepted", func(t *testing.T) {
		ingestor, mockReg := newTestIngestor(t)

		report := &models.HeartbeatReport{DeviceID: "dev-1", Timestamp: testNow.Add(4 * time.Minute)}
		mockReg.EXPECT().UpsertHeartbeat(gomock.Any(), report).
			Return(&models.Device{DeviceID: "dev-1", Status: models.DeviceStatusOnline}, nil)

		_, err := ingestor.HandleReport(ctx, report)
		require.NoError(t, err)
	})
}

func TestHandleReportErrorMapping(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown_device", func(t *testing.T) {
		ingestor, mockReg := newTestIngestor(t)
		mockReg.EXPECT().UpsertHeartbeat(gomock.Any(), gomock.Any()).
			Return(nil, db.ErrDeviceNotFound)

		_, err := ingestor.HandleReport(ctx, validReport())
		assert.ErrorIs(t, err, ErrUnknownDevice)
	})

	t.Run("stale_timestamp_is_out_of_order", func(t *testing.T) {
		ingestor, mockReg := newTestIngestor(t)
		mockReg.EXPECT().UpsertHeartbeat(gomock.Any(), gomock.Any()).
			Return(nil, db.ErrStaleTimestamp)

		_, err := ingestor.HandleReport(ctx, validReport())
		assert.ErrorIs(t, err, ErrOutOfOrder)
		assert.ErrorIs(t, err, ErrInvalidReport)
	})

	t.Run("storage_timeout_passes_through", func(t *testing.T) {
		ingestor, mockReg := newTestIngestor(t)
		mockReg.EXPECT().UpsertHeartbeat(gomock.Any(), gomock.Any()).
			Return(nil, registry.ErrStorageTimeout)

		_, err := ingestor.HandleReport(ctx, validReport())
		assert.ErrorIs(t, err, registry.ErrStorageTimeout)
		assert.NotErrorIs(t, err, ErrInvalidReport)
	})
}

func TestHandleReportPromotion(t *testing.T) {
	ctx := context.Background()

	t.Run("promotes_offline_to_online", func(t *testing.T) {
		ingestor, mockReg := newTestIngestor(t)
		mockReg.EXPECT().UpsertHeartbeat(gomock.Any(), gomock.Any()).
			Return(&models.Device{DeviceID: "dev-1", Status: models.DeviceStatusOffline}, nil)
		mockReg.EXPECT().TransitionStatus(gomock.Any(), "dev-1",
			models.DeviceStatusOffline, models.DeviceStatusOnline).
			Return(nil)

		device, err := ingestor.HandleReport(ctx, validReport())
		require.NoError(t, err)
		assert.Equal(t, models.DeviceStatusOnline, device.Status)
	})

	t.Run("promotes_provisioning_and_error", func(t *testing.T) {
		for _, from := range []models.DeviceStatus{models.DeviceStatusProvisioning, models.DeviceStatusError} {
			ingestor, mockReg := newTestIngestor(t)
			mockReg.EXPECT().UpsertHeartbeat(gomock.Any(), gomock.Any()).
				Return(&models.Device{DeviceID: "dev-1", Status: from}, nil)
			mockReg.EXPECT().TransitionStatus(gomock.Any(), "dev-1", from, models.DeviceStatusOnline).
				Return(nil)

			device, err := ingestor.HandleReport(ctx, validReport())
			require.NoError(t, err)
			assert.Equal(t, models.DeviceStatusOnline, device.Status)
		}
	})

	t.Run("online_and_updating_untouched", func(t *testing.T) {
		for _, status := range []models.DeviceStatus{models.DeviceStatusOnline, models.DeviceStatusUpdating} {
			ingestor, mockReg := newTestIngestor(t)
			mockReg.EXPECT().UpsertHeartbeat(gomock.Any(), gomock.Any()).
				Return(&models.Device{DeviceID: "dev-1", Status: status}, nil)

			device, err := ingestor.HandleReport(ctx, validReport())
			require.NoError(t, err)
			assert.Equal(t, status, device.Status)
		}
	})

	t.Run("retries_once_after_cas_conflict", func(t *testing.T) {
		ingestor, mockReg := newTestIngestor(t)
		mockReg.EXPECT().UpsertHeartbeat(gomock.Any(), gomock.Any()).
			Return(&models.Device{DeviceID: "dev-1", Status: models.DeviceStatusOffline}, nil)

		// First CAS loses to a concurrent error transition; the re-read
		// picks up the new status and the retry succeeds.
		gomock.InOrder(
			mockReg.EXPECT().TransitionStatus(gomock.Any(), "dev-1",
				models.DeviceStatusOffline, models.DeviceStatusOnline).
				Return(db.ErrStatusConflict),
			mockReg.EXPECT().GetDevice(gomock.Any(), "dev-1").
				Return(&models.Device{DeviceID: "dev-1", Status: models.DeviceStatusError}, nil),
			mockReg.EXPECT().TransitionStatus(gomock.Any(), "dev-1",
				models.DeviceStatusError, models.DeviceStatusOnline).
				Return(nil),
		)

		device, err := ingestor.HandleReport(ctx, validReport())
		require.NoError(t, err)
		assert.Equal(t, models.DeviceStatusOnline, device.Status)
	})

	t.Run("drops_promotion_after_second_conflict", func(t *testing.T) {
		ingestor, mockReg := newTestIngestor(t)
		mockReg.EXPECT().UpsertHeartbeat(gomock.Any(), gomock.Any()).
			Return(&models.Device{DeviceID: "dev-1", Status: models.DeviceStatusOffline}, nil)

		gomock.InOrder(
			mockReg.EXPECT().TransitionStatus(gomock.Any(), "dev-1",
				models.DeviceStatusOffline, models.DeviceStatusOnline).
				Return(db.ErrStatusConflict),
			mockReg.EXPECT().GetDevice(gomock.Any(), "dev-1").
				Return(&models.Device{DeviceID: "dev-1", Status: models.DeviceStatusOffline}, nil),
			mockReg.EXPECT().TransitionStatus(gomock.Any(), "dev-1",
				models.DeviceStatusOffline, models.DeviceStatusOnline).
				Return(db.ErrStatusConflict),
		)

		device, err := ingestor.HandleReport(ctx, validReport())
		require.NoError(t, err)
		assert.Equal(t, models.DeviceStatusOffline, device.Status)
	})

	t.Run("no_promotion_when_concurrent_update_starts", func(t *testing.T) {
		ingestor, mockReg := newTestIngestor(t)
		mockReg.EXPECT().UpsertHeartbeat(gomock.Any(), gomock.Any()).
			Return(&models.Device{DeviceID: "dev-1", Status: models.DeviceStatusOffline}, nil)

		gomock.InOrder(
			mockReg.EXPECT().TransitionStatus(gomock.Any(), "dev-1",
				models.DeviceStatusOffline, models.DeviceStatusOnline).
				Return(db.ErrStatusConflict),
			mockReg.EXPECT().GetDevice(gomock.Any(), "dev-1").
				Return(&models.Device{DeviceID: "dev-1", Status: models.DeviceStatusUpdating}, nil),
		)

		device, err := ingestor.HandleReport(ctx, validReport())
		require.NoError(t, err)
		assert.Equal(t, models.DeviceStatusOffline, device.Status)
	})
}

func TestHandleReportMetricsRecording(t *testing.T) {
	ctx := context.Background()

	t.Run("records_after_successful_upsert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockReg := registry.NewMockManager(ctrl)
		recorder := &capturingRecorder{}

		ingestor := NewIngestor(mockReg, recorder, logger.NewTestLogger(), 0)
		ingestor.SetClock(func() time.Time { return testNow })

		mockReg.EXPECT().UpsertHeartbeat(gomock.Any(), gomock.Any()).
			Return(&models.Device{DeviceID: "dev-1", Status: models.DeviceStatusOnline}, nil)

		_, err := ingestor.HandleReport(ctx, validReport())
		require.NoError(t, err)
		assert.Equal(t, []string{"dev-1"}, recorder.devices)
	})

	t.Run("recorder_failure_never_fails_ingestion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockReg := registry.NewMockManager(ctrl)
		recorder := &capturingRecorder{err: errors.New("influx down")}

		ingestor := NewIngestor(mockReg, recorder, logger.NewTestLogger(), 0)
		ingestor.SetClock(func() time.Time { return testNow })

		mockReg.EXPECT().UpsertHeartbeat(gomock.Any(), gomock.Any()).
			Return(&models.Device{DeviceID: "dev-1", Status: models.DeviceStatusOnline}, nil)

		_, err := ingestor.HandleReport(ctx, validReport())
		assert.NoError(t, err)
	})

	t.Run("no_recording_on_rejected_report", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockReg := registry.NewMockManager(ctrl)
		recorder := &capturingRecorder{}

		ingestor := NewIngestor(mockReg, recorder, logger.NewTestLogger(), 0)
		ingestor.SetClock(func() time.Time { return testNow })

		mockReg.EXPECT().UpsertHeartbeat(gomock.Any(), gomock.Any()).
			Return(nil, db.ErrStaleTimestamp)

		_, err := ingestor.HandleReport(ctx, validReport())
		require.Error(t, err)
		assert.Empty(t, recorder.devices)
	})
}
