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
)

func newTestRegistry(t *testing.T) (*DeviceRegistry, *db.MockService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockDB := db.NewMockService(ctrl)
	reg := NewDeviceRegistry(mockDB, logger.NewTestLogger(), 300*time.Second, 5*time.Second)

	return reg, mockDB
}

func TestCreateOrganizationValidation(t *testing.T) {
	ctx := context.Background()

	t.Run("missing_name", func(t *testing.T) {
		reg, _ := newTestRegistry(t)

		err := reg.CreateOrganization(ctx, &models.Organization{Slug: "acme"})
		assert.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("invalid_slug", func(t *testing.T) {
		reg, _ := newTestRegistry(t)

		for _, slug := range []string{"", "Has Caps", "trailing-", "-leading", "under_score"} {
			err := reg.CreateOrganization(ctx, &models.Organization{Name: "Acme", Slug: slug})
			assert.ErrorIs(t, err, ErrInvalidSlug, "slug %q", slug)
		}
	})

	t.Run("generates_id_when_empty", func(t *testing.T) {
		reg, mockDB := newTestRegistry(t)
		mockDB.EXPECT().CreateOrganization(gomock.Any(), gomock.Any()).Return(nil)

		org := &models.Organization{Name: "Acme", Slug: "acme"}
		require.NoError(t, reg.CreateOrganization(ctx, org))
		assert.NotEmpty(t, org.ID)
	})
}

func TestProvisionDevice(t *testing.T) {
	ctx := context.Background()

	t.Run("forces_provisioning_status", func(t *testing.T) {
		reg, mockDB := newTestRegistry(t)

		var stored *models.Device

		mockDB.EXPECT().CreateDevice(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, device *models.Device) error {
				stored = device
				return nil
			})

		seen := time.Now()
		device := &models.Device{
			Name:     "alpha",
			DeviceID: "dev-1",
			FleetID:  "fleet-1",
			Status:   models.DeviceStatusOnline,
			LastSeen: &seen,
		}
		require.NoError(t, reg.ProvisionDevice(ctx, device))

		require.NotNil(t, stored)
		assert.Equal(t, models.DeviceStatusProvisioning, stored.Status)
		assert.Nil(t, stored.LastSeen)
		assert.NotEmpty(t, stored.ID)
		assert.NotEmpty(t, stored.UUID)
	})

	t.Run("requires_device_id_and_fleet", func(t *testing.T) {
		reg, _ := newTestRegistry(t)

		err := reg.ProvisionDevice(ctx, &models.Device{Name: "alpha", FleetID: "fleet-1"})
		assert.ErrorIs(t, err, ErrDeviceIDRequired)

		err = reg.ProvisionDevice(ctx, &models.Device{Name: "alpha", DeviceID: "dev-1"})
		assert.ErrorIs(t, err, ErrFleetIDRequired)
	})
}

func TestStorageTimeoutMapping(t *testing.T) {
	ctx := context.Background()

	t.Run("deadline_maps_to_storage_timeout", func(t *testing.T) {
		reg, mockDB := newTestRegistry(t)
		mockDB.EXPECT().GetDevice(gomock.Any(), "dev-1").Return(nil, context.DeadlineExceeded)

		_, err := reg.GetDevice(ctx, "dev-1")
		assert.ErrorIs(t, err, ErrStorageTimeout)
	})

	t.Run("caller_cancellation_passes_through", func(t *testing.T) {
		reg, mockDB := newTestRegistry(t)
		mockDB.EXPECT().GetDevice(gomock.Any(), "dev-1").Return(nil, context.DeadlineExceeded)

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := reg.GetDevice(cancelled, "dev-1")
		assert.NotErrorIs(t, err, ErrStorageTimeout)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("domain_errors_pass_through", func(t *testing.T) {
		reg, mockDB := newTestRegistry(t)
		mockDB.EXPECT().GetDevice(gomock.Any(), "dev-1").Return(nil, db.ErrDeviceNotFound)

		_, err := reg.GetDevice(ctx, "dev-1")
		assert.ErrorIs(t, err, db.ErrDeviceNotFound)
	})

	t.Run("storage_calls_get_bounded_context", func(t *testing.T) {
		reg, mockDB := newTestRegistry(t)
		mockDB.EXPECT().GetDevice(gomock.Any(), "dev-1").
			DoAndReturn(func(opCtx context.Context, _ string) (*models.Device, error) {
				deadline, ok := opCtx.Deadline()
				assert.True(t, ok)
				assert.WithinDuration(t, time.Now().Add(5*time.Second), deadline, time.Second)

				return &models.Device{DeviceID: "dev-1"}, nil
			})

		_, err := reg.GetDevice(ctx, "dev-1")
		require.NoError(t, err)
	})
}

func TestTransitionStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects_invalid_status", func(t *testing.T) {
		reg, _ := newTestRegistry(t)

		err := reg.TransitionStatus(ctx, "dev-1", "bogus", models.DeviceStatusOnline)
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("conflict_passes_through", func(t *testing.T) {
		reg, mockDB := newTestRegistry(t)
		mockDB.EXPECT().CompareAndSetDeviceStatus(gomock.Any(), "dev-1",
			models.DeviceStatusOnline, models.DeviceStatusOffline, gomock.Any()).
			Return(db.ErrStatusConflict)

		err := reg.TransitionStatus(ctx, "dev-1", models.DeviceStatusOnline, models.DeviceStatusOffline)
		assert.ErrorIs(t, err, db.ErrStatusConflict)
	})
}

func TestDeploymentSignals(t *testing.T) {
	ctx := context.Background()

	t.Run("mark_updating_uses_current_status", func(t *testing.T) {
		reg, mockDB := newTestRegistry(t)
		mockDB.EXPECT().GetDevice(gomock.Any(), "dev-1").
			Return(&models.Device{DeviceID: "dev-1", Status: models.DeviceStatusOnline}, nil)
		mockDB.EXPECT().CompareAndSetDeviceStatus(gomock.Any(), "dev-1",
			models.DeviceStatusOnline, models.DeviceStatusUpdating, gomock.Any()).
			Return(nil)

		require.NoError(t, reg.MarkUpdating(ctx, "dev-1"))
	})

	t.Run("mark_error_is_noop_when_already_error", func(t *testing.T) {
		reg, mockDB := newTestRegistry(t)
		mockDB.EXPECT().GetDevice(gomock.Any(), "dev-1").
			Return(&models.Device{DeviceID: "dev-1", Status: models.DeviceStatusError}, nil)

		require.NoError(t, reg.MarkError(ctx, "dev-1"))
	})
}

func TestIsLive(t *testing.T) {
	reg, _ := newTestRegistry(t)
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	seenAt := func(age time.Duration) *time.Time {
		ts := now.Add(-age)
		return &ts
	}

	tests := []struct {
		name     string
		device   *models.Device
		expected bool
	}{
		{"nil_device", nil, false},
		{"never_seen", &models.Device{}, false},
		{"seen_just_now", &models.Device{LastSeen: seenAt(0)}, true},
		{"seen_inside_window", &models.Device{LastSeen: seenAt(299 * time.Second)}, true},
		{"seen_exactly_at_window", &models.Device{LastSeen: seenAt(300 * time.Second)}, false},
		{"seen_past_window", &models.Device{LastSeen: seenAt(301 * time.Second)}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, reg.IsLive(tc.device, now))
		})
	}
}

func TestUpsertHeartbeatValidation(t *testing.T) {
	reg, _ := newTestRegistry(t)

	_, err := reg.UpsertHeartbeat(context.Background(), nil)
	assert.ErrorIs(t, err, ErrDeviceIDRequired)

	_, err = reg.UpsertHeartbeat(context.Background(), &models.HeartbeatReport{})
	assert.ErrorIs(t, err, ErrDeviceIDRequired)
}

func TestStorageTimeoutIsNotDeadlineExceeded(t *testing.T) {
	// Callers must branch on ErrStorageTimeout, not on context errors.
	assert.False(t, errors.Is(ErrStorageTimeout, context.DeadlineExceeded))
}

type recordingInvalidator struct {
	orgIDs []string
}

func (i *recordingInvalidator) Invalidate(_ context.Context, orgID string) {
	i.orgIDs = append(i.orgIDs, orgID)
}

func TestDeletionInvalidatesCache(t *testing.T) {
	ctx := context.Background()

	t.Run("fleet_deletion_drops_owning_org", func(t *testing.T) {
		reg, mockDB := newTestRegistry(t)
		inv := &recordingInvalidator{}
		reg.SetCacheInvalidator(inv)

		mockDB.EXPECT().GetFleet(gomock.Any(), "fleet-1").
			Return(&models.Fleet{ID: "fleet-1", OrganizationID: "org-1"}, nil)
		mockDB.EXPECT().DeleteFleet(gomock.Any(), "fleet-1").Return(nil)

		require.NoError(t, reg.DeleteFleet(ctx, "fleet-1"))
		assert.Equal(t, []string{"org-1"}, inv.orgIDs)
	})

	t.Run("org_deletion_drops_its_own_entry", func(t *testing.T) {
		reg, mockDB := newTestRegistry(t)
		inv := &recordingInvalidator{}
		reg.SetCacheInvalidator(inv)

		mockDB.EXPECT().DeleteOrganization(gomock.Any(), "org-1").Return(nil)

		require.NoError(t, reg.DeleteOrganization(ctx, "org-1"))
		assert.Equal(t, []string{"org-1"}, inv.orgIDs)
	})

	t.Run("device_deprovision_resolves_org_through_fleet", func(t *testing.T) {
		reg, mockDB := newTestRegistry(t)
		inv := &recordingInvalidator{}
		reg.SetCacheInvalidator(inv)

		mockDB.EXPECT().GetDevice(gomock.Any(), "dev-1").
			Return(&models.Device{DeviceID: "dev-1", FleetID: "fleet-1"}, nil)
		mockDB.EXPECT().DeleteDevice(gomock.Any(), "dev-1").Return(nil)
		mockDB.EXPECT().GetFleet(gomock.Any(), "fleet-1").
			Return(&models.Fleet{ID: "fleet-1", OrganizationID: "org-1"}, nil)

		require.NoError(t, reg.DeprovisionDevice(ctx, "dev-1"))
		assert.Equal(t, []string{"org-1"}, inv.orgIDs)
	})

	t.Run("failed_deletion_leaves_cache_alone", func(t *testing.T) {
		reg, mockDB := newTestRegistry(t)
		inv := &recordingInvalidator{}
		reg.SetCacheInvalidator(inv)

		mockDB.EXPECT().GetFleet(gomock.Any(), "fleet-1").
			Return(&models.Fleet{ID: "fleet-1", OrganizationID: "org-1"}, nil)
		mockDB.EXPECT().DeleteFleet(gomock.Any(), "fleet-1").Return(db.ErrFleetNotFound)

		assert.ErrorIs(t, reg.DeleteFleet(ctx, "fleet-1"), db.ErrFleetNotFound)
		assert.Empty(t, inv.orgIDs)
	})

	t.Run("no_invalidator_configured_is_fine", func(t *testing.T) {
		reg, mockDB := newTestRegistry(t)

		mockDB.EXPECT().DeleteOrganization(gomock.Any(), "org-1").Return(nil)

		require.NoError(t, reg.DeleteOrganization(ctx, "org-1"))
	})
}
