package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/edgefleet/fleetstate/pkg/aggregator"
	"github.com/edgefleet/fleetstate/pkg/db"
	"github.com/edgefleet/fleetstate/pkg/ingest"
	"github.com/edgefleet/fleetstate/pkg/logger"
	"github.com/edgefleet/fleetstate/pkg/models"
	"github.com/edgefleet/fleetstate/pkg/registry"
)

var testNow = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func newTestServer(t *testing.T) (*httptest.Server, *registry.MockManager) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockReg := registry.NewMockManager(ctrl)

	log := logger.NewTestLogger()
	ingestor := ingest.NewIngestor(mockReg, nil, log, 0)
	ingestor.SetClock(func() time.Time { return testNow })
	agg := aggregator.NewAggregator(mockReg, nil, log)
	agg.SetClock(func() time.Time { return testNow })

	srv := httptest.NewServer(newRouter(mockReg, ingestor, agg, log))
	t.Cleanup(srv.Close)

	return srv, mockReg
}

func TestGetDashboardStats(t *testing.T) {
	t.Run("returns_stats_and_recent_devices", func(t *testing.T) {
		srv, mockReg := newTestServer(t)

		seen := testNow.Add(-time.Minute)
		mockReg.EXPECT().GetOrganization(gomock.Any(), "org-1").
			Return(&models.Organization{ID: "org-1", Timezone: "UTC"}, nil)
		mockReg.EXPECT().Snapshot(gomock.Any(), "org-1", gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&models.DashboardSnapshot{
				OrganizationID: "org-1",
				Stats:          models.OrgStats{TotalDevices: 2, OnlineDevices: 1, OfflineDevices: 1, TotalFleets: 1},
				RecentDevices: []models.RecentDevice{
					{
						Device: &models.Device{
							Name: "alpha", DeviceID: "dev-1",
							Status: models.DeviceStatusOnline, LastSeen: &seen,
						},
						FleetName: "Sensors",
					},
				},
			}, nil)

		resp, err := http.Get(srv.URL + "/api/orgs/org-1/dashboard-stats")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

		var body models.DashboardResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, 2, body.Stats.TotalDevices)
		require.Len(t, body.RecentDevices, 1)
		assert.Equal(t, "Sensors", body.RecentDevices[0].Fleet)
	})

	t.Run("unknown_org_is_404", func(t *testing.T) {
		srv, mockReg := newTestServer(t)
		mockReg.EXPECT().GetOrganization(gomock.Any(), "ghost").
			Return(nil, db.ErrOrganizationNotFound)

		resp, err := http.Get(srv.URL + "/api/orgs/ghost/dashboard-stats")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("storage_timeout_is_504", func(t *testing.T) {
		srv, mockReg := newTestServer(t)
		mockReg.EXPECT().GetOrganization(gomock.Any(), "org-1").
			Return(nil, registry.ErrStorageTimeout)

		resp, err := http.Get(srv.URL + "/api/orgs/org-1/dashboard-stats")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusGatewayTimeout, resp.StatusCode)
	})
}

func TestGetRecentDevices(t *testing.T) {
	t.Run("passes_limit_through", func(t *testing.T) {
		srv, mockReg := newTestServer(t)
		mockReg.EXPECT().GetOrganization(gomock.Any(), "org-1").
			Return(&models.Organization{ID: "org-1"}, nil)
		mockReg.EXPECT().Snapshot(gomock.Any(), "org-1", gomock.Any(), gomock.Any(), 5).
			Return(&models.DashboardSnapshot{OrganizationID: "org-1"}, nil)

		resp, err := http.Get(srv.URL + "/api/orgs/org-1/devices/recent?limit=5")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("non_numeric_limit_is_400", func(t *testing.T) {
		srv, _ := newTestServer(t)

		resp, err := http.Get(srv.URL + "/api/orgs/org-1/devices/recent?limit=lots")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestPostHeartbeat(t *testing.T) {
	post := func(t *testing.T, srv *httptest.Server, payload string) *http.Response {
		t.Helper()

		req, err := http.NewRequestWithContext(context.Background(), http.MethodPost,
			srv.URL+"/api/devices/heartbeat", strings.NewReader(payload))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)

		return resp
	}

	t.Run("accepts_valid_report", func(t *testing.T) {
		srv, mockReg := newTestServer(t)
		mockReg.EXPECT().UpsertHeartbeat(gomock.Any(), gomock.Any()).
			Return(&models.Device{DeviceID: "dev-1", Status: models.DeviceStatusOnline}, nil)

		resp := post(t, srv, `{"device_id": "dev-1", "timestamp": "2026-08-30T12:00:00Z"}`)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("invalid_report_is_400", func(t *testing.T) {
		srv, _ := newTestServer(t)

		resp := post(t, srv, `{"timestamp": "2026-08-30T12:00:00Z"}`)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unknown_device_is_404", func(t *testing.T) {
		srv, mockReg := newTestServer(t)
		mockReg.EXPECT().UpsertHeartbeat(gomock.Any(), gomock.Any()).
			Return(nil, db.ErrDeviceNotFound)

		resp := post(t, srv, `{"device_id": "ghost", "timestamp": "2026-08-30T12:00:00Z"}`)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("out_of_order_report_is_400", func(t *testing.T) {
		srv, mockReg := newTestServer(t)
		mockReg.EXPECT().UpsertHeartbeat(gomock.Any(), gomock.Any()).
			Return(nil, db.ErrStaleTimestamp)

		resp := post(t, srv, `{"device_id": "dev-1", "timestamp": "2026-08-30T11:00:00Z"}`)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("undecodable_body_is_400", func(t *testing.T) {
		srv, _ := newTestServer(t)

		resp := post(t, srv, `not json`)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
