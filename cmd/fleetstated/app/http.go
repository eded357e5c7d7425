package app

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/edgefleet/fleetstate/pkg/aggregator"
	"github.com/edgefleet/fleetstate/pkg/db"
	"github.com/edgefleet/fleetstate/pkg/ingest"
	"github.com/edgefleet/fleetstate/pkg/logger"
	"github.com/edgefleet/fleetstate/pkg/models"
	"github.com/edgefleet/fleetstate/pkg/registry"
)

// apiHandler serves the dashboard read surface and the HTTP heartbeat
// fallback. All domain-error-to-status mapping lives here.
type apiHandler struct {
	registry   registry.Manager
	ingestor   *ingest.Ingestor
	aggregator *aggregator.Aggregator
	logger     logger.Logger
}

func newRouter(reg registry.Manager, ingestor *ingest.Ingestor, agg *aggregator.Aggregator, log logger.Logger) *mux.Router {
	h := &apiHandler{
		registry:   reg,
		ingestor:   ingestor,
		aggregator: agg,
		logger:     log.WithComponent("http"),
	}

	r := mux.NewRouter()
	r.HandleFunc("/api/orgs/{org}/dashboard-stats", h.getDashboardStats).Methods(http.MethodGet)
	r.HandleFunc("/api/orgs/{org}/devices/recent", h.getRecentDevices).Methods(http.MethodGet)
	r.HandleFunc("/api/orgs/{org}/fleet-stats", h.getFleetStats).Methods(http.MethodGet)
	r.HandleFunc("/api/devices/heartbeat", h.postHeartbeat).Methods(http.MethodPost)

	return r
}

func (h *apiHandler) getDashboardStats(w http.ResponseWriter, r *http.Request) {
	orgID := mux.Vars(r)["org"]

	resp, err := h.aggregator.DashboardStats(r.Context(), orgID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *apiHandler) getRecentDevices(w http.ResponseWriter, r *http.Request) {
	orgID := mux.Vars(r)["org"]

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid limit"})
			return
		}

		limit = parsed
	}

	entries, err := h.aggregator.RecentDevices(r.Context(), orgID, limit)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, entries)
}

func (h *apiHandler) getFleetStats(w http.ResponseWriter, r *http.Request) {
	orgID := mux.Vars(r)["org"]

	stats, err := h.aggregator.FleetStats(r.Context(), orgID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, stats)
}

// postHeartbeat accepts a heartbeat report over HTTP for deployments without
// a NATS ingest path.
func (h *apiHandler) postHeartbeat(w http.ResponseWriter, r *http.Request) {
	var report models.HeartbeatReport

	if err := json.NewDecoder(r.Body).Decode(&report); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid heartbeat payload"})
		return
	}

	device, err := h.ingestor.HandleReport(r.Context(), &report)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, device)
}

func (h *apiHandler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, db.ErrOrganizationNotFound),
		errors.Is(err, db.ErrFleetNotFound),
		errors.Is(err, db.ErrDeviceNotFound),
		errors.Is(err, ingest.ErrUnknownDevice):
		status = http.StatusNotFound
	case errors.Is(err, ingest.ErrInvalidReport):
		status = http.StatusBadRequest
	case errors.Is(err, registry.ErrStorageTimeout):
		status = http.StatusGatewayTimeout
	case errors.Is(err, db.ErrStatusConflict):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		h.logger.Error().Err(err).Msg("Request failed")
	}

	h.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (h *apiHandler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error().Err(err).Msg("Failed to encode response")
	}
}
