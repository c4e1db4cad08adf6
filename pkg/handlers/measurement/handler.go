package measurement

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/drors3/NaturalSignals-WireScope/pkg/adapters"
	"github.com/drors3/NaturalSignals-WireScope/pkg/models/api"
	"github.com/drors3/NaturalSignals-WireScope/pkg/services/measurement"
	"github.com/drors3/NaturalSignals-WireScope/pkg/services/project"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type Handler struct {
	measurements measurement.Service
}

func NewHandler(measurements measurement.Service) *Handler {
	return &Handler{measurements: measurements}
}

func (h *Handler) CreateMeasurement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	projectID := chi.URLParam(r, "projectID")

	var req api.CreateMeasurementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	recorded, err := h.measurements.Record(ctx, adapters.MapCreateMeasurementRequestToDomain(projectID, req))
	if errors.Is(err, project.ErrNotFound) {
		writeError(w, http.StatusNotFound, "project not found")
		return
	}
	if err != nil {
		logger.Error().Err(err).Str("project_id", projectID).Msg("failed to record measurement")
		writeError(w, http.StatusInternalServerError, "failed to record measurement")
		return
	}

	writeJSON(w, logger, http.StatusCreated, adapters.MapMeasurementDomainToApi(recorded))
}

func (h *Handler) ListMeasurements(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	projectID := chi.URLParam(r, "projectID")

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	history, err := h.measurements.History(ctx, projectID, limit)
	if errors.Is(err, project.ErrNotFound) {
		writeError(w, http.StatusNotFound, "project not found")
		return
	}
	if err != nil {
		logger.Error().Err(err).Str("project_id", projectID).Msg("failed to fetch measurements")
		writeError(w, http.StatusInternalServerError, "failed to fetch measurements")
		return
	}

	response := make([]api.Measurement, 0, len(history))
	for _, m := range history {
		response = append(response, adapters.MapMeasurementDomainToApi(m))
	}
	writeJSON(w, logger, http.StatusOK, response)
}

func writeJSON(w http.ResponseWriter, logger *zerolog.Logger, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.Error{Message: message})
}
