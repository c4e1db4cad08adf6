package diagnostics

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/drors3/NaturalSignals-WireScope/pkg/adapters"
	"github.com/drors3/NaturalSignals-WireScope/pkg/models/api"
	"github.com/drors3/NaturalSignals-WireScope/pkg/services/diagnostics"
	"github.com/drors3/NaturalSignals-WireScope/pkg/services/project"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type Handler struct {
	diagnostics diagnostics.Service
}

func NewHandler(svc diagnostics.Service) *Handler {
	return &Handler{diagnostics: svc}
}

// RunDiagnosis evaluates the project's recent history. ?persist=true stores
// the result.
func (h *Handler) RunDiagnosis(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	projectID := chi.URLParam(r, "projectID")
	persist := r.URL.Query().Get("persist") == "true"

	d, err := h.diagnostics.Diagnose(ctx, projectID, persist)
	if errors.Is(err, project.ErrNotFound) {
		writeError(w, http.StatusNotFound, "project not found")
		return
	}
	if err != nil {
		logger.Error().Err(err).Str("project_id", projectID).Msg("diagnosis failed")
		writeError(w, http.StatusInternalServerError, "diagnosis failed")
		return
	}

	writeJSON(w, logger, http.StatusOK, adapters.MapDiagnosisDomainToApi(d))
}

func (h *Handler) GetLatestDiagnosis(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	projectID := chi.URLParam(r, "projectID")

	d, err := h.diagnostics.Latest(ctx, projectID)
	if errors.Is(err, project.ErrNotFound) {
		writeError(w, http.StatusNotFound, "project not found")
		return
	}
	if errors.Is(err, diagnostics.ErrNoDiagnosis) {
		writeError(w, http.StatusNotFound, "no diagnosis recorded for project")
		return
	}
	if err != nil {
		logger.Error().Err(err).Str("project_id", projectID).Msg("failed to load diagnosis")
		writeError(w, http.StatusInternalServerError, "failed to load diagnosis")
		return
	}

	writeJSON(w, logger, http.StatusOK, adapters.MapDiagnosisDomainToApi(d))
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
