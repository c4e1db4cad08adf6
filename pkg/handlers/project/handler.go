package project

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/drors3/NaturalSignals-WireScope/pkg/adapters"
	"github.com/drors3/NaturalSignals-WireScope/pkg/models/api"
	"github.com/drors3/NaturalSignals-WireScope/pkg/models/domain"
	"github.com/drors3/NaturalSignals-WireScope/pkg/services/project"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type Handler struct {
	projects project.Service
	validate *validator.Validate
}

func NewHandler(projects project.Service) *Handler {
	return &Handler{
		projects: projects,
		validate: validator.New(),
	}
}

func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.projects.Create(ctx, project.CreateParams{
		Name:           req.Name,
		SystemType:     domain.SystemType(req.SystemType),
		NominalVoltage: req.NominalVoltage,
		MaxCurrent:     req.MaxCurrent,
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to create project")
		writeError(w, http.StatusInternalServerError, "failed to create project")
		return
	}

	writeJSON(w, logger, http.StatusCreated, adapters.MapProjectDomainToApi(created))
}

func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	projects, err := h.projects.List(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list projects")
		writeError(w, http.StatusInternalServerError, "failed to list projects")
		return
	}

	response := make([]api.Project, 0, len(projects))
	for _, p := range projects {
		response = append(response, adapters.MapProjectDomainToApi(p))
	}
	writeJSON(w, logger, http.StatusOK, response)
}

func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	id := chi.URLParam(r, "projectID")

	p, err := h.projects.Get(ctx, id)
	if errors.Is(err, project.ErrNotFound) {
		writeError(w, http.StatusNotFound, "project not found")
		return
	}
	if err != nil {
		logger.Error().Err(err).Str("project_id", id).Msg("failed to get project")
		writeError(w, http.StatusInternalServerError, "failed to get project")
		return
	}

	writeJSON(w, logger, http.StatusOK, adapters.MapProjectDomainToApi(p))
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
