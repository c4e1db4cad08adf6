package live

import (
	"errors"
	"net/http"
	"time"

	"github.com/drors3/NaturalSignals-WireScope/pkg/adapters"
	"github.com/drors3/NaturalSignals-WireScope/pkg/services/project"
	"github.com/drors3/NaturalSignals-WireScope/pkg/services/simulator"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const defaultInterval = 2 * time.Second

// Handler streams simulated measurements for a project over a websocket.
// It exists for demos and for exercising the diagnosis pipeline without
// physical sensors.
type Handler struct {
	projects project.Service
	interval time.Duration
	upgrader websocket.Upgrader
}

func NewHandler(projects project.Service, interval time.Duration) *Handler {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Handler{
		projects: projects,
		interval: interval,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
	}
}

func (h *Handler) StreamMeasurements(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	projectID := chi.URLParam(r, "projectID")

	scenario, err := simulator.ParseScenario(r.URL.Query().Get("scenario"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	prj, err := h.projects.Get(ctx, projectID)
	if errors.Is(err, project.ErrNotFound) {
		http.Error(w, "project not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error().Err(err).Str("project_id", projectID).Msg("failed to get project")
		http.Error(w, "failed to get project", http.StatusInternalServerError)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	session := simulator.NewSession(prj.ID, simulator.Config{
		SystemType:     prj.SystemType,
		NominalVoltage: prj.NominalVoltage,
		MaxCurrent:     prj.MaxCurrent,
		Scenario:       scenario,
	})

	// Drain client frames so close handshakes are noticed.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-closed:
			return
		case <-ticker.C:
			m, err := session.Next()
			if err != nil {
				logger.Error().Err(err).Msg("simulation failed")
				return
			}
			if err := conn.WriteJSON(adapters.MapMeasurementDomainToApi(m)); err != nil {
				logger.Debug().Err(err).Msg("client disconnected")
				return
			}
		}
	}
}
