package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	diagnosticshandler "github.com/drors3/NaturalSignals-WireScope/pkg/handlers/diagnostics"
	livehandler "github.com/drors3/NaturalSignals-WireScope/pkg/handlers/live"
	measurementhandler "github.com/drors3/NaturalSignals-WireScope/pkg/handlers/measurement"
	projecthandler "github.com/drors3/NaturalSignals-WireScope/pkg/handlers/project"
	"github.com/drors3/NaturalSignals-WireScope/pkg/services/diagnostics"
	"github.com/drors3/NaturalSignals-WireScope/pkg/services/measurement"
	"github.com/drors3/NaturalSignals-WireScope/pkg/services/project"

	wirescopemiddleware "github.com/drors3/NaturalSignals-WireScope/pkg/server/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type WebAPI struct {
	router          *chi.Mux
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	Projects     project.Service
	Measurements measurement.Service
	Diagnostics  diagnostics.Service
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	LiveInterval    time.Duration
	Dependencies    Dependencies
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	router := ConfigureRouter(config)

	if config.ShutdownTimeout <= 0 {
		config.ShutdownTimeout = 10 * time.Second
	}

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: wirescopemiddleware.Logger(&logger)(router),
		},
		shutdownTimeout: config.ShutdownTimeout,
	}
}

func ConfigureRouter(config Config) *chi.Mux {
	projects := projecthandler.NewHandler(config.Dependencies.Projects)
	measurements := measurementhandler.NewHandler(config.Dependencies.Measurements)
	diagnoses := diagnosticshandler.NewHandler(config.Dependencies.Diagnostics)
	live := livehandler.NewHandler(config.Dependencies.Projects, config.LiveInterval)

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/projects", projects.CreateProject)
		r.Get("/projects", projects.ListProjects)
		r.Get("/projects/{projectID}", projects.GetProject)

		r.Post("/projects/{projectID}/measurements", measurements.CreateMeasurement)
		r.Get("/projects/{projectID}/measurements", measurements.ListMeasurements)

		r.Post("/projects/{projectID}/diagnosis", diagnoses.RunDiagnosis)
		r.Get("/projects/{projectID}/diagnosis", diagnoses.GetLatestDiagnosis)

		r.Get("/projects/{projectID}/live", live.StreamMeasurements)
	})

	return router
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
