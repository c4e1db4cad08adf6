package main

import (
	"fmt"
	"os"
	"time"

	"github.com/drors3/NaturalSignals-WireScope/pkg/server"
	"github.com/drors3/NaturalSignals-WireScope/pkg/services/diagnostics"
	"github.com/drors3/NaturalSignals-WireScope/pkg/services/measurement"
	"github.com/drors3/NaturalSignals-WireScope/pkg/services/project"
	"github.com/drors3/NaturalSignals-WireScope/pkg/store/duckdb"
	diagnosisstore "github.com/drors3/NaturalSignals-WireScope/pkg/store/duckdb/diagnosis"
	measurementstore "github.com/drors3/NaturalSignals-WireScope/pkg/store/duckdb/measurement"
	projectstore "github.com/drors3/NaturalSignals-WireScope/pkg/store/duckdb/project"
	"github.com/drors3/NaturalSignals-WireScope/pkg/store/rediscache"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the WireScope measurement and diagnostics server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the server config file (optional; env vars apply either way)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	settings, err := server.LoadSettings(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load server settings: %w", err)
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: settings.DBPath})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	projects, err := projectstore.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create project store: %w", err)
	}
	measurements, err := measurementstore.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create measurement store: %w", err)
	}
	diagnoses, err := diagnosisstore.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create diagnosis store: %w", err)
	}

	var cache diagnostics.Cache
	if settings.RedisAddr != "" {
		diagCache, err := rediscache.NewDiagnosisCache(ctx, settings.RedisAddr)
		if err != nil {
			return fmt.Errorf("failed to connect diagnosis cache: %w", err)
		}
		defer diagCache.Close()
		cache = diagCache
		logger.Info().Str("addr", settings.RedisAddr).Msg("diagnosis cache enabled")
	}

	projectSvc := project.NewService(projects)
	measurementSvc := measurement.NewService(projectSvc, measurements)
	diagnosticsSvc := diagnostics.NewService(
		projectSvc,
		measurementSvc,
		diagnoses,
		cache,
		diagnostics.NewEvaluator(diagnostics.DefaultConfig()),
		settings.HistoryWindow,
	)

	webAPI := server.NewWebAPI(logger, server.Config{
		Addr:         settings.Addr,
		LiveInterval: time.Duration(settings.LiveIntervalSeconds) * time.Second,
		Dependencies: server.Dependencies{
			Projects:     projectSvc,
			Measurements: measurementSvc,
			Diagnostics:  diagnosticsSvc,
		},
	})

	return webAPI.Start()
}
