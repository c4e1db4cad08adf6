package diagnostics

import (
	"context"
	"errors"
	"fmt"

	"github.com/drors3/NaturalSignals-WireScope/pkg/adapters"
	"github.com/drors3/NaturalSignals-WireScope/pkg/models/domain"
	"github.com/drors3/NaturalSignals-WireScope/pkg/models/store"
	"github.com/drors3/NaturalSignals-WireScope/pkg/services/measurement"
	"github.com/drors3/NaturalSignals-WireScope/pkg/services/project"
	diagnosisstore "github.com/drors3/NaturalSignals-WireScope/pkg/store/duckdb/diagnosis"
	"github.com/drors3/NaturalSignals-WireScope/pkg/store/rediscache"
	"github.com/rs/zerolog"
)

var ErrNoDiagnosis = errors.New("no diagnosis recorded")

// Cache mirrors the rediscache diagnosis cache. A nil cache disables caching.
type Cache interface {
	SetLatest(ctx context.Context, record store.DiagnosisRecord) error
	GetLatest(ctx context.Context, projectID string) (*store.DiagnosisRecord, error)
}

type Service interface {
	// Diagnose evaluates the project's recent history. With persist set the
	// resulting diagnosis is stored; a storage failure fails the call.
	Diagnose(ctx context.Context, projectID string, persist bool) (domain.Diagnosis, error)
	// Latest returns the most recently persisted diagnosis.
	Latest(ctx context.Context, projectID string) (domain.Diagnosis, error)
}

type service struct {
	projects      project.Service
	measurements  measurement.Service
	diagnoses     diagnosisstore.Store
	cache         Cache
	evaluator     *Evaluator
	historyWindow int
}

func NewService(
	projects project.Service,
	measurements measurement.Service,
	diagnoses diagnosisstore.Store,
	cache Cache,
	evaluator *Evaluator,
	historyWindow int,
) Service {
	if historyWindow <= 0 {
		historyWindow = measurement.DefaultHistoryLimit
	}
	return &service{
		projects:      projects,
		measurements:  measurements,
		diagnoses:     diagnoses,
		cache:         cache,
		evaluator:     evaluator,
		historyWindow: historyWindow,
	}
}

func (s *service) Diagnose(ctx context.Context, projectID string, persist bool) (domain.Diagnosis, error) {
	prj, err := s.projects.Get(ctx, projectID)
	if err != nil {
		return domain.Diagnosis{}, err
	}

	history, err := s.measurements.History(ctx, projectID, s.historyWindow)
	if err != nil {
		return domain.Diagnosis{}, err
	}

	diagnosis := s.evaluator.Evaluate(prj, history)

	if persist {
		record := adapters.MapDiagnosisDomainToStore(diagnosis)
		if err := s.diagnoses.Add(ctx, record); err != nil {
			return domain.Diagnosis{}, fmt.Errorf("persist diagnosis: %w", err)
		}
		if s.cache != nil {
			if err := s.cache.SetLatest(ctx, record); err != nil {
				// The store write already succeeded; a stale cache heals on
				// the next persisted run.
				zerolog.Ctx(ctx).Warn().Err(err).
					Str("project_id", projectID).
					Msg("failed to refresh diagnosis cache")
			}
		}
	}

	return diagnosis, nil
}

func (s *service) Latest(ctx context.Context, projectID string) (domain.Diagnosis, error) {
	if _, err := s.projects.Get(ctx, projectID); err != nil {
		return domain.Diagnosis{}, err
	}

	if s.cache != nil {
		record, err := s.cache.GetLatest(ctx, projectID)
		if err == nil {
			return adapters.MapStoreDiagnosisToDomain(*record), nil
		}
		if !errors.Is(err, rediscache.ErrMiss) {
			zerolog.Ctx(ctx).Warn().Err(err).
				Str("project_id", projectID).
				Msg("diagnosis cache read failed, falling back to store")
		}
	}

	record, err := s.diagnoses.GetLatest(ctx, projectID)
	if errors.Is(err, diagnosisstore.ErrNotFound) {
		return domain.Diagnosis{}, ErrNoDiagnosis
	}
	if err != nil {
		return domain.Diagnosis{}, fmt.Errorf("load latest diagnosis: %w", err)
	}
	return adapters.MapStoreDiagnosisToDomain(*record), nil
}
