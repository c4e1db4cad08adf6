package project

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/drors3/NaturalSignals-WireScope/pkg/adapters"
	"github.com/drors3/NaturalSignals-WireScope/pkg/models/domain"
	projectstore "github.com/drors3/NaturalSignals-WireScope/pkg/store/duckdb/project"
	"github.com/google/uuid"
)

var ErrNotFound = errors.New("project not found")

type CreateParams struct {
	Name           string
	SystemType     domain.SystemType
	NominalVoltage float64
	MaxCurrent     float64
}

type Service interface {
	Create(ctx context.Context, params CreateParams) (domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	Get(ctx context.Context, id string) (domain.Project, error)
}

type service struct {
	store projectstore.Store
}

func NewService(store projectstore.Store) Service {
	return &service{store: store}
}

func (s *service) Create(ctx context.Context, params CreateParams) (domain.Project, error) {
	if !params.SystemType.Valid() {
		return domain.Project{}, fmt.Errorf("invalid system type: %q", params.SystemType)
	}
	if params.NominalVoltage <= 0 {
		return domain.Project{}, fmt.Errorf("nominal voltage must be positive, got %v", params.NominalVoltage)
	}

	project := domain.Project{
		ID:             uuid.NewString(),
		Name:           params.Name,
		SystemType:     params.SystemType,
		NominalVoltage: params.NominalVoltage,
		MaxCurrent:     params.MaxCurrent,
		Status:         domain.ProjectActive,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.store.Add(ctx, adapters.MapProjectDomainToStore(project)); err != nil {
		return domain.Project{}, fmt.Errorf("store project: %w", err)
	}
	return project, nil
}

func (s *service) List(ctx context.Context) ([]domain.Project, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	projects := make([]domain.Project, 0, len(records))
	for _, r := range records {
		projects = append(projects, adapters.MapStoreProjectToDomain(r))
	}
	return projects, nil
}

func (s *service) Get(ctx context.Context, id string) (domain.Project, error) {
	record, err := s.store.Get(ctx, id)
	if errors.Is(err, projectstore.ErrNotFound) {
		return domain.Project{}, ErrNotFound
	}
	if err != nil {
		return domain.Project{}, fmt.Errorf("get project %s: %w", id, err)
	}
	return adapters.MapStoreProjectToDomain(*record), nil
}
