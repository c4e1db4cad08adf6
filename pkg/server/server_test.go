package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/drors3/NaturalSignals-WireScope/pkg/models/api"
	"github.com/drors3/NaturalSignals-WireScope/pkg/models/domain"
	"github.com/drors3/NaturalSignals-WireScope/pkg/services/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockProjectService struct {
	mock.Mock
}

func (m *mockProjectService) Create(ctx context.Context, params project.CreateParams) (domain.Project, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *mockProjectService) List(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *mockProjectService) Get(ctx context.Context, id string) (domain.Project, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Project), args.Error(1)
}

type mockMeasurementService struct {
	mock.Mock
}

func (m *mockMeasurementService) Record(ctx context.Context, mm domain.Measurement) (domain.Measurement, error) {
	args := m.Called(ctx, mm)
	return args.Get(0).(domain.Measurement), args.Error(1)
}

func (m *mockMeasurementService) History(ctx context.Context, projectID string, limit int) ([]domain.Measurement, error) {
	args := m.Called(ctx, projectID, limit)
	return args.Get(0).([]domain.Measurement), args.Error(1)
}

type mockDiagnosticsService struct {
	mock.Mock
}

func (m *mockDiagnosticsService) Diagnose(ctx context.Context, projectID string, persist bool) (domain.Diagnosis, error) {
	args := m.Called(ctx, projectID, persist)
	return args.Get(0).(domain.Diagnosis), args.Error(1)
}

func (m *mockDiagnosticsService) Latest(ctx context.Context, projectID string) (domain.Diagnosis, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).(domain.Diagnosis), args.Error(1)
}

type fixture struct {
	projects     *mockProjectService
	measurements *mockMeasurementService
	diagnostics  *mockDiagnosticsService
	server       *httptest.Server
}

func setupFixture(t *testing.T) *fixture {
	f := &fixture{
		projects:     &mockProjectService{},
		measurements: &mockMeasurementService{},
		diagnostics:  &mockDiagnosticsService{},
	}

	router := ConfigureRouter(Config{
		Dependencies: Dependencies{
			Projects:     f.projects,
			Measurements: f.measurements,
			Diagnostics:  f.diagnostics,
		},
	})

	f.server = httptest.NewServer(router)
	t.Cleanup(f.server.Close)
	return f
}

func TestCreateProject(t *testing.T) {
	f := setupFixture(t)

	created := domain.Project{
		ID:             "prj-1",
		Name:           "workshop",
		SystemType:     domain.SystemThreePhase,
		NominalVoltage: 400,
		Status:         domain.ProjectActive,
		CreatedAt:      time.Now().UTC(),
	}
	f.projects.On("Create", mock.Anything, project.CreateParams{
		Name:           "workshop",
		SystemType:     domain.SystemThreePhase,
		NominalVoltage: 400,
	}).Return(created, nil)

	body, _ := json.Marshal(api.CreateProjectRequest{
		Name:           "workshop",
		SystemType:     "three-phase",
		NominalVoltage: 400,
	})
	resp, err := http.Post(f.server.URL+"/api/v1/projects", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var got api.Project
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "prj-1", got.ID)
	assert.Equal(t, "three-phase", got.SystemType)
}

func TestCreateProject_Validation(t *testing.T) {
	f := setupFixture(t)

	body, _ := json.Marshal(api.CreateProjectRequest{
		Name:           "workshop",
		SystemType:     "four-phase",
		NominalVoltage: 400,
	})
	resp, err := http.Post(f.server.URL+"/api/v1/projects", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	f.projects.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetProject_NotFound(t *testing.T) {
	f := setupFixture(t)
	f.projects.On("Get", mock.Anything, "missing").Return(domain.Project{}, project.ErrNotFound)

	resp, err := http.Get(f.server.URL + "/api/v1/projects/missing")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateMeasurement(t *testing.T) {
	f := setupFixture(t)

	recorded := domain.Measurement{
		ID:        "m-1",
		ProjectID: "prj-1",
		Timestamp: time.Now().UTC(),
		PhaseA:    &domain.PhaseReading{Voltage: domain.Float(398)},
	}
	f.measurements.On("Record", mock.Anything, mock.AnythingOfType("domain.Measurement")).
		Return(recorded, nil)

	body, _ := json.Marshal(api.CreateMeasurementRequest{
		PhaseA: &api.PhaseReading{Voltage: domain.Float(398)},
	})
	resp, err := http.Post(f.server.URL+"/api/v1/projects/prj-1/measurements", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var got api.Measurement
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "m-1", got.ID)
	require.NotNil(t, got.PhaseA)
	assert.InDelta(t, 398, *got.PhaseA.Voltage, 0.001)
	assert.Nil(t, got.PhaseB)
}

func TestListMeasurements_BadLimit(t *testing.T) {
	f := setupFixture(t)

	resp, err := http.Get(f.server.URL + "/api/v1/projects/prj-1/measurements?limit=abc")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRunDiagnosis(t *testing.T) {
	f := setupFixture(t)

	diagnosis := domain.Diagnosis{
		ID:        "diag-1",
		ProjectID: "prj-1",
		Timestamp: time.Now().UTC(),
		Issues: []domain.Issue{{
			Code:     "VOLTAGE_OUT_OF_RANGE_A",
			Severity: domain.SeverityCritical,
		}},
		Recommendations: []domain.Recommendation{{Priority: 1, Action: "Inspect phase A wiring"}},
		OverallSeverity: domain.SeverityCritical,
		SafetyAlert:     "critical issues detected",
	}
	f.diagnostics.On("Diagnose", mock.Anything, "prj-1", true).Return(diagnosis, nil)

	resp, err := http.Post(f.server.URL+"/api/v1/projects/prj-1/diagnosis?persist=true", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got api.Diagnosis
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "critical", got.OverallSeverity)
	assert.NotEmpty(t, got.SafetyAlert)
	require.Len(t, got.Issues, 1)
	assert.Equal(t, "VOLTAGE_OUT_OF_RANGE_A", got.Issues[0].Code)
}
