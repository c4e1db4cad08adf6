package diagnosis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/drors3/NaturalSignals-WireScope/pkg/models/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() store.DiagnosisRecord {
	return store.DiagnosisRecord{
		ID:              "diag-1",
		ProjectID:       "prj-1",
		Timestamp:       time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		OverallSeverity: "critical",
		Doc: store.DiagnosisDoc{
			Issues: []store.IssueDoc{{
				Code:        "VOLTAGE_OUT_OF_RANGE_A",
				Description: "Phase A voltage out of range",
				Severity:    "critical",
				Component:   "phase A",
			}},
			Recommendations: []store.RecommendationDoc{{
				Priority: 1,
				Action:   "Inspect phase A wiring",
			}},
			SafetyAlert: "critical issues detected",
		},
	}
}

func TestDiagnosisStore_Add(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s, err := NewStore(db)
	require.NoError(t, err)

	record := sampleRecord()
	doc, err := json.Marshal(record.Doc)
	require.NoError(t, err)

	mock.ExpectExec("INSERT INTO diagnoses").
		WithArgs(record.ID, record.ProjectID, record.Timestamp, record.OverallSeverity, string(doc)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, s.Add(context.Background(), record))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDiagnosisStore_GetLatest(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s, err := NewStore(db)
	require.NoError(t, err)

	record := sampleRecord()
	doc, err := json.Marshal(record.Doc)
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"id", "project_id", "created_at", "overall_severity", "document"}).
		AddRow(record.ID, record.ProjectID, record.Timestamp, record.OverallSeverity, string(doc))
	mock.ExpectQuery("SELECT id, project_id, created_at, overall_severity, document").
		WithArgs("prj-1").
		WillReturnRows(rows)

	got, err := s.GetLatest(context.Background(), "prj-1")
	require.NoError(t, err)
	assert.Equal(t, record.ID, got.ID)
	assert.Equal(t, record.OverallSeverity, got.OverallSeverity)
	require.Len(t, got.Doc.Issues, 1)
	assert.Equal(t, "VOLTAGE_OUT_OF_RANGE_A", got.Doc.Issues[0].Code)
	assert.Equal(t, record.Doc.SafetyAlert, got.Doc.SafetyAlert)
}

func TestDiagnosisStore_GetLatestNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s, err := NewStore(db)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT id, project_id, created_at, overall_severity, document").
		WithArgs("prj-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "project_id", "created_at", "overall_severity", "document"}))

	_, err = s.GetLatest(context.Background(), "prj-1")
	assert.ErrorIs(t, err, ErrNotFound)
}
