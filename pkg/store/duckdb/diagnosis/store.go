package diagnosis

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/drors3/NaturalSignals-WireScope/pkg/models/store"
	"github.com/drors3/NaturalSignals-WireScope/pkg/store/duckdb"
)

var ErrNotFound = errors.New("diagnosis not found")

type Store interface {
	Add(ctx context.Context, record store.DiagnosisRecord) error
	// GetLatest returns the most recently created diagnosis for a project.
	GetLatest(ctx context.Context, projectID string) (*store.DiagnosisRecord, error)
	List(ctx context.Context, projectID string, limit int) ([]store.DiagnosisRecord, error)
}

type diagnosisStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &diagnosisStore{db: db}, nil
}

func (s *diagnosisStore) Add(ctx context.Context, record store.DiagnosisRecord) error {
	doc, err := json.Marshal(record.Doc)
	if err != nil {
		return fmt.Errorf("marshal diagnosis document: %w", err)
	}

	query := `
		INSERT INTO diagnoses (id, project_id, created_at, overall_severity, document)
		VALUES (?, ?, ?, ?, ?)`

	if tx := duckdb.GetTransaction(ctx); tx != nil {
		_, err = tx.ExecContext(ctx, query, record.ID, record.ProjectID, record.Timestamp, record.OverallSeverity, string(doc))
	} else {
		_, err = s.db.ExecContext(ctx, query, record.ID, record.ProjectID, record.Timestamp, record.OverallSeverity, string(doc))
	}
	if err != nil {
		return fmt.Errorf("insert diagnosis: %w", err)
	}
	return nil
}

func (s *diagnosisStore) GetLatest(ctx context.Context, projectID string) (*store.DiagnosisRecord, error) {
	query := `
		SELECT id, project_id, created_at, overall_severity, document
		FROM diagnoses
		WHERE project_id = ?
		ORDER BY created_at DESC
		LIMIT 1`

	var r store.DiagnosisRecord
	var doc string
	err := s.db.QueryRowContext(ctx, query, projectID).
		Scan(&r.ID, &r.ProjectID, &r.Timestamp, &r.OverallSeverity, &doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query latest diagnosis: %w", err)
	}
	if err := json.Unmarshal([]byte(doc), &r.Doc); err != nil {
		return nil, fmt.Errorf("unmarshal diagnosis document: %w", err)
	}
	return &r, nil
}

func (s *diagnosisStore) List(ctx context.Context, projectID string, limit int) ([]store.DiagnosisRecord, error) {
	query := `
		SELECT id, project_id, created_at, overall_severity, document
		FROM diagnoses
		WHERE project_id = ?
		ORDER BY created_at DESC
		LIMIT ?`

	rows, err := s.db.QueryContext(ctx, query, projectID, limit)
	if err != nil {
		return nil, fmt.Errorf("query diagnoses: %w", err)
	}
	defer rows.Close()

	var records []store.DiagnosisRecord
	for rows.Next() {
		var r store.DiagnosisRecord
		var doc string
		if err := rows.Scan(&r.ID, &r.ProjectID, &r.Timestamp, &r.OverallSeverity, &doc); err != nil {
			return nil, fmt.Errorf("scan diagnosis: %w", err)
		}
		if err := json.Unmarshal([]byte(doc), &r.Doc); err != nil {
			return nil, fmt.Errorf("unmarshal diagnosis document: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
