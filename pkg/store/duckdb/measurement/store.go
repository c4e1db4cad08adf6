package measurement

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/drors3/NaturalSignals-WireScope/pkg/models/store"
	"github.com/drors3/NaturalSignals-WireScope/pkg/store/duckdb"
)

type Store interface {
	Add(ctx context.Context, record store.MeasurementRecord) error
	// GetHistory returns up to limit measurements for the project,
	// newest first.
	GetHistory(ctx context.Context, projectID string, limit int) ([]store.MeasurementRecord, error)
}

type measurementStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &measurementStore{db: db}, nil
}

func (s *measurementStore) Add(ctx context.Context, record store.MeasurementRecord) error {
	readings, err := json.Marshal(record.Readings)
	if err != nil {
		return fmt.Errorf("marshal readings: %w", err)
	}

	query := `
		INSERT INTO measurements (id, project_id, recorded_at, readings)
		VALUES (?, ?, ?, ?)`

	if tx := duckdb.GetTransaction(ctx); tx != nil {
		_, err = tx.ExecContext(ctx, query, record.ID, record.ProjectID, record.Timestamp, string(readings))
	} else {
		_, err = s.db.ExecContext(ctx, query, record.ID, record.ProjectID, record.Timestamp, string(readings))
	}
	if err != nil {
		return fmt.Errorf("insert measurement: %w", err)
	}
	return nil
}

func (s *measurementStore) GetHistory(ctx context.Context, projectID string, limit int) ([]store.MeasurementRecord, error) {
	query := `
		SELECT id, project_id, recorded_at, readings
		FROM measurements
		WHERE project_id = ?
		ORDER BY recorded_at DESC
		LIMIT ?`

	rows, err := s.db.QueryContext(ctx, query, projectID, limit)
	if err != nil {
		return nil, fmt.Errorf("query measurements: %w", err)
	}
	defer rows.Close()

	var records []store.MeasurementRecord
	for rows.Next() {
		var r store.MeasurementRecord
		var readings string
		if err := rows.Scan(&r.ID, &r.ProjectID, &r.Timestamp, &readings); err != nil {
			return nil, fmt.Errorf("scan measurement: %w", err)
		}
		if err := json.Unmarshal([]byte(readings), &r.Readings); err != nil {
			return nil, fmt.Errorf("unmarshal readings: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
