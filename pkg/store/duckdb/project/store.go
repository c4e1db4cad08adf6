package project

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/drors3/NaturalSignals-WireScope/pkg/models/store"
	"github.com/drors3/NaturalSignals-WireScope/pkg/store/duckdb"
)

var ErrNotFound = errors.New("project not found")

type Store interface {
	Add(ctx context.Context, record store.ProjectRecord) error
	List(ctx context.Context) ([]store.ProjectRecord, error)
	Get(ctx context.Context, id string) (*store.ProjectRecord, error)
}

type projectStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &projectStore{db: db}, nil
}

func (s *projectStore) Add(ctx context.Context, record store.ProjectRecord) error {
	query := `
		INSERT INTO projects (id, name, system_type, nominal_voltage, max_current, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	var err error
	if tx := duckdb.GetTransaction(ctx); tx != nil {
		_, err = tx.ExecContext(ctx, query,
			record.ID, record.Name, record.SystemType, record.NominalVoltage,
			record.MaxCurrent, record.Status, record.CreatedAt)
	} else {
		_, err = s.db.ExecContext(ctx, query,
			record.ID, record.Name, record.SystemType, record.NominalVoltage,
			record.MaxCurrent, record.Status, record.CreatedAt)
	}
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

func (s *projectStore) List(ctx context.Context) ([]store.ProjectRecord, error) {
	query := `
		SELECT id, name, system_type, nominal_voltage, max_current, status, created_at
		FROM projects
		ORDER BY created_at`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	defer rows.Close()

	var records []store.ProjectRecord
	for rows.Next() {
		var r store.ProjectRecord
		err := rows.Scan(&r.ID, &r.Name, &r.SystemType, &r.NominalVoltage, &r.MaxCurrent, &r.Status, &r.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *projectStore) Get(ctx context.Context, id string) (*store.ProjectRecord, error) {
	query := `
		SELECT id, name, system_type, nominal_voltage, max_current, status, created_at
		FROM projects
		WHERE id = ?`

	var r store.ProjectRecord
	err := s.db.QueryRowContext(ctx, query, id).
		Scan(&r.ID, &r.Name, &r.SystemType, &r.NominalVoltage, &r.MaxCurrent, &r.Status, &r.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query project %s: %w", id, err)
	}
	return &r, nil
}
