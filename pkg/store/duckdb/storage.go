package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const ProjectsSchema = `
	CREATE TABLE IF NOT EXISTS projects (
		id VARCHAR NOT NULL PRIMARY KEY,
		name VARCHAR NOT NULL,
		system_type VARCHAR NOT NULL,
		nominal_voltage DOUBLE NOT NULL,
		max_current DOUBLE NOT NULL DEFAULT 0,
		status VARCHAR NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
`

const MeasurementsSchema = `
	CREATE TABLE IF NOT EXISTS measurements (
		id VARCHAR NOT NULL PRIMARY KEY,
		project_id VARCHAR NOT NULL,
		recorded_at TIMESTAMP NOT NULL,
		readings JSON NOT NULL
	);
`

const DiagnosesSchema = `
	CREATE TABLE IF NOT EXISTS diagnoses (
		id VARCHAR NOT NULL PRIMARY KEY,
		project_id VARCHAR NOT NULL,
		created_at TIMESTAMP NOT NULL,
		overall_severity VARCHAR NOT NULL,
		document JSON NOT NULL
	);
`

var bootQueries = []string{
	ProjectsSchema,
	MeasurementsSchema,
	DiagnosesSchema,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", settings.DbPath), func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(c)
	return db, nil
}
