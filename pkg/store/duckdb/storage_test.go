package duckdb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDB_BootsSchema(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "duckdb-test-*")
	require.NoError(t, err)

	defer func() {
		err := os.RemoveAll(tmpDir)
		if err != nil {
			t.Errorf("failed to cleanup test directory: %v", err)
		}
	}()

	dbPath := filepath.Join(tmpDir, "test.db")
	db, err := NewDB(Settings{
		DbPath: dbPath,
	})
	require.NoError(t, err)
	require.NotNil(t, db)

	defer func() {
		err := db.Close()
		if err != nil {
			t.Errorf("failed to close database connection: %v", err)
		}
	}()

	_, err = db.Exec(
		`INSERT INTO projects (id, name, system_type, nominal_voltage, max_current, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, now())`,
		"project-001", "panel A", "three-phase", 400.0, 100.0, "active",
	)
	require.NoError(t, err)

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM projects WHERE id = ?", "project-001").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// The boot DDL must create all three tables, not just projects.
	for _, table := range []string{"measurements", "diagnoses"} {
		err = db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	}
}
