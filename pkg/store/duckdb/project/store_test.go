package project

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/drors3/NaturalSignals-WireScope/pkg/models/store"
	"github.com/drors3/NaturalSignals-WireScope/pkg/store/duckdb"
	_ "github.com/marcboeker/go-duckdb/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	db    *sql.DB
	store Store
}

func setupFixture(t *testing.T) *fixture {
	db, err := duckdb.NewDB(duckdb.Settings{DbPath: ":memory:"})
	require.NoError(t, err)

	s, err := NewStore(db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return &fixture{db: db, store: s}
}

func sampleProject(id string) store.ProjectRecord {
	return store.ProjectRecord{
		ID:             id,
		Name:           "site " + id,
		SystemType:     "three-phase",
		NominalVoltage: 400,
		MaxCurrent:     125,
		Status:         "active",
		CreatedAt:      time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
	}
}

func TestNewStore_NilDB(t *testing.T) {
	s, err := NewStore(nil)
	assert.Error(t, err)
	assert.Nil(t, s)
}

func TestProjectStore_AddAndGet(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	record := sampleProject("prj-1")
	require.NoError(t, f.store.Add(ctx, record))

	got, err := f.store.Get(ctx, "prj-1")
	require.NoError(t, err)
	assert.Equal(t, record.Name, got.Name)
	assert.Equal(t, record.SystemType, got.SystemType)
	assert.Equal(t, record.NominalVoltage, got.NominalVoltage)
	assert.Equal(t, record.MaxCurrent, got.MaxCurrent)
}

func TestProjectStore_GetNotFound(t *testing.T) {
	f := setupFixture(t)

	_, err := f.store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectStore_AddInTransaction_Rollback(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	tx, err := f.db.BeginTx(ctx, nil)
	require.NoError(t, err)

	txCtx := duckdb.WithTransaction(ctx, tx)
	require.NoError(t, f.store.Add(txCtx, sampleProject("prj-tx")))
	require.NoError(t, tx.Rollback())

	_, err = f.store.Get(ctx, "prj-tx")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectStore_List(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	require.NoError(t, f.store.Add(ctx, sampleProject("prj-1")))
	second := sampleProject("prj-2")
	second.CreatedAt = second.CreatedAt.Add(time.Hour)
	require.NoError(t, f.store.Add(ctx, second))

	records, err := f.store.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "prj-1", records[0].ID)
	assert.Equal(t, "prj-2", records[1].ID)
}
