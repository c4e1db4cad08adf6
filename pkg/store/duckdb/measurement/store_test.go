package measurement

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

func f64(v float64) *float64 { return &v }

func TestMeasurementStore_AddAndGetHistory(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()
	base := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		record := store.MeasurementRecord{
			ID:        "m-" + string(rune('a'+i)),
			ProjectID: "prj-1",
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Readings: store.ReadingsDoc{
				PhaseA:      &store.PhaseDoc{Voltage: f64(398 + float64(i))},
				Temperature: f64(42.5),
				PowerFactor: f64(0.93),
			},
		}
		require.NoError(t, f.store.Add(ctx, record))
	}

	history, err := f.store.GetHistory(ctx, "prj-1", 10)
	require.NoError(t, err)
	require.Len(t, history, 3)

	// newest first
	assert.Equal(t, "m-c", history[0].ID)
	assert.Equal(t, "m-a", history[2].ID)

	require.NotNil(t, history[0].Readings.PhaseA)
	assert.InDelta(t, 400, *history[0].Readings.PhaseA.Voltage, 0.001)
	assert.Nil(t, history[0].Readings.PhaseB)
	require.NotNil(t, history[0].Readings.PowerFactor)
	assert.InDelta(t, 0.93, *history[0].Readings.PowerFactor, 0.001)
}

func TestMeasurementStore_GetHistoryLimit(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()
	base := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		require.NoError(t, f.store.Add(ctx, store.MeasurementRecord{
			ID:        "m-" + string(rune('a'+i)),
			ProjectID: "prj-1",
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	history, err := f.store.GetHistory(ctx, "prj-1", 2)
	require.NoError(t, err)
	assert.Len(t, history, 2)
	assert.Equal(t, "m-e", history[0].ID)
}

func TestMeasurementStore_GetHistoryEmpty(t *testing.T) {
	f := setupFixture(t)

	history, err := f.store.GetHistory(context.Background(), "unknown", 10)
	require.NoError(t, err)
	assert.Empty(t, history)
}
