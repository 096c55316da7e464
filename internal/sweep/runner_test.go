package sweep

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"KillZone/internal/model"
	"KillZone/internal/recorder"
	"KillZone/internal/strategy"
)

type fakeRecorder struct {
	mu      sync.Mutex
	models  []*recorder.ModelSnapshot
	points  map[string][]recorder.PointEvent
	summary []*recorder.SweepSummary
	err     error
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{points: map[string][]recorder.PointEvent{}}
}

func (f *fakeRecorder) RecordRun(snap *recorder.ModelSnapshot, points []recorder.PointEvent, sum *recorder.SweepSummary) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.models = append(f.models, snap)
	f.points[snap.RunID] = append(f.points[snap.RunID], points...)
	f.summary = append(f.summary, sum)
	return nil
}

func (f *fakeRecorder) Close() error { return nil }

func mustModel(t *testing.T, v model.Variant) *strategy.Game {
	t.Helper()
	g, err := strategy.NewVariant(v, model.DefaultParameters())
	require.NoError(t, err)
	return g
}

func TestGrid_Coordinates(t *testing.T) {
	g := Grid{AssetsMin: -1, AssetsMax: 1, AssetsSteps: 5, CostMin: 0, CostMax: 2, CostSteps: 1}
	require.NoError(t, g.Validate())
	assert.Equal(t, 5, g.Size())

	assert.Equal(t, -1.0, g.Asset(0))
	assert.InDelta(t, -0.5, g.Asset(1), 1e-12)
	assert.InDelta(t, 0.0, g.Asset(2), 1e-12)
	assert.Equal(t, 1.0, g.Asset(4))
	assert.Equal(t, 0.0, g.Cost(0))
}

func TestGrid_Validate(t *testing.T) {
	ok := Grid{AssetsMax: 1, AssetsSteps: 2, CostMax: 1, CostSteps: 2}
	require.NoError(t, ok.Validate())

	tests := []struct {
		name string
		edit func(g *Grid)
	}{
		{"no asset steps", func(g *Grid) { g.AssetsSteps = 0 }},
		{"negative cost steps", func(g *Grid) { g.CostSteps = -3 }},
		{"inverted assets", func(g *Grid) { g.AssetsMin = 2 }},
		{"inverted cost", func(g *Grid) { g.CostMin = 2 }},
		{"product overflows int", func(g *Grid) { g.AssetsSteps, g.CostSteps = 1<<32, 1<<32 }},
		{"too many points", func(g *Grid) { g.AssetsSteps, g.CostSteps = MaxPoints, 2 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := ok
			tt.edit(&g)
			assert.Error(t, g.Validate())
		})
	}
}

func TestDefaultGrid_CoversThresholds(t *testing.T) {
	for _, v := range model.Variants {
		t.Run(string(v), func(t *testing.T) {
			m := mustModel(t, v)
			g := DefaultGrid(m, 10, 20)
			require.NoError(t, g.Validate())
			assert.Equal(t, 200, g.Size())

			a := m.AssetValues()
			for _, nv := range a.Labeled() {
				assert.GreaterOrEqual(t, nv.Value, g.AssetsMin, nv.Label)
			}
			assert.Greater(t, g.AssetsMax, a.ComplementCopied)
			assert.Greater(t, g.AssetsMax, a.SubstituteCopied)

			for _, nv := range m.CopyingFixedCosts().Labeled() {
				assert.LessOrEqual(t, nv.Value, g.CostMax, nv.Label)
			}
			assert.Equal(t, 0.0, g.CostMin)
		})
	}
}

func TestRunner_Run(t *testing.T) {
	m := mustModel(t, model.VariantBase)
	rec := newFakeRecorder()
	g := Grid{AssetsMin: 0, AssetsMax: 0.4, AssetsSteps: 9, CostMin: 0, CostMax: 2, CostSteps: 41}

	res, err := NewRunner(m, rec, nil, 3).Run(context.Background(), g)
	require.NoError(t, err)

	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, model.VariantBase, res.Variant)
	require.Len(t, res.Points, g.Size())

	total := 0
	for _, region := range model.Regions {
		total += res.RegionCounts[region]
	}
	assert.Equal(t, g.Size(), total)
	assert.Greater(t, res.RegionCounts[model.RegionSubstituteRefrain], 0)
	assert.Greater(t, res.KillZone, 0)
	assert.Equal(t, res.RegionCounts[model.RegionKillZone], res.KillZone)

	for i := 0; i < g.AssetsSteps; i++ {
		for j := 0; j < g.CostSteps; j++ {
			p := res.Points[i*g.CostSteps+j]
			assert.Equal(t, g.Asset(i), p.Assets)
			assert.Equal(t, g.Cost(j), p.Cost)
			assert.Equal(t, m.OptimalChoice(p.Assets, p.Cost), p.Choice)
		}
	}

	require.Len(t, rec.models, 1)
	assert.Equal(t, res.RunID, rec.models[0].RunID)
	assert.Equal(t, m.CopyingFixedCosts(), rec.models[0].Costs)
	assert.Len(t, rec.points[res.RunID], g.Size())
	require.Len(t, rec.summary, 1)
	assert.Equal(t, g.Size(), rec.summary[0].Points)
	assert.Equal(t, res.KillZone, rec.summary[0].KillZone)
	assert.Equal(t, res.RegionCounts, rec.summary[0].RegionCounts)
}

func TestRunner_UnobservableHasNoKillZone(t *testing.T) {
	m := mustModel(t, model.VariantUnobservable)
	res, err := NewRunner(m, nil, nil, 4).Run(context.Background(), DefaultGrid(m, 30, 30))
	require.NoError(t, err)

	for _, p := range res.Points {
		assert.False(t, p.Choice.KillZone())
	}
	assert.Equal(t, 0, res.KillZone)
	assert.Equal(t, 0.0, res.KillZoneShare())
	// The region where the zone would sit under observability is still reported.
	assert.Greater(t, res.RegionCounts[model.RegionKillZone], 0)
}

func TestRunner_AcquisitionOutcomes(t *testing.T) {
	m := mustModel(t, model.VariantAcquisition)
	res, err := NewRunner(m, nil, nil, 2).Run(context.Background(), DefaultGrid(m, 25, 25))
	require.NoError(t, err)

	for _, p := range res.Points {
		assert.NotEmpty(t, p.Choice.Acquisition)
	}
}

func TestRunner_CanceledContext(t *testing.T) {
	m := mustModel(t, model.VariantBase)
	rec := newFakeRecorder()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(m, rec, nil, 2).Run(ctx, DefaultGrid(m, 50, 50))
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, rec.models)
	assert.Empty(t, rec.points)
	assert.Empty(t, rec.summary)
}

func TestRunner_Errors(t *testing.T) {
	m := mustModel(t, model.VariantBase)

	_, err := NewRunner(m, nil, nil, 1).Run(context.Background(), Grid{})
	assert.Error(t, err)

	_, err = NewRunner(m, nil, nil, 1).Run(context.Background(), Grid{AssetsMax: 1, AssetsSteps: 1 << 32, CostMax: 1, CostSteps: 1 << 32})
	assert.Error(t, err)

	rec := newFakeRecorder()
	rec.err = errors.New("disk full")
	_, err = NewRunner(m, rec, nil, 1).Run(context.Background(), DefaultGrid(m, 2, 2))
	assert.ErrorIs(t, err, rec.err)
}

func TestResult_Shares(t *testing.T) {
	r := &Result{}
	assert.Equal(t, 0.0, r.KillZoneShare())
	assert.Equal(t, 0.0, r.RegionShare(model.RegionKillZone))

	r = &Result{
		Points:       make([]Point, 4),
		KillZone:     0,
		RegionCounts: map[model.Region]int{model.RegionKillZone: 1, model.RegionSubstituteRefrain: 3},
	}
	assert.Equal(t, 0.0, r.KillZoneShare())
	assert.Equal(t, 0.25, r.RegionShare(model.RegionKillZone))
	assert.Equal(t, 0.75, r.RegionShare(model.RegionSubstituteRefrain))
}

func TestRunner_RecordsToSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	rec, err := recorder.NewSQLiteRecorder(path, nil)
	require.NoError(t, err)
	defer rec.Close()

	m := mustModel(t, model.VariantUnobservable)
	res, err := NewRunner(m, rec, nil, 2).Run(context.Background(), DefaultGrid(m, 12, 12))
	require.NoError(t, err)
	assert.Equal(t, 0, res.KillZone)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewRunner(m, rec, nil, 2).Run(ctx, DefaultGrid(m, 12, 12))
	require.Error(t, err)

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var models, payoffs, points int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM models`).Scan(&models))
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM payoffs`).Scan(&payoffs))
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM sweep_points`).Scan(&points))
	assert.Equal(t, 1, models)
	assert.Equal(t, len(model.Configs()), payoffs)
	assert.Equal(t, 144, points)

	var kill, regionKill int
	require.NoError(t, db.QueryRow(`SELECT kill_zone, region_kill_zone FROM sweep_summaries WHERE run_id = ?`, res.RunID).
		Scan(&kill, &regionKill))
	assert.Equal(t, 0, kill)
	assert.Equal(t, res.RegionCounts[model.RegionKillZone], regionKill)
}
