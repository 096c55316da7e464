package sweep

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"KillZone/internal/model"
	"KillZone/internal/recorder"
	"KillZone/internal/strategy"
)

// Point is one evaluated point of the map.
type Point struct {
	Assets float64      `json:"assets"`
	Cost   float64      `json:"cost"`
	Choice model.Choice `json:"choice"`
}

// Result is a completed sweep. Points are ordered by asset index, then cost index.
// KillZone counts points whose equilibrium is the kill zone; RegionCounts
// counts the geometric regions, which the unobservable variant resolves
// differently.
type Result struct {
	RunID        string               `json:"run_id"`
	Variant      model.Variant        `json:"variant"`
	Grid         Grid                 `json:"grid"`
	Points       []Point              `json:"-"`
	KillZone     int                  `json:"kill_zone"`
	RegionCounts map[model.Region]int `json:"region_counts"`
	Duration     time.Duration        `json:"duration"`
}

// KillZoneShare returns the fraction of the map where the equilibrium is the kill zone.
func (r *Result) KillZoneShare() float64 {
	if len(r.Points) == 0 {
		return 0
	}
	return float64(r.KillZone) / float64(len(r.Points))
}

// RegionShare returns the fraction of the map covered by a geometric region.
func (r *Result) RegionShare(region model.Region) float64 {
	if len(r.Points) == 0 {
		return 0
	}
	return float64(r.RegionCounts[region]) / float64(len(r.Points))
}

// Runner evaluates equilibrium maps of one model.
type Runner struct {
	Model    strategy.Model
	Recorder recorder.Recorder
	Logger   *zap.Logger
	Workers  int
}

// NewRunner creates a Runner. A nil recorder or logger disables that output.
func NewRunner(m strategy.Model, rec recorder.Recorder, logger *zap.Logger, workers int) *Runner {
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if workers < 1 {
		workers = 1
	}
	return &Runner{
		Model:    m,
		Recorder: rec,
		Logger:   logger,
		Workers:  workers,
	}
}

// Run evaluates every point of g and records the run. A failed or canceled
// run records nothing.
func (r *Runner) Run(ctx context.Context, g Grid) (*Result, error) {
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("invalid grid: %w", err)
	}

	start := time.Now()
	runID := uuid.NewString()
	log := r.Logger.With(
		zap.String("run_id", runID),
		zap.String("variant", string(r.Model.Variant())),
	)

	assets := r.Model.AssetValues()
	if !assets.Ordered() {
		log.Warn("asset thresholds are not in the documented order",
			zap.Float64("A_s", assets.Substitute),
			zap.Float64("A_c", assets.Complement),
			zap.Float64("A-s", assets.SubstituteCopied),
			zap.Float64("A-c", assets.ComplementCopied),
		)
	}

	log.Info("sweep started",
		zap.Int("assets_steps", g.AssetsSteps),
		zap.Int("cost_steps", g.CostSteps),
		zap.Int("workers", r.Workers),
	)

	points := make([]Point, g.Size())
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(r.Workers)
	for i := 0; i < g.AssetsSteps; i++ {
		if egCtx.Err() != nil {
			break
		}
		row := i
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			a := g.Asset(row)
			base := row * g.CostSteps
			for j := 0; j < g.CostSteps; j++ {
				f := g.Cost(j)
				points[base+j] = Point{Assets: a, Cost: f, Choice: r.Model.OptimalChoice(a, f)}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Warn("sweep aborted", zap.Error(err))
		return nil, fmt.Errorf("sweep: %w", err)
	}
	if err := ctx.Err(); err != nil {
		log.Warn("sweep aborted", zap.Error(err))
		return nil, fmt.Errorf("sweep: %w", err)
	}

	counts := make(map[model.Region]int, len(model.Regions))
	for _, region := range model.Regions {
		counts[region] = 0
	}
	killZone := 0
	events := make([]recorder.PointEvent, len(points))
	for k, p := range points {
		counts[p.Choice.Region]++
		if p.Choice.KillZone() {
			killZone++
		}
		events[k] = recorder.PointEvent{Assets: p.Assets, Cost: p.Cost, Choice: p.Choice}
	}

	res := &Result{
		RunID:        runID,
		Variant:      r.Model.Variant(),
		Grid:         g,
		Points:       points,
		KillZone:     killZone,
		RegionCounts: counts,
		Duration:     time.Since(start),
	}

	if err := r.Recorder.RecordRun(&recorder.ModelSnapshot{
		RunID:      runID,
		Variant:    r.Model.Variant(),
		Parameters: r.Model.Parameters(),
		Assets:     assets,
		Costs:      r.Model.CopyingFixedCosts(),
		Payoffs:    r.Model.Payoffs(),
	}, events, &recorder.SweepSummary{
		RunID:        runID,
		Points:       len(points),
		KillZone:     killZone,
		RegionCounts: counts,
		Duration:     res.Duration,
	}); err != nil {
		return nil, fmt.Errorf("record run: %w", err)
	}

	log.Info("sweep finished",
		zap.Int("points", len(points)),
		zap.Int("kill_zone", killZone),
		zap.Float64("kill_zone_share", res.KillZoneShare()),
		zap.Duration("elapsed", res.Duration),
	)
	return res, nil
}
