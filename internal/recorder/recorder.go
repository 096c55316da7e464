package recorder

import (
	"time"

	"KillZone/internal/model"
)

// ModelSnapshot holds a built model's parameters and derived tables.
type ModelSnapshot struct {
	RunID      string
	Variant    model.Variant
	Parameters model.Parameters
	Assets     model.AssetThresholds
	Costs      model.CopyingCostThresholds
	Payoffs    model.PayoffTable
}

// PointEvent is one evaluated point of an equilibrium map.
type PointEvent struct {
	Assets float64
	Cost   float64
	Choice model.Choice
}

// SweepSummary closes a sweep run. KillZone counts equilibrium kill zone
// points; RegionCounts counts the geometric regions of the plane.
type SweepSummary struct {
	RunID        string
	Points       int
	KillZone     int
	RegionCounts map[model.Region]int
	Duration     time.Duration
}

// Recorder persists sweep runs for later analysis. A run is stored
// completely or not at all.
type Recorder interface {
	RecordRun(snap *ModelSnapshot, points []PointEvent, sum *SweepSummary) error
	Close() error
}
