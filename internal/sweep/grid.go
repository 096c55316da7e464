package sweep

import (
	"fmt"
	"math"

	"KillZone/internal/strategy"
)

// extentFactor widens the map past the largest threshold on each axis.
const extentFactor = 1.3

// MaxPoints caps the number of points a single grid may hold.
const MaxPoints = 10_000_000

// Grid is a rectangle of the (assets, copying cost) plane sampled at evenly
// spaced points. Steps count points per axis, both ends included.
type Grid struct {
	AssetsMin   float64 `json:"assets_min"`
	AssetsMax   float64 `json:"assets_max"`
	AssetsSteps int     `json:"assets_steps"`
	CostMin     float64 `json:"cost_min"`
	CostMax     float64 `json:"cost_max"`
	CostSteps   int     `json:"cost_steps"`
}

// DefaultGrid spans every threshold of m with some margin.
func DefaultGrid(m strategy.Model, assetsSteps, costSteps int) Grid {
	a := m.AssetValues()
	c := m.CopyingFixedCosts()

	lo, hi := 0.0, math.Inf(-1)
	for _, nv := range a.Labeled() {
		lo = math.Min(lo, nv.Value)
		hi = math.Max(hi, nv.Value)
	}
	hi *= extentFactor
	if hi <= lo {
		hi = lo + 1
	}

	costHi := c.YNSubstitute
	if c.HasAcquisition {
		costHi = math.Max(costHi, c.AcquisitionSubstitute)
	}
	costHi *= extentFactor
	if costHi <= 0 {
		costHi = 1
	}

	return Grid{
		AssetsMin:   lo,
		AssetsMax:   hi,
		AssetsSteps: assetsSteps,
		CostMin:     0,
		CostMax:     costHi,
		CostSteps:   costSteps,
	}
}

// Validate rejects empty, inverted or non-finite grids.
func (g Grid) Validate() error {
	for _, v := range []float64{g.AssetsMin, g.AssetsMax, g.CostMin, g.CostMax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("grid bounds must be finite")
		}
	}
	if g.AssetsSteps < 1 || g.CostSteps < 1 {
		return fmt.Errorf("grid steps must be positive, got %d x %d", g.AssetsSteps, g.CostSteps)
	}
	if g.AssetsSteps > MaxPoints/g.CostSteps {
		return fmt.Errorf("grid of %d x %d points exceeds %d", g.AssetsSteps, g.CostSteps, MaxPoints)
	}
	if g.AssetsMax < g.AssetsMin {
		return fmt.Errorf("assets max %.4f below min %.4f", g.AssetsMax, g.AssetsMin)
	}
	if g.CostMax < g.CostMin {
		return fmt.Errorf("cost max %.4f below min %.4f", g.CostMax, g.CostMin)
	}
	return nil
}

// Size is the number of points on the grid.
func (g Grid) Size() int {
	return g.AssetsSteps * g.CostSteps
}

// Asset returns the i-th asset coordinate.
func (g Grid) Asset(i int) float64 {
	return axis(g.AssetsMin, g.AssetsMax, g.AssetsSteps, i)
}

// Cost returns the j-th copying cost coordinate.
func (g Grid) Cost(j int) float64 {
	return axis(g.CostMin, g.CostMax, g.CostSteps, j)
}

func axis(lo, hi float64, steps, i int) float64 {
	if steps <= 1 {
		return lo
	}
	if i == steps-1 {
		return hi
	}
	return lo + (hi-lo)*float64(i)/float64(steps-1)
}
