package strategy

import (
	"math"

	"KillZone/internal/model"
)

// acquisitionTolerance absorbs rounding when F(ACQ)c and F(YY)c coincide.
const acquisitionTolerance = 1e-9

type namedValue struct {
	name string
	v    float64
}

// Validate checks the preconditions of the model described by f.
func Validate(p model.Parameters, f Features) error {
	f = f.normalized()
	if f.TwoSided && f.Bargaining {
		return violation(RuleFeatures, "the two-sided model has no bargaining share")
	}

	values := []namedValue{
		{"u", p.U},
		{"B", p.B},
		{"small_delta", p.SmallDelta},
		{"delta", p.Delta},
		{"K", p.K},
	}
	if f.Bargaining {
		values = append(values, namedValue{"beta", p.Beta})
	}
	for _, x := range values {
		if math.IsNaN(x.v) || math.IsInf(x.v, 0) {
			return violation(RuleFinite, "%s=%v", x.name, x.v)
		}
	}

	if p.U <= 0 {
		return violation(RulePositiveUtility, "u=%v", p.U)
	}
	if p.SmallDelta <= 0 {
		return violation(RulePositiveComplement, "small_delta=%v", p.SmallDelta)
	}
	// A1b: small_delta/2 < delta < 3*small_delta/2
	if !(p.SmallDelta/2 < p.Delta && p.Delta < 3*p.SmallDelta/2) {
		return violation(RuleA1b, "need %v < delta < %v, got delta=%v", p.SmallDelta/2, 3*p.SmallDelta/2, p.Delta)
	}
	// A2: K < small_delta/2
	if !(p.K >= 0 && p.K < p.SmallDelta/2) {
		return violation(RuleA2, "need 0 <= K < %v, got K=%v", p.SmallDelta/2, p.K)
	}
	if f.Bargaining && !(p.Beta > 0 && p.Beta < 1) {
		return violation(RuleBeta, "need 0 < beta < 1, got beta=%v", p.Beta)
	}
	if f.Acquisition && !(p.Delta < p.U) {
		return violation(RuleAcquisitionDelta, "delta=%v, u=%v", p.Delta, p.U)
	}
	if f.TwoSided && !(p.SmallDelta < p.U) {
		return violation(RuleTwoSided, "small_delta=%v, u=%v", p.SmallDelta, p.U)
	}
	return nil
}

func validateAcquisitionCosts(c model.CopyingCostThresholds) error {
	if c.AcquisitionComplement > c.YYComplement+acquisitionTolerance {
		return violation(RuleAcquisitionCost, "F(ACQ)c=%v > F(YY)c=%v", c.AcquisitionComplement, c.YYComplement)
	}
	return nil
}
