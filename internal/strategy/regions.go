package strategy

import "KillZone/internal/model"

// bounds are the thresholds the decision function compares against.
type bounds struct {
	assets   float64 // A-s
	lowCost  float64 // F(YN)c, or F(ACQ)c with acquisitions
	highCost float64 // F(YN)s, or F(ACQ)s with acquisitions
	copyCost float64 // F(YY)s
}

func boundsFor(a model.AssetThresholds, c model.CopyingCostThresholds) bounds {
	b := bounds{
		assets:   a.SubstituteCopied,
		lowCost:  c.YNComplement,
		highCost: c.YNSubstitute,
		copyCost: c.YYSubstitute,
	}
	if c.HasAcquisition {
		b.lowCost = c.AcquisitionComplement
		b.highCost = c.AcquisitionSubstitute
	}
	return b
}

// classify evaluates the branches in order; ties resolve to the earlier branch.
func (b bounds) classify(assets, cost float64) model.Region {
	constrained := assets < b.assets
	switch {
	case constrained && b.lowCost <= cost && cost <= b.highCost:
		return model.RegionKillZone
	case constrained && cost <= b.lowCost:
		return model.RegionIndifferentCopy
	case cost <= b.copyCost:
		return model.RegionSubstituteCopy
	default:
		return model.RegionSubstituteRefrain
	}
}

// outcome maps a region to the equilibrium path when the incumbent observes the entrant's choice.
func outcome(r model.Region) model.Choice {
	switch r {
	case model.RegionKillZone:
		// The entrant settles for a complement so that copying does not pay.
		return model.Choice{
			Region:      r,
			Entrant:     model.EntrantComplement,
			Incumbent:   model.IncumbentRefrain,
			Development: model.DevelopmentSuccess,
		}
	case model.RegionIndifferentCopy:
		return model.Choice{
			Region:      r,
			Entrant:     model.EntrantIndifferent,
			Incumbent:   model.IncumbentCopy,
			Development: model.DevelopmentFailure,
		}
	case model.RegionSubstituteCopy:
		return model.Choice{
			Region:      r,
			Entrant:     model.EntrantSubstitute,
			Incumbent:   model.IncumbentCopy,
			Development: model.DevelopmentSuccess,
		}
	default:
		return model.Choice{
			Region:      model.RegionSubstituteRefrain,
			Entrant:     model.EntrantSubstitute,
			Incumbent:   model.IncumbentRefrain,
			Development: model.DevelopmentSuccess,
		}
	}
}

// withoutKillZone applies the unobservable delta: a complement cannot deter copying
// the incumbent cannot condition on, so the entrant tries a substitute, is copied and fails.
func withoutKillZone(c model.Choice) model.Choice {
	if c.Region != model.RegionKillZone {
		return c
	}
	c.Entrant = model.EntrantSubstitute
	c.Incumbent = model.IncumbentCopy
	c.Development = model.DevelopmentFailure
	return c
}

// acquisitionOutcome: a developed substitute is bought out, everything else stays apart.
func acquisitionOutcome(c model.Choice) model.AcquisitionOutcome {
	if c.Entrant == model.EntrantSubstitute && c.Development == model.DevelopmentSuccess {
		return model.AcquisitionMerged
	}
	return model.AcquisitionApart
}
