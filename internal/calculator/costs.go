package calculator

import "KillZone/internal/model"

// BaseCopyingCosts computes the incumbent's copying cost thresholds of the base model.
func BaseCopyingCosts(p model.Parameters) model.CopyingCostThresholds {
	return model.CopyingCostThresholds{
		YYSubstitute: p.SmallDelta / 2,
		YNSubstitute: p.U + 3*p.SmallDelta/2,
		YYComplement: p.SmallDelta,
		YNComplement: p.SmallDelta / 2,
	}
}

// BargainingCopyingCosts computes the copying cost thresholds with bargaining power beta.
func BargainingCopyingCosts(p model.Parameters) model.CopyingCostThresholds {
	return model.CopyingCostThresholds{
		YYSubstitute: p.SmallDelta * (1 - p.Beta),
		YNSubstitute: p.U + p.SmallDelta*(2-p.Beta),
		YYComplement: 2 * p.SmallDelta * (1 - p.Beta),
		YNComplement: p.SmallDelta * (2 - 3*p.Beta),
	}
}

// AcquisitionCopyingCosts extends the bargaining thresholds with the bounds that
// apply once the incumbent may buy the entrant.
//
//	F(ACQ)s = (u + delta - K)/2 + small_delta*(2-beta)
//	F(ACQ)c = small_delta*(2.5-3*beta) - K/2
func AcquisitionCopyingCosts(p model.Parameters) model.CopyingCostThresholds {
	c := BargainingCopyingCosts(p)
	c.AcquisitionSubstitute = (p.U+p.Delta-p.K)/2 + p.SmallDelta*(2-p.Beta)
	c.AcquisitionComplement = p.SmallDelta*(2.5-3*p.Beta) - p.K/2
	c.HasAcquisition = true
	return c
}
