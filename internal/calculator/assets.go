package calculator

import "KillZone/internal/model"

// BaseAssets computes the entrant's asset thresholds of the base model.
//
//	A_s = B - (delta + 3*small_delta/2 - K)
//	A_c = B - (3*small_delta/2 - K)
//	A-s = B - (delta - K)
//	A-c = B - (small_delta/2 - K)
func BaseAssets(p model.Parameters) model.AssetThresholds {
	return model.AssetThresholds{
		Substitute:       p.B - (p.Delta + 3*p.SmallDelta/2 - p.K),
		Complement:       p.B - (3*p.SmallDelta/2 - p.K),
		SubstituteCopied: p.B - (p.Delta - p.K),
		ComplementCopied: p.B - (p.SmallDelta/2 - p.K),
	}
}

// BargainingAssets computes the asset thresholds when the incumbent captures a
// share beta of the complement's profits.
//
//	A_s = K + B - delta - small_delta*(2-beta)
//	A_c = K + B - 3*small_delta*(1-beta)
//	A-s = K + B - delta
//	A-c = K + B - small_delta*(1-beta)
func BargainingAssets(p model.Parameters) model.AssetThresholds {
	return model.AssetThresholds{
		Substitute:       p.K + p.B - p.Delta - p.SmallDelta*(2-p.Beta),
		Complement:       p.K + p.B - 3*p.SmallDelta*(1-p.Beta),
		SubstituteCopied: p.K + p.B - p.Delta,
		ComplementCopied: p.K + p.B - p.SmallDelta*(1-p.Beta),
	}
}
