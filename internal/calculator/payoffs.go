package calculator

import "KillZone/internal/model"

// BasePayoffs computes the payoffs of every market configuration in the base model,
// where the complement's surplus is split evenly.
func BasePayoffs(p model.Parameters) model.PayoffTable {
	u, d, D := p.U, p.SmallDelta, p.Delta
	return model.PayoffTable{
		Basic:                   model.NewPayoff(u+d/2, d/2, 0),
		Copied:                  model.NewPayoff(u+d, 0, 0),
		EntrantPrimary:          model.NewPayoff(0, D+d, u),
		CopiedEntrantPrimary:    model.NewPayoff(0, D, u+d),
		EntrantComplement:       model.NewPayoff(u+d, d, 0),
		CopiedEntrantComplement: model.NewPayoff(u+3*d/2, d/2, 0),
	}
}

// BargainingPayoffs computes the payoffs when the incumbent keeps a share beta of
// every entrant complement sold through its platform. Only the split changes;
// welfare of each configuration is the same as in the base model.
func BargainingPayoffs(p model.Parameters) model.PayoffTable {
	t := BasePayoffs(p)
	u, d, b := p.U, p.SmallDelta, p.Beta
	t.Basic = model.NewPayoff(u+b*d, (1-b)*d, 0)
	t.EntrantComplement = model.NewPayoff(u+2*b*d, 2*(1-b)*d, 0)
	t.CopiedEntrantComplement = model.NewPayoff(u+d+b*d, (1-b)*d, 0)
	return t
}
