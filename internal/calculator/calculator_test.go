package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"KillZone/internal/model"
)

const eps = 1e-12

func TestBaseAssets_Defaults(t *testing.T) {
	a := BaseAssets(model.DefaultParameters())

	assert.InDelta(t, 0.5-(0.51+0.75-0.2), a.Substitute, eps)
	assert.InDelta(t, 0.5-(0.75-0.2), a.Complement, eps)
	assert.InDelta(t, 0.19, a.SubstituteCopied, eps)
	assert.InDelta(t, 0.45, a.ComplementCopied, eps)
	assert.True(t, a.Ordered())
}

func TestBaseCopyingCosts_Defaults(t *testing.T) {
	c := BaseCopyingCosts(model.DefaultParameters())

	assert.InDelta(t, 0.25, c.YYSubstitute, eps)
	assert.InDelta(t, 1.75, c.YNSubstitute, eps)
	assert.InDelta(t, 0.5, c.YYComplement, eps)
	assert.InDelta(t, 0.25, c.YNComplement, eps)
	assert.False(t, c.HasAcquisition)
	assert.Len(t, c.Labeled(), 4)
}

func TestBargaining_HalfShareMatchesBase(t *testing.T) {
	params := []model.Parameters{
		model.DefaultParameters(),
		{U: 2, B: 1, SmallDelta: 0.4, Delta: 0.3, K: 0.1, Beta: 0.5},
		{U: 0.7, B: -0.2, SmallDelta: 1, Delta: 1.2, K: 0, Beta: 0.5},
	}
	for _, p := range params {
		base, barg := BaseAssets(p), BargainingAssets(p)
		assert.InDelta(t, base.Substitute, barg.Substitute, eps)
		assert.InDelta(t, base.Complement, barg.Complement, eps)
		assert.InDelta(t, base.SubstituteCopied, barg.SubstituteCopied, eps)
		assert.InDelta(t, base.ComplementCopied, barg.ComplementCopied, eps)

		bc, gc := BaseCopyingCosts(p), BargainingCopyingCosts(p)
		assert.InDelta(t, bc.YYSubstitute, gc.YYSubstitute, eps)
		assert.InDelta(t, bc.YNSubstitute, gc.YNSubstitute, eps)
		assert.InDelta(t, bc.YYComplement, gc.YYComplement, eps)
		assert.InDelta(t, bc.YNComplement, gc.YNComplement, eps)

		bp, gp := BasePayoffs(p), BargainingPayoffs(p)
		for _, cfg := range model.Configs() {
			want, _ := bp.Get(cfg)
			got, _ := gp.Get(cfg)
			assert.InDelta(t, want.Incumbent, got.Incumbent, eps, cfg)
			assert.InDelta(t, want.Entrant, got.Entrant, eps, cfg)
		}
	}
}

func TestBargainingCopyingCosts(t *testing.T) {
	p := model.DefaultParameters()
	p.Beta = 0.6
	c := BargainingCopyingCosts(p)

	assert.InDelta(t, 0.2, c.YYSubstitute, eps)
	assert.InDelta(t, 1.7, c.YNSubstitute, eps)
	assert.InDelta(t, 0.4, c.YYComplement, eps)
	assert.InDelta(t, 0.1, c.YNComplement, 1e-9)
}

func TestAcquisitionCopyingCosts(t *testing.T) {
	c := AcquisitionCopyingCosts(model.DefaultParameters())

	assert.True(t, c.HasAcquisition)
	assert.InDelta(t, 1.405, c.AcquisitionSubstitute, 1e-9)
	assert.InDelta(t, 0.4, c.AcquisitionComplement, 1e-9)
	assert.LessOrEqual(t, c.AcquisitionComplement, c.YYComplement)

	labels := c.Labeled()
	assert.Len(t, labels, 6)
	assert.Equal(t, model.LabelFACQs, labels[4].Label)
	assert.Equal(t, model.LabelFACQc, labels[5].Label)
}

func TestBasePayoffs_Table(t *testing.T) {
	p := model.DefaultParameters()
	tab := BasePayoffs(p)
	u, d, D := p.U, p.SmallDelta, p.Delta

	tests := []struct {
		cfg                    model.MarketConfig
		incumbent, entrant, cs float64
		welfare                float64
	}{
		{model.ConfigBasic, u + d/2, d / 2, 0, u + d},
		{model.ConfigCopied, u + d, 0, 0, u + d},
		{model.ConfigEntrantPrimary, 0, D + d, u, u + D + d},
		{model.ConfigCopiedEntrantPrimary, 0, D, u + d, u + D + d},
		{model.ConfigEntrantComplement, u + d, d, 0, u + 2*d},
		{model.ConfigCopiedEntrantComplement, u + 3*d/2, d / 2, 0, u + 2*d},
	}
	for _, tt := range tests {
		got, ok := tab.Get(tt.cfg)
		assert.True(t, ok, tt.cfg)
		assert.InDelta(t, tt.incumbent, got.Incumbent, eps, tt.cfg)
		assert.InDelta(t, tt.entrant, got.Entrant, eps, tt.cfg)
		assert.InDelta(t, tt.cs, got.ConsumerSurplus, eps, tt.cfg)
		assert.InDelta(t, tt.welfare, got.Welfare, eps, tt.cfg)
	}

	_, ok := tab.Get("unknown")
	assert.False(t, ok)
}

func TestPayoffs_WelfareIsSumOfParts(t *testing.T) {
	for _, beta := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		p := model.DefaultParameters()
		p.Beta = beta
		for _, tab := range []model.PayoffTable{BasePayoffs(p), BargainingPayoffs(p)} {
			for _, cfg := range model.Configs() {
				pay, _ := tab.Get(cfg)
				assert.InDelta(t, pay.Incumbent+pay.Entrant+pay.ConsumerSurplus, pay.Welfare, eps, cfg)
			}
		}
	}
}

func TestBargainingPayoffs_OnlyRedistributes(t *testing.T) {
	for _, beta := range []float64{0.05, 0.25, 0.6, 0.95} {
		p := model.DefaultParameters()
		p.Beta = beta
		base, barg := BasePayoffs(p), BargainingPayoffs(p)
		for _, cfg := range model.Configs() {
			want, _ := base.Get(cfg)
			got, _ := barg.Get(cfg)
			assert.InDelta(t, want.Welfare, got.Welfare, eps, "beta=%v %s", beta, cfg)
			assert.InDelta(t, want.ConsumerSurplus, got.ConsumerSurplus, eps, "beta=%v %s", beta, cfg)
		}
		assert.InDelta(t, p.U+beta*p.SmallDelta, barg.Basic.Incumbent, eps)
		assert.InDelta(t, 2*(1-beta)*p.SmallDelta, barg.EntrantComplement.Entrant, eps)
	}
}
