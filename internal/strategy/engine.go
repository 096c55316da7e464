package strategy

import (
	"KillZone/internal/calculator"
	"KillZone/internal/model"
)

// Model is the query surface shared by every variant.
type Model interface {
	Variant() model.Variant
	Parameters() model.Parameters
	AssetValues() model.AssetThresholds
	CopyingFixedCosts() model.CopyingCostThresholds
	Payoffs() model.PayoffTable
	Region(assets, cost float64) model.Region
	OptimalChoice(assets, cost float64) model.Choice
}

// Features selects the deltas applied on top of the base model.
// Unobservable and Acquisition are defined on the bargaining formulas and imply Bargaining.
// TwoSided uses the base formulas and cannot be combined with Bargaining.
type Features struct {
	Bargaining   bool
	Unobservable bool
	Acquisition  bool
	TwoSided     bool
}

// FeaturesFor returns the feature set of a named variant.
func FeaturesFor(v model.Variant) Features {
	switch v {
	case model.VariantBargaining:
		return Features{Bargaining: true}
	case model.VariantUnobservable:
		return Features{Bargaining: true, Unobservable: true}
	case model.VariantAcquisition:
		return Features{Bargaining: true, Acquisition: true}
	case model.VariantTwoSided:
		return Features{TwoSided: true}
	default:
		return Features{}
	}
}

func (f Features) normalized() Features {
	if f.Unobservable || f.Acquisition {
		f.Bargaining = true
	}
	return f
}

// Variant names the most specific variant the feature set corresponds to.
func (f Features) Variant() model.Variant {
	f = f.normalized()
	switch {
	case f.Acquisition:
		return model.VariantAcquisition
	case f.Unobservable:
		return model.VariantUnobservable
	case f.Bargaining:
		return model.VariantBargaining
	case f.TwoSided:
		return model.VariantTwoSided
	default:
		return model.VariantBase
	}
}

// formulas computes the derived tables of one family of models.
type formulas interface {
	assets(p model.Parameters) model.AssetThresholds
	costs(p model.Parameters) model.CopyingCostThresholds
	payoffs(p model.Parameters) model.PayoffTable
}

type baseFormulas struct{}

func (baseFormulas) assets(p model.Parameters) model.AssetThresholds {
	return calculator.BaseAssets(p)
}

func (baseFormulas) costs(p model.Parameters) model.CopyingCostThresholds {
	return calculator.BaseCopyingCosts(p)
}

func (baseFormulas) payoffs(p model.Parameters) model.PayoffTable {
	return calculator.BasePayoffs(p)
}

type bargainingFormulas struct {
	acquisition bool
}

func (bargainingFormulas) assets(p model.Parameters) model.AssetThresholds {
	return calculator.BargainingAssets(p)
}

func (f bargainingFormulas) costs(p model.Parameters) model.CopyingCostThresholds {
	if f.acquisition {
		return calculator.AcquisitionCopyingCosts(p)
	}
	return calculator.BargainingCopyingCosts(p)
}

func (bargainingFormulas) payoffs(p model.Parameters) model.PayoffTable {
	return calculator.BargainingPayoffs(p)
}

func formulasFor(f Features) formulas {
	if f.Bargaining {
		return bargainingFormulas{acquisition: f.Acquisition}
	}
	return baseFormulas{}
}

// Game is a validated model with its thresholds and payoffs computed once.
// It is never mutated after New returns and is safe for concurrent use.
type Game struct {
	params   model.Parameters
	features Features
	assets   model.AssetThresholds
	costs    model.CopyingCostThresholds
	payoffs  model.PayoffTable
	bounds   bounds
}

// New validates the parameters and builds the model described by f.
func New(p model.Parameters, f Features) (*Game, error) {
	f = f.normalized()
	if err := Validate(p, f); err != nil {
		return nil, err
	}

	calc := formulasFor(f)
	g := &Game{
		params:   p,
		features: f,
		assets:   calc.assets(p),
		costs:    calc.costs(p),
		payoffs:  calc.payoffs(p),
	}
	if f.Acquisition {
		if err := validateAcquisitionCosts(g.costs); err != nil {
			return nil, err
		}
	}
	g.bounds = boundsFor(g.assets, g.costs)
	return g, nil
}

// NewVariant builds a named variant.
func NewVariant(v model.Variant, p model.Parameters) (*Game, error) {
	return New(p, FeaturesFor(v))
}

// NewBase builds the base model. Beta is ignored.
func NewBase(p model.Parameters) (*Game, error) {
	return New(p, Features{})
}

// NewBargaining builds the model in which the incumbent captures a share beta of complement profits.
func NewBargaining(p model.Parameters) (*Game, error) {
	return NewVariant(model.VariantBargaining, p)
}

// NewUnobservable builds the bargaining model in which the incumbent cannot observe the entrant's choice.
func NewUnobservable(p model.Parameters) (*Game, error) {
	return NewVariant(model.VariantUnobservable, p)
}

// NewAcquisition builds the bargaining model in which the incumbent may acquire the entrant.
func NewAcquisition(p model.Parameters) (*Game, error) {
	return NewVariant(model.VariantAcquisition, p)
}

// NewTwoSided builds the two-sided market model.
func NewTwoSided(p model.Parameters) (*Game, error) {
	return NewVariant(model.VariantTwoSided, p)
}

func (g *Game) Variant() model.Variant { return g.features.Variant() }

func (g *Game) Features() Features { return g.features }

func (g *Game) Parameters() model.Parameters { return g.params }

// AssetValues returns the entrant's asset thresholds.
func (g *Game) AssetValues() model.AssetThresholds { return g.assets }

// CopyingFixedCosts returns the incumbent's copying cost thresholds.
func (g *Game) CopyingFixedCosts() model.CopyingCostThresholds { return g.costs }

// Payoffs returns the payoffs of every market configuration.
func (g *Game) Payoffs() model.PayoffTable { return g.payoffs }

// Region classifies a pair of entrant assets and copying cost.
func (g *Game) Region(assets, cost float64) model.Region {
	return g.bounds.classify(assets, cost)
}

// OptimalChoice returns the equilibrium path for the entrant's assets and the
// incumbent's fixed cost of copying. Every pair of reals maps to exactly one outcome.
func (g *Game) OptimalChoice(assets, cost float64) model.Choice {
	c := outcome(g.Region(assets, cost))
	if g.features.Unobservable {
		c = withoutKillZone(c)
	}
	if g.features.Acquisition {
		c.Acquisition = acquisitionOutcome(c)
	}
	return c
}
