package model

// Paper labels of the thresholds.
const (
	LabelAs  = "A_s"
	LabelAc  = "A_c"
	LabelAbs = "A-s"
	LabelAbc = "A-c"

	LabelFYYs  = "F(YY)s"
	LabelFYNs  = "F(YN)s"
	LabelFYYc  = "F(YY)c"
	LabelFYNc  = "F(YN)c"
	LabelFACQs = "F(ACQ)s"
	LabelFACQc = "F(ACQ)c"
)

// NamedValue pairs a paper label with its value.
type NamedValue struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// AssetThresholds are the asset levels at which the entrant obtains funding.
type AssetThresholds struct {
	Substitute       float64 `json:"A_s"` // substitute, complement not copied
	Complement       float64 `json:"A_c"` // complement, complement not copied
	SubstituteCopied float64 `json:"A-s"` // substitute after copying
	ComplementCopied float64 `json:"A-c"` // complement after copying
}

// Labeled returns the thresholds in paper order.
func (a AssetThresholds) Labeled() []NamedValue {
	return []NamedValue{
		{LabelAs, a.Substitute},
		{LabelAc, a.Complement},
		{LabelAbs, a.SubstituteCopied},
		{LabelAbc, a.ComplementCopied},
	}
}

// Ordered reports whether A_s <= A_c <= A-c and A_s <= A-s.
// Extreme bargaining shares can break A_s <= A_c; the decision function does not rely on it.
func (a AssetThresholds) Ordered() bool {
	return a.Substitute <= a.Complement &&
		a.Complement <= a.ComplementCopied &&
		a.Substitute <= a.SubstituteCopied
}

// CopyingCostThresholds are the fixed costs of copying at which the incumbent's choice flips.
// YY: the entrant is funded whether or not it is copied; YN: only if it is not copied.
type CopyingCostThresholds struct {
	YYSubstitute float64 `json:"F(YY)s"`
	YNSubstitute float64 `json:"F(YN)s"`
	YYComplement float64 `json:"F(YY)c"`
	YNComplement float64 `json:"F(YN)c"`

	AcquisitionSubstitute float64 `json:"F(ACQ)s,omitempty"`
	AcquisitionComplement float64 `json:"F(ACQ)c,omitempty"`
	HasAcquisition        bool    `json:"-"`
}

// Labeled returns the thresholds in paper order. The acquisition pair is only
// present for models that allow acquisitions.
func (c CopyingCostThresholds) Labeled() []NamedValue {
	out := []NamedValue{
		{LabelFYYs, c.YYSubstitute},
		{LabelFYNs, c.YNSubstitute},
		{LabelFYYc, c.YYComplement},
		{LabelFYNc, c.YNComplement},
	}
	if c.HasAcquisition {
		out = append(out,
			NamedValue{LabelFACQs, c.AcquisitionSubstitute},
			NamedValue{LabelFACQc, c.AcquisitionComplement},
		)
	}
	return out
}
