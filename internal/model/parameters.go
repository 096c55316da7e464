package model

import (
	"fmt"
	"strings"
)

// Parameters holds the primitives of the game. Values are fixed once a model is built.
type Parameters struct {
	U          float64 `json:"u"`           // utility from the primary product
	B          float64 `json:"B"`           // entrant's private benefit on failure
	SmallDelta float64 `json:"small_delta"` // utility from a complement
	Delta      float64 `json:"delta"`       // utility from a substitute relative to the primary product
	K          float64 `json:"K"`           // entrant's development cost
	Beta       float64 `json:"beta"`        // incumbent's bargaining share, bargaining variants only
}

// DefaultParameters returns the parameterisation used throughout the paper's figures.
func DefaultParameters() Parameters {
	return Parameters{
		U:          1,
		B:          0.5,
		SmallDelta: 0.5,
		Delta:      0.51,
		K:          0.2,
		Beta:       0.5,
	}
}

// Variant names one of the model specialisations.
type Variant string

const (
	VariantBase         Variant = "base"
	VariantBargaining   Variant = "bargaining"
	VariantUnobservable Variant = "unobservable"
	VariantAcquisition  Variant = "acquisition"
	VariantTwoSided     Variant = "two-sided"
)

// Variants lists every supported variant.
var Variants = []Variant{
	VariantBase,
	VariantBargaining,
	VariantUnobservable,
	VariantAcquisition,
	VariantTwoSided,
}

// ParseVariant resolves a variant name, case-insensitively.
func ParseVariant(s string) (Variant, error) {
	v := Variant(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Variants {
		if v == known {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown model variant %q", s)
}
