package model

// EntrantChoice is the product the entrant decides to develop.
type EntrantChoice string

const (
	EntrantComplement  EntrantChoice = "complement"
	EntrantSubstitute  EntrantChoice = "substitute"
	EntrantIndifferent EntrantChoice = "indifferent"
)

// IncumbentChoice is whether the incumbent copies the entrant's complement.
type IncumbentChoice string

const (
	IncumbentCopy    IncumbentChoice = "copy"
	IncumbentRefrain IncumbentChoice = "refrain"
)

// DevelopmentOutcome is whether the entrant's second product is developed.
type DevelopmentOutcome string

const (
	DevelopmentSuccess DevelopmentOutcome = "success"
	DevelopmentFailure DevelopmentOutcome = "failure"
)

// AcquisitionOutcome is whether incumbent and entrant end up merged.
type AcquisitionOutcome string

const (
	AcquisitionMerged AcquisitionOutcome = "merged"
	AcquisitionApart  AcquisitionOutcome = "apart"
)

// Region is an area of the (assets, copying cost) plane bounded by the thresholds.
type Region string

const (
	RegionIndifferentCopy   Region = "indifferent-copy"
	RegionSubstituteCopy    Region = "substitute-copy"
	RegionKillZone          Region = "kill-zone"
	RegionSubstituteRefrain Region = "substitute-refrain"
)

// Regions lists every region.
var Regions = []Region{
	RegionIndifferentCopy,
	RegionSubstituteCopy,
	RegionKillZone,
	RegionSubstituteRefrain,
}

// Choice is the equilibrium path at one point of the plane.
type Choice struct {
	Region      Region             `json:"region"`
	Entrant     EntrantChoice      `json:"entrant"`
	Incumbent   IncumbentChoice    `json:"incumbent"`
	Development DevelopmentOutcome `json:"development"`
	Acquisition AcquisitionOutcome `json:"acquisition,omitempty"` // empty unless acquisitions are allowed
}

// KillZone reports whether the equilibrium is the kill zone: the entrant
// settles for a complement and the incumbent refrains from copying it.
func (c Choice) KillZone() bool {
	return c.Entrant == EntrantComplement && c.Incumbent == IncumbentRefrain
}
