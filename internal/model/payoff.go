package model

// MarketConfig identifies which products are on the market.
type MarketConfig string

const (
	ConfigBasic                   MarketConfig = "basic"    // Ip and Ec
	ConfigCopied                  MarketConfig = "I(C)"     // Ip and Ic, entrant failed
	ConfigEntrantPrimary          MarketConfig = "E(P)"     // entrant's substitute and Ec
	ConfigCopiedEntrantPrimary    MarketConfig = "I(C)E(P)" // substitute, Ec copied
	ConfigEntrantComplement       MarketConfig = "E(C)"     // two entrant complements
	ConfigCopiedEntrantComplement MarketConfig = "I(C)E(C)" // second complement, Ec copied
)

// Payoff holds the utilities of one market configuration.
type Payoff struct {
	Incumbent       float64 `json:"pi(I)"`
	Entrant         float64 `json:"pi(E)"`
	ConsumerSurplus float64 `json:"CS"`
	Welfare         float64 `json:"W"`
}

// NewPayoff builds a payoff whose welfare is the sum of its parts.
func NewPayoff(incumbent, entrant, cs float64) Payoff {
	return Payoff{
		Incumbent:       incumbent,
		Entrant:         entrant,
		ConsumerSurplus: cs,
		Welfare:         incumbent + entrant + cs,
	}
}

// PayoffTable holds the payoffs of all six market configurations.
type PayoffTable struct {
	Basic                   Payoff `json:"basic"`
	Copied                  Payoff `json:"I(C)"`
	EntrantPrimary          Payoff `json:"E(P)"`
	CopiedEntrantPrimary    Payoff `json:"I(C)E(P)"`
	EntrantComplement       Payoff `json:"E(C)"`
	CopiedEntrantComplement Payoff `json:"I(C)E(C)"`
}

// Configs lists the market configurations in paper order.
func Configs() []MarketConfig {
	return []MarketConfig{
		ConfigBasic,
		ConfigCopied,
		ConfigEntrantPrimary,
		ConfigCopiedEntrantPrimary,
		ConfigEntrantComplement,
		ConfigCopiedEntrantComplement,
	}
}

// Get returns the payoff of a configuration.
func (t PayoffTable) Get(c MarketConfig) (Payoff, bool) {
	switch c {
	case ConfigBasic:
		return t.Basic, true
	case ConfigCopied:
		return t.Copied, true
	case ConfigEntrantPrimary:
		return t.EntrantPrimary, true
	case ConfigCopiedEntrantPrimary:
		return t.CopiedEntrantPrimary, true
	case ConfigEntrantComplement:
		return t.EntrantComplement, true
	case ConfigCopiedEntrantComplement:
		return t.CopiedEntrantComplement, true
	}
	return Payoff{}, false
}
