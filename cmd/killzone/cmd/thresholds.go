package cmd

import (
	"github.com/spf13/cobra"

	"KillZone/internal/model"
)

type thresholdsOutput struct {
	Variant    model.Variant      `json:"variant"`
	Parameters model.Parameters   `json:"parameters"`
	Assets     []model.NamedValue `json:"asset_thresholds"`
	Costs      []model.NamedValue `json:"copying_cost_thresholds"`
	Payoffs    model.PayoffTable  `json:"payoffs"`
	Ordered    bool               `json:"assets_ordered"`
}

func newThresholdsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "thresholds",
		Short: "Print the asset and copying cost thresholds and the payoff table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.model()
			if err != nil {
				return err
			}
			assets := g.AssetValues()
			return writeJSON(cmd.OutOrStdout(), thresholdsOutput{
				Variant:    g.Variant(),
				Parameters: g.Parameters(),
				Assets:     assets.Labeled(),
				Costs:      g.CopyingFixedCosts().Labeled(),
				Payoffs:    g.Payoffs(),
				Ordered:    assets.Ordered(),
			})
		},
	}
}
