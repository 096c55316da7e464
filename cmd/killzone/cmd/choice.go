package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"KillZone/internal/model"
)

type choiceOutput struct {
	Variant model.Variant `json:"variant"`
	Assets  float64       `json:"assets"`
	Cost    float64       `json:"cost"`
	model.Choice
}

func newChoiceCmd(a *app) *cobra.Command {
	var assets, cost float64

	c := &cobra.Command{
		Use:   "choice",
		Short: "Evaluate the equilibrium path at one point",
		Long: `Evaluate the equilibrium path for the entrant's assets A and the
incumbent's fixed cost of copying F.

Examples:
  killzone choice --assets 0.1 --cost 0.5
  killzone --variant unobservable choice -a 0.1 -f 0.5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("assets") || !cmd.Flags().Changed("cost") {
				return fmt.Errorf("both --assets and --cost are required")
			}
			g, err := a.model()
			if err != nil {
				return err
			}
			choice := g.OptimalChoice(assets, cost)
			a.logger.Debug("choice evaluated",
				zap.Float64("assets", assets),
				zap.Float64("cost", cost),
				zap.String("region", string(choice.Region)),
			)
			return writeJSON(cmd.OutOrStdout(), choiceOutput{
				Variant: g.Variant(),
				Assets:  assets,
				Cost:    cost,
				Choice:  choice,
			})
		},
	}
	c.Flags().Float64VarP(&assets, "assets", "a", 0, "entrant's assets A")
	c.Flags().Float64VarP(&cost, "cost", "f", 0, "incumbent's fixed cost of copying F")
	return c
}
