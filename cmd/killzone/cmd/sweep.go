package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"KillZone/internal/recorder"
	"KillZone/internal/sweep"
)

func newSweepCmd(a *app) *cobra.Command {
	var withPoints bool

	c := &cobra.Command{
		Use:   "sweep",
		Short: "Evaluate the equilibrium map over a grid and record it",
		Long: `Evaluate the equilibrium path on every point of a grid of assets and
copying costs. An axis whose min and max are both zero in the sweep section
of the config is derived from the model's thresholds. When
database.sqlite_path is set the run is stored in SQLite.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.model()
			if err != nil {
				return err
			}

			sc := a.cfg.Sweep
			grid := sweep.Grid{
				AssetsMin:   sc.AssetsMin,
				AssetsMax:   sc.AssetsMax,
				AssetsSteps: sc.AssetsSteps,
				CostMin:     sc.CostMin,
				CostMax:     sc.CostMax,
				CostSteps:   sc.CostSteps,
			}
			def := sweep.DefaultGrid(g, sc.AssetsSteps, sc.CostSteps)
			if grid.AssetsMin == 0 && grid.AssetsMax == 0 {
				grid.AssetsMin, grid.AssetsMax = def.AssetsMin, def.AssetsMax
			}
			if grid.CostMin == 0 && grid.CostMax == 0 {
				grid.CostMin, grid.CostMax = def.CostMin, def.CostMax
			}

			var rec recorder.Recorder
			if path := a.cfg.Database.SQLitePath; path != "" {
				sr, err := recorder.NewSQLiteRecorder(path, a.logger)
				if err != nil {
					a.logger.Warn("init sqlite recorder failed, using noop", zap.Error(err))
					rec = recorder.NewNoopRecorder()
				} else {
					rec = sr
					defer sr.Close()
				}
			} else {
				rec = recorder.NewNoopRecorder()
			}

			res, err := sweep.NewRunner(g, rec, a.logger, sc.Workers).Run(cmd.Context(), grid)
			if err != nil {
				return err
			}
			if withPoints {
				return writeJSON(cmd.OutOrStdout(), struct {
					*sweep.Result
					Points []sweep.Point `json:"points"`
				}{res, res.Points})
			}
			return writeJSON(cmd.OutOrStdout(), res)
		},
	}
	c.Flags().BoolVar(&withPoints, "points", false, "include every evaluated point in the output")
	return c
}
