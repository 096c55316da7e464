// Package cmd provides the CLI commands for killzone.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"KillZone/internal/config"
	"KillZone/internal/logging"
	"KillZone/internal/model"
	"KillZone/internal/strategy"
)

const defaultConfigPath = "configs/config.yaml"

// app carries what every subcommand needs once the root has loaded its config.
type app struct {
	cfgFile string
	variant string

	cfg      *config.Config
	logger   *zap.Logger
	closeLog func()
}

// NewRootCommand builds the killzone command tree.
func NewRootCommand() *cobra.Command {
	root, _ := newRootCommand()
	return root
}

func newRootCommand() (*cobra.Command, *app) {
	a := &app{}

	root := &cobra.Command{
		Use:   "killzone",
		Short: "Evaluate the kill zone model of entrant innovation",
		Long: `killzone computes the thresholds, payoffs and equilibrium paths of a
model in which an incumbent ecosystem may copy an entrant's complement.

Examples:
  killzone thresholds
  killzone choice --assets 0.1 --cost 0.5
  killzone --variant acquisition sweep`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { a.close() },
	}

	defaultPath := defaultConfigPath
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		defaultPath = v
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", defaultPath, "config file (env CONFIG_PATH)")
	root.PersistentFlags().StringVar(&a.variant, "variant", "", "model variant, overrides the config ("+variantNames()+")")

	root.AddCommand(newThresholdsCmd(a))
	root.AddCommand(newChoiceCmd(a))
	root.AddCommand(newSweepCmd(a))
	return root, a
}

// Execute runs the CLI
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	root, a := newRootCommand()
	defer a.close()
	return root.ExecuteContext(ctx)
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if a.variant != "" {
		cfg.Model.Variant = a.variant
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}

	logger, closeLog, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	a.cfg = cfg
	a.logger = logger.With(zap.String("command", cmd.Name()))
	a.closeLog = closeLog
	return nil
}

// close flushes the logger and releases its output. Safe to call more than once.
func (a *app) close() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	if a.closeLog != nil {
		a.closeLog()
		a.closeLog = nil
	}
}

// model builds the configured variant.
func (a *app) model() (*strategy.Game, error) {
	v, err := model.ParseVariant(a.cfg.Model.Variant)
	if err != nil {
		return nil, err
	}
	g, err := strategy.NewVariant(v, a.cfg.Model.Parameters())
	if err != nil {
		return nil, fmt.Errorf("build %s model: %w", v, err)
	}
	a.logger.Debug("model built",
		zap.String("variant", string(g.Variant())),
		zap.Any("parameters", g.Parameters()),
	)
	return g, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func variantNames() string {
	names := make([]string, len(model.Variants))
	for i, v := range model.Variants {
		names[i] = string(v)
	}
	return strings.Join(names, ", ")
}
