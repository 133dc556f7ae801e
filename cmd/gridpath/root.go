package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config keys shared by flags, config file and environment.
const (
	keyConfig        = "config"
	keyLogLevel      = "log-level"
	keyPNG           = "png"
	keyCellSize      = "cell-size"
	keyMaxSteps      = "max-steps"
	keyTimeout       = "timeout"
	keyExploredGlyph = "explored-glyph"
	keyPathGlyph     = "path-glyph"
)

// app carries per-invocation state from the root command to subcommands.
type app struct {
	v   *viper.Viper
	log *slog.Logger
}

// newRootCmd builds the command tree with a fresh viper instance.
func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:          "gridpath",
		Short:        "Shortest paths on 0/1/S/G grids",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	root.PersistentFlags().String(keyConfig, "", "config file (yaml, toml or json)")
	root.PersistentFlags().String(keyLogLevel, "warn", "log level: debug, info, warn or error")

	root.AddCommand(a.solveCmd(), a.componentsCmd())

	return root
}

// init loads configuration and sets up the logger.
func (a *app) init(cmd *cobra.Command) error {
	a.v.SetEnvPrefix("GRIDPATH")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	if file := a.v.GetString(keyConfig); file != "" {
		a.v.SetConfigFile(file)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", file, err)
		}
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(a.v.GetString(keyLogLevel))); err != nil {
		return fmt.Errorf("invalid %s: %w", keyLogLevel, err)
	}
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	return nil
}
