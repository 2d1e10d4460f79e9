// -- cmd/root.go --
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Woon-2/doxyrm/internal/config"
	"github.com/Woon-2/doxyrm/internal/observability"
	"github.com/Woon-2/doxyrm/internal/strip"
)

// contextKey is a private type for values stored in the command context.
type contextKey int

// configKey locates the validated configuration placed there by PersistentPreRunE.
const configKey contextKey = iota

// NewRootCommand creates and configures the root `doxyrm` command. A fresh
// instance is built per invocation so no flag or viper state leaks between
// runs.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "doxyrm",
		Short: "Remove Doxygen comments from a source file.",
		Long: `doxyrm reads a source file, removes every Doxygen documentation block
(a comment opened with /** and closed by the nearest */), and writes the
stripped source to the output file. Everything else survives byte for
byte, including // line comments and plain /* ... */ blocks.`,
		Example: "  doxyrm -i annotated.hpp -o stripped.hpp",
		// Version is dynamically set at build time. See cmd/version.go.
		Version: Version,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// This function runs before the command body, setting up config
			// and logging. Flags are the only configuration source: there is
			// no config file and no environment lookup.
			v := viper.New()
			config.SetDefaults(v)

			if err := v.BindPFlag("strip.input", cmd.Flags().Lookup("input")); err != nil {
				return err
			}
			if err := v.BindPFlag("strip.output", cmd.Flags().Lookup("output")); err != nil {
				return err
			}

			cfg, err := config.NewConfigFromViper(v)
			if err != nil {
				// Initialize a fallback logger so anything after this failure
				// still has a sink.
				observability.InitializeLogger(config.LoggerConfig{Level: "info", Format: "console"})
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			observability.InitializeLogger(cfg.Logger)

			// Stash the validated config for RunE.
			cmd.SetContext(context.WithValue(cmd.Context(), configKey, cfg))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Flags have parsed and validated by now; any failure past this
			// point is an I/O problem, not a usage problem.
			cmd.SilenceUsage = true

			cfg, err := getConfigFromContext(cmd.Context())
			if err != nil {
				return err
			}
			return runStrip(cmd, observability.GetLogger(), cfg.Strip)
		},
	}

	rootCmd.Flags().StringP("input", "i", "", "Path of the source file to read. (Required)")
	rootCmd.Flags().StringP("output", "o", "", "Path the stripped source is written to. (Required)")
	_ = rootCmd.MarkFlagRequired("input")
	_ = rootCmd.MarkFlagRequired("output")

	return rootCmd
}

// Execute builds the root command and runs it with the given signal-aware
// context. Cobra reports errors on stderr itself; the caller only decides the
// exit code.
func Execute(ctx context.Context) error {
	err := NewRootCommand().ExecuteContext(ctx)
	observability.Sync()
	return err
}

// getConfigFromContext retrieves the configuration stored by PersistentPreRunE.
func getConfigFromContext(ctx context.Context) (*config.Config, error) {
	cfg, ok := ctx.Value(configKey).(*config.Config)
	if !ok || cfg == nil {
		return nil, fmt.Errorf("configuration missing from command context")
	}
	return cfg, nil
}

// runStrip holds the command body: read, strip, write, confirm.
func runStrip(cmd *cobra.Command, logger *zap.Logger, cfg config.StripConfig) error {
	stripper := strip.New(logger)
	res, err := stripper.File(cfg.Input, cfg.Output)
	if err != nil {
		return err
	}

	logger.Debug("strip finished",
		zap.String("input", cfg.Input),
		zap.String("output", cfg.Output),
		zap.Int("blocks", res.Blocks),
		zap.Int("bytes_in", res.BytesIn),
		zap.Int("bytes_out", res.BytesOut),
	)

	// Final output. The confirmation is the only thing written to stdout.
	fmt.Fprintf(cmd.OutOrStdout(), "Doxygen comments removed and saved to %s\n", cfg.Output)
	return nil
}
