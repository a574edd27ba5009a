// Package cli provides the command-line interface for swatch.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/config"
	"github.com/jmylchreest/swatch/internal/version"
)

// rootOptions carries global flags and the state resolved from them.
type rootOptions struct {
	verbose bool
	quiet   bool
	envFile string

	logger hclog.Logger
	config config.Config
}

// NewRootCmd builds the swatch command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{
		logger: hclog.NewNullLogger(),
		config: config.Default(),
	}

	rootCmd := &cobra.Command{
		Use:   "swatch",
		Short: "Derive colour spaces, palettes and contrast ratios from a hex colour",
		Long: `Swatch converts a single sRGB hex colour into RGB, HSL and LCH, derives
complementary, triadic, analogous and split-complementary palettes, builds
tint, shade and tone ramps, and reports WCAG contrast against white and black.

Configuration is read from SWATCH_DEBOUNCE_MS, SWATCH_FORMAT, SWATCH_STRICT,
SWATCH_PREVIEW and NO_COLOR, optionally loaded from a .env file.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd.ErrOrStderr())
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&opts.envFile, "env-file", "", "load SWATCH_* settings from a .env file")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConvertCmd(opts))
	rootCmd.AddCommand(newPaletteCmd(opts))
	rootCmd.AddCommand(newVariationsCmd(opts))
	rootCmd.AddCommand(newContrastCmd(opts))
	rootCmd.AddCommand(newWatchCmd(opts))

	return rootCmd
}

// setup initialises logging and resolves configuration.
func (o *rootOptions) setup(stderr io.Writer) error {
	o.logger = newLogger(stderr, o.verbose, o.quiet)

	builder := config.NewBuilder().WithLogger(o.logger)
	if o.envFile != "" {
		builder = builder.WithEnvFile(o.envFile)
	} else {
		builder = builder.WithEnvConfig()
	}

	cfg, err := builder.Build()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	o.config = cfg
	return nil
}

// newLogger returns a logger writing to w. Verbose enables debug output;
// quiet limits output to errors.
func newLogger(w io.Writer, verbose, quiet bool) hclog.Logger {
	level := hclog.Info
	switch {
	case quiet:
		level = hclog.Error
	case verbose:
		level = hclog.Debug
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "swatch",
		Output: w,
		Level:  level,
	})
}

func newVersionCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.GetInfo()
			if asJSON {
				data, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to convert to JSON: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), info.String())
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print version information as JSON")

	return cmd
}
