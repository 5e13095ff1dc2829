package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/spektr-org/loginspector/config"
	"github.com/spektr-org/loginspector/diagnostics"
	"github.com/spektr-org/loginspector/engine"
	"github.com/spektr-org/loginspector/inspector"
	"github.com/spektr-org/loginspector/logging"
)

var (
	configPath string
	outFile    string

	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "loginspector",
	Short: "Inspect feature review logs",
	Long: `loginspector loads a directory of feature review logs and breaks the picked
features down by first feature on page, membership level, existing feature
count and hub features.

Settings come from defaults, loginspector.{yaml,toml,json}, LOGINSPECTOR_*
environment variables and flags, later sources winning.`,
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.SetVersionTemplate("loginspector version {{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Config file (default: ./loginspector.yaml or ~/.config/loginspector/)")
	pf.String("log-level", "info", "Log level: debug, info, warn, error")
	pf.String("log-format", logging.FormatText, "Log format: text, json")
}

// loadConfig resolves settings for the command being run and builds the logger.
func loadConfig(cmd *cobra.Command, _ []string) error {
	c, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}

	l, err := logging.New(c.Log.Level, c.Log.Format, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	cfg = c
	logger = l
	slog.SetDefault(l)
	return nil
}

// addLoadFlags registers the flags shared by commands that read a log directory.
func addLoadFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("compressed", false, "Also load .json.gz files")
}

// addOutputFlags registers the flags shared by commands that print results.
func addOutputFlags(cmd *cobra.Command, formats string) {
	cmd.Flags().String("format", "text", "Output format: "+formats)
	cmd.Flags().StringVar(&outFile, "out", "", "Write output to file instead of stdout")
}

// newSession builds a session wired to the resolved configuration.
func newSession(collector *diagnostics.Collector) *inspector.Session {
	return inspector.NewSession(
		inspector.WithCompressed(cfg.Load.Compressed),
		inspector.WithLogger(logger),
		inspector.WithCollector(collector),
		inspector.WithEngineOptions(
			engine.WithPalette(engine.Palette(cfg.Chart.Palette)),
			engine.WithTitle(cfg.Chart.Title),
			engine.WithChartType(cfg.Chart.Type),
		),
	)
}

// openOutput returns stdout, or the --out file when set.
func openOutput(cmd *cobra.Command) (io.Writer, func() error, error) {
	if outFile == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(outFile)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, f.Close, nil
}
