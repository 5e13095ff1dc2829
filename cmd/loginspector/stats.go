package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spektr-org/loginspector/diagnostics"
)

var statsCmd = &cobra.Command{
	Use:   "stats <dir>",
	Short: "Break down picked features for a page selection",
	Long: `Load every log in <dir> and group the picked features of the selected
logs by dimension.

Examples:
  loginspector stats ./logs                          # everything, as text
  loginspector stats ./logs --page snap              # one hub
  loginspector stats ./logs --page snap:flowers --format csv --out flowers.csv
  loginspector stats ./logs --format pretty --palette "#111111,#222222"`,
	Args: cobra.ExactArgs(1),
	RunE: runStats,
}

func init() {
	statsCmd.Flags().String("page", "all", `Selection: "all", a hub, or "hub:page"`)
	statsCmd.Flags().StringSlice("palette", nil, "Chart colors, comma-separated hex values")
	statsCmd.Flags().String("title", "", "Chart and table title")
	statsCmd.Flags().String("chart-type", "stacked_bar", "Chart type handed to the renderer: stacked_bar, bar")
	addLoadFlags(statsCmd)
	addOutputFlags(statsCmd, "json, pretty, text, table, csv")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	collector := diagnostics.NewCollector(logger)
	session := newSession(collector)

	if _, err := session.Load(cmd.Context(), args[0]); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "no logs loaded")
		return err
	}
	fmt.Fprintln(cmd.ErrOrStderr(), session.Summary())

	result, err := session.Select(cfg.Selection)
	if err != nil {
		return err
	}

	w, closeOut, err := openOutput(cmd)
	if err != nil {
		return err
	}
	if err := writeResult(w, result, cfg.Output.Format); err != nil {
		_ = closeOut()
		return err
	}
	return closeOut()
}
