package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spektr-org/loginspector/diagnostics"
)

var pagesCmd = &cobra.Command{
	Use:   "pages <dir>",
	Short: "List the selection values available for a log directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runPages,
}

func init() {
	addLoadFlags(pagesCmd)
	addOutputFlags(pagesCmd, "json, pretty, text")
	rootCmd.AddCommand(pagesCmd)
}

func runPages(cmd *cobra.Command, args []string) error {
	session := newSession(diagnostics.NewCollector(logger))
	if _, err := session.Load(cmd.Context(), args[0]); err != nil {
		return err
	}

	w, closeOut, err := openOutput(cmd)
	if err != nil {
		return err
	}
	values := session.SelectionValues()

	switch cfg.Output.Format {
	case "json", "pretty":
		err = writeJSON(w, values, cfg.Output.Format)
	default:
		_, err = fmt.Fprintln(w, strings.Join(values, "\n"))
	}
	if err != nil {
		_ = closeOut()
		return err
	}
	return closeOut()
}
