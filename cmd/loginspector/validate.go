package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/spektr-org/loginspector/diagnostics"
	"github.com/spektr-org/loginspector/logging"
)

var validateStrict bool

var validateCmd = &cobra.Command{
	Use:   "validate <dir>",
	Short: "Report decode errors and data-quality warnings",
	Long: `Load every log in <dir> and list files that failed to decode plus features
with a "None" membership level, or a level or tag source that does not
belong to the log's hub. With --strict any finding fails the command.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "Exit non-zero when anything is reported")
	addLoadFlags(validateCmd)
	addOutputFlags(validateCmd, "json, pretty, text")
	rootCmd.AddCommand(validateCmd)
}

// validateReport is the JSON form of validate's output.
type validateReport struct {
	Dir     string              `json:"dir"`
	Summary string              `json:"summary"`
	Logs    int                 `json:"logs"`
	Entries []diagnostics.Entry `json:"entries"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	collector := diagnostics.NewCollector(logging.Discard())
	session := newSession(collector)

	if _, err := session.Load(cmd.Context(), args[0]); err != nil {
		return err
	}
	report := validateReport{
		Dir:     session.Dir(),
		Summary: session.Summary(),
		Logs:    len(session.Logs()),
		Entries: collector.Entries(),
	}

	w, closeOut, err := openOutput(cmd)
	if err != nil {
		return err
	}
	switch cfg.Output.Format {
	case "json", "pretty":
		err = writeJSON(w, report, cfg.Output.Format)
	default:
		err = writeEntries(w, report)
	}
	if cerr := closeOut(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	if validateStrict && len(report.Entries) > 0 {
		return fmt.Errorf("%d problems found", len(report.Entries))
	}
	return nil
}

func writeEntries(w io.Writer, report validateReport) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, report.Summary)
	if len(report.Entries) == 0 {
		fmt.Fprintln(tw, "no problems found")
		return tw.Flush()
	}
	fmt.Fprintln(tw, "KIND\tFILE\tUSER\tVALUE\tMESSAGE")
	for _, e := range report.Entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", e.Kind, e.FileName, e.UserName, e.Value, e.Message)
	}
	return tw.Flush()
}
