package helpers

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spektr-org/loginspector/engine"
)

// WriteText writes the reply line followed by one block per dimension.
func WriteText(w io.Writer, result *engine.Result) error {
	if result == nil {
		_, err := fmt.Fprintln(w, "No data")
		return err
	}

	var b strings.Builder
	b.WriteString(result.Reply)
	b.WriteString("\n")

	if result.Grouping != nil {
		for _, dg := range result.Grouping.Dimensions {
			fmt.Fprintf(&b, "\n%s\n", engine.LabelForDimension(dg.Dimension.Key))
			for _, g := range dg.Groups {
				fmt.Fprintf(&b, "  %-32s %s\n", g.Label, engine.FormatInt(g.Count))
			}
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteTable writes TableData as aligned columns with the summary underneath.
func WriteTable(w io.Writer, table *engine.TableData) error {
	if table == nil {
		_, err := fmt.Fprintln(w, "No data")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if table.Title != "" {
		fmt.Fprintln(tw, table.Title)
	}

	headers := make([]string, 0, len(table.Columns))
	for _, c := range table.Columns {
		headers = append(headers, c.Label)
	}
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, row := range table.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	if table.Summary != nil {
		cells := make([]string, len(table.Columns))
		for i, c := range table.Columns {
			cells[i] = table.Summary.Values[c.Key]
		}
		if len(cells) > 0 {
			cells[0] = table.Summary.Label
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}
