// Package helpers renders engine results for terminals and spreadsheets.
package helpers

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/spektr-org/loginspector/engine"
)

// ============================================================================
// CSV: Chart series first, then table, then the reply line
// ============================================================================

// WriteCSV writes result as CSV. Charts are written in long form, one row per
// (dimension, category) point, since every dimension has its own categories.
func WriteCSV(w io.Writer, result *engine.Result) error {
	cw := csv.NewWriter(w)

	switch {
	case result == nil:
		_ = cw.Write([]string{"Result", "No data"})
	case result.ChartConfig != nil && len(result.ChartConfig.Series) > 0:
		writeChartCSV(cw, result.ChartConfig)
	case result.TableData != nil && len(result.TableData.Columns) > 0:
		writeTableCSV(cw, result.TableData)
	default:
		reply := result.Reply
		if reply == "" {
			reply = "No data"
		}
		_ = cw.Write([]string{"Summary", "Selection"})
		_ = cw.Write([]string{reply, result.Selection})
	}

	cw.Flush()
	return cw.Error()
}

func writeChartCSV(cw *csv.Writer, chart *engine.ChartConfig) {
	_ = cw.Write([]string{"Dimension", "Category", "Key", "Picks", "Color"})
	for _, s := range chart.Series {
		for _, p := range s.Data {
			_ = cw.Write([]string{s.Name, p.Label, p.Group, fmtNum(p.Value), p.Color})
		}
	}
}

func writeTableCSV(cw *csv.Writer, table *engine.TableData) {
	headers := make([]string, 0, len(table.Columns))
	for _, c := range table.Columns {
		headers = append(headers, c.Label)
	}
	_ = cw.Write(headers)
	for _, row := range table.Rows {
		_ = cw.Write(row)
	}
}

// fmtNum prints whole numbers without a decimal point.
func fmtNum(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
