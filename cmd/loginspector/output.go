package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spektr-org/loginspector/engine"
	"github.com/spektr-org/loginspector/helpers"
)

// writeResult renders an engine result in the configured output format.
func writeResult(w io.Writer, result *engine.Result, format string) error {
	switch format {
	case "json", "pretty":
		return writeJSON(w, result, format)
	case "table":
		return helpers.WriteTable(w, result.TableData)
	case "csv":
		return helpers.WriteCSV(w, result)
	default:
		return helpers.WriteText(w, result)
	}
}

func writeJSON(w io.Writer, v any, format string) error {
	var (
		out []byte
		err error
	)
	if format == "pretty" {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
