package engine

import (
	"errors"
	"strconv"

	"github.com/google/uuid"

	"github.com/spektr-org/loginspector/logfile"
)

// ============================================================================
// EXECUTOR: Select, group, build
// ============================================================================
// Entry point: Execute(logs, selection, opts...)
//
// Pipeline:
//   1. Select logs for the page selection
//   2. Report data-quality warnings
//   3. Flatten features and group per dimension
//   4. Build chart, table and text
//   5. Return Result
//
// Every call recomputes from scratch over the logs it is given.
// ============================================================================

// ErrEmptyPalette is returned when a palette is configured but has no colors.
var ErrEmptyPalette = errors.New("engine: palette has no colors")

// Execute groups the features of the logs matching selection and returns a
// render-ready Result. An empty selection means "all".
func Execute(logs []logfile.LogFile, selection string, opts ...Option) (*Result, error) {
	cfg := applyOptions(opts)
	if len(cfg.Palette) == 0 {
		return nil, ErrEmptyPalette
	}
	if selection == "" {
		selection = SelectAll
	}

	runID := uuid.New().String()
	logger := cfg.Logger.With("component", "engine", "run", runID)

	// 1. Select logs
	selected := SelectLogs(logs, selection)
	if len(selected) == 0 {
		logger.Debug("no logs match selection", "selection", selection, "logs", len(logs))
		return &Result{
			Success:   true,
			RunID:     runID,
			Selection: selection,
			Type:      "text",
			Title:     cfg.Title,
			Reply:     "No logs match selection " + strconv.Quote(selection) + ".",
			Data:      BuildText(nil, selection),
		}, nil
	}

	// 2. Data quality
	warnings := CheckDataQuality(selected, cfg.Diagnostics)

	// 3. Group
	grouping := GroupFeatures(selected, cfg.Palette)
	logger.Debug("grouped features",
		"selection", selection,
		"logs", grouping.Logs,
		"features", grouping.Features,
		"picks", grouping.Picks,
		"warnings", warnings)

	// 4. Build
	return &Result{
		Success:     true,
		RunID:       runID,
		Selection:   selection,
		Type:        "chart",
		Title:       cfg.Title,
		Reply:       buildReply(grouping, selection),
		Grouping:    grouping,
		ChartConfig: BuildChart(grouping, cfg),
		TableData:   BuildTable(grouping, cfg.Title),
		Data:        BuildText(grouping, selection),
		Warnings:    warnings,
	}, nil
}
