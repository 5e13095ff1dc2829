package engine

// ============================================================================
// TABLE BUILDER: Produces TableData from a Grouping
// ============================================================================
// One row per (dimension, category), in chart order, with the share of picks.
// ============================================================================

// BuildTable produces a TableData from a grouping.
func BuildTable(grouping *Grouping, title string) *TableData {
	columns := []Column{
		{Key: "dimension", Label: "Dimension", Type: "text", Align: "left"},
		{Key: "category", Label: "Category", Type: "text", Align: "left"},
		{Key: "picks", Label: "Picks", Type: "number", Align: "right"},
		{Key: "share", Label: "Share", Type: "percent", Align: "right"},
	}

	if grouping == nil || len(grouping.Dimensions) == 0 {
		return &TableData{
			Title:   title,
			Columns: columns,
			Rows:    [][]string{},
		}
	}

	rows := make([][]string, 0)
	for _, dg := range grouping.Dimensions {
		for _, g := range dg.Groups {
			rows = append(rows, []string{
				LabelForDimension(dg.Dimension.Key),
				g.Label,
				FormatInt(g.Count),
				FormatPercent(g.Count, dg.Total),
			})
		}
	}

	return &TableData{
		Title:   title,
		Columns: columns,
		Rows:    rows,
		Summary: &Summary{
			Label: "Total (" + pluralize(grouping.Logs, "log", "logs") + ", " +
				pluralize(grouping.Features, "feature", "features") + ")",
			Values: map[string]string{
				"picks": FormatInt(grouping.Picks),
			},
		},
	}
}
