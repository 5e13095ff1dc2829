package engine

// ============================================================================
// CHART BUILDER: Produces ChartConfig from a Grouping
// ============================================================================
// One series per dimension. Each point is (category label, pick count,
// category color, category key). The key is stable across runs so renderers
// can use it as the color group.
// ============================================================================

// BuildChart produces a ChartConfig from a grouping.
func BuildChart(grouping *Grouping, cfg *config) *ChartConfig {
	if grouping == nil || len(grouping.Dimensions) == 0 {
		return nil
	}

	chartType := cfg.ChartType
	if chartType == "" {
		chartType = "stacked_bar"
	}

	chart := &ChartConfig{
		ChartType:  chartType,
		Title:      cfg.Title,
		XAxis:      "Dimension",
		YAxis:      "Picks",
		ShowLegend: true,
		ShowGrid:   true,
	}

	for _, dg := range grouping.Dimensions {
		chart.Series = append(chart.Series, buildDimensionSeries(dg))
	}

	chart.Colors = append([]string(nil), cfg.Palette...)
	return chart
}

// ============================================================================
// SERIES BUILDERS
// ============================================================================

func buildDimensionSeries(dg DimensionGroups) ChartSeries {
	points := make([]ChartPoint, 0, len(dg.Groups))
	for _, g := range dg.Groups {
		points = append(points, ChartPoint{
			Label: g.Label,
			Value: g.Value,
			Color: g.Color,
			Group: g.Key,
		})
	}

	return ChartSeries{
		Key:  dg.Dimension.Key,
		Name: LabelForDimension(dg.Dimension.Key),
		Data: points,
	}
}
