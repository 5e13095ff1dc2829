package engine

import (
	"github.com/spektr-org/loginspector/logfile"
	"github.com/spektr-org/loginspector/schema"
)

// ============================================================================
// ENGINE TYPES: Feature rows in, render-ready groups out
// ============================================================================

// ============================================================================
// FEATURE ROW: One feature with the log context it was read from
// ============================================================================

// FeatureRow is a flattened feature. The engine reads it through a DomainView.
type FeatureRow struct {
	FileName string
	Page     string
	Hub      string
	Feature  *logfile.LogFeature
	Count    FeatureCount // classified once at flatten time
}

// ============================================================================
// CATEGORY: One bar segment within a dimension
// ============================================================================

// Category is a grouping category derived for the current run.
type Category struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Color string `json:"color"`
	Index int    `json:"index"`
}

// CategorySet is an ordered map from category key to category.
type CategorySet struct {
	keys  []string
	byKey map[string]Category
}

func newCategorySet() *CategorySet {
	return &CategorySet{byKey: make(map[string]Category)}
}

// add appends a category unless its key is already present.
func (s *CategorySet) add(key, title string) {
	if _, ok := s.byKey[key]; ok {
		return
	}
	s.byKey[key] = Category{Key: key, Title: title, Index: len(s.keys)}
	s.keys = append(s.keys, key)
}

// Len returns the number of categories.
func (s *CategorySet) Len() int { return len(s.keys) }

// Categories returns the categories in order.
func (s *CategorySet) Categories() []Category {
	out := make([]Category, 0, len(s.keys))
	for _, k := range s.keys {
		out = append(out, s.byKey[k])
	}
	return out
}

// ============================================================================
// GROUP: Intermediate computation result
// ============================================================================

// Group is the pick count of one category.
// Builders convert these into ChartConfig, TableData, or TextData.
type Group struct {
	Key   string     `json:"key"`
	Label string     `json:"label"`
	Value float64    `json:"value"`
	Count int        `json:"count"`
	Color string     `json:"color,omitempty"`
	View  RecordView `json:"-"` // picked features in this group (zero-copy)
}

// DimensionGroups holds the ordered groups of one dimension.
type DimensionGroups struct {
	Dimension schema.DimensionMeta `json:"dimension"`
	Groups    []Group              `json:"groups"`
	Total     int                  `json:"total"`
}

// Grouping is the full output of the grouping engine for one selection.
type Grouping struct {
	Logs       int               `json:"logs"`
	Features   int               `json:"features"`
	Picks      int               `json:"picks"`
	Dimensions []DimensionGroups `json:"dimensions"`
}

// ============================================================================
// RESULT: Render-ready output
// ============================================================================

// Result is the engine's render-ready output.
type Result struct {
	Success   bool   `json:"success"`
	RunID     string `json:"runId"`
	Selection string `json:"selection"`
	Type      string `json:"type"` // "chart" or "text" when nothing matched
	Reply     string `json:"reply"`
	Title     string `json:"title"`

	Grouping    *Grouping    `json:"grouping,omitempty"`
	ChartConfig *ChartConfig `json:"chartConfig,omitempty"`
	TableData   *TableData   `json:"tableData,omitempty"`
	Data        *TextData    `json:"data,omitempty"`

	Warnings int `json:"warnings"`
}

// ============================================================================
// CHART TYPES
// ============================================================================

// ChartConfig defines how to render a chart: one series per dimension.
type ChartConfig struct {
	ChartType  string        `json:"chartType"`
	Title      string        `json:"title"`
	XAxis      string        `json:"xAxis,omitempty"`
	YAxis      string        `json:"yAxis,omitempty"`
	Series     []ChartSeries `json:"series"`
	Colors     []string      `json:"colors,omitempty"`
	ShowLegend bool          `json:"showLegend"`
	ShowGrid   bool          `json:"showGrid"`
}

// ChartSeries represents a data series in a chart.
type ChartSeries struct {
	Key  string       `json:"key"`
	Name string       `json:"name"`
	Data []ChartPoint `json:"data"`
}

// ChartPoint is one (category label, value, color group) triple.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
	Group string  `json:"group"` // category key, stable across runs
}

// ============================================================================
// TABLE TYPES
// ============================================================================

// TableData defines how to render a table.
type TableData struct {
	Title   string     `json:"title"`
	Columns []Column   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Summary *Summary   `json:"summary,omitempty"`
}

// Column defines a table column.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`  // "text", "number", "percent"
	Align string `json:"align"` // "left", "center", "right"
}

// Summary provides totals for a table.
type Summary struct {
	Label  string            `json:"label"`
	Values map[string]string `json:"values"`
}

// ============================================================================
// TEXT TYPES
// ============================================================================

// TextData is the one-line answer for the selection.
type TextData struct {
	Value    string `json:"value"`
	RawValue int    `json:"rawValue"`
	Unit     string `json:"unit"`
	Scope    string `json:"scope"`
	Logs     int    `json:"logs"`
	Features int    `json:"features"`
}
