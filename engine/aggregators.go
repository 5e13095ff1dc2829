package engine

import (
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/spektr-org/loginspector/logfile"
	"github.com/spektr-org/loginspector/schema"
	"github.com/spektr-org/loginspector/vocab"
)

// ============================================================================
// AGGREGATORS: Flatten, group and count picks via RecordView
// ============================================================================
// Every call recomputes from the logs it is given. Nothing is cached.
// ============================================================================

// Flatten turns logs into feature rows, classifying each feature's count bucket.
func Flatten(logs []logfile.LogFile) []FeatureRow {
	n := 0
	for _, lf := range logs {
		n += len(lf.Log.Features)
	}

	rows := make([]FeatureRow, 0, n)
	for li := range logs {
		lf := &logs[li]
		hub := vocab.HubOf(lf.Log.Page)
		for fi := range lf.Log.Features {
			f := &lf.Log.Features[fi]
			rows = append(rows, FeatureRow{
				FileName: lf.FileName,
				Page:     lf.Log.Page,
				Hub:      hub,
				Feature:  f,
				Count:    classifyForHub(hub, *f),
			})
		}
	}
	return rows
}

// GroupFeatures builds every dimension's categories for logs and counts the
// picked features per category.
func GroupFeatures(logs []logfile.LogFile, palette Palette) *Grouping {
	rows := Flatten(logs)
	return groupRows(len(logs), rows, palette)
}

func groupRows(logCount int, rows []FeatureRow, palette Palette) *Grouping {
	view := featureAdapter.Bind(rows)
	picked := ApplyFilters(view, Filters{Dimensions: map[string][]string{dimPicked: {"true"}}})

	grouping := &Grouping{
		Logs:     logCount,
		Features: view.Len(),
		Picks:    picked.Len(),
	}

	for _, dim := range schema.Dimensions() {
		categories := BuildCategories(dim, view, picked, palette)
		groups := orderGroups(groupBySingle(picked, dim.Key), categories)

		total := 0
		for _, g := range groups {
			total += g.Count
		}
		grouping.Dimensions = append(grouping.Dimensions, DimensionGroups{
			Dimension: dim,
			Groups:    groups,
			Total:     total,
		})
	}
	return grouping
}

// ============================================================================
// GROUPING
// ============================================================================

func groupBySingle(view RecordView, dimension string) []Group {
	grouped := make(map[string][]int)
	order := make([]string, 0)

	for i := 0; i < view.Len(); i++ {
		key := view.Dimension(i, dimension)
		if _, exists := grouped[key]; !exists {
			order = append(order, key)
		}
		grouped[key] = append(grouped[key], i)
	}

	groups := make([]Group, 0, len(order))
	for _, key := range order {
		sub := newSubView(view, grouped[key])
		groups = append(groups, Group{
			Key:   key,
			Label: key,
			Count: sub.Len(),
			Value: float64(sub.Len()),
			View:  sub,
		})
	}
	return groups
}

// orderGroups lays the counted groups out in category order. Categories with
// no picks become zero-valued groups; a counted key with no category keeps its
// count and goes last so totals are never lost.
func orderGroups(counted []Group, categories *CategorySet) []Group {
	byKey := make(map[string]Group, len(counted))
	for _, g := range counted {
		byKey[g.Key] = g
	}

	out := make([]Group, 0, categories.Len())
	for _, c := range categories.Categories() {
		g, ok := byKey[c.Key]
		if !ok {
			g = Group{Key: c.Key}
		}
		g.Label = c.Title
		g.Color = c.Color
		out = append(out, g)
		delete(byKey, c.Key)
	}

	var extra []Group
	for _, g := range byKey {
		extra = append(extra, g)
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i].Key < extra[j].Key })
	return append(out, extra...)
}

// UniqueValues returns distinct non-empty values for a dimension across a view.
func UniqueValues(view RecordView, dimension string) []string {
	seen := make(map[string]bool)
	var result []string
	for i := 0; i < view.Len(); i++ {
		val := view.Dimension(i, dimension)
		if val != "" && !seen[val] {
			seen[val] = true
			result = append(result, val)
		}
	}
	return result
}

// ============================================================================
// FORMATTING UTILITIES
// ============================================================================

var printer = message.NewPrinter(language.English)

// FormatInt formats an integer with thousands separators.
func FormatInt(n int) string {
	return printer.Sprintf("%d", n)
}

// FormatPercent formats part/total as a percentage with one decimal.
func FormatPercent(part, total int) string {
	if total == 0 {
		return "0.0%"
	}
	return printer.Sprintf("%.1f%%", float64(part)*100/float64(total))
}

var titleCaser = cases.Title(language.English)

// LabelForDimension returns the display name for a dimension key.
func LabelForDimension(key string) string {
	if d, ok := schema.Lookup(key); ok {
		return d.DisplayName
	}
	return titleCaser.String(key)
}

// pluralize returns singular for n == 1 and plural otherwise, prefixed by n.
func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return FormatInt(n) + " " + singular
	}
	return FormatInt(n) + " " + plural
}
