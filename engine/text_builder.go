package engine

// ============================================================================
// TEXT BUILDER: Produces TextData for the selection headline
// ============================================================================

// BuildText produces the headline numbers for a selection.
func BuildText(grouping *Grouping, selection string) *TextData {
	if grouping == nil {
		return &TextData{Value: "0", Unit: "picks", Scope: selection}
	}
	return &TextData{
		Value:    FormatInt(grouping.Picks),
		RawValue: grouping.Picks,
		Unit:     "picks",
		Scope:    selection,
		Logs:     grouping.Logs,
		Features: grouping.Features,
	}
}

// buildReply is the one-line human summary of a grouping.
func buildReply(grouping *Grouping, selection string) string {
	return printer.Sprintf("%s picked from %s across %s (%s).",
		pluralize(grouping.Picks, "feature", "features"),
		pluralize(grouping.Features, "feature", "features"),
		pluralize(grouping.Logs, "log", "logs"),
		scopeLabel(selection))
}

func scopeLabel(selection string) string {
	if selection == SelectAll || selection == "" {
		return "all pages"
	}
	return selection
}
