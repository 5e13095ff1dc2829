package engine

import (
	"sort"
	"strings"

	"github.com/spektr-org/loginspector/logfile"
	"github.com/spektr-org/loginspector/vocab"
)

// ============================================================================
// PAGE FILTER: Select the logs for one page, one hub, or everything
// ============================================================================

// SelectAll is the selection value that matches every log.
const SelectAll = "all"

// SelectLogs returns the logs matching selection, preserving input order.
//
//	"all"          → every log
//	"snap"         → logs whose page is "snap" or starts with "snap:"
//	"snap:flowers" → logs whose page is exactly "snap:flowers"
func SelectLogs(logs []logfile.LogFile, selection string) []logfile.LogFile {
	if selection == SelectAll {
		return logs
	}

	hubOnly := vocab.IsHubPage(selection)
	prefix := selection + ":"

	out := make([]logfile.LogFile, 0, len(logs))
	for _, lf := range logs {
		page := lf.Log.Page
		if page == selection || (hubOnly && strings.HasPrefix(page, prefix)) {
			out = append(out, lf)
		}
	}
	return out
}

// SelectionValues lists every value SelectLogs understands for this log set:
// "all" first, then the sorted union of distinct pages and hub prefixes.
func SelectionValues(logs []logfile.LogFile) []string {
	seen := make(map[string]bool)
	for _, lf := range logs {
		seen[lf.Log.Page] = true
		seen[vocab.HubOf(lf.Log.Page)] = true
	}

	delete(seen, SelectAll)

	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)

	return append([]string{SelectAll}, values...)
}
