package vocab

import "strings"

// ============================================================================
// VOCABULARY: Hub-scoped enumerations shared by the log model and engine
// ============================================================================
// Every enum here is a closed set of raw JSON strings. Decoding an unknown
// raw value fails; hub validity is only ever a diagnostic concern.
// ============================================================================

// Known hub identifiers. Any other hub falls back to the minimal vocabulary.
const (
	HubSnap  = "snap"
	HubClick = "click"
)

// HubOf extracts the hub from a page identifier.
// "snap:flowers" → "snap", "snap" → "snap".
func HubOf(page string) string {
	if i := strings.Index(page, ":"); i >= 0 {
		return page[:i]
	}
	return page
}

// IsHubPage reports whether page names a hub rather than a page within a hub.
func IsHubPage(page string) bool {
	return !strings.Contains(page, ":")
}
