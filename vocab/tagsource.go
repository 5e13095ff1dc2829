package vocab

import (
	"encoding/json"
	"fmt"
	"slices"
)

// TagSourceCase records where the feature tag was found.
type TagSourceCase string

const (
	TagSourcePageTag TagSourceCase = "Page tag"

	// snap
	TagSourceSnapRawPageTag      TagSourceCase = "RAW page tag"
	TagSourceSnapCommunityTag    TagSourceCase = "Snap community tag"
	TagSourceSnapRawCommunityTag TagSourceCase = "RAW community tag"
	TagSourceSnapMembershipTag   TagSourceCase = "Snap membership tag"

	// click
	TagSourceClickCommunityTag TagSourceCase = "Click community tag"
	TagSourceClickHubTag       TagSourceCase = "Click hub tag"
)

var tagSourceAll = []TagSourceCase{
	TagSourcePageTag,
	TagSourceSnapRawPageTag,
	TagSourceSnapCommunityTag,
	TagSourceSnapRawCommunityTag,
	TagSourceSnapMembershipTag,
	TagSourceClickCommunityTag,
	TagSourceClickHubTag,
}

var tagSourceByHub = map[string][]TagSourceCase{
	HubSnap: {
		TagSourcePageTag,
		TagSourceSnapRawPageTag,
		TagSourceSnapCommunityTag,
		TagSourceSnapRawCommunityTag,
		TagSourceSnapMembershipTag,
	},
	HubClick: {
		TagSourcePageTag,
		TagSourceClickCommunityTag,
		TagSourceClickHubTag,
	},
}

var tagSourceFallback = []TagSourceCase{TagSourcePageTag}

// AllTagSourceCases returns every tag source in declaration order.
func AllTagSourceCases() []TagSourceCase {
	return slices.Clone(tagSourceAll)
}

// TagSourceCasesFor returns the tag sources valid on a hub.
func TagSourceCasesFor(hub string) []TagSourceCase {
	if cases, ok := tagSourceByHub[hub]; ok {
		return slices.Clone(cases)
	}
	return slices.Clone(tagSourceFallback)
}

// TagSourceCaseValidFor reports whether value belongs to the hub's vocabulary.
func TagSourceCaseValidFor(hub string, value TagSourceCase) bool {
	cases, ok := tagSourceByHub[hub]
	if !ok {
		cases = tagSourceFallback
	}
	return slices.Contains(cases, value)
}

// IsKnown reports whether t is a tag source of any hub.
func (t TagSourceCase) IsKnown() bool { return slices.Contains(tagSourceAll, t) }

// String returns the wire value.
func (t TagSourceCase) String() string { return string(t) }

// UnmarshalJSON accepts only known tag sources; an unknown value fails the
// whole log decode.
func (t *TagSourceCase) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := TagSourceCase(raw)
	if !v.IsKnown() {
		return fmt.Errorf("unknown tag source %q", raw)
	}
	*t = v
	return nil
}
