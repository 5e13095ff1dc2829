package vocab

import (
	"encoding/json"
	"fmt"
	"slices"
)

// MembershipCase is a user's membership level. The value is the raw JSON string.
type MembershipCase string

const (
	MembershipNone           MembershipCase = "None"
	MembershipArtist         MembershipCase = "Artist"
	MembershipMember         MembershipCase = "Member"
	MembershipPlatinumMember MembershipCase = "Platinum Member"

	// snap
	MembershipSnapVipMember        MembershipCase = "VIP Member"
	MembershipSnapVipGoldMember    MembershipCase = "VIP Gold Member"
	MembershipSnapEliteMember      MembershipCase = "Elite Member"
	MembershipSnapHallOfFameMember MembershipCase = "Hall of Fame Member"
	MembershipSnapDiamondMember    MembershipCase = "Diamond Member"

	// click
	MembershipClickBronzeMember MembershipCase = "Bronze Member"
	MembershipClickSilverMember MembershipCase = "Silver Member"
	MembershipClickGoldMember   MembershipCase = "Gold Member"
)

// Canonical ranking used to order chart segments. Not alphabetical.
var membershipSorted = []MembershipCase{
	MembershipNone,
	MembershipArtist,
	MembershipMember,
	MembershipSnapVipMember,
	MembershipSnapVipGoldMember,
	MembershipClickBronzeMember,
	MembershipClickSilverMember,
	MembershipClickGoldMember,
	MembershipPlatinumMember,
	MembershipSnapEliteMember,
	MembershipSnapHallOfFameMember,
	MembershipSnapDiamondMember,
}

var membershipByHub = map[string][]MembershipCase{
	HubSnap: {
		MembershipNone,
		MembershipArtist,
		MembershipMember,
		MembershipSnapVipMember,
		MembershipSnapVipGoldMember,
		MembershipPlatinumMember,
		MembershipSnapEliteMember,
		MembershipSnapHallOfFameMember,
		MembershipSnapDiamondMember,
	},
	HubClick: {
		MembershipNone,
		MembershipArtist,
		MembershipMember,
		MembershipClickBronzeMember,
		MembershipClickSilverMember,
		MembershipClickGoldMember,
		MembershipPlatinumMember,
	},
}

var membershipFallback = []MembershipCase{
	MembershipNone,
	MembershipArtist,
}

// AllMembershipCasesSorted returns every membership level in canonical chart order.
func AllMembershipCasesSorted() []MembershipCase {
	return slices.Clone(membershipSorted)
}

// MembershipCasesFor returns the levels valid on a hub.
// Unknown hubs only allow None and Artist.
func MembershipCasesFor(hub string) []MembershipCase {
	if cases, ok := membershipByHub[hub]; ok {
		return slices.Clone(cases)
	}
	return slices.Clone(membershipFallback)
}

// MembershipCaseValidFor reports whether value belongs to the hub's vocabulary.
// Used for diagnostics only, never to reject input.
func MembershipCaseValidFor(hub string, value MembershipCase) bool {
	cases, ok := membershipByHub[hub]
	if !ok {
		cases = membershipFallback
	}
	return slices.Contains(cases, value)
}

// SortRank is the position of m in the canonical order, or -1 if m is unknown.
func (m MembershipCase) SortRank() int {
	return slices.Index(membershipSorted, m)
}

// IsKnown reports whether m is one of the declared levels.
func (m MembershipCase) IsKnown() bool {
	return m.SortRank() >= 0
}

func (m MembershipCase) String() string { return string(m) }

// UnmarshalJSON rejects raw values outside the enumeration.
func (m *MembershipCase) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := MembershipCase(raw)
	if !v.IsKnown() {
		return fmt.Errorf("unknown membership level %q", raw)
	}
	*m = v
	return nil
}
