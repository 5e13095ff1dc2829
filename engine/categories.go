package engine

import (
	"sort"

	"github.com/spektr-org/loginspector/schema"
	"github.com/spektr-org/loginspector/vocab"
)

// ============================================================================
// CATEGORY BUILDERS: Ordered category sets per dimension
// ============================================================================
// Fixed dimensions always emit the same categories. Data-driven dimensions
// emit one category per distinct value seen, then apply the canonical order.
// Membership levels are collected from every feature of the selection, picked
// or not; feature-count buckets only from picked features. Discovery order
// never leaks into the output.
// ============================================================================

// Category keys of the fixed dimensions.
const (
	keyPicks          = "picks"
	keyFirstFeature   = "first"
	keyAlreadyOnPage  = "already"
	keyFeaturedOnHub  = "featured"
	keyNotFeaturedHub = "notFeatured"
)

// dimPicked is an internal dimension used to keep only picked features.
const dimPicked = "picked"

var featureAdapter = NewDomainAdapter[FeatureRow]().
	Dimension(dimPicked, func(r FeatureRow) string { return boolKey(r.Feature.IsPicked) }).
	Dimension(schema.DimPicks, func(FeatureRow) string { return keyPicks }).
	Dimension(schema.DimFirstFeature, func(r FeatureRow) string {
		if r.Feature.UserHasFeaturesOnPage {
			return keyAlreadyOnPage
		}
		return keyFirstFeature
	}).
	Dimension(schema.DimMembership, func(r FeatureRow) string { return string(r.Feature.UserLevel) }).
	Dimension(schema.DimFeatureCount, func(r FeatureRow) string { return r.Count.Key() }).
	Dimension(schema.DimHubFeatured, func(r FeatureRow) string {
		if r.Feature.PhotoFeaturedOnHub {
			return keyFeaturedOnHub
		}
		return keyNotFeaturedHub
	})

func boolKey(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// BuildCategories returns the ordered categories of one dimension with colors
// assigned from palette. all holds every feature of the selection and picked
// only the picked ones: membership levels come from all, every other
// data-driven dimension from picked.
func BuildCategories(dim schema.DimensionMeta, all, picked RecordView, palette Palette) *CategorySet {
	var set *CategorySet
	switch dim.Key {
	case schema.DimPicks:
		set = picksCategories()
	case schema.DimFirstFeature:
		set = firstFeatureCategories()
	case schema.DimHubFeatured:
		set = hubFeaturedCategories()
	case schema.DimMembership:
		set = membershipCategories(UniqueValues(all, dim.Key))
	case schema.DimFeatureCount:
		set = featureCountCategories(UniqueValues(picked, dim.Key))
	default:
		set = newCategorySet()
		for _, v := range UniqueValues(picked, dim.Key) {
			set.add(v, v)
		}
	}

	pos := palette.StartIndex(dim.ColorOffset)
	for _, key := range set.keys {
		c := set.byKey[key]
		c.Color = palette.colorAt(pos)
		set.byKey[key] = c
		pos = palette.NextIndex(pos)
	}
	return set
}

func picksCategories() *CategorySet {
	set := newCategorySet()
	set.add(keyPicks, "Picks")
	return set
}

func firstFeatureCategories() *CategorySet {
	set := newCategorySet()
	set.add(keyFirstFeature, "First feature on page")
	set.add(keyAlreadyOnPage, "Already featured on page")
	return set
}

func hubFeaturedCategories() *CategorySet {
	set := newCategorySet()
	set.add(keyFeaturedOnHub, "Featured on hub")
	set.add(keyNotFeaturedHub, "Not featured on hub")
	return set
}

// membershipCategories orders observed levels by the canonical membership rank.
// Unknown levels cannot come out of the decoder; if one appears it sorts last.
func membershipCategories(observed []string) *CategorySet {
	levels := make([]vocab.MembershipCase, len(observed))
	for i, v := range observed {
		levels[i] = vocab.MembershipCase(v)
	}
	sort.SliceStable(levels, func(i, j int) bool {
		ri, rj := levels[i].SortRank(), levels[j].SortRank()
		if ri < 0 || rj < 0 {
			return ri >= 0 && rj < 0
		}
		return ri < rj
	})

	set := newCategorySet()
	for _, level := range levels {
		set.add(string(level), string(level))
	}
	return set
}

// featureCountCategories orders observed buckets ascending with "many" last.
func featureCountCategories(observed []string) *CategorySet {
	counts := make([]FeatureCount, 0, len(observed))
	for _, key := range observed {
		if c, ok := ParseFeatureCountKey(key); ok {
			counts = append(counts, c)
		}
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Less(counts[j]) })

	set := newCategorySet()
	for _, c := range counts {
		set.add(c.Key(), c.Label())
	}
	return set
}
