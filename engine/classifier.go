package engine

import (
	"fmt"
	"strconv"

	"github.com/spektr-org/loginspector/logfile"
	"github.com/spektr-org/loginspector/vocab"
)

// ============================================================================
// FEATURE-COUNT CLASSIFIER: Normalized "existing features" bucket per pick
// ============================================================================
// snap tracks page and RAW page counts separately and sums them; every other
// hub only has the page count. A user with no features on the page is always
// bucket 0, whatever the count strings say.
// ============================================================================

// SentinelMany is the literal count value meaning "too many to count".
const SentinelMany = "many"

// FeatureCount is an existing-feature bucket: a finite count or "many".
type FeatureCount struct {
	Value int  `json:"value"`
	Many  bool `json:"many"`
}

// ManyFeatures is the sentinel bucket. It sorts after every finite count.
var ManyFeatures = FeatureCount{Many: true}

// Key is the stable category key: the decimal value, or "many".
func (c FeatureCount) Key() string {
	if c.Many {
		return SentinelMany
	}
	return strconv.Itoa(c.Value)
}

// Label is the display title, e.g. "1 existing feature", "many existing features".
func (c FeatureCount) Label() string {
	if c.Many {
		return "many existing features"
	}
	if c.Value == 1 {
		return "1 existing feature"
	}
	return fmt.Sprintf("%d existing features", c.Value)
}

// Less orders finite counts ascending with the sentinel last.
func (c FeatureCount) Less(other FeatureCount) bool {
	if c.Many || other.Many {
		return !c.Many && other.Many
	}
	return c.Value < other.Value
}

// ParseFeatureCountKey is the inverse of Key.
func ParseFeatureCountKey(key string) (FeatureCount, bool) {
	if key == SentinelMany {
		return ManyFeatures, true
	}
	n, err := strconv.Atoi(key)
	if err != nil {
		return FeatureCount{}, false
	}
	return FeatureCount{Value: n}, true
}

// ClassifyFeatureCount derives the existing-feature bucket for one feature of a log.
// It is pure: the same log page and feature always give the same bucket.
func ClassifyFeatureCount(log logfile.Log, feature logfile.LogFeature) FeatureCount {
	return classifyForHub(vocab.HubOf(log.Page), feature)
}

func classifyForHub(hub string, f logfile.LogFeature) FeatureCount {
	if !f.UserHasFeaturesOnPage {
		return FeatureCount{}
	}

	if hub == vocab.HubSnap {
		if f.FeatureCountOnPage == SentinelMany || f.FeatureCountOnRawPage == SentinelMany {
			return ManyFeatures
		}
		return FeatureCount{Value: parseIntOrZero(f.FeatureCountOnPage) + parseIntOrZero(f.FeatureCountOnRawPage)}
	}

	if f.FeatureCountOnPage == SentinelMany {
		return ManyFeatures
	}
	return FeatureCount{Value: parseIntOrZero(f.FeatureCountOnPage)}
}

// parseIntOrZero parses decimal text. Anything unparseable, including
// surrounding whitespace and negative values, counts as zero.
func parseIntOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
