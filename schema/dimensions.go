package schema

// ============================================================================
// DIMENSIONS: The five independent groupings of picked features
// ============================================================================
// The engine groups every pick along each of these. Renderers use the
// metadata for series names and axis labels; ColorOffset staggers palette
// use so adjacent series do not start on the same color.
// ============================================================================

// Dimension keys.
const (
	DimPicks        = "picks"
	DimFirstFeature = "firstFeature"
	DimMembership   = "membership"
	DimFeatureCount = "featureCount"
	DimHubFeatured  = "hubFeatured"
)

// DimensionMeta describes one grouping dimension.
type DimensionMeta struct {
	Key         string `json:"key"`
	DisplayName string `json:"displayName"`
	Description string `json:"description,omitempty"`
	DataDriven  bool   `json:"dataDriven"` // categories derived from the loaded logs
	ColorOffset int    `json:"colorOffset"`
}

var dimensions = []DimensionMeta{
	{
		Key:         DimPicks,
		DisplayName: "Picks",
		Description: "Total picked features",
	},
	{
		Key:         DimFirstFeature,
		DisplayName: "First feature on page",
		Description: "Whether the user had no prior features on the page",
		ColorOffset: 1,
	},
	{
		Key:         DimMembership,
		DisplayName: "Membership level",
		Description: "User membership level, in canonical rank order",
		DataDriven:  true,
		ColorOffset: 3,
	},
	{
		Key:         DimFeatureCount,
		DisplayName: "Existing features",
		Description: "Prior feature count on the page; \"many\" sorts last",
		DataDriven:  true,
		ColorOffset: 5,
	},
	{
		Key:         DimHubFeatured,
		DisplayName: "Photo featured on hub",
		Description: "Whether the photo was already featured on the hub",
		ColorOffset: 7,
	},
}

// Dimensions returns the grouping dimensions in display order.
func Dimensions() []DimensionMeta {
	out := make([]DimensionMeta, len(dimensions))
	copy(out, dimensions)
	return out
}

// Lookup returns the dimension with the given key.
func Lookup(key string) (DimensionMeta, bool) {
	for _, d := range dimensions {
		if d.Key == key {
			return d, true
		}
	}
	return DimensionMeta{}, false
}
