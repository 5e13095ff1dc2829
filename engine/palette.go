package engine

// ============================================================================
// PALETTE: Deterministic color assignment
// ============================================================================
// Colors rotate by index over an explicit, ordered palette. Each dimension
// starts at its own offset and every further category takes the next
// position, so the same data always renders the same way.
// ============================================================================

// Palette is an ordered list of chart colors.
type Palette []string

// DefaultPalette is used when no palette is configured.
var DefaultPalette = Palette{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// StartIndex is the palette position of the first category of a dimension
// whose colors start at offset.
func (p Palette) StartIndex(offset int) int {
	if len(p) == 0 {
		return 0
	}
	i := offset % len(p)
	if i < 0 {
		i += len(p)
	}
	return i
}

// NextIndex advances to the next palette position, wrapping at the end.
func (p Palette) NextIndex(current int) int {
	if len(p) == 0 {
		return 0
	}
	return (current + 1) % len(p)
}

// colorAt returns the color at position i, or "" for an empty palette.
func (p Palette) colorAt(i int) string {
	if len(p) == 0 {
		return ""
	}
	return p[i]
}
