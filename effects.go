package batch

// RenderEffects is a bitwise combination of mirroring flags applied to a
// quad's texture coordinates.
type RenderEffects uint32

const (
	// RenderNone applies no mirroring.
	RenderNone RenderEffects = 0

	// RenderFlipHorizontally mirrors the quad left-to-right.
	RenderFlipHorizontally RenderEffects = 1 << 0

	// RenderFlipVertically mirrors the quad top-to-bottom.
	RenderFlipVertically RenderEffects = 1 << 1

	// RenderFlipBoth mirrors the quad along both axes.
	RenderFlipBoth = RenderFlipHorizontally | RenderFlipVertically
)

// Valid reports whether e is one of the defined flag combinations.
func (e RenderEffects) Valid() bool {
	return e <= RenderFlipBoth
}

// String returns the string representation of RenderEffects.
func (e RenderEffects) String() string {
	switch e {
	case RenderNone:
		return "None"
	case RenderFlipHorizontally:
		return "FlipHorizontally"
	case RenderFlipVertically:
		return "FlipVertically"
	case RenderFlipBoth:
		return "FlipBoth"
	default:
		return "Invalid"
	}
}
