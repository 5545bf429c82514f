package batch

// Attribute describes one interleaved float32 vertex attribute.
type Attribute struct {
	// Name is a diagnostic label for the attribute.
	Name string

	// Components is the number of float32 components (1..4).
	Components int
}

// Layout is the compile-time configuration record of one buffer kind:
// its diagnostic name, vertex attribute layout, and primitive topology.
// All attribute data is tightly interleaved float32.
type Layout struct {
	// Name is the buffer kind's diagnostic label ("texture", "line", ...).
	Name string

	// Attributes lists the interleaved attributes in shader location
	// order, starting at location 0.
	Attributes []Attribute

	// VerticesPerPrimitive is the number of vertices one batch item
	// occupies in the vertex store.
	VerticesPerPrimitive int

	// IndicesPerPrimitive is the number of indices one batch item
	// contributes to the index store.
	IndicesPerPrimitive int
}

// FloatsPerVertex returns the total float32 component count per vertex.
func (l Layout) FloatsPerVertex() int {
	n := 0
	for _, a := range l.Attributes {
		n += a.Components
	}
	return n
}

// VertexStrideBytes returns the byte stride between consecutive vertices.
func (l Layout) VertexStrideBytes() int {
	return l.FloatsPerVertex() * 4
}

// quadIndexPattern is the two-triangle decomposition of a quad whose
// corners are emitted in top-left, bottom-left, bottom-right, top-right
// order. It is shared by every kind that renders as a quad.
var quadIndexPattern = [6]uint32{0, 1, 3, 1, 2, 3}

func textureLayout() Layout {
	return Layout{
		Name: "texture",
		Attributes: []Attribute{
			{Name: "position", Components: 2},
			{Name: "texcoord", Components: 2},
			{Name: "tint", Components: 4},
		},
		VerticesPerPrimitive: 4,
		IndicesPerPrimitive:  6,
	}
}

func glyphLayout() Layout {
	return Layout{
		Name: "glyph",
		Attributes: []Attribute{
			{Name: "position", Components: 2},
			{Name: "glyphcoord", Components: 2},
			{Name: "tint", Components: 4},
		},
		VerticesPerPrimitive: 4,
		IndicesPerPrimitive:  6,
	}
}

func rectLayout() Layout {
	return Layout{
		Name: "rect",
		Attributes: []Attribute{
			{Name: "position", Components: 2},
			{Name: "color", Components: 4},
		},
		VerticesPerPrimitive: 4,
		IndicesPerPrimitive:  6,
	}
}

func lineLayout() Layout {
	return Layout{
		Name: "line",
		Attributes: []Attribute{
			{Name: "position", Components: 2},
			{Name: "color", Components: 4},
		},
		VerticesPerPrimitive: 4,
		IndicesPerPrimitive:  6,
	}
}
