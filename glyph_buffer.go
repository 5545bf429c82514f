package batch

import (
	"golang.org/x/image/math/f32"

	"github.com/gogpu/batch/device"
)

// GlyphBuffer is the batch buffer for text glyphs. Glyphs use the same
// quad layout as textures with coordinates into a glyph atlas.
type GlyphBuffer = GPUBuffer[GlyphItem]

// NewGlyphBuffer creates a glyph batch buffer wired to the lifecycle
// channels. labels may be nil.
func NewGlyphBuffer(invoker device.Invoker, labels device.Labeller, lifecycle *device.Lifecycle, opts ...BufferOption) (*GlyphBuffer, error) {
	return newGPUBuffer(invoker, labels, lifecycle, glyphLayout(), encodeGlyphItem, opts...)
}

func encodeGlyphItem(item GlyphItem, viewport f32.Vec2, dst []float32) error {
	// Glyph quads never rotate individually; rotation of whole text runs
	// happens in the layout pass before items reach the buffer.
	return encodeQuad(item.SrcRect, 0, item.DestRect, item.AtlasSize,
		item.Color, item.Effects, viewport, dst)
}
