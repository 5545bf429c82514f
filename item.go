package batch

import (
	"github.com/gogpu/gputypes"
	"golang.org/x/image/math/f32"
)

// Rect is an axis-aligned rectangle in pixel space, origin at the
// top-left corner, y growing downward.
type Rect struct {
	X, Y, W, H float32
}

// Center returns the center point of the rectangle.
func (r Rect) Center() f32.Vec2 {
	return f32.Vec2{r.X + r.W/2, r.Y + r.H/2}
}

// Corners returns the four corner points in the order top-left,
// bottom-left, bottom-right, top-right. This matches the vertex emit
// order of all quad-kind buffers.
func (r Rect) Corners() [4]f32.Vec2 {
	return [4]f32.Vec2{
		{r.X, r.Y},
		{r.X, r.Y + r.H},
		{r.X + r.W, r.Y + r.H},
		{r.X + r.W, r.Y},
	}
}

// TextureQuadItem is the per-draw data for one textured quad in a
// batch. Items are immutable values produced by the rendering caller
// and consumed by TextureBuffer.UploadVertexData.
type TextureQuadItem struct {
	// SrcRect is where the quad appears on the render target, in
	// pixels. It is mapped to normalized device coordinates using the
	// buffer's viewport size.
	SrcRect Rect

	// DestRect selects the region within the source image that is
	// drawn, in pixels of that image.
	DestRect Rect

	// ImageSize is the full size of the source image in pixels, used
	// to normalize DestRect into texture coordinates.
	ImageSize f32.Vec2

	// Angle rotates the quad around its center, in degrees; positive
	// values rotate clockwise on screen.
	Angle float32

	// Color is the tint multiplied into the fragment color.
	Color gputypes.Color

	// Effects selects horizontal/vertical mirroring.
	Effects RenderEffects

	// TextureID identifies the source texture for draw-call grouping.
	TextureID uint32

	// Layer is the z-order the caller sorts items by before upload.
	// The buffer itself does not consume it.
	Layer int
}

// GlyphItem is the per-draw data for one glyph quad. Glyphs are
// textured quads whose source image is a glyph atlas.
type GlyphItem struct {
	// SrcRect is where the glyph appears on the render target, in pixels.
	SrcRect Rect

	// DestRect selects the glyph's region within the atlas, in pixels.
	DestRect Rect

	// AtlasSize is the full atlas size in pixels.
	AtlasSize f32.Vec2

	// Color is the text tint.
	Color gputypes.Color

	// Effects selects horizontal/vertical mirroring.
	Effects RenderEffects

	// AtlasID identifies the atlas texture.
	AtlasID uint32

	// Glyph is the rune this quad renders, kept for diagnostics.
	Glyph rune

	// Layer is the z-order the caller sorts items by before upload.
	Layer int
}

// RectItem is the per-draw data for one solid rectangle.
type RectItem struct {
	// Rect is the rectangle on the render target, in pixels.
	Rect Rect

	// Color is the fill color.
	Color gputypes.Color

	// Layer is the z-order the caller sorts items by before upload.
	Layer int
}

// LineItem is the per-draw data for one thick line segment. The segment
// is rendered as a quad spanning Thickness pixels across the
// start-to-end direction.
type LineItem struct {
	// Start is the first endpoint, in pixels.
	Start f32.Vec2

	// End is the second endpoint, in pixels.
	End f32.Vec2

	// Thickness is the line width in pixels.
	Thickness float32

	// Color is the line color.
	Color gputypes.Color

	// Layer is the z-order the caller sorts items by before upload.
	Layer int
}
