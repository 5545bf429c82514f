package batch

import (
	"fmt"
	"math"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/math/f32"
)

// toNDC converts a pixel-space point (origin top-left, y down) into
// normalized device coordinates (origin center, y up, both axes -1..1).
func toNDC(p, viewport f32.Vec2) f32.Vec2 {
	return f32.Vec2{
		p[0]/viewport[0]*2 - 1,
		-(p[1]/viewport[1]*2 - 1),
	}
}

// rotatePoint rotates p around center by angle degrees. Positive angles
// rotate clockwise on screen (pixel space has y growing downward).
func rotatePoint(p, center f32.Vec2, angleDeg float32) f32.Vec2 {
	if angleDeg == 0 {
		return p
	}
	rad := float64(angleDeg) * math.Pi / 180
	sin := float32(math.Sin(rad))
	cos := float32(math.Cos(rad))
	dx := p[0] - center[0]
	dy := p[1] - center[1]
	return f32.Vec2{
		center[0] + dx*cos - dy*sin,
		center[1] + dx*sin + dy*cos,
	}
}

// tintComponents converts a tint color to float32 vertex components.
func tintComponents(c gputypes.Color) (r, g, b, a float32) {
	return float32(c.R), float32(c.G), float32(c.B), float32(c.A)
}

// encodeQuad writes the four-corner interleaved vertex data of one
// textured quad into dst: per corner position.xy in NDC, texcoord.uv,
// and tint rgba (8 floats, 32 total). Corners are emitted top-left,
// bottom-left, bottom-right, top-right to match quadIndexPattern.
//
// screen places the quad on the render target; region selects the part
// of the source image, normalized by image. Horizontal flipping swaps
// the left/right texture coordinates, vertical flipping the top/bottom
// ones.
func encodeQuad(screen Rect, angle float32, region Rect, image f32.Vec2, tint gputypes.Color, effects RenderEffects, viewport f32.Vec2, dst []float32) error {
	if !effects.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidRenderEffects, uint32(effects))
	}

	u0 := region.X / image[0]
	v0 := region.Y / image[1]
	u1 := (region.X + region.W) / image[0]
	v1 := (region.Y + region.H) / image[1]
	if effects&RenderFlipHorizontally != 0 {
		u0, u1 = u1, u0
	}
	if effects&RenderFlipVertically != 0 {
		v0, v1 = v1, v0
	}
	uv := [4]f32.Vec2{{u0, v0}, {u0, v1}, {u1, v1}, {u1, v0}}

	center := screen.Center()
	r, g, b, a := tintComponents(tint)
	for i, corner := range screen.Corners() {
		p := toNDC(rotatePoint(corner, center, angle), viewport)
		o := i * 8
		dst[o+0] = p[0]
		dst[o+1] = p[1]
		dst[o+2] = uv[i][0]
		dst[o+3] = uv[i][1]
		dst[o+4] = r
		dst[o+5] = g
		dst[o+6] = b
		dst[o+7] = a
	}
	return nil
}

// encodeColoredCorners writes four corners as position.xy in NDC plus
// color rgba (6 floats per vertex, 24 total) into dst.
func encodeColoredCorners(corners [4]f32.Vec2, color gputypes.Color, viewport f32.Vec2, dst []float32) {
	r, g, b, a := tintComponents(color)
	for i, corner := range corners {
		p := toNDC(corner, viewport)
		o := i * 6
		dst[o+0] = p[0]
		dst[o+1] = p[1]
		dst[o+2] = r
		dst[o+3] = g
		dst[o+4] = b
		dst[o+5] = a
	}
}

// lineCorners decomposes a thick line segment into the four corners of
// its quad, offset from the endpoints by the half-thickness normal. A
// zero-length segment yields a degenerate quad that rasterizes nothing.
func lineCorners(start, end f32.Vec2, thickness float32) [4]f32.Vec2 {
	dx := float64(end[0] - start[0])
	dy := float64(end[1] - start[1])
	length := math.Hypot(dx, dy)

	var nx, ny float32
	if length > 0 {
		scale := float64(thickness) / 2 / length
		nx = float32(-dy * scale)
		ny = float32(dx * scale)
	}
	return [4]f32.Vec2{
		{start[0] + nx, start[1] + ny},
		{start[0] - nx, start[1] - ny},
		{end[0] - nx, end[1] - ny},
		{end[0] + nx, end[1] + ny},
	}
}
