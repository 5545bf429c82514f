package batch

import (
	"golang.org/x/image/math/f32"

	"github.com/gogpu/batch/device"
)

// TextureBuffer is the batch buffer for textured quads. Vertices carry
// position, texture coordinates, and tint (8 floats per vertex).
type TextureBuffer = GPUBuffer[TextureQuadItem]

// NewTextureBuffer creates a texture batch buffer wired to the
// lifecycle channels. labels may be nil.
func NewTextureBuffer(invoker device.Invoker, labels device.Labeller, lifecycle *device.Lifecycle, opts ...BufferOption) (*TextureBuffer, error) {
	return newGPUBuffer(invoker, labels, lifecycle, textureLayout(), encodeTextureItem, opts...)
}

func encodeTextureItem(item TextureQuadItem, viewport f32.Vec2, dst []float32) error {
	return encodeQuad(item.SrcRect, item.Angle, item.DestRect, item.ImageSize,
		item.Color, item.Effects, viewport, dst)
}
