package batch

import (
	"golang.org/x/image/math/f32"

	"github.com/gogpu/batch/device"
)

// RectBuffer is the batch buffer for solid rectangles. Vertices carry
// position and color (6 floats per vertex); there are no texture
// coordinates.
type RectBuffer = GPUBuffer[RectItem]

// NewRectBuffer creates a rectangle batch buffer wired to the lifecycle
// channels. labels may be nil.
func NewRectBuffer(invoker device.Invoker, labels device.Labeller, lifecycle *device.Lifecycle, opts ...BufferOption) (*RectBuffer, error) {
	return newGPUBuffer(invoker, labels, lifecycle, rectLayout(), encodeRectItem, opts...)
}

func encodeRectItem(item RectItem, viewport f32.Vec2, dst []float32) error {
	encodeColoredCorners(item.Rect.Corners(), item.Color, viewport, dst)
	return nil
}
