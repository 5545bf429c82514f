package batch

import (
	"golang.org/x/image/math/f32"

	"github.com/gogpu/batch/device"
)

// LineBuffer is the batch buffer for thick line segments. Each segment
// is decomposed into a two-triangle quad spanning the line's thickness;
// vertices carry position and color (6 floats per vertex).
type LineBuffer = GPUBuffer[LineItem]

// NewLineBuffer creates a line batch buffer wired to the lifecycle
// channels. labels may be nil.
func NewLineBuffer(invoker device.Invoker, labels device.Labeller, lifecycle *device.Lifecycle, opts ...BufferOption) (*LineBuffer, error) {
	return newGPUBuffer(invoker, labels, lifecycle, lineLayout(), encodeLineItem, opts...)
}

func encodeLineItem(item LineItem, viewport f32.Vec2, dst []float32) error {
	corners := lineCorners(item.Start, item.End, item.Thickness)
	encodeColoredCorners(corners, item.Color, viewport, dst)
	return nil
}
