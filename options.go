package batch

import "golang.org/x/image/math/f32"

// Default viewport used until the host reports the real render-target
// size via WithViewport or SetViewportSize.
const (
	defaultViewportW = 800
	defaultViewportH = 600
)

// BufferOption configures a buffer during creation.
//
// Example:
//
//	tb, err := set.CreateTextureBuffer(
//	    batch.WithBatchSize(1000),
//	    batch.WithViewport(1920, 1080),
//	)
type BufferOption func(*bufferOptions)

// bufferOptions holds optional configuration for buffer creation.
type bufferOptions struct {
	batchSize uint32
	viewport  f32.Vec2
}

// defaultBufferOptions returns the default buffer options.
func defaultBufferOptions() bufferOptions {
	return bufferOptions{
		batchSize: DefaultBatchSize,
		viewport:  f32.Vec2{defaultViewportW, defaultViewportH},
	}
}

// WithBatchSize sets the initial batch capacity. Zero is ignored and
// keeps the default; later batch-size events override it either way.
func WithBatchSize(n uint32) BufferOption {
	return func(o *bufferOptions) {
		if n > 0 {
			o.batchSize = n
		}
	}
}

// WithViewport sets the initial render-target size used to normalize
// item coordinates.
func WithViewport(width, height float32) BufferOption {
	return func(o *bufferOptions) {
		o.viewport = f32.Vec2{width, height}
	}
}
