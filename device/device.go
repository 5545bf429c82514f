// Package device defines the graphics-device seam of the batch layer:
// the lifecycle events that drive GPU resource management, the Lifecycle
// bundle of notification channels every batch buffer subscribes to, and
// the Invoker interface through which all device calls are made.
//
// The package never talks to a GPU itself. Production code plugs in an
// Invoker implementation (see backend/opengl); tests plug in the
// recording fake from the devicetest subpackage.
package device

// ReadyEvent signals that the graphics context is available and GPU
// resources may be allocated.
type ReadyEvent struct{}

// ShutdownEvent signals that the graphics context is going away and all
// GPU resources must be released.
type ShutdownEvent struct{}

// BatchSizeEvent signals that the number of items per batch changed.
// Count is always greater than zero.
type BatchSizeEvent struct {
	// Count is the new number of items per batch.
	Count uint32
}
