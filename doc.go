// Package batch manages the GPU buffer objects behind batched 2D draw
// calls: one buffer per primitive kind (textured quad, glyph, rectangle,
// line), each laying out interleaved vertex and index data for a fixed
// number of batch slots and accepting per-item uploads into a slot.
//
// # Lifecycle
//
// Buffers never allocate GPU storage of their own accord. Every buffer
// subscribes to the shared device.Lifecycle channels at construction and
// reacts to three events:
//
//   - device ready: allocate vertex array, vertex buffer and index
//     buffer, upload initial data, configure the attribute layout
//   - batch size changed: regenerate both stores at the new capacity
//   - shutdown: release all GPU objects and unsubscribe (idempotent)
//
// A buffer that never sees a ready event stays uninitialized and every
// upload or setup call fails with ErrNotInitialized.
//
// # Rendering
//
// During a frame, the renderer calls PrepareForUpload once to bind the
// buffer's vertex array, then UploadVertexData for each visible item:
//
//	tb, _ := set.CreateTextureBuffer()
//	if err := tb.PrepareForUpload(); err != nil { ... }
//	for slot, item := range items {
//	    if err := tb.UploadVertexData(item, uint32(slot)); err != nil { ... }
//	}
//
// # Threading
//
// The package targets a single rendering thread. No operation blocks or
// suspends, notification delivery is synchronous, and no locking is
// performed; see package notify for the delivery-order guarantees the
// lifecycle handling relies on.
package batch
