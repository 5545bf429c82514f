// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package batch

import (
	"errors"
	"fmt"

	"golang.org/x/image/math/f32"

	"github.com/gogpu/batch/device"
	"github.com/gogpu/batch/notify"
)

// Buffer errors.
var (
	// ErrNotInitialized is returned when operating on a buffer before
	// the device-ready event has been processed.
	ErrNotInitialized = errors.New("batch: buffer not initialized")

	// ErrInvalidRenderEffects is returned when an item carries a render
	// effect value outside the defined flag combinations.
	ErrInvalidRenderEffects = errors.New("batch: invalid render effects")

	// ErrSlotOutOfRange is returned when uploading to a slot index at or
	// beyond the current batch size.
	ErrSlotOutOfRange = errors.New("batch: upload slot out of range")

	// ErrNilInvoker is returned when constructing a buffer without a
	// device invoker.
	ErrNilInvoker = errors.New("batch: device invoker is nil")

	// ErrNilLifecycle is returned when constructing a buffer without a
	// lifecycle.
	ErrNilLifecycle = errors.New("batch: lifecycle is nil")
)

// DefaultBatchSize is the number of batch slots a buffer allocates when
// no batch-size event has been received.
const DefaultBatchSize = 100

// EncodeFunc turns one batch item into its interleaved vertex data.
// dst is sized layout.FloatsPerVertex() × layout.VerticesPerPrimitive.
type EncodeFunc[T any] func(item T, viewport f32.Vec2, dst []float32) error

// GPUBuffer owns the GPU-side storage of one primitive kind: a vertex
// array object, a vertex buffer, and an index buffer, sized for the
// current batch capacity.
//
// The buffer is a state machine driven entirely by lifecycle events:
// it starts uninitialized, allocates its storage on the ready event,
// regenerates it on every batch-size event, and releases it on the
// shutdown event, after which further events are ignored.
//
// GPUBuffer is bound to the rendering thread; it performs no locking.
type GPUBuffer[T any] struct {
	invoker device.Invoker
	labels  device.Labeller
	layout  Layout
	encode  EncodeFunc[T]

	batchSize uint32
	viewport  f32.Vec2

	vao uint32
	vbo uint32
	ebo uint32

	initialized bool
	shutdown    bool

	readySub    *notify.Subscription
	resizeSub   *notify.Subscription
	shutdownSub *notify.Subscription
}

// newGPUBuffer wires a buffer of the given layout to the lifecycle
// channels. The buffer allocates nothing until the ready event arrives.
func newGPUBuffer[T any](invoker device.Invoker, labels device.Labeller, lifecycle *device.Lifecycle, layout Layout, encode EncodeFunc[T], opts ...BufferOption) (*GPUBuffer[T], error) {
	if invoker == nil {
		return nil, fmt.Errorf("%w: %s buffer", ErrNilInvoker, layout.Name)
	}
	if lifecycle == nil {
		return nil, fmt.Errorf("%w: %s buffer", ErrNilLifecycle, layout.Name)
	}
	if labels == nil {
		labels = device.NopLabeller{}
	}

	o := defaultBufferOptions()
	for _, opt := range opts {
		opt(&o)
	}

	b := &GPUBuffer[T]{
		invoker:   invoker,
		labels:    labels,
		layout:    layout,
		encode:    encode,
		batchSize: o.batchSize,
		viewport:  o.viewport,
	}
	b.readySub = lifecycle.Ready.Subscribe(&notify.Handler[device.ReadyEvent]{
		Next: func(device.ReadyEvent) { b.handleReady() },
	})
	b.resizeSub = lifecycle.BatchSize.Subscribe(&notify.Handler[device.BatchSizeEvent]{
		Next: func(e device.BatchSizeEvent) { b.handleBatchSize(e) },
	})
	b.shutdownSub = lifecycle.Shutdown.Subscribe(&notify.Handler[device.ShutdownEvent]{
		Next: func(device.ShutdownEvent) { b.handleShutdown() },
	})

	Logger().Debug("batch buffer created",
		"name", layout.Name,
		"batchSize", b.batchSize)
	return b, nil
}

// Name returns the buffer kind's diagnostic label.
func (b *GPUBuffer[T]) Name() string { return b.layout.Name }

// BatchSize returns the current number of batch slots.
func (b *GPUBuffer[T]) BatchSize() uint32 { return b.batchSize }

// IsInitialized reports whether GPU storage is currently allocated.
func (b *GPUBuffer[T]) IsInitialized() bool { return b.initialized }

// SetViewportSize sets the render-target size used to normalize item
// coordinates. It affects subsequent uploads only.
func (b *GPUBuffer[T]) SetViewportSize(size f32.Vec2) {
	b.viewport = size
}

// PrepareForUpload binds the buffer's vertex array so subsequent
// uploads and draws target it. It fails if the buffer has not been
// initialized by a device-ready event.
func (b *GPUBuffer[T]) PrepareForUpload() error {
	if !b.initialized {
		return b.errNotInitialized()
	}
	b.invoker.BindVertexArray(b.vao)
	return nil
}

// UploadVertexData encodes item and writes it into the vertex store at
// the given batch slot. The write lands at byte offset
// slot × vertex stride × vertices per primitive.
func (b *GPUBuffer[T]) UploadVertexData(item T, slot uint32) error {
	if !b.initialized {
		return b.errNotInitialized()
	}
	if slot >= b.batchSize {
		return fmt.Errorf("%w: slot %d, batch size %d", ErrSlotOutOfRange, slot, b.batchSize)
	}

	dst := make([]float32, b.layout.FloatsPerVertex()*b.layout.VerticesPerPrimitive)
	if err := b.encode(item, b.viewport, dst); err != nil {
		return err
	}

	offset := int(slot) * b.layout.VertexStrideBytes() * b.layout.VerticesPerPrimitive
	b.invoker.BindBuffer(device.TargetArrayBuffer, b.vbo)
	b.invoker.BufferSubDataFloat(device.TargetArrayBuffer, offset, dst)
	b.invoker.BindBuffer(device.TargetArrayBuffer, 0)
	return nil
}

// GenerateData returns the initial (zeroed) vertex store contents for
// the current batch size: batch size × vertices per primitive × floats
// per vertex values.
func (b *GPUBuffer[T]) GenerateData() ([]float32, error) {
	if !b.initialized {
		return nil, b.errNotInitialized()
	}
	return b.generateData(), nil
}

// GenerateIndices returns the index store contents for the current
// batch size. Each primitive contributes the two-triangle quad pattern
// {0,1,3,1,2,3} offset by its base vertex.
func (b *GPUBuffer[T]) GenerateIndices() ([]uint32, error) {
	if !b.initialized {
		return nil, b.errNotInitialized()
	}
	return b.generateIndices(), nil
}

// SetupVAO reconfigures the vertex attribute layout on the buffer's
// vertex array. Initialization does this once; callers only need it
// after tampering with attribute state externally.
func (b *GPUBuffer[T]) SetupVAO() error {
	if !b.initialized {
		return b.errNotInitialized()
	}
	b.invoker.BindVertexArray(b.vao)
	b.invoker.BindBuffer(device.TargetArrayBuffer, b.vbo)
	b.setupAttributes()
	b.invoker.BindVertexArray(0)
	b.invoker.BindBuffer(device.TargetArrayBuffer, 0)
	return nil
}

func (b *GPUBuffer[T]) errNotInitialized() error {
	return fmt.Errorf("%w: %s buffer", ErrNotInitialized, b.layout.Name)
}

func (b *GPUBuffer[T]) generateData() []float32 {
	return make([]float32, int(b.batchSize)*b.layout.VerticesPerPrimitive*b.layout.FloatsPerVertex())
}

func (b *GPUBuffer[T]) generateIndices() []uint32 {
	indices := make([]uint32, 0, int(b.batchSize)*b.layout.IndicesPerPrimitive)
	for i := uint32(0); i < b.batchSize; i++ {
		base := i * uint32(b.layout.VerticesPerPrimitive)
		for _, idx := range quadIndexPattern {
			indices = append(indices, base+idx)
		}
	}
	return indices
}

func (b *GPUBuffer[T]) setupAttributes() {
	stride := int32(b.layout.VertexStrideBytes())
	offset := 0
	for i, attr := range b.layout.Attributes {
		b.invoker.VertexAttribPointer(uint32(i), int32(attr.Components), stride, offset)
		b.invoker.EnableVertexAttribArray(uint32(i))
		offset += attr.Components * 4
	}
}

// handleReady allocates and populates the GPU storage. Repeated ready
// events while initialized are ignored.
func (b *GPUBuffer[T]) handleReady() {
	if b.shutdown || b.initialized {
		return
	}

	b.labels.BeginGroup("init " + b.layout.Name + " buffer")
	b.vao = b.invoker.GenVertexArray()
	b.vbo = b.invoker.GenBuffer()
	b.ebo = b.invoker.GenBuffer()
	b.labels.LabelVertexArray(b.vao, b.layout.Name+" VAO")
	b.labels.LabelBuffer(b.vbo, b.layout.Name+" VBO", device.TargetArrayBuffer)
	b.labels.LabelBuffer(b.ebo, b.layout.Name+" EBO", device.TargetElementArrayBuffer)

	b.invoker.BindVertexArray(b.vao)
	b.invoker.BindBuffer(device.TargetArrayBuffer, b.vbo)
	b.invoker.BufferDataFloat(device.TargetArrayBuffer, b.generateData(), device.UsageDynamicDraw)
	b.setupAttributes()
	b.invoker.BindBuffer(device.TargetElementArrayBuffer, b.ebo)
	b.invoker.BufferDataUint(device.TargetElementArrayBuffer, b.generateIndices(), device.UsageStaticDraw)

	// Unbind the VAO before the element buffer so the VAO keeps its
	// element binding; leave nothing bound afterwards.
	b.invoker.BindVertexArray(0)
	b.invoker.BindBuffer(device.TargetArrayBuffer, 0)
	b.invoker.BindBuffer(device.TargetElementArrayBuffer, 0)
	b.labels.EndGroup()

	b.initialized = true
	Logger().Debug("batch buffer initialized",
		"name", b.layout.Name,
		"batchSize", b.batchSize,
		"vertexFloats", int(b.batchSize)*b.layout.VerticesPerPrimitive*b.layout.FloatsPerVertex())
}

// handleBatchSize records the new capacity and, if storage exists,
// regenerates both stores at the new size. On an uninitialized buffer
// only the size is recorded; the eventual initialization uses it.
func (b *GPUBuffer[T]) handleBatchSize(e device.BatchSizeEvent) {
	if b.shutdown {
		return
	}
	b.batchSize = e.Count
	if !b.initialized {
		return
	}

	b.labels.BeginGroup("resize " + b.layout.Name + " buffer")
	b.invoker.BindVertexArray(b.vao)
	b.invoker.BindBuffer(device.TargetArrayBuffer, b.vbo)
	b.invoker.BufferDataFloat(device.TargetArrayBuffer, b.generateData(), device.UsageDynamicDraw)
	b.invoker.BindBuffer(device.TargetElementArrayBuffer, b.ebo)
	b.invoker.BufferDataUint(device.TargetElementArrayBuffer, b.generateIndices(), device.UsageStaticDraw)
	b.invoker.BindVertexArray(0)
	b.invoker.BindBuffer(device.TargetArrayBuffer, 0)
	b.invoker.BindBuffer(device.TargetElementArrayBuffer, 0)
	b.labels.EndGroup()

	Logger().Debug("batch buffer resized",
		"name", b.layout.Name,
		"batchSize", b.batchSize)
}

// handleShutdown releases GPU storage and disposes all subscriptions.
// A second shutdown event is a no-op.
func (b *GPUBuffer[T]) handleShutdown() {
	if b.shutdown {
		return
	}
	b.shutdown = true

	if b.initialized {
		b.invoker.DeleteVertexArray(b.vao)
		b.invoker.DeleteBuffer(b.vbo)
		b.invoker.DeleteBuffer(b.ebo)
		b.vao, b.vbo, b.ebo = 0, 0, 0
		b.initialized = false
	}

	b.readySub.Dispose()
	b.resizeSub.Dispose()
	b.shutdownSub.Dispose()

	Logger().Debug("batch buffer torn down", "name", b.layout.Name)
}
