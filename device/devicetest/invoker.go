// Package devicetest provides a recording fake of the device call
// surface for use in tests. The fake counts every call, hands out
// sequential handles, and captures uploaded data so tests can assert on
// exact byte offsets and float sequences.
package devicetest

import "github.com/gogpu/batch/device"

// BindCall records one BindBuffer invocation.
type BindCall struct {
	Target device.BufferTarget
	Buffer uint32
}

// StoreCall records one BufferDataFloat or BufferDataUint invocation.
type StoreCall struct {
	Target device.BufferTarget
	Len    int
	Usage  device.BufferUsage
}

// SubDataCall records one BufferSubDataFloat invocation.
type SubDataCall struct {
	Target      device.BufferTarget
	OffsetBytes int
	Data        []float32
}

// AttribCall records one VertexAttribPointer invocation.
type AttribCall struct {
	Index       uint32
	Components  int32
	StrideBytes int32
	OffsetBytes int
}

// RecordingInvoker implements device.Invoker and device.Labeller,
// recording every call. Handles are allocated sequentially from 1.
// Create instances with NewRecordingInvoker.
type RecordingInvoker struct {
	nextHandle uint32

	// Allocation and deletion counters.
	GenVertexArrayCalls    int
	GenBufferCalls         int
	DeleteVertexArrayCalls int
	DeleteBufferCalls      int

	// Handles observed.
	VertexArrays   []uint32
	Buffers        []uint32
	DeletedArrays  []uint32
	DeletedBuffers []uint32

	// Bind history. BoundVertexArrays includes unbinds (handle 0).
	BoundVertexArrays []uint32
	BoundBuffers      []BindCall

	// Data transfer history.
	FloatStores []StoreCall
	UintStores  []StoreCall
	UintData    [][]uint32
	Uploads     []SubDataCall

	// Attribute configuration history.
	Attribs        []AttribCall
	EnabledAttribs []uint32

	// Labeller history.
	Groups       []string
	OpenGroups   int
	ArrayLabels  map[uint32]string
	BufferLabels map[uint32]string
}

// NewRecordingInvoker creates an empty recording fake.
func NewRecordingInvoker() *RecordingInvoker {
	return &RecordingInvoker{
		ArrayLabels:  make(map[uint32]string),
		BufferLabels: make(map[uint32]string),
	}
}

// GenVertexArray implements device.Invoker.
func (r *RecordingInvoker) GenVertexArray() uint32 {
	r.GenVertexArrayCalls++
	r.nextHandle++
	r.VertexArrays = append(r.VertexArrays, r.nextHandle)
	return r.nextHandle
}

// GenBuffer implements device.Invoker.
func (r *RecordingInvoker) GenBuffer() uint32 {
	r.GenBufferCalls++
	r.nextHandle++
	r.Buffers = append(r.Buffers, r.nextHandle)
	return r.nextHandle
}

// BindVertexArray implements device.Invoker.
func (r *RecordingInvoker) BindVertexArray(vao uint32) {
	r.BoundVertexArrays = append(r.BoundVertexArrays, vao)
}

// BindBuffer implements device.Invoker.
func (r *RecordingInvoker) BindBuffer(target device.BufferTarget, buffer uint32) {
	r.BoundBuffers = append(r.BoundBuffers, BindCall{Target: target, Buffer: buffer})
}

// BufferDataFloat implements device.Invoker.
func (r *RecordingInvoker) BufferDataFloat(target device.BufferTarget, data []float32, usage device.BufferUsage) {
	r.FloatStores = append(r.FloatStores, StoreCall{Target: target, Len: len(data), Usage: usage})
}

// BufferDataUint implements device.Invoker.
func (r *RecordingInvoker) BufferDataUint(target device.BufferTarget, data []uint32, usage device.BufferUsage) {
	r.UintStores = append(r.UintStores, StoreCall{Target: target, Len: len(data), Usage: usage})
	cp := make([]uint32, len(data))
	copy(cp, data)
	r.UintData = append(r.UintData, cp)
}

// BufferSubDataFloat implements device.Invoker.
func (r *RecordingInvoker) BufferSubDataFloat(target device.BufferTarget, offsetBytes int, data []float32) {
	cp := make([]float32, len(data))
	copy(cp, data)
	r.Uploads = append(r.Uploads, SubDataCall{Target: target, OffsetBytes: offsetBytes, Data: cp})
}

// VertexAttribPointer implements device.Invoker.
func (r *RecordingInvoker) VertexAttribPointer(index uint32, components, strideBytes int32, offsetBytes int) {
	r.Attribs = append(r.Attribs, AttribCall{
		Index:       index,
		Components:  components,
		StrideBytes: strideBytes,
		OffsetBytes: offsetBytes,
	})
}

// EnableVertexAttribArray implements device.Invoker.
func (r *RecordingInvoker) EnableVertexAttribArray(index uint32) {
	r.EnabledAttribs = append(r.EnabledAttribs, index)
}

// DeleteVertexArray implements device.Invoker.
func (r *RecordingInvoker) DeleteVertexArray(vao uint32) {
	r.DeleteVertexArrayCalls++
	r.DeletedArrays = append(r.DeletedArrays, vao)
}

// DeleteBuffer implements device.Invoker.
func (r *RecordingInvoker) DeleteBuffer(buffer uint32) {
	r.DeleteBufferCalls++
	r.DeletedBuffers = append(r.DeletedBuffers, buffer)
}

// BeginGroup implements device.Labeller.
func (r *RecordingInvoker) BeginGroup(label string) {
	r.Groups = append(r.Groups, label)
	r.OpenGroups++
}

// EndGroup implements device.Labeller.
func (r *RecordingInvoker) EndGroup() {
	r.OpenGroups--
}

// LabelVertexArray implements device.Labeller.
func (r *RecordingInvoker) LabelVertexArray(vao uint32, label string) {
	r.ArrayLabels[vao] = label
}

// LabelBuffer implements device.Labeller.
func (r *RecordingInvoker) LabelBuffer(buffer uint32, label string, _ device.BufferTarget) {
	r.BufferLabels[buffer] = label
}
