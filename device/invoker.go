// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package device

import "fmt"

// BufferTarget identifies the binding point of a GPU buffer object.
type BufferTarget uint32

const (
	// TargetArrayBuffer is the vertex data binding point.
	TargetArrayBuffer BufferTarget = iota
	// TargetElementArrayBuffer is the index data binding point.
	TargetElementArrayBuffer
)

// String returns the string representation of BufferTarget.
func (t BufferTarget) String() string {
	switch t {
	case TargetArrayBuffer:
		return "ArrayBuffer"
	case TargetElementArrayBuffer:
		return "ElementArrayBuffer"
	default:
		return fmt.Sprintf("Unknown(%d)", uint32(t))
	}
}

// BufferUsage is the expected update pattern of a buffer store, passed
// to the device as an allocation hint.
type BufferUsage uint32

const (
	// UsageStaticDraw marks data written once and drawn many times.
	UsageStaticDraw BufferUsage = iota
	// UsageDynamicDraw marks data rewritten frequently.
	UsageDynamicDraw
)

// String returns the string representation of BufferUsage.
func (u BufferUsage) String() string {
	switch u {
	case UsageStaticDraw:
		return "StaticDraw"
	case UsageDynamicDraw:
		return "DynamicDraw"
	default:
		return fmt.Sprintf("Unknown(%d)", uint32(u))
	}
}

// Invoker is the opaque graphics-device call surface consumed by batch
// buffers. Handle value 0 unbinds the respective binding point.
//
// Failure modes of the underlying device are outside this layer; Invoker
// methods do not return errors.
type Invoker interface {
	// GenVertexArray allocates a vertex-array object and returns its handle.
	GenVertexArray() uint32

	// GenBuffer allocates a buffer object and returns its handle.
	GenBuffer() uint32

	// BindVertexArray binds the vertex-array object.
	BindVertexArray(vao uint32)

	// BindBuffer binds a buffer object to a target.
	BindBuffer(target BufferTarget, buffer uint32)

	// BufferDataFloat allocates the bound buffer's store and fills it
	// with float32 data.
	BufferDataFloat(target BufferTarget, data []float32, usage BufferUsage)

	// BufferDataUint allocates the bound buffer's store and fills it
	// with uint32 data.
	BufferDataUint(target BufferTarget, data []uint32, usage BufferUsage)

	// BufferSubDataFloat overwrites part of the bound buffer's store at
	// the given byte offset.
	BufferSubDataFloat(target BufferTarget, offsetBytes int, data []float32)

	// VertexAttribPointer defines an interleaved float32 vertex
	// attribute on the bound vertex array.
	VertexAttribPointer(index uint32, components int32, strideBytes int32, offsetBytes int)

	// EnableVertexAttribArray enables a vertex attribute.
	EnableVertexAttribArray(index uint32)

	// DeleteVertexArray releases a vertex-array object.
	DeleteVertexArray(vao uint32)

	// DeleteBuffer releases a buffer object.
	DeleteBuffer(buffer uint32)
}

// Labeller names GPU objects and groups device calls for debugging
// tools. It is purely observational and never affects correctness.
type Labeller interface {
	// BeginGroup opens a named debug group.
	BeginGroup(label string)

	// EndGroup closes the innermost debug group.
	EndGroup()

	// LabelVertexArray attaches a debug label to a vertex-array object.
	LabelVertexArray(vao uint32, label string)

	// LabelBuffer attaches a debug label to a buffer object.
	LabelBuffer(buffer uint32, label string, target BufferTarget)
}

// NopLabeller is a Labeller that does nothing. Use it when no debug
// tooling is attached.
type NopLabeller struct{}

// BeginGroup implements Labeller.
func (NopLabeller) BeginGroup(string) {}

// EndGroup implements Labeller.
func (NopLabeller) EndGroup() {}

// LabelVertexArray implements Labeller.
func (NopLabeller) LabelVertexArray(uint32, string) {}

// LabelBuffer implements Labeller.
func (NopLabeller) LabelBuffer(uint32, string, BufferTarget) {}
