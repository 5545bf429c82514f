// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package opengl implements the device call surface on OpenGL 4.6 core
// using go-gl bindings. It is a thin argument-translation layer; an
// OpenGL context must be current on the calling thread before any
// method is used.
package opengl

import (
	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/gogpu/batch/device"
)

// Invoker implements device.Invoker against the current OpenGL context.
type Invoker struct{}

// New returns an OpenGL-backed invoker. gl.Init must have been called
// by the host (typically right after context creation).
func New() *Invoker {
	return &Invoker{}
}

func glTarget(t device.BufferTarget) uint32 {
	if t == device.TargetElementArrayBuffer {
		return gl.ELEMENT_ARRAY_BUFFER
	}
	return gl.ARRAY_BUFFER
}

func glUsage(u device.BufferUsage) uint32 {
	if u == device.UsageDynamicDraw {
		return gl.DYNAMIC_DRAW
	}
	return gl.STATIC_DRAW
}

// GenVertexArray implements device.Invoker.
func (*Invoker) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

// GenBuffer implements device.Invoker.
func (*Invoker) GenBuffer() uint32 {
	var buffer uint32
	gl.GenBuffers(1, &buffer)
	return buffer
}

// BindVertexArray implements device.Invoker.
func (*Invoker) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

// BindBuffer implements device.Invoker.
func (*Invoker) BindBuffer(target device.BufferTarget, buffer uint32) {
	gl.BindBuffer(glTarget(target), buffer)
}

// BufferDataFloat implements device.Invoker.
func (*Invoker) BufferDataFloat(target device.BufferTarget, data []float32, usage device.BufferUsage) {
	gl.BufferData(glTarget(target), len(data)*4, gl.Ptr(data), glUsage(usage))
}

// BufferDataUint implements device.Invoker.
func (*Invoker) BufferDataUint(target device.BufferTarget, data []uint32, usage device.BufferUsage) {
	gl.BufferData(glTarget(target), len(data)*4, gl.Ptr(data), glUsage(usage))
}

// BufferSubDataFloat implements device.Invoker.
func (*Invoker) BufferSubDataFloat(target device.BufferTarget, offsetBytes int, data []float32) {
	gl.BufferSubData(glTarget(target), offsetBytes, len(data)*4, gl.Ptr(data))
}

// VertexAttribPointer implements device.Invoker.
func (*Invoker) VertexAttribPointer(index uint32, components, strideBytes int32, offsetBytes int) {
	gl.VertexAttribPointerWithOffset(index, components, gl.FLOAT, false, strideBytes, uintptr(offsetBytes))
}

// EnableVertexAttribArray implements device.Invoker.
func (*Invoker) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

// DeleteVertexArray implements device.Invoker.
func (*Invoker) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

// DeleteBuffer implements device.Invoker.
func (*Invoker) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

// Labeller implements device.Labeller with KHR_debug labels and groups.
// Labels show up in tools like RenderDoc and apitrace.
type Labeller struct{}

// NewLabeller returns an OpenGL-backed labeller.
func NewLabeller() *Labeller {
	return &Labeller{}
}

// BeginGroup implements device.Labeller.
func (*Labeller) BeginGroup(label string) {
	gl.PushDebugGroup(gl.DEBUG_SOURCE_APPLICATION, 0, -1, gl.Str(label+"\x00"))
}

// EndGroup implements device.Labeller.
func (*Labeller) EndGroup() {
	gl.PopDebugGroup()
}

// LabelVertexArray implements device.Labeller.
func (*Labeller) LabelVertexArray(vao uint32, label string) {
	gl.ObjectLabel(gl.VERTEX_ARRAY, vao, -1, gl.Str(label+"\x00"))
}

// LabelBuffer implements device.Labeller.
func (*Labeller) LabelBuffer(buffer uint32, label string, _ device.BufferTarget) {
	gl.ObjectLabel(gl.BUFFER, buffer, -1, gl.Str(label+"\x00"))
}
