// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package batch

import (
	"fmt"

	"golang.org/x/image/math/f32"

	"github.com/gogpu/batch/device"
)

// BufferSet lazily constructs and caches one buffer per primitive kind,
// wiring each to the same lifecycle channels. It replaces process-wide
// singleton caches: the host application creates one BufferSet during
// setup and passes it by reference to consumers, which guarantees at
// most one live GPU allocation per kind no matter how many call sites
// request a buffer.
//
// BufferSet is bound to the rendering thread, like the buffers it hands
// out.
type BufferSet struct {
	invoker   device.Invoker
	labels    device.Labeller
	lifecycle *device.Lifecycle
	defaults  []BufferOption

	texture *TextureBuffer
	glyph   *GlyphBuffer
	rect    *RectBuffer
	line    *LineBuffer
}

// NewBufferSet creates a buffer set over the given device invoker and
// lifecycle. labels may be nil to disable diagnostics. opts become the
// defaults for every buffer the set creates.
func NewBufferSet(invoker device.Invoker, labels device.Labeller, lifecycle *device.Lifecycle, opts ...BufferOption) (*BufferSet, error) {
	if invoker == nil {
		return nil, fmt.Errorf("%w: buffer set", ErrNilInvoker)
	}
	if lifecycle == nil {
		return nil, fmt.Errorf("%w: buffer set", ErrNilLifecycle)
	}
	if labels == nil {
		labels = device.NopLabeller{}
	}
	return &BufferSet{
		invoker:   invoker,
		labels:    labels,
		lifecycle: lifecycle,
		defaults:  opts,
	}, nil
}

// CreateTextureBuffer returns the set's texture buffer, constructing it
// on first call. Options are honored only by that first call; later
// calls return the cached instance unconditionally.
func (s *BufferSet) CreateTextureBuffer(opts ...BufferOption) (*TextureBuffer, error) {
	if s.texture != nil {
		return s.texture, nil
	}
	b, err := NewTextureBuffer(s.invoker, s.labels, s.lifecycle, s.merge(opts)...)
	if err != nil {
		return nil, err
	}
	s.texture = b
	return b, nil
}

// CreateGlyphBuffer returns the set's glyph buffer, constructing it on
// first call. Options are honored only by that first call.
func (s *BufferSet) CreateGlyphBuffer(opts ...BufferOption) (*GlyphBuffer, error) {
	if s.glyph != nil {
		return s.glyph, nil
	}
	b, err := NewGlyphBuffer(s.invoker, s.labels, s.lifecycle, s.merge(opts)...)
	if err != nil {
		return nil, err
	}
	s.glyph = b
	return b, nil
}

// CreateRectBuffer returns the set's rectangle buffer, constructing it
// on first call. Options are honored only by that first call.
func (s *BufferSet) CreateRectBuffer(opts ...BufferOption) (*RectBuffer, error) {
	if s.rect != nil {
		return s.rect, nil
	}
	b, err := NewRectBuffer(s.invoker, s.labels, s.lifecycle, s.merge(opts)...)
	if err != nil {
		return nil, err
	}
	s.rect = b
	return b, nil
}

// CreateLineBuffer returns the set's line buffer, constructing it on
// first call. Options are honored only by that first call.
func (s *BufferSet) CreateLineBuffer(opts ...BufferOption) (*LineBuffer, error) {
	if s.line != nil {
		return s.line, nil
	}
	b, err := NewLineBuffer(s.invoker, s.labels, s.lifecycle, s.merge(opts)...)
	if err != nil {
		return nil, err
	}
	s.line = b
	return b, nil
}

// SetViewportSize forwards the render-target size to every buffer
// created so far.
func (s *BufferSet) SetViewportSize(width, height float32) {
	size := f32.Vec2{width, height}
	if s.texture != nil {
		s.texture.SetViewportSize(size)
	}
	if s.glyph != nil {
		s.glyph.SetViewportSize(size)
	}
	if s.rect != nil {
		s.rect.SetViewportSize(size)
	}
	if s.line != nil {
		s.line.SetViewportSize(size)
	}
}

// merge appends per-call options after the set defaults so call-site
// options win.
func (s *BufferSet) merge(opts []BufferOption) []BufferOption {
	if len(opts) == 0 {
		return s.defaults
	}
	merged := make([]BufferOption, 0, len(s.defaults)+len(opts))
	merged = append(merged, s.defaults...)
	merged = append(merged, opts...)
	return merged
}
