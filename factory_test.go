package batch

import (
	"errors"
	"testing"
)

// TestBufferSetSingletons verifies that each kind is constructed once
// per set, later calls return the identical instance ignoring options,
// and device allocations happen exactly once per kind.
func TestBufferSetSingletons(t *testing.T) {
	inv, life := newHarness(t)
	set, err := NewBufferSet(inv, inv, life)
	if err != nil {
		t.Fatalf("NewBufferSet failed: %v", err)
	}

	first, err := set.CreateTextureBuffer(WithBatchSize(64))
	if err != nil {
		t.Fatalf("CreateTextureBuffer failed: %v", err)
	}
	life.DeviceReady()

	second, err := set.CreateTextureBuffer(WithBatchSize(9999))
	if err != nil {
		t.Fatalf("second CreateTextureBuffer failed: %v", err)
	}
	if first != second {
		t.Fatal("CreateTextureBuffer returned distinct instances")
	}
	if second.BatchSize() != 64 {
		t.Errorf("second call applied options: batch size %d, want 64", second.BatchSize())
	}
	if inv.GenVertexArrayCalls != 1 {
		t.Errorf("GenVertexArray called %d times across both calls, want 1", inv.GenVertexArrayCalls)
	}
}

// TestBufferSetDistinctKinds verifies the four kinds are separate
// buffers with separate GPU objects.
func TestBufferSetDistinctKinds(t *testing.T) {
	inv, life := newHarness(t)
	set, err := NewBufferSet(inv, inv, life)
	if err != nil {
		t.Fatalf("NewBufferSet failed: %v", err)
	}

	tb, _ := set.CreateTextureBuffer()
	gb, _ := set.CreateGlyphBuffer()
	rb, _ := set.CreateRectBuffer()
	lb, _ := set.CreateLineBuffer()
	if tb == nil || gb == nil || rb == nil || lb == nil {
		t.Fatal("a kind failed to construct")
	}

	names := map[string]bool{tb.Name(): true, gb.Name(): true, rb.Name(): true, lb.Name(): true}
	if len(names) != 4 {
		t.Errorf("kinds share names: %v", names)
	}

	life.DeviceReady()
	if inv.GenVertexArrayCalls != 4 {
		t.Errorf("GenVertexArray called %d times, want 4 (one per kind)", inv.GenVertexArrayCalls)
	}
	if inv.GenBufferCalls != 8 {
		t.Errorf("GenBuffer called %d times, want 8 (two per kind)", inv.GenBufferCalls)
	}
}

// TestBufferSetDefaults verifies set-level options apply to every
// buffer while call-site options win.
func TestBufferSetDefaults(t *testing.T) {
	inv, life := newHarness(t)
	set, err := NewBufferSet(inv, inv, life, WithBatchSize(500))
	if err != nil {
		t.Fatalf("NewBufferSet failed: %v", err)
	}

	tb, err := set.CreateTextureBuffer()
	if err != nil {
		t.Fatalf("CreateTextureBuffer failed: %v", err)
	}
	if tb.BatchSize() != 500 {
		t.Errorf("texture batch size = %d, want set default 500", tb.BatchSize())
	}

	lb, err := set.CreateLineBuffer(WithBatchSize(25))
	if err != nil {
		t.Fatalf("CreateLineBuffer failed: %v", err)
	}
	if lb.BatchSize() != 25 {
		t.Errorf("line batch size = %d, want call-site 25", lb.BatchSize())
	}
}

// TestBufferSetRequiresCollaborators verifies construction fails
// without an invoker or lifecycle.
func TestBufferSetRequiresCollaborators(t *testing.T) {
	inv, life := newHarness(t)

	if _, err := NewBufferSet(nil, nil, life); !errors.Is(err, ErrNilInvoker) {
		t.Errorf("nil invoker = %v, want ErrNilInvoker", err)
	}
	if _, err := NewBufferSet(inv, nil, nil); !errors.Is(err, ErrNilLifecycle) {
		t.Errorf("nil lifecycle = %v, want ErrNilLifecycle", err)
	}
	if _, err := NewBufferSet(inv, nil, life); err != nil {
		t.Errorf("nil labeller = %v, want success", err)
	}
}

// TestBufferSetViewport verifies viewport propagation to created
// buffers shapes subsequent uploads.
func TestBufferSetViewport(t *testing.T) {
	inv, life := newHarness(t)
	set, err := NewBufferSet(inv, inv, life)
	if err != nil {
		t.Fatalf("NewBufferSet failed: %v", err)
	}
	tb, err := set.CreateTextureBuffer()
	if err != nil {
		t.Fatalf("CreateTextureBuffer failed: %v", err)
	}
	life.DeviceReady()

	set.SetViewportSize(1024, 512)

	item := TextureQuadItem{
		SrcRect:   Rect{X: 512, Y: 256, W: 0, H: 0},
		DestRect:  Rect{X: 0, Y: 0, W: 64, H: 64},
		ImageSize: [2]float32{64, 64},
	}
	if err := tb.UploadVertexData(item, 0); err != nil {
		t.Fatalf("UploadVertexData failed: %v", err)
	}
	up := inv.Uploads[0]
	// (512,256) is the center of a 1024x512 viewport.
	if up.Data[0] != 0 || up.Data[1] != 0 {
		t.Errorf("top-left position = (%v,%v), want (0,0)", up.Data[0], up.Data[1])
	}
}
