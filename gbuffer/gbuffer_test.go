// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gbuffer

import (
	"testing"

	"github.com/ashenforge/render/backend"
	"github.com/ashenforge/render/backend/noop"
	"github.com/ashenforge/render/cmdcontext"
)

// countingAllocator wraps noop's allocator (the only package outside
// backend itself that can construct a backend.RenderTargetView /
// backend.DepthStencilView, since those interfaces seal their methods to
// package backend) to observe how many times GBuffer asks for each kind
// of attachment.
type countingAllocator struct {
	inner            noop.GBufferAllocator
	colorCalls       int
	depthCalls       int
	lastWidth        uint32
	lastHeight       uint32
	lastColorTargets []Target
}

func (a *countingAllocator) CreateColorTarget(width, height uint32, target Target) backend.RenderTargetView {
	a.colorCalls++
	a.lastWidth, a.lastHeight = width, height
	a.lastColorTargets = append(a.lastColorTargets, target)
	return a.inner.CreateColorTarget(width, height, target)
}

func (a *countingAllocator) CreateDepthTarget(width, height uint32) backend.DepthStencilView {
	a.depthCalls++
	a.lastWidth, a.lastHeight = width, height
	return a.inner.CreateDepthTarget(width, height)
}

func TestNewAllocatesAllFiveAttachments(t *testing.T) {
	alloc := &countingAllocator{}
	g := New(alloc, 1920, 1080)

	if alloc.colorCalls != 4 {
		t.Fatalf("expected 4 color target allocations, got %d", alloc.colorCalls)
	}
	if alloc.depthCalls != 1 {
		t.Fatalf("expected 1 depth target allocation, got %d", alloc.depthCalls)
	}
	if g.Width() != 1920 || g.Height() != 1080 {
		t.Fatalf("unexpected dimensions: %dx%d", g.Width(), g.Height())
	}
}

func TestNewRequestsEachColorTargetOnce(t *testing.T) {
	alloc := &countingAllocator{}
	New(alloc, 64, 64)

	want := map[Target]bool{Position: true, Normal: true, Albedo: true, Emissive: true}
	for _, target := range alloc.lastColorTargets {
		if !want[target] {
			t.Fatalf("unexpected target requested: %v", target)
		}
		delete(want, target)
	}
	if len(want) != 0 {
		t.Fatalf("targets never requested: %v", want)
	}
}

func TestColorTargetPanicsOnDepth(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected ColorTarget(Depth) to panic")
		}
	}()
	g := New(&countingAllocator{}, 64, 64)
	g.ColorTarget(Depth)
}

func TestColorTargetReturnsNonNilViews(t *testing.T) {
	g := New(&countingAllocator{}, 64, 64)
	for _, target := range []Target{Position, Normal, Albedo, Emissive} {
		if g.ColorTarget(target) == nil {
			t.Fatalf("ColorTarget(%v) returned nil", target)
		}
	}
	if g.DepthTarget() == nil {
		t.Fatal("DepthTarget() returned nil")
	}
}

func TestResizeReallocatesAtNewDimensions(t *testing.T) {
	alloc := &countingAllocator{}
	g := New(alloc, 64, 64)

	g.Resize(128, 256)

	if alloc.colorCalls != 8 {
		t.Fatalf("expected 8 total color allocations after resize, got %d", alloc.colorCalls)
	}
	if alloc.lastWidth != 128 || alloc.lastHeight != 256 {
		t.Fatalf("resize did not propagate new dimensions: %dx%d", alloc.lastWidth, alloc.lastHeight)
	}
	if g.Width() != 128 || g.Height() != 256 {
		t.Fatalf("GBuffer dimensions not updated: %dx%d", g.Width(), g.Height())
	}
}

func TestEncodeDecodeNormalRoundTrip(t *testing.T) {
	n := [3]float32{0.5, -1, 1}
	encoded := EncodeNormal(n)
	decoded := DecodeNormal(encoded)

	for i := range n {
		if diff := decoded[i] - n[i]; diff > 1e-5 || diff < -1e-5 {
			t.Fatalf("round trip mismatch at %d: got %v want %v", i, decoded[i], n[i])
		}
	}
}

func TestEncodeNormalMapsZeroToHalf(t *testing.T) {
	encoded := EncodeNormal([3]float32{0, 0, 0})
	want := [3]float32{0.5, 0.5, 0.5}
	if encoded != want {
		t.Fatalf("EncodeNormal(zero) = %v, want %v", encoded, want)
	}
}

func TestBindSetsAllFourColorTargetsPlusDepth(t *testing.T) {
	b := noop.New(nil)
	if err := b.Initialize(0, 64, 64); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if err := b.BeginFrame(); err != nil {
		t.Fatalf("BeginFrame: %v", err)
	}
	g := New(&noop.GBufferAllocator{}, 64, 64)
	cmd := cmdcontext.New(b.CreateCommandContext(), b.Arenas())
	g.Bind(cmd)

	recorded := b.RecordedDraws()
	if len(recorded) != 1 || recorded[0].RenderTargetCount != 4 {
		t.Fatalf("expected 1 command list with 4 render targets bound, got %+v", recorded)
	}
}

func TestClearClearsFourColorTargetsAndDepth(t *testing.T) {
	b := noop.New(nil)
	if err := b.Initialize(0, 64, 64); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if err := b.BeginFrame(); err != nil {
		t.Fatalf("BeginFrame: %v", err)
	}
	g := New(&noop.GBufferAllocator{}, 64, 64)
	cmd := cmdcontext.New(b.CreateCommandContext(), b.Arenas())
	g.Clear(cmd)

	recorded := b.RecordedDraws()
	if len(recorded) != 1 || len(recorded[0].Clears) != 4 || len(recorded[0].DepthClears) != 1 {
		t.Fatalf("expected 4 color clears and 1 depth clear, got %+v", recorded)
	}
	if recorded[0].DepthClears[0] != 1.0 {
		t.Fatalf("expected depth clear to 1.0, got %v", recorded[0].DepthClears[0])
	}
}

func TestTargetString(t *testing.T) {
	cases := map[Target]string{
		Position: "Position",
		Normal:   "Normal",
		Albedo:   "Albedo",
		Emissive: "Emissive",
		Depth:    "Depth",
	}
	for target, want := range cases {
		if got := target.String(); got != want {
			t.Fatalf("Target(%d).String() = %q, want %q", int(target), got, want)
		}
	}
}
