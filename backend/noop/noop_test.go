package noop_test

import (
	"errors"
	"testing"

	render "github.com/ashenforge/render"
	"github.com/ashenforge/render/backend/noop"
)

func TestFrameLifecycleHappyPath(t *testing.T) {
	b := noop.New(nil)
	if err := b.Initialize(0, 640, 480); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := b.BeginFrame(); err != nil {
			t.Fatalf("BeginFrame: %v", err)
		}
		ctx := b.CreateCommandContext()
		ctx.Draw(3, 1, 0)
		if err := b.EndFrame(); err != nil {
			t.Fatalf("EndFrame: %v", err)
		}
		if err := b.Present(); err != nil {
			t.Fatalf("Present: %v", err)
		}
	}
	if b.FrameCount() != 3 {
		t.Fatalf("FrameCount = %d, want 3", b.FrameCount())
	}
}

func TestEndFrameWithoutBeginFrameFails(t *testing.T) {
	b := noop.New(nil)
	_ = b.Initialize(0, 640, 480)
	if err := b.EndFrame(); !errors.Is(err, render.ErrFrameNotActive) {
		t.Fatalf("EndFrame without BeginFrame: got %v, want ErrFrameNotActive", err)
	}
}

func TestResizeWhileFrameActiveFails(t *testing.T) {
	b := noop.New(nil)
	_ = b.Initialize(0, 640, 480)
	_ = b.BeginFrame()
	if err := b.Resize(800, 600); !errors.Is(err, render.ErrFrameNotActive) {
		t.Fatalf("Resize during active frame: got %v, want ErrFrameNotActive", err)
	}
}

func TestInitializeRejectsZeroDimensions(t *testing.T) {
	b := noop.New(nil)
	if err := b.Initialize(0, 0, 480); !errors.Is(err, render.ErrBackendInit) {
		t.Fatalf("Initialize(0,480): got %v, want ErrBackendInit", err)
	}
}

func TestClearColorDefaultsWithoutCamera(t *testing.T) {
	b := noop.New(nil)
	_ = b.Initialize(0, 640, 480)
	got := b.ClearColor()
	if got != render.DefaultClearColor {
		t.Fatalf("ClearColor() = %v, want default %v", got, render.DefaultClearColor)
	}
}

func TestRecordedDrawsAccumulatePerContext(t *testing.T) {
	b := noop.New(nil)
	_ = b.Initialize(0, 640, 480)
	_ = b.BeginFrame()
	ctx := b.CreateCommandContext()
	ctx.Draw(3, 1, 0)
	ctx.DrawIndexed(6, 1, 0, 0)
	_ = b.EndFrame()

	recs := b.RecordedDraws()
	if len(recs) != 1 || len(recs[0].Draws) != 2 {
		t.Fatalf("RecordedDraws() = %+v, want one context with 2 draws", recs)
	}
	if recs[0].Draws[1].Indexed != true || recs[0].Draws[1].VertexCount != 6 {
		t.Fatalf("second draw = %+v, want indexed draw of 6", recs[0].Draws[1])
	}
}
