// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Command render-demo drives a few frames of the deferred pipeline through
// the noop backend, without a window, GPU or display. The -headless flag
// is accepted but has no effect.
package main

import (
	"flag"
	"log/slog"
	"os"

	render "github.com/ashenforge/render"
	"github.com/ashenforge/render/backend"
	"github.com/ashenforge/render/backend/noop"
	"github.com/ashenforge/render/pipeline"
	"github.com/go-gl/mathgl/mgl32"
)

func main() {
	headless := flag.Bool("headless", false, "use the noop backend instead of a real GPU backend")
	width := flag.Uint("width", 1280, "window width")
	height := flag.Uint("height", 720, "window height")
	flag.Parse()

	render.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	log := render.Logger()

	// Real vulkan/dx12 selection needs a live window and platform surface;
	// this demo only exercises the frame loop against the noop backend.
	// A windowed host wires backend/vulkan or backend/dx12 in behind the
	// same backend.Backend interface used here.
	_ = headless
	var be backend.Backend = noop.New(nil)

	if err := be.Initialize(0, uint32(*width), uint32(*height)); err != nil {
		log.Error("backend initialize failed", "error", err)
		os.Exit(1)
	}
	defer be.Shutdown()

	gAlloc := &noop.GBufferAllocator{}
	deferredPipeline := pipeline.NewLogicalDeferredPipeline(gAlloc, uint32(*width), uint32(*height))

	scene := render.StaticScene{
		Camera: render.StaticCamera{
			VP:    mgl32.Ident4(),
			Eye:   mgl32.Vec3{0, 2, -5},
			Clear: [4]float32{0.05, 0.05, 0.08, 1},
		},
		Draws: []render.DrawSubmission{
			{World: mgl32.Ident4(), BaseColor: [4]float32{1, 1, 1, 1}},
		},
		Lts: []render.Light{
			{Type: render.LightDirectional, Color: mgl32.Vec3{1, 1, 1}, Intensity: 1, Direction: mgl32.Vec3{0, -1, 0}},
			{Type: render.LightPoint, Color: mgl32.Vec3{1, 0.6, 0.3}, Intensity: 2, Position: mgl32.Vec3{0, 1, 0}, Range: 10},
		},
	}

	const frameCount = 3
	for i := 0; i < frameCount; i++ {
		if err := be.BeginFrame(); err != nil {
			log.Error("BeginFrame failed", "error", err)
			break
		}
		deferredPipeline.Update(1.0 / 60)
		list := be.CreateCommandContext()
		if err := deferredPipeline.Execute(list, be.Arenas(), scene); err != nil {
			log.Error("pipeline execute failed", "error", err)
		}
		if err := be.EndFrame(); err != nil {
			log.Error("EndFrame failed", "error", err)
			break
		}
		if err := be.Present(); err != nil {
			log.Warn("present failed", "error", err)
		}
	}
}
