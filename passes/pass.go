// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package passes implements the logical render pass model: a base
// LogicalPass shared by every concrete pass, and the seven passes the
// forward and deferred pipelines compose.
package passes

import (
	render "github.com/ashenforge/render"
	"github.com/ashenforge/render/backend"
	"github.com/ashenforge/render/cmdcontext"
)

// ExecutionContext is the state Pipeline hands to each Pass.Execute call:
// a fresh command context plus the scene data needed to build constant
// buffers and draw calls for this frame.
type ExecutionContext struct {
	Cmd   *cmdcontext.Context
	Scene render.SceneProvider
}

// Pass is one logical stage of a render pipeline.
type Pass interface {
	Name() string
	Priority() int
	Enabled() bool
	SetEnabled(bool)
	Viewport() render.Viewport
	SetViewport(render.Viewport)

	// Update advances any per-pass time accumulators. Called once per
	// frame before Execute, even if the pass is disabled.
	Update(deltaTime float32)

	// Execute records this pass's draw work into ctx.Cmd. Called by
	// Pipeline.Execute in priority order, skipped entirely when Enabled
	// returns false.
	Execute(ctx ExecutionContext) error
}

// LogicalPass is the common base every concrete pass embeds. It tracks
// enablement, viewport, priority, and frame timing, leaving only
// Name/Execute to the concrete pass.
type LogicalPass struct {
	name       string
	priority   int
	enabled    bool
	viewport   render.Viewport
	totalTime  float32
	deltaTime  float32
	renderTarget backend.RenderTargetView
	depthTarget  backend.DepthStencilView
}

// NewLogicalPass constructs a base pass with the given name and priority,
// enabled by default.
func NewLogicalPass(name string, priority int) LogicalPass {
	return LogicalPass{name: name, priority: priority, enabled: true}
}

func (p *LogicalPass) Name() string     { return p.name }
func (p *LogicalPass) Priority() int    { return p.priority }
func (p *LogicalPass) Enabled() bool    { return p.enabled }
func (p *LogicalPass) SetEnabled(e bool) { p.enabled = e }

func (p *LogicalPass) Viewport() render.Viewport        { return p.viewport }
func (p *LogicalPass) SetViewport(v render.Viewport)    { p.viewport = v }

// SetRenderTarget and SetDepthStencil are called by the owning Pipeline to
// propagate the attachments this pass should render into.
func (p *LogicalPass) SetRenderTarget(rtv backend.RenderTargetView) { p.renderTarget = rtv }
func (p *LogicalPass) SetDepthStencil(dsv backend.DepthStencilView) { p.depthTarget = dsv }

func (p *LogicalPass) RenderTarget() backend.RenderTargetView { return p.renderTarget }
func (p *LogicalPass) DepthStencil() backend.DepthStencilView { return p.depthTarget }

// Update accumulates total_time and records delta_time, matching the
// bookkeeping every concrete pass needs before it builds time-dependent
// constants (jitter, animation, jitter-compensated motion vectors).
func (p *LogicalPass) Update(deltaTime float32) {
	p.deltaTime = deltaTime
	p.totalTime += deltaTime
}

// TotalTime returns accumulated time since this pass was constructed.
func (p *LogicalPass) TotalTime() float32 { return p.totalTime }

// DeltaTime returns the delta passed to the most recent Update call.
func (p *LogicalPass) DeltaTime() float32 { return p.deltaTime }
