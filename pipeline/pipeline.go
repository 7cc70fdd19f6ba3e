// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package pipeline implements the logical render pipeline model: an
// ordered collection of passes.Pass executed in priority order, plus the
// two concrete pipelines the engine ships (forward and deferred).
package pipeline

import (
	"fmt"
	"sort"

	render "github.com/ashenforge/render"
	"github.com/ashenforge/render/backend"
	"github.com/ashenforge/render/cmdcontext"
	"github.com/ashenforge/render/passes"
)

// Pipeline is an ordered sequence of passes executed once per frame.
type Pipeline interface {
	AddPass(p passes.Pass) error
	RemovePass(name string) bool
	FindPass(name string) (passes.Pass, bool)
	SetViewport(v render.Viewport)
	SetRenderTarget(rtv backend.RenderTargetView)
	SetDepthStencil(dsv backend.DepthStencilView)
	Update(deltaTime float32)
	Execute(list backend.CommandList, arenas *render.FrameArenas, scene render.SceneProvider) error
}

// LogicalPipeline is the base every concrete pipeline embeds. It keeps
// passes sorted by ascending priority (stable, so passes added at equal
// priority execute in insertion order) and propagates viewport/render
// target/depth changes to every pass it holds.
type LogicalPipeline struct {
	passes   []passes.Pass
	autoSort bool

	viewport render.Viewport
	rtv      backend.RenderTargetView
	dsv      backend.DepthStencilView
}

// NewLogicalPipeline constructs an empty pipeline with auto-sort enabled.
func NewLogicalPipeline() LogicalPipeline {
	return LogicalPipeline{autoSort: true}
}

// AddPass appends p, returning an error if a pass of the same name is
// already present. Passes are re-sorted by priority immediately unless
// auto-sort has been disabled.
func (lp *LogicalPipeline) AddPass(p passes.Pass) error {
	if _, exists := lp.FindPass(p.Name()); exists {
		return fmt.Errorf("pipeline: pass %q already added", p.Name())
	}
	p.SetViewport(lp.viewport)
	lp.passes = append(lp.passes, p)
	if lp.autoSort {
		lp.sort()
	}
	return nil
}

// RemovePass removes the pass named name, reporting whether one was
// found.
func (lp *LogicalPipeline) RemovePass(name string) bool {
	for i, p := range lp.passes {
		if p.Name() == name {
			lp.passes = append(lp.passes[:i], lp.passes[i+1:]...)
			return true
		}
	}
	return false
}

// FindPass returns the pass named name, if present.
func (lp *LogicalPipeline) FindPass(name string) (passes.Pass, bool) {
	for _, p := range lp.passes {
		if p.Name() == name {
			return p, true
		}
	}
	return nil, false
}

func (lp *LogicalPipeline) sort() {
	sort.SliceStable(lp.passes, func(i, j int) bool {
		return lp.passes[i].Priority() < lp.passes[j].Priority()
	})
}

// SetViewport propagates v to every pass currently in the pipeline and to
// any pass added afterward.
func (lp *LogicalPipeline) SetViewport(v render.Viewport) {
	lp.viewport = v
	for _, p := range lp.passes {
		p.SetViewport(v)
	}
}

// SetRenderTarget and SetDepthStencil record the attachment and forward it
// to every pass currently in the pipeline that has a matching
// SetRenderTarget/SetDepthStencil method (every pass embedding
// passes.LogicalPass does).
func (lp *LogicalPipeline) SetRenderTarget(rtv backend.RenderTargetView) {
	lp.rtv = rtv
	for _, p := range lp.passes {
		if t, ok := p.(interface {
			SetRenderTarget(backend.RenderTargetView)
		}); ok {
			t.SetRenderTarget(rtv)
		}
	}
}

func (lp *LogicalPipeline) SetDepthStencil(dsv backend.DepthStencilView) {
	lp.dsv = dsv
	for _, p := range lp.passes {
		if t, ok := p.(interface {
			SetDepthStencil(backend.DepthStencilView)
		}); ok {
			t.SetDepthStencil(dsv)
		}
	}
}

// Update advances every pass's time accumulators, including disabled ones.
func (lp *LogicalPipeline) Update(deltaTime float32) {
	for _, p := range lp.passes {
		p.Update(deltaTime)
	}
}

// Execute runs every enabled pass in priority order, each recording into
// its own cmdcontext.Context backed by list and arenas.
func (lp *LogicalPipeline) Execute(list backend.CommandList, arenas *render.FrameArenas, scene render.SceneProvider) error {
	for _, p := range lp.passes {
		if !p.Enabled() {
			continue
		}
		ctx := passes.ExecutionContext{
			Cmd:   cmdcontext.New(list, arenas),
			Scene: scene,
		}
		if err := p.Execute(ctx); err != nil {
			return fmt.Errorf("pipeline: pass %q: %w", p.Name(), err)
		}
	}
	return nil
}

// Passes returns the pipeline's passes in their current execution order,
// for inspection by tests and debug tooling.
func (lp *LogicalPipeline) Passes() []passes.Pass {
	out := make([]passes.Pass, len(lp.passes))
	copy(out, lp.passes)
	return out
}
