package pipeline

import (
	render "github.com/ashenforge/render"
	"github.com/ashenforge/render/gbuffer"
	"github.com/ashenforge/render/passes"
)

// LogicalDeferredPipeline owns a G-Buffer and runs the full deferred
// shading chain: Geometry(100) -> Lighting(300) -> MotionVector(500) ->
// Composition(700) -> Upscaler(1000).
type LogicalDeferredPipeline struct {
	LogicalPipeline
	gbuf *gbuffer.GBuffer

	geometry *passes.GeometryPass
	lighting *passes.LightingPass
	motion   *passes.MotionVectorPass
	compose  *passes.CompositionPass
	upscale  *passes.UpscalerPass
}

// NewLogicalDeferredPipeline constructs the deferred pipeline, allocating
// a G-Buffer at width x height via alloc, adding its five fixed passes and
// giving them a width x height viewport.
func NewLogicalDeferredPipeline(alloc gbuffer.Allocator, width, height uint32) *LogicalDeferredPipeline {
	gbuf := gbuffer.New(alloc, width, height)
	dp := &LogicalDeferredPipeline{
		LogicalPipeline: NewLogicalPipeline(),
		gbuf:            gbuf,
		geometry:        passes.NewGeometryPass(gbuf),
		lighting:        passes.NewLightingPass(gbuf),
		motion:          passes.NewMotionVectorPass(),
		compose:         passes.NewCompositionPass(gbuf),
		upscale:         passes.NewUpscalerPass(),
	}
	_ = dp.AddPass(dp.geometry)
	_ = dp.AddPass(dp.lighting)
	_ = dp.AddPass(dp.motion)
	_ = dp.AddPass(dp.compose)
	_ = dp.AddPass(dp.upscale)
	dp.LogicalPipeline.SetViewport(render.Viewport{Width: float32(width), Height: float32(height), MaxDepth: 1})
	return dp
}

// GBuffer returns the G-Buffer this pipeline owns.
func (dp *LogicalDeferredPipeline) GBuffer() *gbuffer.GBuffer { return dp.gbuf }

// Upscaler returns the pipeline's upscaler pass, for configuring
// resolutions and jitter each frame.
func (dp *LogicalDeferredPipeline) Upscaler() *passes.UpscalerPass { return dp.upscale }

// Resize reallocates the G-Buffer at width x height. It does not change
// the passes' viewport; SetViewport updates both.
func (dp *LogicalDeferredPipeline) Resize(width, height uint32) {
	dp.gbuf.Resize(width, height)
}

// SetViewport propagates v to every pass as usual, then resizes the
// G-Buffer to match v's dimensions, so a host that only ever calls
// SetViewport on resize does not also need to track G-Buffer dimensions
// itself.
func (dp *LogicalDeferredPipeline) SetViewport(v render.Viewport) {
	dp.LogicalPipeline.SetViewport(v)
	if w, h := uint32(v.Width), uint32(v.Height); w != dp.gbuf.Width() || h != dp.gbuf.Height() {
		dp.gbuf.Resize(w, h)
	}
}
