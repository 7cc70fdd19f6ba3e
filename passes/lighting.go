package passes

import (
	"unsafe"

	render "github.com/ashenforge/render"
	"github.com/ashenforge/render/gbuffer"
)

// CameraBlock is the constant block LightingPass uploads so deferred
// lighting can reconstruct world position from depth and shade using the
// GBuffer's Position/Normal/Albedo targets. Recovered from the original
// LightingPass: the distilled spec only says "reads camera position and
// inverse view-projection from its constant block".
type CameraBlock struct {
	InverseViewProjection [16]float32
	CameraPosition        [3]float32
	_pad                  float32
}

func cameraBlockBytes(b CameraBlock) []byte {
	const size = 16*4 + 4*4
	return (*[size]byte)(unsafe.Pointer(&b))[:]
}

// LightBlock is the per-light constant block LightingPass uploads before
// each full-screen-quad light pass, packing the fields
// original/LightingPass.cpp sends across its LightType/LightDirection/
// LightColor/LightPosition/LightRange/LightInnerCone/LightOuterCone
// constants into this engine's single fixed "BaseColor" slot.
type LightBlock struct {
	Type      float32
	Color     [3]float32
	Intensity float32
	Position  [3]float32
	Range     float32
	Direction [3]float32
	InnerCone float32
	OuterCone float32
	_pad      [3]float32
}

func lightBlockBytes(b LightBlock) []byte {
	const size = 4 + 12 + 4 + 12 + 4 + 12 + 4 + 4 + 12
	return (*[size]byte)(unsafe.Pointer(&b))[:]
}

func newLightBlock(l render.Light) LightBlock {
	return LightBlock{
		Type:      float32(l.Type),
		Color:     [3]float32{l.Color.X(), l.Color.Y(), l.Color.Z()},
		Intensity: l.Intensity,
		Position:  [3]float32{l.Position.X(), l.Position.Y(), l.Position.Z()},
		Range:     l.Range,
		Direction: [3]float32{l.Direction.X(), l.Direction.Y(), l.Direction.Z()},
		InnerCone: l.InnerCone,
		OuterCone: l.OuterCone,
	}
}

// LightingPass shades the GBuffer's attachments into a lit color target,
// used by LogicalDeferredPipeline between Geometry and Composition.
type LightingPass struct {
	LogicalPass
	gbuf *gbuffer.GBuffer

	// AdditiveAfterFirst records whether the most recent Execute rendered
	// more than one light, matching the original's "use additive blending
	// after the first light" rule. Toggling the PSO's actual blend state
	// is a concern of the pipeline-state object a higher layer binds;
	// this core's CommandList has no blend-state operation to drive
	// directly, so the flag exists for the pass to report what it would
	// set and for tests to assert the multi-light path was taken.
	AdditiveAfterFirst bool
}

// NewLightingPass constructs the lighting pass at priority 300, reading
// from gbuf.
func NewLightingPass(gbuf *gbuffer.GBuffer) *LightingPass {
	return &LightingPass{LogicalPass: NewLogicalPass("Lighting", 300), gbuf: gbuf}
}

// Execute uploads the shared camera block once, then iterates the
// scene's light list, uploading each light's LightBlock and drawing a
// full-screen quad per light. Per spec.md §4.3, every light after the
// first uses additive blending.
func (p *LightingPass) Execute(ctx ExecutionContext) error {
	p.AdditiveAfterFirst = false

	if err := ctx.Cmd.SetViewport(p.Viewport()); err != nil {
		return err
	}
	cam, ok := sceneCamera(ctx.Scene)
	if !ok {
		return nil
	}
	ivp := cam.ViewProjection().Inv()
	block := CameraBlock{InverseViewProjection: ivp, CameraPosition: cam.Position()}
	if err := ctx.Cmd.SetConstantBuffer("MaterialParams", cameraBlockBytes(block)); err != nil {
		return err
	}

	lights := sceneLights(ctx.Scene)
	for i, light := range lights {
		p.AdditiveAfterFirst = i > 0
		if err := ctx.Cmd.SetConstantBuffer("BaseColor", lightBlockBytes(newLightBlock(light))); err != nil {
			return err
		}
		if err := drawFullScreenQuad(ctx); err != nil {
			return err
		}
	}
	return nil
}

// drawFullScreenQuad uploads the shared full-screen quad geometry and
// issues its DrawIndexed call, the technique every deferred shading pass
// that resolves a screen-space buffer (Lighting, Composition) uses.
func drawFullScreenQuad(ctx ExecutionContext) error {
	if err := ctx.Cmd.SetVertexBuffer(fullScreenQuadVertexBytes(), fullScreenQuadStride); err != nil {
		return err
	}
	if err := ctx.Cmd.SetIndexBuffer(fullScreenQuadIndexBytes(), false); err != nil {
		return err
	}
	return ctx.Cmd.DrawIndexed(uint32(len(fullScreenQuadIndices)), 1, 0, 0)
}
