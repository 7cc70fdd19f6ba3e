package passes

import (
	render "github.com/ashenforge/render"
	"github.com/ashenforge/render/gbuffer"
)

// GeometryPass renders opaque scene geometry into the GBuffer's Position,
// Normal, Albedo, and Emissive targets, used by LogicalDeferredPipeline.
type GeometryPass struct {
	LogicalPass
	gbuf *gbuffer.GBuffer
}

// NewGeometryPass constructs the geometry pass at priority 100, writing
// into gbuf.
func NewGeometryPass(gbuf *gbuffer.GBuffer) *GeometryPass {
	return &GeometryPass{LogicalPass: NewLogicalPass("Geometry", 100), gbuf: gbuf}
}

// Execute binds and clears the GBuffer's four color targets plus depth,
// then records one DrawIndexed (or Draw, for a submission without index
// data) per scene.DrawSubmissions() entry: world
// matrix at b1, base color at b2, material params at b3, per spec.md
// §4.3. A per-draw failure is logged by cmdcontext and this pass
// continues to the next draw rather than aborting the frame.
func (p *GeometryPass) Execute(ctx ExecutionContext) error {
	p.gbuf.Bind(ctx.Cmd)
	p.gbuf.Clear(ctx.Cmd)

	if err := ctx.Cmd.SetViewport(p.Viewport()); err != nil {
		return err
	}
	cam, ok := sceneCamera(ctx.Scene)
	if !ok {
		return nil
	}
	if err := ctx.Cmd.SetConstantBuffer("ViewProjection", mat4Bytes(cam.ViewProjection())); err != nil {
		return err
	}

	for _, draw := range sceneDraws(ctx.Scene) {
		recordOpaqueDraw(ctx, draw)
	}
	return nil
}

// recordOpaqueDraw binds one DrawSubmission's constants and buffers and
// issues its draw. Errors are logged by the lower layers (SetConstantBuffer
// / Draw / DrawIndexed never return anything the caller must act on beyond
// logging) so one bad draw does not stop the rest of the list.
func recordOpaqueDraw(ctx ExecutionContext, draw render.DrawSubmission) {
	_ = ctx.Cmd.SetConstantBuffer("World", mat4Bytes(draw.World))
	_ = ctx.Cmd.SetConstantBuffer("BaseColor", vec4Bytes(draw.BaseColor))
	_ = ctx.Cmd.SetConstantBuffer("MaterialParams", vec4Bytes(draw.MaterialParams))

	if len(draw.VertexData) > 0 {
		_ = ctx.Cmd.SetVertexBuffer(draw.VertexData, draw.VertexStride)
	}
	if len(draw.IndexData) > 0 {
		_ = ctx.Cmd.SetIndexBuffer(draw.IndexData, draw.Index32)
		_ = ctx.Cmd.DrawIndexed(draw.IndexCount, instanceCountOrOne(draw.InstanceCount), 0, 0)
		return
	}
	_ = ctx.Cmd.Draw(draw.VertexCount, instanceCountOrOne(draw.InstanceCount), 0)
}

func instanceCountOrOne(n uint32) uint32 {
	if n == 0 {
		return 1
	}
	return n
}

func sceneDraws(scene render.SceneProvider) []render.DrawSubmission {
	if scene == nil {
		return nil
	}
	return scene.DrawSubmissions()
}

func sceneLights(scene render.SceneProvider) []render.Light {
	if scene == nil {
		return nil
	}
	return scene.Lights()
}
