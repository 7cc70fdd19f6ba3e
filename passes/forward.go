package passes

import render "github.com/ashenforge/render"

// ForwardPass renders all opaque and transparent geometry directly to the
// active render target in a single pass, used by LogicalForwardPipeline.
type ForwardPass struct {
	LogicalPass
}

// NewForwardPass constructs the forward geometry pass at priority 100.
func NewForwardPass() *ForwardPass {
	return &ForwardPass{LogicalPass: NewLogicalPass("Forward", 100)}
}

// Execute records the scene's draw submissions directly against the
// active main render target, with no intermediate GBuffer - the single-
// pass forward shading path spec.md §4.3 describes.
func (p *ForwardPass) Execute(ctx ExecutionContext) error {
	if err := ctx.Cmd.SetViewport(p.Viewport()); err != nil {
		return err
	}
	cam, ok := sceneCamera(ctx.Scene)
	if !ok {
		return nil
	}
	vp := cam.ViewProjection()
	if err := ctx.Cmd.SetConstantBuffer("ViewProjection", mat4Bytes(vp)); err != nil {
		return err
	}
	for _, draw := range sceneDraws(ctx.Scene) {
		recordOpaqueDraw(ctx, draw)
	}
	return nil
}

// UIPass renders screen-space UI on top of everything else, used by
// LogicalForwardPipeline as its final stage.
type UIPass struct {
	LogicalPass
}

// NewUIPass constructs the UI overlay pass at priority 500.
func NewUIPass() *UIPass {
	return &UIPass{LogicalPass: NewLogicalPass("UI", 500)}
}

func (p *UIPass) Execute(ctx ExecutionContext) error {
	return ctx.Cmd.SetViewport(p.Viewport())
}

func sceneCamera(scene render.SceneProvider) (render.Camera, bool) {
	if scene == nil {
		return nil, false
	}
	return scene.MainCamera()
}
