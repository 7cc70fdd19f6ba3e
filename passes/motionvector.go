package passes

import "github.com/go-gl/mathgl/mgl32"

// MotionVectorPass writes per-pixel screen-space motion vectors by
// reprojecting the current frame's geometry against the previous frame's
// view-projection matrix, consumed by UpscalerPass. Runs at priority 500
// in LogicalDeferredPipeline, between Lighting and Composition.
type MotionVectorPass struct {
	LogicalPass
	previousViewProjection mgl32.Mat4
	havePrevious           bool
}

// NewMotionVectorPass constructs the motion vector pass.
func NewMotionVectorPass() *MotionVectorPass {
	return &MotionVectorPass{LogicalPass: NewLogicalPass("MotionVector", 500)}
}

func (p *MotionVectorPass) Execute(ctx ExecutionContext) error {
	if err := ctx.Cmd.SetViewport(p.Viewport()); err != nil {
		return err
	}
	cam, ok := sceneCamera(ctx.Scene)
	if !ok {
		return nil
	}
	current := cam.ViewProjection()
	if !p.havePrevious {
		p.previousViewProjection = current
		p.havePrevious = true
	}
	if err := ctx.Cmd.SetConstantBuffer("ViewProjection", mat4Bytes(current)); err != nil {
		return err
	}
	if err := ctx.Cmd.SetConstantBuffer("World", mat4Bytes(p.previousViewProjection)); err != nil {
		p.previousViewProjection = current
		return err
	}
	p.previousViewProjection = current
	return drawFullScreenQuad(ctx)
}
