package passes_test

import (
	"testing"

	render "github.com/ashenforge/render"
	"github.com/ashenforge/render/backend/noop"
	"github.com/ashenforge/render/cmdcontext"
	"github.com/ashenforge/render/gbuffer"
	"github.com/ashenforge/render/passes"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
)

func newExecutionContext(t *testing.T, b *noop.Backend, scene render.SceneProvider) passes.ExecutionContext {
	t.Helper()
	require.NoError(t, b.BeginFrame())
	list := b.CreateCommandContext()
	return passes.ExecutionContext{Cmd: cmdcontext.New(list, b.Arenas()), Scene: scene}
}

func TestLightingPassDrawsOnePerLight(t *testing.T) {
	b := noop.New(nil)
	require.NoError(t, b.Initialize(0, 320, 240))
	gbuf := gbuffer.New(&noop.GBufferAllocator{}, 320, 240)
	p := passes.NewLightingPass(gbuf)
	p.SetViewport(render.Viewport{Width: 320, Height: 240})

	scene := render.StaticScene{
		Camera: render.StaticCamera{VP: mgl32.Ident4()},
		Lts: []render.Light{
			{Type: render.LightDirectional, Color: mgl32.Vec3{1, 1, 1}, Intensity: 1},
			{Type: render.LightPoint, Color: mgl32.Vec3{1, 0, 0}, Intensity: 2, Range: 5},
		},
	}
	ctx := newExecutionContext(t, b, scene)
	require.NoError(t, p.Execute(ctx))
	require.True(t, p.AdditiveAfterFirst)

	recorded := b.RecordedDraws()
	require.Len(t, recorded, 1)
	require.Len(t, recorded[0].Draws, 2)
	for _, d := range recorded[0].Draws {
		require.True(t, d.Indexed)
		require.EqualValues(t, 6, d.VertexCount)
	}
}

func TestLightingPassSkipsDrawsWithoutCamera(t *testing.T) {
	b := noop.New(nil)
	require.NoError(t, b.Initialize(0, 320, 240))
	gbuf := gbuffer.New(&noop.GBufferAllocator{}, 320, 240)
	p := passes.NewLightingPass(gbuf)
	p.SetViewport(render.Viewport{Width: 320, Height: 240})

	ctx := newExecutionContext(t, b, nil)
	require.NoError(t, p.Execute(ctx))
	require.False(t, p.AdditiveAfterFirst)
	require.Empty(t, b.RecordedDraws()[0].Draws)
}

func TestCompositionPassDrawsFullScreenQuad(t *testing.T) {
	b := noop.New(nil)
	require.NoError(t, b.Initialize(0, 320, 240))
	p := passes.NewCompositionPass(nil)
	p.SetViewport(render.Viewport{Width: 320, Height: 240})

	ctx := newExecutionContext(t, b, nil)
	require.NoError(t, p.Execute(ctx))
	require.Len(t, b.RecordedDraws()[0].Draws, 1)
}

func TestMotionVectorPassDrawsFullScreenQuadAndTracksPreviousFrame(t *testing.T) {
	b := noop.New(nil)
	require.NoError(t, b.Initialize(0, 320, 240))
	p := passes.NewMotionVectorPass()
	p.SetViewport(render.Viewport{Width: 320, Height: 240})

	scene := render.StaticScene{Camera: render.StaticCamera{VP: mgl32.Ident4()}}

	ctx := newExecutionContext(t, b, scene)
	require.NoError(t, p.Execute(ctx))
	require.Len(t, b.RecordedDraws()[0].Draws, 1)

	ctx2 := newExecutionContext(t, b, scene)
	require.NoError(t, p.Execute(ctx2))
	require.Len(t, b.RecordedDraws()[1].Draws, 1)
}

func TestUpscalerPassDrawsFullScreenQuad(t *testing.T) {
	b := noop.New(nil)
	require.NoError(t, b.Initialize(0, 320, 240))
	p := passes.NewUpscalerPass()
	p.SetViewport(render.Viewport{Width: 320, Height: 240})
	p.SetResolutions(160, 120, 320, 240)

	ctx := newExecutionContext(t, b, nil)
	require.NoError(t, p.Execute(ctx))
	require.Len(t, b.RecordedDraws()[0].Draws, 1)
}
