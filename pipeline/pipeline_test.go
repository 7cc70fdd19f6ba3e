package pipeline_test

import (
	"testing"

	render "github.com/ashenforge/render"
	"github.com/ashenforge/render/backend/noop"
	"github.com/ashenforge/render/pipeline"
	"github.com/stretchr/testify/require"
)

func TestForwardPipelineSortedByPriority(t *testing.T) {
	fp := pipeline.NewLogicalForwardPipeline()
	ps := fp.Passes()
	require.Len(t, ps, 2)
	require.Equal(t, "Forward", ps[0].Name())
	require.Equal(t, "UI", ps[1].Name())
}

func TestDeferredPipelineSortedByPriority(t *testing.T) {
	alloc := &noop.GBufferAllocator{}
	dp := pipeline.NewLogicalDeferredPipeline(alloc, 1920, 1080)
	ps := dp.Passes()
	require.Len(t, ps, 5)
	want := []string{"Geometry", "Lighting", "MotionVector", "Composition", "Upscaler"}
	for i, name := range want {
		require.Equal(t, name, ps[i].Name())
	}
}

func TestAddPassRejectsDuplicateName(t *testing.T) {
	fp := pipeline.NewLogicalForwardPipeline()
	err := fp.AddPass(fp.Passes()[0])
	require.Error(t, err)
}

func TestExecuteSkipsDisabledPasses(t *testing.T) {
	fp := pipeline.NewLogicalForwardPipeline()
	uiPass, ok := fp.FindPass("UI")
	require.True(t, ok)
	uiPass.SetEnabled(false)
	fp.SetViewport(render.Viewport{Width: 100, Height: 100})

	b := noop.New(nil)
	require.NoError(t, b.Initialize(0, 640, 480))
	require.NoError(t, b.BeginFrame())
	list := b.CreateCommandContext()
	err := fp.Execute(list, b.Arenas(), nil)
	require.NoError(t, err)
}

func TestArenaOffsetsResetAcrossFrames(t *testing.T) {
	dp := pipeline.NewLogicalDeferredPipeline(&noop.GBufferAllocator{}, 320, 240)
	b := noop.New(nil)
	require.NoError(t, b.Initialize(0, 320, 240))

	for i := 0; i < 2; i++ {
		require.NoError(t, b.BeginFrame())
		require.Equal(t, uint64(0), b.Arenas().Vertex.Offset())
		list := b.CreateCommandContext()
		require.NoError(t, dp.Execute(list, b.Arenas(), nil))
		require.NoError(t, b.EndFrame())
		require.NoError(t, b.Present())
	}
}

func TestPipelineUpdateAdvancesAllPasses(t *testing.T) {
	fp := pipeline.NewLogicalForwardPipeline()
	fp.Update(1.0 / 60)
	for _, p := range fp.Passes() {
		require.Greater(t, p.(interface{ TotalTime() float32 }).TotalTime(), float32(0))
	}
}
