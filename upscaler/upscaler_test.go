package upscaler_test

import (
	"testing"

	"github.com/ashenforge/render/upscaler"
	"github.com/stretchr/testify/require"
)

type fakeCaps struct{ dlss, fsr bool }

func (f fakeCaps) SupportsDLSS() bool { return f.dlss }
func (f fakeCaps) SupportsFSR() bool  { return f.fsr }

func TestManagerPrefersDLSSThenFSRThenTAAU(t *testing.T) {
	require.Equal(t, upscaler.TechnologyDLSS, upscaler.NewManager(fakeCaps{dlss: true}, upscaler.QualityBalanced).Technology())
	require.Equal(t, upscaler.TechnologyFSR, upscaler.NewManager(fakeCaps{fsr: true}, upscaler.QualityBalanced).Technology())
	require.Equal(t, upscaler.TechnologyTAAU, upscaler.NewManager(nil, upscaler.QualityBalanced).Technology())
}

func TestJitterSequenceRepeatsEvery16Frames(t *testing.T) {
	m := upscaler.NewManager(nil, upscaler.QualityNative)
	var seq [16]struct{ X, Y float32 }
	for i := range seq {
		j := m.NextJitter()
		seq[i] = struct{ X, Y float32 }{j[0], j[1]}
	}
	j17 := m.NextJitter()
	require.InDelta(t, seq[0].X, j17[0], 1e-6)
	require.InDelta(t, seq[0].Y, j17[1], 1e-6)
}

func TestJitterStaysWithinHalfPixel(t *testing.T) {
	m := upscaler.NewManager(nil, upscaler.QualityNative)
	for i := 0; i < 32; i++ {
		j := m.NextJitter()
		require.LessOrEqual(t, j[0], float32(0.5))
		require.GreaterOrEqual(t, j[0], float32(-0.5))
	}
}

func TestRenderResolutionScalesByQuality(t *testing.T) {
	m := upscaler.NewManager(nil, upscaler.QualityPerformance)
	w, h := m.RenderResolution(1920, 1080)
	require.Equal(t, uint32(960), w)
	require.Equal(t, uint32(540), h)
}
