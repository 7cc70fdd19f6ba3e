package passes_test

import (
	"testing"

	"github.com/ashenforge/render/passes"
	"github.com/stretchr/testify/require"
)

func TestLogicalPassDefaultsEnabled(t *testing.T) {
	p := passes.NewForwardPass()
	require.True(t, p.Enabled())
	require.Equal(t, "Forward", p.Name())
	require.Equal(t, 100, p.Priority())
}

func TestLogicalPassUpdateAccumulatesTime(t *testing.T) {
	p := passes.NewUIPass()
	p.Update(0.5)
	p.Update(0.25)
	require.InDelta(t, 0.75, p.TotalTime(), 1e-6)
	require.InDelta(t, 0.25, p.DeltaTime(), 1e-6)
}

func TestCompositionResolveClampsAndGammaCorrects(t *testing.T) {
	c := passes.NewCompositionPass(nil)
	out := c.Resolve([3]float32{0, 0, 0})
	require.Equal(t, [3]float32{0, 0, 0}, out)

	c.ToneMap = false
	c.Gamma = 1
	out = c.Resolve([3]float32{2, -1, 0.5})
	require.Equal(t, [3]float32{1, 0, 0.5}, out)
}

func TestUpscalerPassDefaultsToDebugNone(t *testing.T) {
	p := passes.NewUpscalerPass()
	require.Equal(t, passes.DebugNone, p.Debug)
}
