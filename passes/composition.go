package passes

import (
	"unsafe"

	"github.com/ashenforge/render/gbuffer"
)

// CompositionPass resolves the lit deferred color target into the final
// swapchain image, applying tone mapping and gamma correction. Runs at
// priority 700 in LogicalDeferredPipeline, after Lighting/MotionVector
// and before Upscaler.
type CompositionPass struct {
	LogicalPass
	gbuf *gbuffer.GBuffer

	// ToneMap enables the ACES filmic tonemapping curve. Defaults to true.
	ToneMap bool
	// Gamma is the output gamma; the engine default is 2.2.
	Gamma float32
}

// NewCompositionPass constructs the composition pass with ACES tone
// mapping and 2.2 gamma enabled by default.
func NewCompositionPass(gbuf *gbuffer.GBuffer) *CompositionPass {
	return &CompositionPass{
		LogicalPass: NewLogicalPass("Composition", 700),
		gbuf:        gbuf,
		ToneMap:     true,
		Gamma:       2.2,
	}
}

// compositionBlock mirrors Resolve's ToneMap/Gamma fields for the GPU
// resolve shader; ToneMap is packed as 0/1 since HLSL/GLSL constant
// blocks have no native bool.
type compositionBlock struct {
	ToneMap float32
	Gamma   float32
	_pad    [2]float32
}

func compositionBlockBytes(b compositionBlock) []byte {
	const size = 4 * 4
	return (*[size]byte)(unsafe.Pointer(&b))[:]
}

// Execute uploads this pass's tone mapping settings and draws the
// full-screen quad that resolves the lit deferred target into the
// swapchain image.
func (p *CompositionPass) Execute(ctx ExecutionContext) error {
	if err := ctx.Cmd.SetViewport(p.Viewport()); err != nil {
		return err
	}
	toneMap := float32(0)
	if p.ToneMap {
		toneMap = 1
	}
	block := compositionBlock{ToneMap: toneMap, Gamma: p.Gamma}
	if err := ctx.Cmd.SetConstantBuffer("MaterialParams", compositionBlockBytes(block)); err != nil {
		return err
	}
	return drawFullScreenQuad(ctx)
}

// Resolve applies this pass's tone mapping and gamma settings to a single
// linear HDR color sample. It is the CPU-side preview path exercised by
// tests; the GPU path applies the same curve in the composition shader.
func (p *CompositionPass) Resolve(linear [3]float32) [3]float32 {
	out := linear
	if p.ToneMap {
		out = [3]float32{aces(out[0]), aces(out[1]), aces(out[2])}
	}
	gamma := p.Gamma
	if gamma <= 0 {
		gamma = 1
	}
	return [3]float32{
		gammaCorrect(out[0], gamma),
		gammaCorrect(out[1], gamma),
		gammaCorrect(out[2], gamma),
	}
}
