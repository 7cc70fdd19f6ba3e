package passes

import (
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// DebugMode selects what UpscalerPass writes to its output target instead
// of the normal upscaled color, for isolating the pass during
// development. Recovered from the original engine's UpscalerPass, which
// the distilled spec dropped; kept here since it costs nothing and makes
// the pass debuggable on its own.
type DebugMode int

const (
	DebugNone DebugMode = iota
	DebugShowMotionVectors
	DebugShowDepth
	DebugShowInputResolution
	DebugShowOutputResolution
)

// UpscalerPass reconstructs a full-resolution frame from a lower-resolution
// render using temporal accumulation, motion vectors, and per-frame jitter.
// Runs at priority 1000 in LogicalDeferredPipeline, last before present.
type UpscalerPass struct {
	LogicalPass
	Debug DebugMode

	inputWidth, inputHeight   uint32
	outputWidth, outputHeight uint32
	jitter                    mgl32.Vec2
}

// NewUpscalerPass constructs the upscaler pass at priority 1000.
func NewUpscalerPass() *UpscalerPass {
	return &UpscalerPass{LogicalPass: NewLogicalPass("Upscaler", 1000)}
}

// SetResolutions records the input (render) and output (display)
// resolutions the upscaler reconstructs between.
func (p *UpscalerPass) SetResolutions(inputW, inputH, outputW, outputH uint32) {
	p.inputWidth, p.inputHeight = inputW, inputH
	p.outputWidth, p.outputHeight = outputW, outputH
}

// SetJitter records this frame's sub-pixel jitter offset, computed by
// upscaler.Manager from the Halton-2/3 sequence.
func (p *UpscalerPass) SetJitter(j mgl32.Vec2) { p.jitter = j }

// Jitter returns the jitter offset set for this frame.
func (p *UpscalerPass) Jitter() mgl32.Vec2 { return p.jitter }

// upscaleBlock carries the reconstruction shader's per-frame inputs: the
// jitter offset applied to the render-resolution pass and the two
// resolutions it reconstructs between, plus the active DebugMode.
type upscaleBlock struct {
	Jitter                    [2]float32
	InputWidth, InputHeight   float32
	OutputWidth, OutputHeight float32
	Debug                     float32
	_pad                      float32
}

func upscaleBlockBytes(b upscaleBlock) []byte {
	const size = 2*4 + 4*4 + 4 + 4
	return (*[size]byte)(unsafe.Pointer(&b))[:]
}

// Execute uploads this frame's jitter and resolution state, then draws
// the full-screen quad that reconstructs the output-resolution frame.
func (p *UpscalerPass) Execute(ctx ExecutionContext) error {
	if err := ctx.Cmd.SetViewport(p.Viewport()); err != nil {
		return err
	}
	block := upscaleBlock{
		Jitter:       [2]float32{p.jitter.X(), p.jitter.Y()},
		InputWidth:   float32(p.inputWidth),
		InputHeight:  float32(p.inputHeight),
		OutputWidth:  float32(p.outputWidth),
		OutputHeight: float32(p.outputHeight),
		Debug:        float32(p.Debug),
	}
	if err := ctx.Cmd.SetConstantBuffer("MaterialParams", upscaleBlockBytes(block)); err != nil {
		return err
	}
	return drawFullScreenQuad(ctx)
}
