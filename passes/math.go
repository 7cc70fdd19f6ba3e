package passes

import (
	"math"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// mat4Bytes reinterprets m's 16 float32 columns as a byte slice suitable
// for upload through cmdcontext.Context.SetConstantBuffer.
func mat4Bytes(m mgl32.Mat4) []byte {
	return (*[64]byte)(unsafe.Pointer(&m))[:]
}

func vec4Bytes(v [4]float32) []byte {
	return (*[16]byte)(unsafe.Pointer(&v))[:]
}

func float32SliceBytes(v []float32) []byte {
	if len(v) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), len(v)*4)
}

func uint16SliceBytes(v []uint16) []byte {
	if len(v) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), len(v)*2)
}

// aces approximates the ACES filmic tonemapping curve used by
// CompositionPass.
func aces(x float32) float32 {
	const a, b, c, d, e = 2.51, 0.03, 2.43, 0.59, 0.14
	v := (x*(a*x+b)) / (x*(c*x+d) + e)
	return clamp01(v)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func gammaCorrect(v, gamma float32) float32 {
	return float32(math.Pow(float64(clamp01(v)), float64(1.0/gamma)))
}
