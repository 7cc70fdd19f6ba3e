package render

import "github.com/go-gl/mathgl/mgl32"

// Viewport describes the normalized device area a pass renders into, in
// pixel coordinates.
type Viewport struct {
	X, Y          float32
	Width, Height float32
	MinDepth      float32
	MaxDepth      float32
}

// Valid reports whether the viewport has a positive width and height.
func (v Viewport) Valid() bool { return v.Width > 0 && v.Height > 0 }

// ScissorRect clips rasterization to a pixel-space rectangle.
type ScissorRect struct {
	X, Y          int32
	Width, Height int32
}

// Valid reports whether the scissor rect has a positive width and height.
func (s ScissorRect) Valid() bool { return s.Width > 0 && s.Height > 0 }

// DrawKind distinguishes a direct draw from an indexed draw.
type DrawKind int

const (
	DrawDirect DrawKind = iota
	DrawIndexed
)

// ConstantSlot identifies the compile-time-fixed root/descriptor binding
// a named constant maps to. The four names the engine ships with are
// fixed at slots 0-3; see SlotFor.
type ConstantSlot uint32

const (
	SlotViewProjection ConstantSlot = 0
	SlotWorld          ConstantSlot = 1
	SlotBaseColor      ConstantSlot = 2
	SlotMaterialParams ConstantSlot = 3
)

// ConstantNames is the ordered list of names recognized by the default
// slot table, index-aligned with their ConstantSlot value.
var ConstantNames = [...]string{
	SlotViewProjection: "ViewProjection",
	SlotWorld:          "World",
	SlotBaseColor:      "BaseColor",
	SlotMaterialParams: "MaterialParams",
}

// SlotFor resolves a constant name to its slot. ok is false for any name
// outside the fixed table.
func SlotFor(name string) (slot ConstantSlot, ok bool) {
	for i, n := range ConstantNames {
		if n == name {
			return ConstantSlot(i), true
		}
	}
	return 0, false
}

// DrawSubmission is a submission-level record produced by the scene/ECS
// layer outside this core: everything GeometryPass and ForwardPass need
// to record one draw. VertexData/IndexData are copied into the frame's
// transient arenas by cmdcontext.Context; a higher layer that instead
// wants a persistent, Backend-owned mesh binds its own Handle-addressed
// buffers before calling into the core and only uses this record for the
// per-draw constants.
type DrawSubmission struct {
	Kind DrawKind

	World          mgl32.Mat4
	BaseColor      [4]float32
	MaterialParams [4]float32 // metallic, roughness, emissive, normalScale

	VertexData   []byte
	VertexStride uint32
	IndexData    []byte
	Index32      bool

	VertexCount, IndexCount uint32
	InstanceCount           uint32
}

// LightType distinguishes the three light kinds LightingPass shades.
type LightType int

const (
	LightDirectional LightType = iota
	LightPoint
	LightSpot
)

// Light is one scene light, consumed by LightingPass's per-light
// full-screen-quad shading pass.
type Light struct {
	Type      LightType
	Color     mgl32.Vec3
	Intensity float32

	// Position and Range apply to Point and Spot lights.
	Position mgl32.Vec3
	Range    float32

	// Direction applies to Directional and Spot lights.
	Direction mgl32.Vec3

	// InnerCone and OuterCone (radians) apply to Spot lights only.
	InnerCone, OuterCone float32
}
