package render

import "github.com/go-gl/mathgl/mgl32"

// DefaultClearColor is used when no SceneProvider reports a main camera.
// The absence of a camera is a normal condition during early engine
// startup, not an error; it must not block BeginFrame.
var DefaultClearColor = [4]float32{0, 1, 1, 1}

// Camera is the minimal read-only surface Passes need from the scene's
// active camera.
type Camera interface {
	// ViewProjection returns the combined view-projection matrix for the
	// current frame.
	ViewProjection() mgl32.Mat4

	// Position returns the camera's world-space eye position, used by
	// lighting and motion-vector reconstruction.
	Position() mgl32.Vec3

	// ClearColor returns the color the backend should clear the default
	// render target to before the first pass executes.
	ClearColor() [4]float32
}

// SceneProvider is the sole collaboration point between the frame
// lifecycle and scene/ECS code living outside this module.
type SceneProvider interface {
	// MainCamera returns the active camera, or ok=false if none exists
	// yet.
	MainCamera() (Camera, bool)

	// DrawSubmissions returns this frame's opaque geometry draws, in the
	// order GeometryPass and ForwardPass should record them. Scene/ECS
	// traversal producing this slice is out of scope for the core; it is
	// received fully formed.
	DrawSubmissions() []DrawSubmission

	// Lights returns this frame's light list, consumed by LightingPass.
	Lights() []Light
}

// StaticCamera is a fixed Camera value, useful for tests and for simple
// hosts that do not need a full scene graph.
type StaticCamera struct {
	VP    mgl32.Mat4
	Eye   mgl32.Vec3
	Clear [4]float32
}

func (c StaticCamera) ViewProjection() mgl32.Mat4 { return c.VP }
func (c StaticCamera) Position() mgl32.Vec3       { return c.Eye }
func (c StaticCamera) ClearColor() [4]float32     { return c.Clear }

// ClearColorOrDefault returns the active camera's clear color, or
// DefaultClearColor when scene is nil or has no main camera.
func ClearColorOrDefault(scene SceneProvider) [4]float32 {
	if scene == nil {
		return DefaultClearColor
	}
	cam, ok := scene.MainCamera()
	if !ok {
		return DefaultClearColor
	}
	return cam.ClearColor()
}

// StaticScene is a fixed-content SceneProvider: one camera plus fixed
// draw and light lists. It exists for tests and for simple hosts that
// assemble their frame data up front rather than maintaining a full
// scene graph; cmd/render-demo uses it to drive the pipeline end to end.
type StaticScene struct {
	Camera Camera
	Draws  []DrawSubmission
	Lts    []Light
}

func (s StaticScene) MainCamera() (Camera, bool) {
	if s.Camera == nil {
		return nil, false
	}
	return s.Camera, true
}

func (s StaticScene) DrawSubmissions() []DrawSubmission { return s.Draws }
func (s StaticScene) Lights() []Light                   { return s.Lts }
