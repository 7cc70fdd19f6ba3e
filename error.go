package render

import "errors"

// Sentinel errors for the render backend core. Failing operations return
// one of these, directly or wrapped via %w. Operations that are logged and
// skipped (cmdcontext's SetConstantBuffer with an unknown name, Draw and
// DrawIndexed without bound buffers) call Logger().Warn and also return
// the wrapped error.
var (
	// ErrBackendInit indicates a backend failed during Initialize, e.g. no
	// suitable physical device or adapter was found, or a required
	// extension/feature was unavailable.
	ErrBackendInit = errors.New("render: backend initialization failed")

	// ErrSwapchainOutOfDate indicates the swapchain must be recreated,
	// typically surfaced from Present or BeginFrame after a window resize.
	ErrSwapchainOutOfDate = errors.New("render: swapchain out of date")

	// ErrCommandRecord indicates a command failed to encode into the
	// backend's native command buffer/list.
	ErrCommandRecord = errors.New("render: command recording failed")

	// ErrFrameNotActive indicates an operation was called in a frame state
	// that does not allow it: EndFrame with no frame open, or Resize (and,
	// on the noop backend, Present) while a frame is still open.
	ErrFrameNotActive = errors.New("render: no frame is active")

	// ErrMismatchedFramePair indicates EndFrame or Present was called with
	// state from a different BeginFrame than the one currently open, e.g.
	// a stale acquired-image index.
	ErrMismatchedFramePair = errors.New("render: mismatched frame pair")

	// ErrResourceNotBound indicates Draw/DrawIndexed was called without a
	// required vertex buffer or index buffer bound.
	ErrResourceNotBound = errors.New("render: required resource not bound")

	// ErrUnknownConstantName indicates SetConstantBuffer was called with a
	// name absent from the command context's slot table.
	ErrUnknownConstantName = errors.New("render: unknown constant name")

	// ErrInvalidViewport indicates a viewport with a non-positive width or
	// height was supplied.
	ErrInvalidViewport = errors.New("render: invalid viewport")

	// ErrInvalidScissor indicates a scissor rect with a non-positive width
	// or height was supplied.
	ErrInvalidScissor = errors.New("render: invalid scissor rect")
)
