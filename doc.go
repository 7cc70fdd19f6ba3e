// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package render provides the engine-agnostic core of a render backend:
// opaque resource handles, per-frame transient upload arenas, and the
// shared types that the backend, cmdcontext, passes, pipeline, and
// upscaler packages build on.
//
// A concrete Backend (backend/vulkan, backend/dx12, or backend/noop for
// testing) drives the frame lifecycle; this package holds the pieces that
// are common to all of them.
package render
