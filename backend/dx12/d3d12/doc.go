// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// This file documents package d3d12's scope; see types.go for the COM
// interfaces and device.go for vtable invocation.
//
// Only the methods the D3D12-like render backend actually calls are
// declared - this is not a general D3D12 binding. Vtable slot indices are
// recorded as named constants at their call sites rather than generated,
// since the full COM interface layout is out of scope for this backend.
package d3d12
