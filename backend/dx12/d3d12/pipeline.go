// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package d3d12

import "unsafe"

// graphicsPipelineStateDescriptor packs the inputs CreateGraphicsPipelineState
// passes through a single vtable argument, matching the one-pointer-per-arg
// convention CreateCommandQueue and the rest of this package's vtable calls
// use.
type graphicsPipelineStateDescriptor struct {
	VSBytecode unsafe.Pointer
	VSLength   uintptr
	PSBytecode unsafe.Pointer
	PSLength   uintptr
}

// CreateGraphicsPipelineState creates a pipeline state object from compiled
// vertex and pixel shader bytecode. vsBytecode/psBytecode are whatever the
// caller's shader compilation step produced; see backend/dx12's
// buildDefaultPSO for how the engine's default shader reaches this point.
func (d *Device) CreateGraphicsPipelineState(vsBytecode, psBytecode []byte) (*ID3D12PipelineState, error) {
	const createGraphicsPipelineStateSlot = 10

	desc := graphicsPipelineStateDescriptor{
		VSLength: uintptr(len(vsBytecode)),
		PSLength: uintptr(len(psBytecode)),
	}
	if len(vsBytecode) > 0 {
		desc.VSBytecode = unsafe.Pointer(&vsBytecode[0])
	}
	if len(psBytecode) > 0 {
		desc.PSBytecode = unsafe.Pointer(&psBytecode[0])
	}

	var pso ID3D12PipelineState
	if _, err := vtableCall(unsafe.Pointer(d.raw), createGraphicsPipelineStateSlot,
		uintptr(unsafe.Pointer(&desc)), uintptr(unsafe.Pointer(&pso))); err != nil {
		return nil, err
	}
	return &pso, nil
}
