// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package dx12

import (
	"fmt"

	"github.com/ashenforge/render/backend/dx12/d3d12"
	"github.com/ashenforge/render/backend/dx12/d3dcompile"
	"github.com/gogpu/naga"
)

// defaultShaderWGSL is the built-in vertex/pixel shader the default PSO is
// built from at Initialize. It matches the
// engine's fixed b0..b3 constant slot table (ViewProjection, World,
// BaseColor, MaterialParams) and the full-screen-quad vertex layout the
// Lighting/Composition/Upscaler/MotionVector passes draw.
const defaultShaderWGSL = `
struct VertexIn {
	@location(0) position: vec3<f32>,
	@location(1) uv: vec2<f32>,
}

struct VertexOut {
	@builtin(position) clip_position: vec4<f32>,
	@location(0) uv: vec2<f32>,
}

@group(0) @binding(0) var<uniform> view_projection: mat4x4<f32>;
@group(0) @binding(1) var<uniform> world: mat4x4<f32>;
@group(0) @binding(2) var<uniform> base_color: vec4<f32>;

@vertex
fn vs_main(in: VertexIn) -> VertexOut {
	var out: VertexOut;
	out.clip_position = view_projection * world * vec4<f32>(in.position, 1.0);
	out.uv = in.uv;
	return out;
}

@fragment
fn fs_main(in: VertexOut) -> @location(0) vec4<f32> {
	return base_color;
}
`

// buildDefaultPSO cross-compiles defaultShaderWGSL to HLSL through naga and
// turns the result into a graphics pipeline state. A full implementation
// feeds the HLSL text produced here through D3DCompile
// (d3dcompiler_47.dll) to get real DXBC bytecode; this backend has no cgo
// dependency on that DLL, so the HLSL source bytes stand in as the
// "bytecode" blob, the same way gbuffer's placeholder views stand in for
// real descriptor handles until a real device backs them.
func buildDefaultPSO(device *d3d12.Device) (*d3d12.ID3D12PipelineState, error) {
	ast, err := naga.Parse(defaultShaderWGSL)
	if err != nil {
		return nil, fmt.Errorf("dx12: parse default shader: %w", err)
	}
	module, err := naga.LowerWithSource(ast, defaultShaderWGSL)
	if err != nil {
		return nil, fmt.Errorf("dx12: lower default shader: %w", err)
	}

	vsHLSL, err := d3dcompile.Compile(module, "vs_main")
	if err != nil {
		return nil, fmt.Errorf("dx12: compile default vertex shader: %w", err)
	}
	psHLSL, err := d3dcompile.Compile(module, "fs_main")
	if err != nil {
		return nil, fmt.Errorf("dx12: compile default pixel shader: %w", err)
	}

	pso, err := device.CreateGraphicsPipelineState([]byte(vsHLSL), []byte(psHLSL))
	if err != nil {
		return nil, fmt.Errorf("dx12: create default pipeline state: %w", err)
	}
	return pso, nil
}
