// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package d3dcompile turns the engine's embedded default shader, given as
// naga IR, into HLSL source for the D3D12-like backend via naga's HLSL
// backend. It produces no bytecode.
package d3dcompile

import (
	"fmt"

	"github.com/gogpu/naga/hlsl"
	"github.com/gogpu/naga/ir"
)

// Compile cross-compiles module (the engine's default shader as naga IR)
// to HLSL source for the D3D12-like backend. Returning source rather than
// bytecode keeps this package free of any cgo dependency on d3dcompiler_47.dll.
func Compile(module *ir.Module, entryPoint string) (string, error) {
	src, err := hlsl.Generate(module, hlsl.Options{
		ShaderModel: hlsl.ShaderModel5_1,
		EntryPoint:  entryPoint,
	})
	if err != nil {
		return "", fmt.Errorf("d3dcompile: naga HLSL generation failed: %w", err)
	}
	return src, nil
}
