// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT
package vk

import (
	"fmt"

	"github.com/go-webgpu/goffi/ffi"
	"github.com/go-webgpu/goffi/types"
)

// Each Vulkan entry point this backend calls fits one of a handful of
// shapes once the specific struct types are erased: a few pointer/handle/
// u32 arguments in, a VkResult or nothing out. Rather than generating one
// CallInterface per function, this backend hand-declares the small set of
// shapes it actually needs and reuses them across functions.

var (
	sigResultPPP   types.CallInterface // Result(Ptr, Ptr, Ptr)
	sigResultHPtr  types.CallInterface // Result(Handle, Ptr)
	sigResultHPPP  types.CallInterface // Result(Handle, Ptr, Ptr, Ptr)
	sigResultHHPtr types.CallInterface // Result(Handle, Handle, Ptr)
	sigResultHPPPP types.CallInterface // Result(Handle, Ptr, Ptr, Ptr, Ptr)
	sigVoidH       types.CallInterface // void(Handle) -- modeled as Result-returning and ignored
	sigVoidHH      types.CallInterface // void(Handle, Handle)
	sigVoidHPtr    types.CallInterface // void(Handle, Ptr)
	sigVoidHU32x4  types.CallInterface // void(Handle, u32,u32,u32,u32)
	sigVoidHU32PP  types.CallInterface // void(Handle, u32, Ptr, Ptr)
)

// InitSignatures prepares every CallInterface the Commands struct uses.
// Called once from Init.
func InitSignatures() error {
	u64, u32, ptr := types.UInt64TypeDescriptor, types.UInt32TypeDescriptor, types.PointerTypeDescriptor

	cases := []struct {
		out  *types.CallInterface
		ret  *types.TypeDescriptor
		args []*types.TypeDescriptor
	}{
		{&sigResultPPP, u32, []*types.TypeDescriptor{ptr, ptr, ptr}},
		{&sigResultHPtr, u32, []*types.TypeDescriptor{u64, ptr}},
		{&sigResultHPPP, u32, []*types.TypeDescriptor{u64, ptr, ptr, ptr}},
		{&sigResultHHPtr, u32, []*types.TypeDescriptor{u64, u64, ptr}},
		{&sigResultHPPPP, u32, []*types.TypeDescriptor{u64, ptr, ptr, ptr, ptr}},
		{&sigVoidH, u32, []*types.TypeDescriptor{u64}},
		{&sigVoidHH, u32, []*types.TypeDescriptor{u64, u64}},
		{&sigVoidHPtr, u32, []*types.TypeDescriptor{u64, ptr}},
		{&sigVoidHU32x4, u32, []*types.TypeDescriptor{u64, u32, u32, u32, u32}},
		{&sigVoidHU32PP, u32, []*types.TypeDescriptor{u64, u32, ptr, ptr}},
	}
	for _, c := range cases {
		if err := ffi.PrepareCallInterface(c.out, types.DefaultCall, c.ret, c.args); err != nil {
			return fmt.Errorf("vk: prepare signature: %w", err)
		}
	}
	return nil
}
