// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package d3d12 declares the minimal COM interfaces and structs the
// D3D12-like backend calls through vtable invocation via
// golang.org/x/sys/windows, rather than a full generated D3D12 binding.
package d3d12

import "unsafe"

// ID3D12Object is the common header every D3D12 COM interface embeds: a
// pointer to its vtable.
type ID3D12Object struct {
	vtbl unsafe.Pointer
}

type (
	ID3D12Device           struct{ ID3D12Object }
	ID3D12CommandQueue     struct{ ID3D12Object }
	ID3D12CommandAllocator struct{ ID3D12Object }
	ID3D12GraphicsCommandList struct{ ID3D12Object }
	ID3D12Fence            struct{ ID3D12Object }
	ID3D12DescriptorHeap   struct{ ID3D12Object }
	ID3D12Resource         struct{ ID3D12Object }
	ID3D12RootSignature    struct{ ID3D12Object }
	ID3D12PipelineState    struct{ ID3D12Object }
)

// D3D_FEATURE_LEVEL mirrors the subset of feature levels this backend
// requests.
type D3D_FEATURE_LEVEL uint32

const FeatureLevel11_0 D3D_FEATURE_LEVEL = 0xb000

// DescriptorHeapType mirrors D3D12_DESCRIPTOR_HEAP_TYPE.
type DescriptorHeapType uint32

const (
	HeapTypeCBVSRVUAV DescriptorHeapType = 0
	HeapTypeSampler   DescriptorHeapType = 1
	HeapTypeRTV       DescriptorHeapType = 2
	HeapTypeDSV       DescriptorHeapType = 3
)

// CPUDescriptorHandle and GPUDescriptorHandle mirror the corresponding
// D3D12 handle structs: an opaque pointer-sized value the runtime
// interprets.
type CPUDescriptorHandle struct{ Ptr uintptr }
type GPUDescriptorHandle struct{ Ptr uint64 }

// CommandListType mirrors D3D12_COMMAND_LIST_TYPE.
type CommandListType uint32

const CommandListTypeDirect CommandListType = 0

// Viewport mirrors D3D12_VIEWPORT.
type Viewport struct {
	TopLeftX, TopLeftY, Width, Height, MinDepth, MaxDepth float32
}

// Rect mirrors D3D12_RECT (and RECT).
type Rect struct {
	Left, Top, Right, Bottom int32
}

// IndexBufferView mirrors D3D12_INDEX_BUFFER_VIEW.
type IndexBufferView struct {
	BufferLocation uint64
	SizeInBytes    uint32
	Format         uint32
}

// VertexBufferView mirrors D3D12_VERTEX_BUFFER_VIEW.
type VertexBufferView struct {
	BufferLocation uint64
	SizeInBytes    uint32
	StrideInBytes  uint32
}
