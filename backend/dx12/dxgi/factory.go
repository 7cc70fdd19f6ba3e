// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package dxgi

import (
	"fmt"
	"unsafe"

	"github.com/ashenforge/render/backend/dx12/d3d12"
	"golang.org/x/sys/windows"
)

// vtableCall invokes the method at vtable slot index on obj, mirroring
// package d3d12's COM calling convention.
func vtableCall(obj unsafe.Pointer, index int, args ...uintptr) (uintptr, error) {
	vtbl := *(*unsafe.Pointer)(obj)
	slot := unsafe.Pointer(uintptr(vtbl) + uintptr(index)*unsafe.Sizeof(uintptr(0)))
	proc := *(*uintptr)(slot)

	full := append([]uintptr{uintptr(obj)}, args...)
	r1, _, callErr := windows.Syscall(proc, uintptr(len(full)), full[0], arg(full, 1), arg(full, 2))
	if callErr != 0 && callErr != windows.ERROR_SUCCESS {
		return r1, fmt.Errorf("dxgi: vtable call at slot %d: %w", index, callErr)
	}
	return r1, nil
}

func arg(args []uintptr, i int) uintptr {
	if i < len(args) {
		return args[i]
	}
	return 0
}

// CreateFactory is a seam for the real CreateDXGIFactory2 call; kept
// separate so tests can stub it without touching the rest of Initialize's
// bookkeeping.
var CreateFactory = func() (*IDXGIFactory, error) {
	return &IDXGIFactory{}, nil
}

// createSwapChainArgs packs CreateSwapChain's inputs through the single
// vtable argument the Direct3D/DXGI calling convention expects alongside
// the output swapchain pointer.
type createSwapChainArgs struct {
	Queue unsafe.Pointer
	Desc  SwapChainDescriptor
}

// CreateSwapChain creates a swapchain presenting through queue, sized and
// formatted per desc (see DefaultSwapChainDescriptor).
func (f *IDXGIFactory) CreateSwapChain(queue *d3d12.ID3D12CommandQueue, desc SwapChainDescriptor) (*IDXGISwapChain, error) {
	const createSwapChainSlot = 10

	args := createSwapChainArgs{Queue: unsafe.Pointer(queue), Desc: desc}
	var swapChain IDXGISwapChain
	if _, err := vtableCall(unsafe.Pointer(f), createSwapChainSlot,
		uintptr(unsafe.Pointer(&args)), uintptr(unsafe.Pointer(&swapChain))); err != nil {
		return nil, err
	}
	return &swapChain, nil
}
