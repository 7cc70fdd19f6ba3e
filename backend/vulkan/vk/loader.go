// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT
package vk

import (
	"fmt"
	"runtime"
	"sync"
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
	"github.com/go-webgpu/goffi/types"
)

// goffi expects args[] to hold pointers to WHERE each argument's value is
// stored, not the value itself. For pointer-typed arguments this means
// double indirection: store the pointer in a local, then pass &local.
// Getting this wrong reads the pointee's bytes as if they were an
// address and crashes.

var (
	lib                   unsafe.Pointer
	getInstanceProcAddr   unsafe.Pointer
	getDeviceProcAddr     unsafe.Pointer
	cifGetInstanceProcAddr types.CallInterface

	initOnce sync.Once
	initErr  error
)

func libraryName() string {
	switch runtime.GOOS {
	case "windows":
		return "vulkan-1.dll"
	case "darwin":
		return "libvulkan.dylib"
	default:
		return "libvulkan.so.1"
	}
}

// Init loads the platform Vulkan loader library. Safe to call more than
// once; only the first call does work.
func Init() error {
	initOnce.Do(func() { initErr = doInit() })
	return initErr
}

func doInit() error {
	var err error
	lib, err = ffi.LoadLibrary(libraryName())
	if err != nil {
		return fmt.Errorf("vk: load %s: %w", libraryName(), err)
	}
	getInstanceProcAddr, err = ffi.GetSymbol(lib, "vkGetInstanceProcAddr")
	if err != nil {
		return fmt.Errorf("vk: vkGetInstanceProcAddr: %w", err)
	}
	err = ffi.PrepareCallInterface(&cifGetInstanceProcAddr, types.DefaultCall,
		types.PointerTypeDescriptor,
		[]*types.TypeDescriptor{types.UInt64TypeDescriptor, types.PointerTypeDescriptor})
	if err != nil {
		return fmt.Errorf("vk: prepare GetInstanceProcAddr: %w", err)
	}
	if err := InitSignatures(); err != nil {
		return err
	}
	return nil
}

func cString(s string) []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}

// GetInstanceProcAddr resolves name against instance (0 for global and
// instance-creation functions).
func GetInstanceProcAddr(instance Instance, name string) unsafe.Pointer {
	cname := cString(name)
	namePtr := unsafe.Pointer(&cname[0])
	var result unsafe.Pointer
	args := [2]unsafe.Pointer{unsafe.Pointer(&instance), unsafe.Pointer(&namePtr)}
	_ = ffi.CallFunction(&cifGetInstanceProcAddr, getInstanceProcAddr, unsafe.Pointer(&result), args[:])
	return result
}

// SetDeviceProcAddr must be called once with a live instance after
// vkCreateInstance; some drivers (Intel) refuse to resolve
// vkGetDeviceProcAddr with instance=0.
func SetDeviceProcAddr(instance Instance) {
	if getDeviceProcAddr == nil {
		getDeviceProcAddr = GetInstanceProcAddr(instance, "vkGetDeviceProcAddr")
	}
}

// Close frees the Vulkan loader library.
func Close() error {
	if lib == nil {
		return nil
	}
	err := ffi.FreeLibrary(lib)
	lib, getInstanceProcAddr, getDeviceProcAddr = nil, nil, nil
	return err
}
