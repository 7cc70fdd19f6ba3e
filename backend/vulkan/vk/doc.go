// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package vk (see also types.go, loader.go, commands.go, calls.go) is the
// pure-Go, no-cgo Vulkan binding layer underneath backend/vulkan. Function
// pointers are resolved dynamically from vulkan-1.dll (Windows),
// libvulkan.so.1 (Linux), or MoltenVK (macOS) through goffi, with no
// generated bindings checked in: this package hand-declares only the
// entry points the Vulkan-like render backend actually calls.
package vk
