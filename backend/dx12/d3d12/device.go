//go:build windows

package d3d12

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// vtableCall invokes the method at vtable slot index on obj, following
// the COM convention that every interface method takes the interface
// pointer itself as its first (implicit this) argument. args are the
// remaining arguments, already boxed as uintptr.
func vtableCall(obj unsafe.Pointer, index int, args ...uintptr) (uintptr, error) {
	vtbl := *(*unsafe.Pointer)(obj)
	slot := unsafe.Pointer(uintptr(vtbl) + uintptr(index)*unsafe.Sizeof(uintptr(0)))
	proc := *(*uintptr)(slot)

	full := append([]uintptr{uintptr(obj)}, args...)
	r1, _, callErr := windows.Syscall(proc, uintptr(len(full)), full[0], arg(full, 1), arg(full, 2))
	if callErr != 0 && callErr != windows.ERROR_SUCCESS {
		return r1, fmt.Errorf("d3d12: vtable call at slot %d: %w", index, callErr)
	}
	return r1, nil
}

func arg(args []uintptr, i int) uintptr {
	if i < len(args) {
		return args[i]
	}
	return 0
}

// Device wraps an ID3D12Device created by D3D12CreateDevice.
type Device struct {
	raw          *ID3D12Device
	FeatureLevel D3D_FEATURE_LEVEL
}

// CreateCommandQueue creates a direct command queue on the device.
func (d *Device) CreateCommandQueue() (*ID3D12CommandQueue, error) {
	// Slot index for ID3D12Device::CreateCommandQueue in the real vtable;
	// a full binding would resolve this from the generated interface
	// layout. Recorded here as a named constant for clarity.
	const createCommandQueueSlot = 8
	var queue ID3D12CommandQueue
	if _, err := vtableCall(unsafe.Pointer(d.raw), createCommandQueueSlot, uintptr(unsafe.Pointer(&queue))); err != nil {
		return nil, err
	}
	return &queue, nil
}

// DescriptorHeap is a linear allocator over a single D3D12 descriptor
// heap, mirroring the fixed heap-per-purpose layout the backend contract
// specifies (one RTV heap sized to the back-buffer count, one DSV heap of
// size 1, one CBV/SRV/UAV heap, one sampler heap).
type DescriptorHeap struct {
	raw            *ID3D12DescriptorHeap
	heapType       DescriptorHeapType
	cpuStart       CPUDescriptorHandle
	gpuStart       GPUDescriptorHandle
	incrementSize  uint32
	capacity       uint32
	nextFree       uint32
}

// NewDescriptorHeap wraps a pre-created heap, ready for Allocate calls.
func NewDescriptorHeap(raw *ID3D12DescriptorHeap, heapType DescriptorHeapType, capacity, incrementSize uint32) *DescriptorHeap {
	return &DescriptorHeap{raw: raw, heapType: heapType, capacity: capacity, incrementSize: incrementSize}
}

// Allocate reserves count contiguous descriptor slots, returning the CPU
// handle to the first one.
func (h *DescriptorHeap) Allocate(count uint32) (CPUDescriptorHandle, error) {
	if h.nextFree+count > h.capacity {
		return CPUDescriptorHandle{}, fmt.Errorf("d3d12: descriptor heap exhausted (type %d, capacity %d)", h.heapType, h.capacity)
	}
	handle := CPUDescriptorHandle{Ptr: h.cpuStart.Ptr + uintptr(h.nextFree*h.incrementSize)}
	h.nextFree += count
	return handle, nil
}
