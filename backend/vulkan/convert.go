package vulkan

import "unsafe"

// ptrOf returns an unsafe.Pointer to v's backing storage, for passing Go
// structs across the vk package's FFI boundary as opaque pointers.
func ptrOf[T any](v *T) unsafe.Pointer {
	return unsafe.Pointer(v)
}
