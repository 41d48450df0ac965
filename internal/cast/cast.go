// Package cast holds the audited unsafe reinterpretation routine used by the
// bulk fixed-width codec paths.
//
// The preconditions are strict and the audience is internal: element types
// must be fixed-width with no padding, and a reinterpreted view is only a
// valid wire image when the wire byte order equals the host byte order.
// Nothing here is exported outside the module; public packages expose only
// checked serialization built on top of it.
package cast

import "unsafe"

// SliceToBytes reinterprets a fixed-width slice as its raw in-memory bytes
// without copying.
//
// Preconditions: T contains no padding (bool, fixed-width integers, floats,
// or arrays of them). The result aliases s; writing through it mutates s and
// it must not outlive s.
func SliceToBytes[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}

	var zero T
	size := int(unsafe.Sizeof(zero))

	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*size)
}
