// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lanes

import "unsafe"

// SelfAlign returns the alignment V needs to be self-aligned: its size when
// that is a power of two, otherwise its Go alignment.
func SelfAlign[V any]() uintptr {
	var dummy V
	size := unsafe.Sizeof(dummy)
	if size == 0 || size&(size-1) != 0 {
		return unsafe.Alignof(dummy)
	}
	return size
}

// MakeAligned returns n zeroed values of V whose first element starts at an
// address that is a multiple of SelfAlign[V](). Vectors in the result are
// therefore laid out as the matching SIMD registers expect even beyond
// MaxAlign.
//
// V must not contain pointers: the memory is allocated as bytes.
func MakeAligned[V any](n int) []V {
	if n <= 0 {
		return nil
	}
	var dummy V
	size := unsafe.Sizeof(dummy)
	align := SelfAlign[V]()
	if size == 0 || align <= MaxAlign {
		return make([]V, n)
	}

	raw := make([]byte, uintptr(n)*size+align-1)
	base := unsafe.Pointer(unsafe.SliceData(raw))             //nolint:gosec // unsafe is required for memory alignment
	offset := (align - uintptr(base)&(align-1)) & (align - 1) //nolint:gosec // unsafe is required for memory alignment
	return unsafe.Slice((*V)(unsafe.Add(base, offset)), n)    //nolint:gosec // unsafe is required for memory alignment
}

// IsAligned reports whether p is self-aligned for V.
func IsAligned[V any](p *V) bool {
	return uintptr(unsafe.Pointer(p))&(SelfAlign[V]()-1) == 0
}
