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

import (
	"unsafe"
)

const (
	msgInvalidMask         = "invalid mask"
	msgInvalidMaskVector   = "invalid mask vector"
	msgUncheckedMask       = "undefined behavior: mask is invalid"
	msgUncheckedMaskVector = "undefined behavior: mask vector is invalid"
)

// isMaskRepr reports whether every element is 0 or -1. It visits every lane
// without branching: x ^ (x >> (bits-1)) is zero only for those two values.
func isMaskRepr[S SignedInts | ~int](s []S) bool {
	var zero S
	shift := unsafe.Sizeof(zero)*8 - 1
	var bad S
	for _, x := range s {
		bad |= x ^ (x >> shift)
	}
	return bad == 0
}

// isMaskLanes applies isMaskRepr to s viewed as signed integers of its lane
// width.
func isMaskLanes[T Lanes](s []T) bool {
	if len(s) == 0 {
		return true
	}
	p := unsafe.Pointer(unsafe.SliceData(s))
	switch unsafe.Sizeof(s[0]) {
	case 1:
		return isMaskRepr(unsafe.Slice((*int8)(p), len(s)))
	case 2:
		return isMaskRepr(unsafe.Slice((*int16)(p), len(s)))
	case 4:
		return isMaskRepr(unsafe.Slice((*int32)(p), len(s)))
	default:
		return isMaskRepr(unsafe.Slice((*int64)(p), len(s)))
	}
}

func maskFromBool[M Masks](b bool) M {
	if b {
		return ^M(0)
	}
	return 0
}

func allSet[M Masks](s []M) bool {
	acc := ^M(0)
	for _, m := range s {
		acc &= m
	}
	return acc == ^M(0)
}

func anySet[M Masks](s []M) bool {
	var acc M
	for _, m := range s {
		acc |= m
	}
	return acc != 0
}

func countSet[M Masks](s []M) int {
	n := 0
	for _, m := range s {
		n += int(m & 1)
	}
	return n
}
