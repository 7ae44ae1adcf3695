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
	"fmt"
	"unsafe"
)

// Shape is the lane width and lane count of a vector.
type Shape struct {
	LaneBits int
	Lanes    int
}

// ShapeOf returns the shape of n lanes of T.
func ShapeOf[T Lanes](n int) Shape {
	var dummy T
	return Shape{LaneBits: int(unsafe.Sizeof(dummy)) * 8, Lanes: n}
}

// ScalableShape returns the shape that fills the widest register of the
// current dispatch level with T lanes.
func ScalableShape[T Lanes]() Shape {
	return ShapeOf[T](MaxLanes[T]())
}

// Bits returns the total width in bits.
func (s Shape) Bits() int { return s.LaneBits * s.Lanes }

// Bytes returns the total width in bytes.
func (s Shape) Bytes() int { return s.Bits() / 8 }

// Half returns the shape of one half, or false for single-lane shapes.
func (s Shape) Half() (Shape, bool) {
	if s.Lanes < 2 {
		return Shape{}, false
	}
	return Shape{LaneBits: s.LaneBits, Lanes: s.Lanes / 2}, true
}

// Valid reports whether s is a shape the package defines vectors for: a
// power-of-two lane count, 8 to 64-bit lanes, and 8 to 512 bits in total.
func (s Shape) Valid() bool {
	switch s.LaneBits {
	case 8, 16, 32, 64:
	default:
		return false
	}
	n := s.Lanes
	return n > 0 && n&(n-1) == 0 && s.Bits() >= 8 && s.Bits() <= 512
}

// String returns the shape as used in type names, e.g. "32x4".
func (s Shape) String() string {
	return fmt.Sprintf("%dx%d", s.LaneBits, s.Lanes)
}
