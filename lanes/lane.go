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
	"errors"
	"fmt"
	"reflect"
	"unsafe"

	"github.com/ajroetker/go-lanes/lanes/muck"
)

// Kind classifies lanes and vectors.
type Kind uint8

const (
	KindUnsigned Kind = iota + 1
	KindSigned
	KindFloat
	KindMask
)

func (k Kind) String() string {
	switch k {
	case KindUnsigned:
		return "unsigned"
	case KindSigned:
		return "signed"
	case KindFloat:
		return "float"
	case KindMask:
		return "mask"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// LaneInfo describes a lane type and the mask type that shares its layout.
type LaneInfo struct {
	Type  reflect.Type
	Kind  Kind
	Bits  int
	Size  uintptr
	Align uintptr
	Mask  reflect.Type
}

func (li LaneInfo) String() string {
	return fmt.Sprintf("%s (%s, %d bits, mask %s)", li.Type, li.Kind, li.Bits, li.Mask)
}

func laneInfo[T Lanes, M Masks](kind Kind) LaneInfo {
	var zero T
	return LaneInfo{
		Type:  reflect.TypeFor[T](),
		Kind:  kind,
		Bits:  int(unsafe.Sizeof(zero)) * 8,
		Size:  unsafe.Sizeof(zero),
		Align: unsafe.Alignof(zero),
		Mask:  reflect.TypeFor[M](),
	}
}

var laneTable = []LaneInfo{
	laneInfo[uint8, M8](KindUnsigned),
	laneInfo[uint16, M16](KindUnsigned),
	laneInfo[uint32, M32](KindUnsigned),
	laneInfo[uint64, M64](KindUnsigned),
	laneInfo[int8, M8](KindSigned),
	laneInfo[int16, M16](KindSigned),
	laneInfo[int32, M32](KindSigned),
	laneInfo[int64, M64](KindSigned),
	laneInfo[float32, M32](KindFloat),
	laneInfo[float64, M64](KindFloat),
	laneInfo[M8, M8](KindMask),
	laneInfo[M16, M16](KindMask),
	laneInfo[M32, M32](KindMask),
	laneInfo[M64, M64](KindMask),
	laneInfo[MSize, MSize](KindMask),
}

// LaneTypes lists every built-in lane type with its mask partner.
func LaneTypes() []LaneInfo {
	return append([]LaneInfo(nil), laneTable...)
}

// LaneOf describes T. Named types of a built-in lane type (type Celsius
// float32) are described by their underlying lane, keeping their own Type.
func LaneOf[T Lanes]() LaneInfo {
	t := reflect.TypeFor[T]()
	for _, li := range laneTable {
		if li.Type == t {
			return li
		}
	}
	for _, li := range laneTable {
		if li.Kind != KindMask && li.Type.Kind() == t.Kind() {
			li.Type = t
			return li
		}
	}
	panic("lanes: no lane information for " + t.String())
}

// Zero returns the zero lane, whose bytes are all zero. For masks it is false.
func Zero[T Lanes]() T {
	return muck.Zeroed[T]()
}

// IsMaskBits reports whether the bits of x are all clear or all set, that is
// whether x reinterpreted as its mask partner is a valid mask.
func IsMaskBits[T Lanes](x T) bool {
	switch unsafe.Sizeof(x) {
	case 1:
		r := muck.Cast[int8](x)
		return r == 0 || r == -1
	case 2:
		r := muck.Cast[int16](x)
		return r == 0 || r == -1
	case 4:
		r := muck.Cast[int32](x)
		return r == 0 || r == -1
	default:
		r := muck.Cast[int64](x)
		return r == 0 || r == -1
	}
}

// CheckLanes verifies that every lane shares its size and alignment with
// its mask partner and that masks are their own partners.
func CheckLanes() error {
	var errs []error
	for _, li := range laneTable {
		m := li.Mask
		if m.Size() != li.Size || uintptr(m.Align()) != li.Align {
			errs = append(errs, fmt.Errorf("lane %s: mask %s has size %d align %d, want size %d align %d",
				li.Type, m, m.Size(), m.Align(), li.Size, li.Align))
		}
		if li.Kind == KindMask && m != li.Type {
			errs = append(errs, fmt.Errorf("mask %s: partner is %s, want itself", li.Type, m))
		}
		if uintptr(li.Bits) != li.Size*8 {
			errs = append(errs, fmt.Errorf("lane %s: %d bits in %d bytes", li.Type, li.Bits, li.Size))
		}
	}
	return errors.Join(errs...)
}
