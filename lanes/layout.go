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
)

// VectorInfo describes the layout of one vector type.
type VectorInfo struct {
	Name string
	Type reflect.Type
	Kind Kind
	Lane reflect.Type
	Shape
	MaskName string // mask vector of the same shape
	HalfName string // empty for single-lane vectors
}

// Size returns the size in bytes as laid out by the compiler.
func (vi VectorInfo) Size() uintptr { return vi.Type.Size() }

// Align returns the alignment as laid out by the compiler.
func (vi VectorInfo) Align() uintptr { return uintptr(vi.Type.Align()) }

// WantAlign returns the alignment the vector is declared to have:
// self-aligned up to MaxAlign.
func (vi VectorInfo) WantAlign() uintptr { return min(uintptr(vi.Bytes()), MaxAlign) }

// Backing returns how the vector is represented on the current target.
func (vi VectorInfo) Backing() Backing { return BackingFor(vi.Size()) }

// Vectors returns every vector and mask vector type, ordered by lane width,
// lane count and kind.
func Vectors() []VectorInfo {
	return append([]VectorInfo(nil), vectorTable...)
}

// LookupVector returns the vector type named name, such as "F32x8".
func LookupVector(name string) (VectorInfo, bool) {
	for _, vi := range vectorTable {
		if vi.Name == name {
			return vi, true
		}
	}
	return VectorInfo{}, false
}

// CheckLayouts verifies the layout of every lane and vector type: sizes
// without padding, self-alignment up to MaxAlign, halves of half the size,
// and mask vectors laid out like the vectors they mask.
func CheckLayouts() error {
	errs := []error{CheckLanes()}
	for _, vi := range vectorTable {
		if !vi.Shape.Valid() {
			errs = append(errs, fmt.Errorf("%s: invalid shape %s", vi.Name, vi.Shape))
		}
		if got, want := vi.Size(), uintptr(vi.Lanes)*vi.Lane.Size(); got != want {
			errs = append(errs, fmt.Errorf("%s: size %d, want %d", vi.Name, got, want))
		}
		if got, want := vi.Align(), vi.WantAlign(); got != want {
			errs = append(errs, fmt.Errorf("%s: align %d, want %d", vi.Name, got, want))
		}
		if vi.Type.Field(1).Type != reflect.ArrayOf(vi.Lanes, vi.Lane) {
			errs = append(errs, fmt.Errorf("%s: lanes stored as %s", vi.Name, vi.Type.Field(1).Type))
		}
		m, ok := LookupVector(vi.MaskName)
		switch {
		case !ok:
			errs = append(errs, fmt.Errorf("%s: missing mask vector %s", vi.Name, vi.MaskName))
		case m.Kind != KindMask || m.Shape != vi.Shape:
			errs = append(errs, fmt.Errorf("%s: mask vector %s has kind %s shape %s", vi.Name, m.Name, m.Kind, m.Shape))
		case m.Size() != vi.Size() || m.Align() != vi.Align():
			errs = append(errs, fmt.Errorf("%s: mask vector %s has size %d align %d", vi.Name, m.Name, m.Size(), m.Align()))
		}
		if vi.HalfName == "" {
			if vi.Lanes > 1 {
				errs = append(errs, fmt.Errorf("%s: missing half", vi.Name))
			}
			continue
		}
		h, ok := LookupVector(vi.HalfName)
		switch {
		case !ok:
			errs = append(errs, fmt.Errorf("%s: missing half %s", vi.Name, vi.HalfName))
		case 2*h.Size() != vi.Size() || h.Kind != vi.Kind:
			errs = append(errs, fmt.Errorf("%s: half %s has size %d", vi.Name, h.Name, h.Size()))
		}
	}
	return errors.Join(errs...)
}

func init() {
	if err := CheckLayouts(); err != nil {
		panic("lanes: " + err.Error())
	}
}
