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

package fcmp

import "github.com/ajroetker/go-lanes/lanes"

// Compare evaluates p lane by lane and stores all-ones or all-zeros mask
// lanes to dst. It panics if the slices differ in length.
func Compare[T lanes.Floats, M lanes.Masks](p Predicate, dst []M, a, b []T) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("fcmp: Compare called with slices of different length")
	}
	for i := range a {
		var m M
		if p.Eval(float64(a[i]), float64(b[i])) {
			m = ^m
		}
		dst[i] = m
	}
}

// CompareF32x4 compares a and b lane-wise with p.
func CompareF32x4(p Predicate, a, b lanes.F32x4) lanes.M32x4 {
	var m lanes.M32x4
	Compare(p, m.AsSlice(), a.AsSlice(), b.AsSlice())
	return m
}

// CompareF32x8 compares a and b lane-wise with p.
func CompareF32x8(p Predicate, a, b lanes.F32x8) lanes.M32x8 {
	var m lanes.M32x8
	Compare(p, m.AsSlice(), a.AsSlice(), b.AsSlice())
	return m
}

// CompareF64x2 compares a and b lane-wise with p.
func CompareF64x2(p Predicate, a, b lanes.F64x2) lanes.M64x2 {
	var m lanes.M64x2
	Compare(p, m.AsSlice(), a.AsSlice(), b.AsSlice())
	return m
}

// CompareF64x4 compares a and b lane-wise with p.
func CompareF64x4(p Predicate, a, b lanes.F64x4) lanes.M64x4 {
	var m lanes.M64x4
	Compare(p, m.AsSlice(), a.AsSlice(), b.AsSlice())
	return m
}
