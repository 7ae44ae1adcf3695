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
	"strings"

	"github.com/ajroetker/go-lanes/lanes/muck"
)

// Flatten views vs as one slice of lanes without copying.
//
//	vs := []lanes.U32x4{...}
//	flat := lanes.Flatten[uint32](vs) // len(flat) == 4*len(vs)
func Flatten[T Lanes, V Vector[T]](vs []V) []T {
	return muck.CastSlice[T](vs)
}

// Unflatten views s as vectors without copying. It fails if len(s) is not a
// multiple of the lane count or if s is not aligned for V.
func Unflatten[V Vector[T], T Lanes](s []T) ([]V, error) {
	return muck.TryCastSlice[V](s)
}

func formatLanes[T Lanes](name string, s []T) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('[')
	for i, x := range s {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, x)
	}
	b.WriteByte(']')
	return b.String()
}
