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

import "fmt"

// Backing names how a vector of a given size is represented on the current
// target. Storage and behaviour are the same for every backing; it reports
// which machine representation the layout was chosen to match.
type Backing uint8

const (
	// BackingArray is a plain lane array in memory, used when no SIMD
	// register is available and the vector does not fit a scalar register.
	BackingArray Backing = iota

	// BackingScalar packs the vector into one general-purpose register.
	BackingScalar

	// BackingRegister keeps the vector in one SIMD register.
	BackingRegister

	// BackingHalves splits a vector wider than any register into two
	// halves, each backed on its own.
	BackingHalves
)

func (b Backing) String() string {
	switch b {
	case BackingArray:
		return "array"
	case BackingScalar:
		return "scalar"
	case BackingRegister:
		return "register"
	case BackingHalves:
		return "halves"
	default:
		return fmt.Sprintf("Backing(%d)", uint8(b))
	}
}

// BackingFor returns the backing for a vector of size bytes on the current
// target. A target without vector registers packs vectors of up to 8 bytes
// into a general-purpose register.
func BackingFor(size uintptr) Backing {
	return current.backing(size)
}

func (t Target) backing(size uintptr) Backing {
	if t.MinRegister == 0 {
		if size <= 8 {
			return BackingScalar
		}
		return BackingArray
	}
	switch {
	case size < uintptr(t.MinRegister):
		return BackingScalar
	case size <= uintptr(t.Width):
		return BackingRegister
	default:
		return BackingHalves
	}
}
