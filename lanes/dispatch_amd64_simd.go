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

//go:build amd64 && goexperiment.simd

package lanes

import "simd/archsimd"

func init() {
	switch {
	case NoSimdEnv():
		setLevel(DispatchScalar)
	case archsimd.X86.AVX512():
		setLevel(DispatchAVX512)
	case archsimd.X86.AVX2():
		setLevel(DispatchAVX2)
	default:
		// AVX without AVX2 has no 256-bit integer ops, so it is matched
		// like SSE2.
		setLevel(DispatchSSE2)
	}
}
