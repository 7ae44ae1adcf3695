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

//go:build amd64

package feature

import "golang.org/x/sys/cpu"

func detect() {
	supported[FeatureAES] = cpu.X86.HasAES
	// x/sys/cpu does not report the SHA extension on x86, so SHA stays
	// unsupported there.
	supported[FeatureSSE2] = cpu.X86.HasSSE2
	supported[FeatureSSE41] = cpu.X86.HasSSE41
	supported[FeatureAVX2] = cpu.X86.HasAVX2
	supported[FeatureAVX512] = cpu.X86.HasAVX512F
}
