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

// Package feature provides typed proofs that the running CPU supports an
// instruction set extension.
//
// A token such as [AVX2] is a zero-sized value obtained from [DetectAVX2] or
// [RequireAVX2]. Code that takes a token as a parameter can only be reached
// through a successful detection, so the check happens once at the edge of an
// API instead of inside every call:
//
//	func sumAVX2(_ feature.AVX2, xs []float32) float32 { ... }
//
//	if tok, ok := feature.DetectAVX2(); ok {
//		return sumAVX2(tok, xs)
//	}
//
// The zero value of a token built by hand carries no such proof.
//
// Detection runs once at startup. Setting LANES_NO_SIMD disables every
// feature, matching the scalar dispatch of package lanes.
package feature

import (
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/ajroetker/go-lanes/lanes"
)

// ErrUnsupported is wrapped by the errors returned from the Require functions.
var ErrUnsupported = errors.New("feature: not supported by this CPU")

// Feature identifies an instruction set extension.
type Feature uint8

const (
	FeatureAES Feature = iota
	FeatureSHA
	FeatureSSE2
	FeatureSSE41
	FeatureAVX2
	FeatureAVX512
	FeatureNEON

	numFeatures
)

var names = [numFeatures]string{
	FeatureAES:    "aes",
	FeatureSHA:    "sha",
	FeatureSSE2:   "sse2",
	FeatureSSE41:  "sse4.1",
	FeatureAVX2:   "avx2",
	FeatureAVX512: "avx512",
	FeatureNEON:   "neon",
}

func (f Feature) String() string {
	if f < numFeatures {
		return names[f]
	}
	return fmt.Sprintf("Feature(%d)", uint8(f))
}

// supported is filled by load during init and read-only afterwards.
var supported [numFeatures]bool

func init() {
	load(lanes.NoSimdEnv())
}

func load(noSimd bool) {
	supported = [numFeatures]bool{}
	if noSimd {
		return
	}
	detect()
}

// Supported reports whether f is available.
func Supported(f Feature) bool {
	return f < numFeatures && supported[f]
}

// All returns every known feature in declaration order.
func All() []Feature {
	all := make([]Feature, numFeatures)
	for i := range all {
		all[i] = Feature(i)
	}
	return all
}

// List returns the supported features in declaration order.
func List() []Feature {
	return lo.Filter(All(), func(f Feature, _ int) bool {
		return supported[f]
	})
}

func checkSupported(f Feature) error {
	if Supported(f) {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnsupported, f)
}
