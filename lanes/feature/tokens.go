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

package feature

// Token is implemented by every capability token.
type Token interface {
	Feature() Feature
}

// AES proves support for the AES round instructions (AES-NI on x86, the
// cryptography extension on arm64).
type AES struct{}

// SHA proves support for the SHA-1 and SHA-256 message and round instructions.
type SHA struct{}

// SSE2 proves support for SSE2.
type SSE2 struct{}

// SSE41 proves support for SSE4.1.
type SSE41 struct{}

// AVX2 proves support for AVX2.
type AVX2 struct{}

// AVX512 proves support for the AVX-512 foundation instructions.
type AVX512 struct{}

// NEON proves support for Advanced SIMD on arm64.
type NEON struct{}

func (AES) Feature() Feature    { return FeatureAES }
func (SHA) Feature() Feature    { return FeatureSHA }
func (SSE2) Feature() Feature   { return FeatureSSE2 }
func (SSE41) Feature() Feature  { return FeatureSSE41 }
func (AVX2) Feature() Feature   { return FeatureAVX2 }
func (AVX512) Feature() Feature { return FeatureAVX512 }
func (NEON) Feature() Feature   { return FeatureNEON }

// DetectAES returns an AES token if the CPU supports it.
func DetectAES() (AES, bool) { return AES{}, Supported(FeatureAES) }

// RequireAES returns an AES token or an error wrapping [ErrUnsupported].
func RequireAES() (AES, error) { return AES{}, checkSupported(FeatureAES) }

// DetectSHA returns a SHA token if the CPU supports it.
func DetectSHA() (SHA, bool) { return SHA{}, Supported(FeatureSHA) }

// RequireSHA returns a SHA token or an error wrapping [ErrUnsupported].
func RequireSHA() (SHA, error) { return SHA{}, checkSupported(FeatureSHA) }

// DetectSSE2 returns an SSE2 token if the CPU supports it.
func DetectSSE2() (SSE2, bool) { return SSE2{}, Supported(FeatureSSE2) }

// RequireSSE2 returns an SSE2 token or an error wrapping [ErrUnsupported].
func RequireSSE2() (SSE2, error) { return SSE2{}, checkSupported(FeatureSSE2) }

// DetectSSE41 returns an SSE41 token if the CPU supports it.
func DetectSSE41() (SSE41, bool) { return SSE41{}, Supported(FeatureSSE41) }

// RequireSSE41 returns an SSE41 token or an error wrapping [ErrUnsupported].
func RequireSSE41() (SSE41, error) { return SSE41{}, checkSupported(FeatureSSE41) }

// DetectAVX2 returns an AVX2 token if the CPU supports it.
func DetectAVX2() (AVX2, bool) { return AVX2{}, Supported(FeatureAVX2) }

// RequireAVX2 returns an AVX2 token or an error wrapping [ErrUnsupported].
func RequireAVX2() (AVX2, error) { return AVX2{}, checkSupported(FeatureAVX2) }

// DetectAVX512 returns an AVX512 token if the CPU supports it.
func DetectAVX512() (AVX512, bool) { return AVX512{}, Supported(FeatureAVX512) }

// RequireAVX512 returns an AVX512 token or an error wrapping [ErrUnsupported].
func RequireAVX512() (AVX512, error) { return AVX512{}, checkSupported(FeatureAVX512) }

// DetectNEON returns a NEON token if the CPU supports it.
func DetectNEON() (NEON, bool) { return NEON{}, Supported(FeatureNEON) }

// RequireNEON returns a NEON token or an error wrapping [ErrUnsupported].
func RequireNEON() (NEON, error) { return NEON{}, checkSupported(FeatureNEON) }
