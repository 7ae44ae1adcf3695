package lanes

import (
	"os"
	"strconv"
	"unsafe"
)

// DispatchLevel is the SIMD instruction set that vector backings are
// matched to.
type DispatchLevel uint8

const (
	// DispatchScalar indicates no vector registers are used.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2, the x86-64 baseline (128-bit).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 (256-bit).
	DispatchAVX2

	// DispatchAVX512 indicates the AVX-512 foundation (512-bit).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON (64 and 128-bit).
	DispatchNEON
)

var levelNames = [...]string{
	DispatchScalar: "scalar",
	DispatchSSE2:   "sse2",
	DispatchAVX2:   "avx2",
	DispatchAVX512: "avx512",
	DispatchNEON:   "neon",
}

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	if int(d) < len(levelNames) {
		return levelNames[d]
	}
	return "unknown"
}

// Target describes the vector registers of a dispatch level.
type Target struct {
	Level DispatchLevel

	// Width is the widest vector register in bytes.
	Width int

	// MinRegister is the narrowest vector, in bytes, that is kept in a
	// vector register. It is zero for DispatchScalar.
	MinRegister int
}

var targets = [...]Target{
	// 16-byte shapes stay the reference width without SIMD.
	DispatchScalar: {Level: DispatchScalar, Width: 16},
	DispatchSSE2:   {Level: DispatchSSE2, Width: 16, MinRegister: 16},
	DispatchAVX2:   {Level: DispatchAVX2, Width: 32, MinRegister: 16},
	DispatchAVX512: {Level: DispatchAVX512, Width: 64, MinRegister: 16},
	// NEON has 64-bit D registers alongside the 128-bit Q registers.
	DispatchNEON: {Level: DispatchNEON, Width: 16, MinRegister: 8},
}

// Target returns the register description of d.
func (d DispatchLevel) Target() Target {
	if int(d) < len(targets) {
		return targets[d]
	}
	return targets[DispatchScalar]
}

// current is the target for this runtime, set by init in dispatch_*.go.
var current Target

func setLevel(d DispatchLevel) {
	current = d.Target()
}

// CurrentTarget returns the target the vector backings are matched to.
func CurrentTarget() Target {
	return current
}

// CurrentLevel returns the SIMD instruction set being used.
func CurrentLevel() DispatchLevel {
	return current.Level
}

// CurrentWidth returns the widest SIMD register in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return current.Width
}

// CurrentName returns a human-readable name for the current SIMD target.
func CurrentName() string {
	return current.Level.String()
}

// NoSimdEnvVar names the environment variable that forces DispatchScalar.
const NoSimdEnvVar = "LANES_NO_SIMD"

// NoSimdEnv reports whether LANES_NO_SIMD is set. Values that do not parse
// as a boolean count as set.
func NoSimdEnv() bool {
	val := os.Getenv(NoSimdEnvVar)
	if val == "" {
		return false
	}
	b, err := strconv.ParseBool(val)
	return err != nil || b
}

// MaxLanes returns the number of T lanes in the widest register of the
// current target.
//
// For example, with AVX2 (256 bits / 32 bytes):
//   - float32: 32/4 = 8 lanes
//   - M64: 32/8 = 4 lanes
func MaxLanes[T Lanes]() int {
	return current.Width / int(unsafe.Sizeof(Zero[T]()))
}
