package lanes

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		want  string
	}{
		{DispatchScalar, "scalar"},
		{DispatchSSE2, "sse2"},
		{DispatchAVX2, "avx2"},
		{DispatchAVX512, "avx512"},
		{DispatchNEON, "neon"},
		{DispatchLevel(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("DispatchLevel(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
	if CurrentName() != CurrentLevel().String() {
		t.Errorf("CurrentName() = %q, CurrentLevel() = %v", CurrentName(), CurrentLevel())
	}
}

func TestTargets(t *testing.T) {
	want := []Target{
		{Level: DispatchScalar, Width: 16},
		{Level: DispatchSSE2, Width: 16, MinRegister: 16},
		{Level: DispatchAVX2, Width: 32, MinRegister: 16},
		{Level: DispatchAVX512, Width: 64, MinRegister: 16},
		{Level: DispatchNEON, Width: 16, MinRegister: 8},
	}
	var got []Target
	for d := DispatchScalar; d <= DispatchNEON; d++ {
		got = append(got, d.Target())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("targets mismatch (-want +got):\n%s", diff)
	}
	if got := DispatchLevel(99).Target(); got.Level != DispatchScalar {
		t.Errorf("DispatchLevel(99).Target() = %+v, want the scalar target", got)
	}
	if cur := CurrentTarget(); cur != cur.Level.Target() || cur.Width != CurrentWidth() {
		t.Errorf("CurrentTarget() = %+v is not a known target", cur)
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"0", false},
		{"false", false},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Run(tt.val, func(t *testing.T) {
			t.Setenv(NoSimdEnvVar, tt.val)
			if got := NoSimdEnv(); got != tt.want {
				t.Errorf("NoSimdEnv() with %q = %v, want %v", tt.val, got, tt.want)
			}
		})
	}
}

// withLevel runs f with the current target replaced.
func withLevel(t *testing.T, level DispatchLevel, f func()) {
	t.Helper()
	saved := current
	defer func() { current = saved }()
	setLevel(level)
	f()
}

func TestBackingFor(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		want  map[uintptr]Backing
	}{
		{DispatchScalar, map[uintptr]Backing{1: BackingScalar, 8: BackingScalar, 16: BackingArray, 64: BackingArray}},
		{DispatchSSE2, map[uintptr]Backing{4: BackingScalar, 8: BackingScalar, 16: BackingRegister, 32: BackingHalves, 64: BackingHalves}},
		{DispatchAVX2, map[uintptr]Backing{8: BackingScalar, 16: BackingRegister, 32: BackingRegister, 64: BackingHalves}},
		{DispatchAVX512, map[uintptr]Backing{2: BackingScalar, 16: BackingRegister, 32: BackingRegister, 64: BackingRegister}},
		{DispatchNEON, map[uintptr]Backing{4: BackingScalar, 8: BackingRegister, 16: BackingRegister, 32: BackingHalves}},
	}
	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			withLevel(t, tt.level, func() {
				for size, want := range tt.want {
					if got := BackingFor(size); got != want {
						t.Errorf("BackingFor(%d) = %v, want %v", size, got, want)
					}
				}
				if want, ok := tt.want[32]; ok {
					if got := (F32x8{}).Backing(); got != want {
						t.Errorf("F32x8.Backing() = %v, want %v", got, want)
					}
				}
			})
		})
	}
}

func TestMaxLanes(t *testing.T) {
	withLevel(t, DispatchAVX2, func() {
		if got := MaxLanes[float32](); got != 8 {
			t.Errorf("MaxLanes[float32]() = %d, want 8", got)
		}
		if got := MaxLanes[M64](); got != 4 {
			t.Errorf("MaxLanes[M64]() = %d, want 4", got)
		}
	})
	withLevel(t, DispatchNEON, func() {
		if got := MaxLanes[uint8](); got != 16 {
			t.Errorf("MaxLanes[uint8]() = %d, want 16", got)
		}
	})
}
