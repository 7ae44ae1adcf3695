package feature

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeatureString(t *testing.T) {
	assert.Equal(t, "aes", FeatureAES.String())
	assert.Equal(t, "sse4.1", FeatureSSE41.String())
	assert.Equal(t, "avx512", FeatureAVX512.String())
	assert.Equal(t, "neon", FeatureNEON.String())
	assert.Equal(t, "Feature(42)", Feature(42).String())
	assert.Len(t, All(), 7)
}

func TestTokensMatchFeatures(t *testing.T) {
	tokens := []Token{AES{}, SHA{}, SSE2{}, SSE41{}, AVX2{}, AVX512{}, NEON{}}
	require.Len(t, tokens, len(All()))
	for i, tok := range tokens {
		assert.Equal(t, Feature(i), tok.Feature())
	}
}

func TestDetectAgreesWithSupported(t *testing.T) {
	detect := map[Feature]func() bool{
		FeatureAES:    func() bool { _, ok := DetectAES(); return ok },
		FeatureSHA:    func() bool { _, ok := DetectSHA(); return ok },
		FeatureSSE2:   func() bool { _, ok := DetectSSE2(); return ok },
		FeatureSSE41:  func() bool { _, ok := DetectSSE41(); return ok },
		FeatureAVX2:   func() bool { _, ok := DetectAVX2(); return ok },
		FeatureAVX512: func() bool { _, ok := DetectAVX512(); return ok },
		FeatureNEON:   func() bool { _, ok := DetectNEON(); return ok },
	}
	requireErr := map[Feature]func() error{
		FeatureAES:    func() error { _, err := RequireAES(); return err },
		FeatureSHA:    func() error { _, err := RequireSHA(); return err },
		FeatureSSE2:   func() error { _, err := RequireSSE2(); return err },
		FeatureSSE41:  func() error { _, err := RequireSSE41(); return err },
		FeatureAVX2:   func() error { _, err := RequireAVX2(); return err },
		FeatureAVX512: func() error { _, err := RequireAVX512(); return err },
		FeatureNEON:   func() error { _, err := RequireNEON(); return err },
	}
	for _, f := range All() {
		t.Run(f.String(), func(t *testing.T) {
			assert.Equal(t, Supported(f), detect[f]())
			err := requireErr[f]()
			if Supported(f) {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrUnsupported)
				assert.ErrorContains(t, err, f.String())
			}
		})
	}
	assert.False(t, Supported(numFeatures))
}

func TestList(t *testing.T) {
	list := List()
	for _, f := range list {
		assert.True(t, Supported(f), "%s listed but unsupported", f)
	}
	n := 0
	for _, f := range All() {
		if Supported(f) {
			n++
		}
	}
	assert.Len(t, list, n)
}

func TestArchitectureExclusive(t *testing.T) {
	switch runtime.GOARCH {
	case "amd64":
		assert.False(t, Supported(FeatureNEON))
	case "arm64":
		for _, f := range []Feature{FeatureSSE2, FeatureSSE41, FeatureAVX2, FeatureAVX512} {
			assert.False(t, Supported(f), f.String())
		}
	}
}

func TestNoSimdDisablesEverything(t *testing.T) {
	saved := supported
	t.Cleanup(func() { supported = saved })

	load(true)
	assert.Empty(t, List())
	_, err := RequireSSE2()
	require.ErrorIs(t, err, ErrUnsupported)

	load(false)
	if runtime.GOARCH == "amd64" {
		assert.True(t, Supported(FeatureSSE2), "SSE2 is baseline on amd64")
	}
}

func TestCheckSupported(t *testing.T) {
	saved := supported
	t.Cleanup(func() { supported = saved })

	supported = [numFeatures]bool{FeatureSSE41: true}
	assert.NoError(t, checkSupported(FeatureSSE41))
	_, err := RequireSSE41()
	assert.NoError(t, err)

	err = checkSupported(FeatureAVX2)
	require.ErrorIs(t, err, ErrUnsupported)
	assert.EqualError(t, err, "feature: not supported by this CPU: avx2")
	require.ErrorIs(t, checkSupported(numFeatures), ErrUnsupported)
	assert.Equal(t, []Feature{FeatureSSE41}, List())
}
