//go:build arm64

package lanes

import "golang.org/x/sys/cpu"

func init() {
	// ASIMD is part of ARMv8-A; emulators that under-report it get the
	// scalar target.
	if !NoSimdEnv() && cpu.ARM64.HasASIMD {
		setLevel(DispatchNEON)
		return
	}
	setLevel(DispatchScalar)
}
