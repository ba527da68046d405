//go:build arm64

package simd

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		nativeWidth = 0
		nativeName = "scalar"
		return
	}

	// NEON (ASIMD) is part of the ARMv8-A base architecture, so this
	// is effectively always true; we still consult the cpu package for
	// consistency with other architectures. SVE is scalable and has no
	// fixed-width tag here, so it also reports as 128-bit.
	if cpu.ARM64.HasASIMD {
		nativeWidth = 16
		nativeName = "neon"
	} else {
		nativeWidth = 0
		nativeName = "scalar"
	}
}
