package simd

import "os"

// nativeWidth is the widest vector width in bytes the running CPU
// supports, set by init() in the dispatch_*.go files. Zero means
// scalar only.
var nativeWidth int

// nativeName is the human-readable name of the detected backend.
var nativeName string

// NoSimdEnv returns true if the SIMD_NO_NATIVE environment variable
// is set, forcing the native ABI down to scalar.
func NoSimdEnv() bool {
	return os.Getenv("SIMD_NO_NATIVE") != ""
}

// NativeWidth returns the detected native vector width in bytes,
// or 0 when only scalar execution is available.
func NativeWidth() int {
	return nativeWidth
}

// NativeName returns the name of the detected native backend
// ("avx2", "neon", "scalar", ...).
func NativeName() string {
	return nativeName
}

// NativeABI returns the widest fixed ABI tag the running CPU can
// execute natively. It falls back to ScalarTag when no SIMD support
// was detected or SIMD_NO_NATIVE is set.
func NativeABI[T Lanes]() ABI[T] {
	switch nativeWidth {
	case 64:
		return FixedTag512[T]{}
	case 32:
		return FixedTag256[T]{}
	case 16:
		return FixedTag128[T]{}
	default:
		return ScalarTag[T]{}
	}
}
