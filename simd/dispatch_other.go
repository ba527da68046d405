//go:build !amd64 && !arm64

package simd

func init() {
	nativeWidth = 0
	nativeName = "scalar"
}
