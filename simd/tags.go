// Copyright 2025 go-simd-conform Authors
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

package simd

import "unsafe"

// ABI is a vector-width tag: a compile-time description of one backend
// variant. A tag fixes the lane count for a given lane type and names
// the backend it models. Tags are stateless values; constructing one
// is free.
type ABI[T Lanes] interface {
	// Lanes returns the number of T lanes a vector carries under
	// this ABI.
	Lanes() int

	// Name returns a human-readable name for this ABI
	// ("scalar", "128bit", ...).
	Name() string
}

// ScalarTag models the scalar fallback backend: one lane per vector.
// Every operation degenerates to plain scalar arithmetic, which makes
// it the baseline every wider ABI must agree with.
type ScalarTag[T Lanes] struct{}

// Lanes returns 1.
func (ScalarTag[T]) Lanes() int {
	return 1
}

// Name returns "scalar".
func (ScalarTag[T]) Name() string {
	return "scalar"
}

// FixedTag128 models 128-bit vectors (SSE2, NEON).
type FixedTag128[T Lanes] struct{}

// Lanes returns the number of T values that fit in 128 bits.
func (FixedTag128[T]) Lanes() int {
	var dummy T
	return 16 / int(unsafe.Sizeof(dummy))
}

// Name returns "128bit".
func (FixedTag128[T]) Name() string {
	return "128bit"
}

// FixedTag256 models 256-bit vectors (AVX2).
type FixedTag256[T Lanes] struct{}

// Lanes returns the number of T values that fit in 256 bits.
func (FixedTag256[T]) Lanes() int {
	var dummy T
	return 32 / int(unsafe.Sizeof(dummy))
}

// Name returns "256bit".
func (FixedTag256[T]) Name() string {
	return "256bit"
}

// FixedTag512 models 512-bit vectors (AVX-512, SVE).
type FixedTag512[T Lanes] struct{}

// Lanes returns the number of T values that fit in 512 bits.
func (FixedTag512[T]) Lanes() int {
	var dummy T
	return 64 / int(unsafe.Sizeof(dummy))
}

// Name returns "512bit".
func (FixedTag512[T]) Name() string {
	return "512bit"
}
