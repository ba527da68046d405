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

// This file provides the pure Go (scalar) reference implementations of
// the vector operations. They define the semantics that any SIMD
// backend claiming an ABI tag must reproduce bit for bit.

// Zero creates a vector under ABI d with all lanes set to zero.
func Zero[T Lanes](d ABI[T]) Vec[T] {
	return Vec[T]{data: make([]T, d.Lanes())}
}

// Undefined returns a vector under ABI d whose lane values callers
// must not rely on. In Go this is zero-initialized for safety; use it
// for outputs that will be fully written before being read.
func Undefined[T Lanes](d ABI[T]) Vec[T] {
	return Vec[T]{data: make([]T, d.Lanes())}
}

// Set creates a vector under ABI d with all lanes set to value
// (a scalar broadcast).
func Set[T Lanes](d ABI[T], value T) Vec[T] {
	data := make([]T, d.Lanes())
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Load creates a vector under ABI d by bulk-copying exactly d.Lanes()
// elements from src. No alignment is assumed. src must hold at least
// d.Lanes() elements; use MaskLoad for shorter inputs.
func Load[T Lanes](d ABI[T], src []T) Vec[T] {
	v := Vec[T]{data: make([]T, d.Lanes())}
	v.CopyFrom(src)
	return v
}

// MaskLoad loads data from src only for lanes where the mask is true;
// the remaining lanes are zero. Lanes where the mask is false are
// never read from src.
func MaskLoad[T Lanes](mask Mask[T], src []T) Vec[T] {
	result := make([]T, len(mask.bits))
	for i := range result {
		if mask.bits[i] {
			result[i] = src[i]
		}
		// else: leave as zero value
	}
	return Vec[T]{data: result}
}

// MaskStore stores vector data to dst only for lanes where the mask
// is true.
func MaskStore[T Lanes](mask Mask[T], v Vec[T], dst []T) {
	n := min(len(dst), min(len(v.data), len(mask.bits)))
	for i := 0; i < n; i++ {
		if mask.bits[i] {
			dst[i] = v.data[i]
		}
	}
}

// FirstN creates a mask under ABI d with the first count lanes active.
// This is the mask used to handle the tail (remainder) of an array
// whose length is not a multiple of the vector width. count is
// clamped to [0, d.Lanes()].
func FirstN[T Lanes](d ABI[T], count int) Mask[T] {
	lanes := d.Lanes()
	if count < 0 {
		count = 0
	}
	if count > lanes {
		count = lanes
	}

	bits := make([]bool, lanes)
	for i := 0; i < count; i++ {
		bits[i] = true
	}
	return Mask[T]{bits: bits}
}

// FalseMask creates a mask under ABI d with no lanes active.
func FalseMask[T Lanes](d ABI[T]) Mask[T] {
	return Mask[T]{bits: make([]bool, d.Lanes())}
}

// FalseMaskFor creates an all-false mask with the same lane count
// as v, for callers that hold a vector but not its ABI tag.
func FalseMaskFor[T Lanes](v Vec[T]) Mask[T] {
	return Mask[T]{bits: make([]bool, len(v.data))}
}

// Add performs element-wise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] + b.data[i]
	}
	return Vec[T]{data: result}
}

// Sub performs element-wise subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] - b.data[i]
	}
	return Vec[T]{data: result}
}

// Mul performs element-wise multiplication.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] * b.data[i]
	}
	return Vec[T]{data: result}
}

// Equal performs element-wise equality comparison.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(len(b.data), len(a.data))
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = a.data[i] == b.data[i]
	}
	return Mask[T]{bits: bits}
}

// NotEqual performs element-wise inequality comparison.
func NotEqual[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(len(b.data), len(a.data))
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = a.data[i] != b.data[i]
	}
	return Mask[T]{bits: bits}
}
