// Copyright 2025 The go-simd-conform Authors. SPDX-License-Identifier: Apache-2.0

package conform

import "github.com/ajroetker/go-simd-conform/simd"

// Loader is a strategy for materializing a vector-width chunk of
// memory into a vector, including the case where fewer than a full
// width of valid elements remain. A loader is stateless and exposes
// one entry point per execution context.
//
// On success every lane of out is defined: lanes [0, n) hold the
// source data and lanes [n, width) hold zero. On failure out is
// unspecified and the caller must skip the chunk.
type Loader[T simd.Lanes] interface {
	// HostLoad loads n valid elements from mem into out on the host
	// context.
	HostLoad(mem []T, n int, out *simd.Vec[T]) bool

	// DeviceLoad loads n valid elements from mem into out on the
	// device context.
	DeviceLoad(mem []T, n int, out *simd.Vec[T]) bool

	// Name identifies the strategy in failure messages.
	Name() string
}

// LoadElementAligned loads a chunk with one unconditional full-width
// bulk copy. It refuses whenever n is smaller than the vector width,
// since the copy would read past the valid region; the driver then
// skips the chunk.
type LoadElementAligned[T simd.Lanes] struct{}

// HostLoad implements Loader.
func (LoadElementAligned[T]) HostLoad(mem []T, n int, out *simd.Vec[T]) bool {
	return alignedLoad(mem, n, out)
}

// DeviceLoad implements Loader.
func (LoadElementAligned[T]) DeviceLoad(mem []T, n int, out *simd.Vec[T]) bool {
	return alignedLoad(mem, n, out)
}

// Name implements Loader.
func (LoadElementAligned[T]) Name() string { return "element_aligned" }

func alignedLoad[T simd.Lanes](mem []T, n int, out *simd.Vec[T]) bool {
	if n < out.NumLanes() {
		return false
	}
	out.CopyFrom(mem)
	return true
}

// LoadMasked loads a chunk through a predicated copy: a mask selects
// the first n lanes, the masked copy reads only those lanes from
// memory, and the negated mask zero-fills the rest. Always succeeds.
type LoadMasked[T simd.Lanes] struct{}

// HostLoad implements Loader.
func (LoadMasked[T]) HostLoad(mem []T, n int, out *simd.Vec[T]) bool {
	return maskedLoad(mem, n, out)
}

// DeviceLoad implements Loader.
func (LoadMasked[T]) DeviceLoad(mem []T, n int, out *simd.Vec[T]) bool {
	return maskedLoad(mem, n, out)
}

// Name implements Loader.
func (LoadMasked[T]) Name() string { return "masked" }

func maskedLoad[T simd.Lanes](mem []T, n int, out *simd.Vec[T]) bool {
	mask := simd.FalseMaskFor(*out)
	for i := 0; i < n && i < out.NumLanes(); i++ {
		mask.SetBit(i, true)
	}
	out.MaskedCopyFrom(mask, mem)
	out.MaskedFill(mask.Not(), 0)
	return true
}

// LoadAsScalars loads a chunk one lane at a time through indexed
// writes, with no bulk load primitive involved, then zero-fills the
// remainder. Always succeeds.
type LoadAsScalars[T simd.Lanes] struct{}

// HostLoad implements Loader.
func (LoadAsScalars[T]) HostLoad(mem []T, n int, out *simd.Vec[T]) bool {
	return scalarLoad(mem, n, out)
}

// DeviceLoad implements Loader.
func (LoadAsScalars[T]) DeviceLoad(mem []T, n int, out *simd.Vec[T]) bool {
	return scalarLoad(mem, n, out)
}

// Name implements Loader.
func (LoadAsScalars[T]) Name() string { return "as_scalars" }

func scalarLoad[T simd.Lanes](mem []T, n int, out *simd.Vec[T]) bool {
	width := out.NumLanes()
	if n > width {
		n = width
	}
	for i := 0; i < n; i++ {
		out.SetLane(i, mem[i])
	}
	var zero T
	for i := n; i < width; i++ {
		out.SetLane(i, zero)
	}
	return true
}
