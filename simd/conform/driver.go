// Copyright 2025 The go-simd-conform Authors. SPDX-License-Identifier: Apache-2.0

package conform

import "github.com/ajroetker/go-simd-conform/simd"

// side binds a collaborator's two-entry-point contract to one
// execution context, so the chunked driver below is written once and
// instantiated per context instead of duplicating its body.
type side[T simd.Lanes] interface {
	load(l Loader[T], mem []T, n int, out *simd.Vec[T]) bool
	apply(op BinaryOp[T], a, b T) T
	applyVec(op BinaryOp[T], a, b simd.Vec[T]) simd.Vec[T]
}

type hostSide[T simd.Lanes] struct{}

func (hostSide[T]) load(l Loader[T], mem []T, n int, out *simd.Vec[T]) bool {
	return l.HostLoad(mem, n, out)
}

func (hostSide[T]) apply(op BinaryOp[T], a, b T) T {
	return op.OnHost(a, b)
}

func (hostSide[T]) applyVec(op BinaryOp[T], a, b simd.Vec[T]) simd.Vec[T] {
	return op.OnHostVec(a, b)
}

type deviceSide[T simd.Lanes] struct{}

func (deviceSide[T]) load(l Loader[T], mem []T, n int, out *simd.Vec[T]) bool {
	return l.DeviceLoad(mem, n, out)
}

func (deviceSide[T]) apply(op BinaryOp[T], a, b T) T {
	return op.OnDevice(a, b)
}

func (deviceSide[T]) applyVec(op BinaryOp[T], a, b simd.Vec[T]) simd.Vec[T] {
	return op.OnDeviceVec(a, b)
}

// checkBinaryOpOneLoader strides the input arrays in steps of the ABI
// width. For each chunk it loads both operands with the loader, skips
// the chunk if either load is refused, computes the expected result by
// replaying the operation's scalar entry point over every lane of the
// loaded (already padded) vectors, computes the actual result through
// the vector entry point, and verifies the two are bit-identical.
//
// The expected result is built from the loaded vectors rather than
// from the raw arrays, so padding lanes are verified on the same
// footing as data lanes: the vector operation must agree with a
// scalar replay of whatever the loader actually produced.
//
// Returns the number of chunks verified.
func checkBinaryOpOneLoader[T simd.Lanes](s side[T], c Checker, d simd.ABI[T], loader Loader[T], op BinaryOp[T], n int, firstArgs, secondArgs []T) int {
	width := d.Lanes()
	checked := 0
	for i := 0; i < n; i += width {
		nlanes := min(n-i, width)

		firstArg := simd.Undefined[T](d)
		loadedFirst := s.load(loader, firstArgs[i:], nlanes, &firstArg)
		secondArg := simd.Undefined[T](d)
		loadedSecond := s.load(loader, secondArgs[i:], nlanes, &secondArg)
		if !(loadedFirst && loadedSecond) {
			continue
		}

		expected := simd.Undefined[T](d)
		for lane := 0; lane < width; lane++ {
			expected.SetLane(lane, s.apply(op, firstArg.Lane(lane), secondArg.Lane(lane)))
		}
		computed := s.applyVec(op, firstArg, secondArg)
		CheckEquality(c, expected, computed)
		checked++
	}
	return checked
}

// HostCheckBinaryOpOneLoader verifies op under one loader on the host
// context and returns the number of chunks verified.
func HostCheckBinaryOpOneLoader[T simd.Lanes](c Checker, d simd.ABI[T], loader Loader[T], op BinaryOp[T], n int, firstArgs, secondArgs []T) int {
	return checkBinaryOpOneLoader(hostSide[T]{}, c, d, loader, op, n, firstArgs, secondArgs)
}

// DeviceCheckBinaryOpOneLoader verifies op under one loader on the
// device context and returns the number of chunks verified.
func DeviceCheckBinaryOpOneLoader[T simd.Lanes](c Checker, d simd.ABI[T], loader Loader[T], op BinaryOp[T], n int, firstArgs, secondArgs []T) int {
	return checkBinaryOpOneLoader(deviceSide[T]{}, c, d, loader, op, n, firstArgs, secondArgs)
}

// checkBinaryOpAllLoaders runs the chunked driver once per loader
// strategy, so the bulk-load, masked-load, and indexed-construction
// paths are each verified independently against the same inputs.
//
// It also pins the number of chunks each loader must have verified:
// the always-succeeding loaders cover every chunk including the tail,
// while the element-aligned loader covers exactly the full-width
// chunks. Without this, an ABI whose width exceeds the input length
// would let an operation go completely unverified without signal.
func checkBinaryOpAllLoaders[T simd.Lanes](s side[T], c Checker, d simd.ABI[T], op BinaryOp[T], n int, firstArgs, secondArgs []T) {
	width := d.Lanes()
	fullChunks := n / width
	allChunks := (n + width - 1) / width

	got := checkBinaryOpOneLoader(s, c, d, LoadElementAligned[T]{}, op, n, firstArgs, secondArgs)
	c.Truth(got == fullChunks,
		"%s/%s/%s: verified %d chunks, want %d", d.Name(), op.Name(), LoadElementAligned[T]{}.Name(), got, fullChunks)

	got = checkBinaryOpOneLoader(s, c, d, LoadMasked[T]{}, op, n, firstArgs, secondArgs)
	c.Truth(got == allChunks,
		"%s/%s/%s: verified %d chunks, want %d", d.Name(), op.Name(), LoadMasked[T]{}.Name(), got, allChunks)

	got = checkBinaryOpOneLoader(s, c, d, LoadAsScalars[T]{}, op, n, firstArgs, secondArgs)
	c.Truth(got == allChunks,
		"%s/%s/%s: verified %d chunks, want %d", d.Name(), op.Name(), LoadAsScalars[T]{}.Name(), got, allChunks)
}

// HostCheckBinaryOpAllLoaders verifies op under every loader strategy
// on the host context.
func HostCheckBinaryOpAllLoaders[T simd.Lanes](c Checker, d simd.ABI[T], op BinaryOp[T], n int, firstArgs, secondArgs []T) {
	checkBinaryOpAllLoaders(hostSide[T]{}, c, d, op, n, firstArgs, secondArgs)
}

// DeviceCheckBinaryOpAllLoaders verifies op under every loader
// strategy on the device context.
func DeviceCheckBinaryOpAllLoaders[T simd.Lanes](c Checker, d simd.ABI[T], op BinaryOp[T], n int, firstArgs, secondArgs []T) {
	checkBinaryOpAllLoaders(deviceSide[T]{}, c, d, op, n, firstArgs, secondArgs)
}
