// Copyright 2025 The go-simd-conform Authors. SPDX-License-Identifier: Apache-2.0

package conform

import "github.com/ajroetker/go-simd-conform/simd"

// ABISet is an ordered list of backend variants to exercise. Order
// only affects wall-clock sequencing; each entry's checks are
// independent.
type ABISet[T simd.Lanes] []simd.ABI[T]

// DefaultABISet lists every fixed-width backend variant plus the
// scalar fallback.
func DefaultABISet[T simd.Lanes]() ABISet[T] {
	return ABISet[T]{
		simd.ScalarTag[T]{},
		simd.FixedTag128[T]{},
		simd.FixedTag256[T]{},
		simd.FixedTag512[T]{},
	}
}

// ops is the operation catalog every ABI is verified against.
func ops[T simd.Lanes]() []BinaryOp[T] {
	return []BinaryOp[T]{Plus[T]{}, Minus[T]{}, Times[T]{}}
}

// HostCheckABI runs the full operation catalog for one ABI on the
// host context.
func HostCheckABI[T simd.Lanes](c Checker, d simd.ABI[T], firstArgs, secondArgs []T) {
	n := min(len(firstArgs), len(secondArgs))
	for _, op := range ops[T]() {
		HostCheckBinaryOpAllLoaders(c, d, op, n, firstArgs, secondArgs)
	}
}

// DeviceCheckABI runs the full operation catalog for one ABI on the
// device context.
func DeviceCheckABI[T simd.Lanes](c Checker, d simd.ABI[T], firstArgs, secondArgs []T) {
	n := min(len(firstArgs), len(secondArgs))
	for _, op := range ops[T]() {
		DeviceCheckBinaryOpAllLoaders(c, d, op, n, firstArgs, secondArgs)
	}
}

// HostCheckABIs unpacks the set recursively: the empty set passes
// trivially, otherwise the head ABI is checked in full and the tail
// recursed on.
func HostCheckABIs[T simd.Lanes](c Checker, set ABISet[T], firstArgs, secondArgs []T) {
	if len(set) == 0 {
		return
	}
	HostCheckABI(c, set[0], firstArgs, secondArgs)
	HostCheckABIs(c, set[1:], firstArgs, secondArgs)
}

// DeviceCheckABIs is the device-context counterpart of HostCheckABIs.
func DeviceCheckABIs[T simd.Lanes](c Checker, set ABISet[T], firstArgs, secondArgs []T) {
	if len(set) == 0 {
		return
	}
	DeviceCheckABI(c, set[0], firstArgs, secondArgs)
	DeviceCheckABIs(c, set[1:], firstArgs, secondArgs)
}
