// Copyright 2025 The go-simd-conform Authors. SPDX-License-Identifier: Apache-2.0

package conform

import "github.com/ajroetker/go-simd-conform/simd"

// BinaryOp adapts one binary arithmetic operation for verification.
// It exposes the operation at scalar and vector granularity, each for
// both execution contexts. The drivers use the scalar entry points to
// build the elementwise reference and the vector entry points to
// compute the result under test.
//
// New operations plug into the drivers by implementing this contract;
// nothing in the drivers needs to change.
type BinaryOp[T simd.Lanes] interface {
	// OnHost computes the operation for two scalars on the host.
	OnHost(a, b T) T

	// OnDevice computes the operation for two scalars on the device.
	OnDevice(a, b T) T

	// OnHostVec computes the operation for two vectors on the host.
	OnHostVec(a, b simd.Vec[T]) simd.Vec[T]

	// OnDeviceVec computes the operation for two vectors on the
	// device.
	OnDeviceVec(a, b simd.Vec[T]) simd.Vec[T]

	// Name identifies the operation in failure messages.
	Name() string
}

// Plus verifies addition.
type Plus[T simd.Lanes] struct{}

func (Plus[T]) OnHost(a, b T) T   { return a + b }
func (Plus[T]) OnDevice(a, b T) T { return a + b }

func (Plus[T]) OnHostVec(a, b simd.Vec[T]) simd.Vec[T]   { return simd.Add(a, b) }
func (Plus[T]) OnDeviceVec(a, b simd.Vec[T]) simd.Vec[T] { return simd.Add(a, b) }

func (Plus[T]) Name() string { return "plus" }

// Minus verifies subtraction.
type Minus[T simd.Lanes] struct{}

func (Minus[T]) OnHost(a, b T) T   { return a - b }
func (Minus[T]) OnDevice(a, b T) T { return a - b }

func (Minus[T]) OnHostVec(a, b simd.Vec[T]) simd.Vec[T]   { return simd.Sub(a, b) }
func (Minus[T]) OnDeviceVec(a, b simd.Vec[T]) simd.Vec[T] { return simd.Sub(a, b) }

func (Minus[T]) Name() string { return "minus" }

// Times verifies multiplication.
type Times[T simd.Lanes] struct{}

func (Times[T]) OnHost(a, b T) T   { return a * b }
func (Times[T]) OnDevice(a, b T) T { return a * b }

func (Times[T]) OnHostVec(a, b simd.Vec[T]) simd.Vec[T]   { return simd.Mul(a, b) }
func (Times[T]) OnDeviceVec(a, b simd.Vec[T]) simd.Vec[T] { return simd.Mul(a, b) }

func (Times[T]) Name() string { return "times" }
