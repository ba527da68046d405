// Copyright 2025 The go-simd-conform Authors. SPDX-License-Identifier: Apache-2.0

// Package conform verifies that vectorized binary operations produce
// results bit-identical to an elementwise scalar reference, for every
// ABI tag, every way of loading a partial chunk into a register, and
// both execution contexts (host and device).
//
// The machinery is a pure pipeline with no cross-call state. A driver
// strides input arrays in vector-width chunks, materializes each chunk
// through a Loader, computes the expected result by scalar replay of
// the operation on the loaded lanes, computes the actual result
// through the operation's vector entry point, and hands both to a
// Checker.
//
// Typical use from a test:
//
//	c := conform.ReportChecker{R: t}
//	conform.HostCheckABIs(c, conform.DefaultABISet[float64](), first, second)
//
// On a device context, where a failed check cannot be recovered,
// AbortChecker halts the context instead:
//
//	pool.Launch(len(set), func(i int) {
//	    conform.DeviceCheckABI(conform.AbortChecker{}, set[i], first, second)
//	})
package conform

import (
	"github.com/ajroetker/go-simd-conform/internal/device"
	"github.com/ajroetker/go-simd-conform/simd"
)

// Checker is the reporting capability a verification step uses when an
// assertion fails. The two implementations differ only in the failure
// channel: ReportChecker records and continues, AbortChecker halts the
// execution context.
type Checker interface {
	// Truth asserts ok; the format and args describe the failure.
	Truth(ok bool, format string, args ...any)
}

// Reporter is the subset of testing.TB that ReportChecker needs.
type Reporter interface {
	Errorf(format string, args ...any)
}

// ReportChecker records failed assertions through a Reporter and lets
// execution continue, maximizing diagnostic yield per run. This is the
// host-context checker.
type ReportChecker struct {
	R Reporter
}

// Truth implements Checker.
func (c ReportChecker) Truth(ok bool, format string, args ...any) {
	if !ok {
		c.R.Errorf(format, args...)
	}
}

// AbortChecker halts the execution context on the first failed
// assertion. This is the device-context checker: on an accelerator
// there is no recovery channel, so a mismatch is fatal.
type AbortChecker struct{}

// Truth implements Checker.
func (AbortChecker) Truth(ok bool, format string, args ...any) {
	if !ok {
		device.Abort(format, args...)
	}
}

// CheckEquality asserts that two vectors of the same width hold
// bit-identical lanes, three ways:
//
//  1. the whole-vector equality comparison is true in every lane,
//  2. the whole-vector inequality comparison is false in every lane
//     (the two comparison directions must be mutually consistent,
//     not merely one of them correct),
//  3. each lane compares equal as a scalar, catching any divergence
//     between vector-wide comparison semantics and the stored values.
//
// Failures are routed through c.
func CheckEquality[T simd.Lanes](c Checker, expected, computed simd.Vec[T]) {
	c.Truth(simd.Equal(expected, computed).AllTrue(),
		"vector equality not all-true: got %v, want %v", computed.Data(), expected.Data())
	c.Truth(simd.NotEqual(expected, computed).NoneTrue(),
		"vector inequality not none-true: got %v, want %v", computed.Data(), expected.Data())
	for i := 0; i < expected.NumLanes(); i++ {
		c.Truth(expected.Lane(i) == computed.Lane(i),
			"lane %d: got %v, want %v", i, computed.Lane(i), expected.Lane(i))
	}
}
