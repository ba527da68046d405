// Package simd provides a portable packed-vector abstraction whose
// width is fixed by an ABI tag rather than chosen at runtime.
//
// It follows the Highway design: operations are written once against
// generic Vec and Mask values, and an ABI tag (see tags.go) selects
// how many lanes a vector carries. The scalar implementations here are
// the reference semantics that SIMD backends must reproduce.
//
// Basic usage:
//
//	d := simd.FixedTag256[float64]{}
//	a := simd.Load(d, data1)
//	b := simd.Load(d, data2)
//	sum := simd.Add(a, b)
//	sum.Store(out)
package simd

// Floats is a constraint for floating-point lane types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer lane types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer lane types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer lane types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is a fixed-width packed container of lanes. Its width is set at
// construction from an ABI tag and never changes afterwards.
//
// Vec instances should not be created directly; use Zero, Set, Load,
// or Undefined instead.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Lane returns the value stored in lane i.
func (v Vec[T]) Lane(i int) T {
	return v.data[i]
}

// SetLane writes x into lane i.
func (v *Vec[T]) SetLane(i int, x T) {
	v.data[i] = x
}

// Data returns the underlying slice representation of the vector.
// This is primarily for testing and should not be used in
// performance-critical code.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the vector's data to a slice.
func (v Vec[T]) Store(dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// CopyFrom fills every lane of the vector from src with a single bulk
// copy. src must hold at least NumLanes elements; no alignment is
// assumed. Callers that cannot guarantee enough valid elements should
// use MaskedCopyFrom instead.
func (v *Vec[T]) CopyFrom(src []T) {
	copy(v.data, src[:len(v.data)])
}

// MaskedCopyFrom copies src into the lanes where m is true and leaves
// the remaining lanes untouched. Lanes where m is false are never read
// from src, so src only needs valid elements at the true positions.
func (v *Vec[T]) MaskedCopyFrom(m Mask[T], src []T) {
	for i := range v.data {
		if m.bits[i] {
			v.data[i] = src[i]
		}
	}
}

// MaskedFill writes value into the lanes where m is true.
func (v *Vec[T]) MaskedFill(m Mask[T], value T) {
	for i := range v.data {
		if m.bits[i] {
			v.data[i] = value
		}
	}
}

// Mask represents a per-lane predicate, as produced by comparison
// operations. It selects which lanes participate in masked loads,
// stores, and fills.
type Mask[T Lanes] struct {
	// bits stores which lanes are active (true).
	bits []bool
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// Bit returns whether lane i is active.
func (m Mask[T]) Bit(i int) bool {
	if i < 0 || i >= len(m.bits) {
		return false
	}
	return m.bits[i]
}

// SetBit sets whether lane i is active.
func (m *Mask[T]) SetBit(i int, active bool) {
	m.bits[i] = active
}

// Not returns the lane-wise negation of the mask.
func (m Mask[T]) Not() Mask[T] {
	bits := make([]bool, len(m.bits))
	for i, bit := range m.bits {
		bits[i] = !bit
	}
	return Mask[T]{bits: bits}
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T]) AllTrue() bool {
	for _, bit := range m.bits {
		if !bit {
			return false
		}
	}
	return true
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T]) AnyTrue() bool {
	for _, bit := range m.bits {
		if bit {
			return true
		}
	}
	return false
}

// NoneTrue returns true if no lane in the mask is active.
func (m Mask[T]) NoneTrue() bool {
	return !m.AnyTrue()
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for _, bit := range m.bits {
		if bit {
			count++
		}
	}
	return count
}
