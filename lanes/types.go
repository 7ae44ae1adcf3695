// Package lanes provides fixed-width SIMD vector and lane mask types with
// checked, zero-copy bit reinterpretation between them.
//
// Each numeric vector type such as U8x16, I32x4 or F64x8 is a fixed array of
// lanes with the size of the whole vector and no padding. Each shape has a
// mask vector (M8x16, M32x4, M64x8) whose lanes hold either all-zero (false)
// or all-one (true) bits. Vectors convert to masks only through validation:
//
//	v := lanes.I32x4FromArray([4]int32{-1, 0, -1, 0})
//	m, ok := v.TryToMask() // ok: every lane is 0 or -1
//	w := lanes.I32x4FromArray([4]int32{1, 0, 0, 0})
//	_, ok = w.TryToMask()  // !ok: 1 is not a mask lane
//
// The layout of every type is checked at compile time where Go allows it and
// again by CheckLayouts when the package is initialised.
package lanes

import "unsafe"

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Scalars is a constraint for the numeric lane types.
type Scalars interface {
	Floats | Integers
}

// Masks is a constraint for the scalar mask types.
type Masks interface {
	M8 | M16 | M32 | M64 | MSize
}

// Lanes is a constraint for all types that can be stored in vector lanes.
// Masks are lanes too; a mask's own mask partner is itself.
type Lanes interface {
	Scalars | Masks
}

// MaxAlign is the largest alignment Go gives any type on this platform.
// Vector types are aligned to min(size, MaxAlign); use MakeAligned for
// storage aligned to the full vector size.
const MaxAlign = unsafe.Alignof(uint64(0))

// Vector is implemented by every generated vector and mask vector type.
type Vector[T Lanes] interface {
	Len() int
	Lane(i int) T
	Backing() Backing
}
