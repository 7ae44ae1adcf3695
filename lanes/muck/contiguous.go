// Copyright 2025 go-highway Authors
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

package muck

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrEmptyRange is returned when a contiguous range has Min > Max.
var ErrEmptyRange = errors.New("empty range")

// Integer is the set of integer types a contiguous range can be expressed in.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// Contiguous describes a type T whose valid values are exactly the I values
// in [Min, Max], sharing I's size and alignment. It converts between the two
// without copying.
//
// Build one with NewContiguous or MustContiguous so the layout relation is
// checked once up front.
type Contiguous[T any, I Integer] struct {
	min, max I
}

// NewContiguous returns the range [min, max] of I values that are valid T
// values. It fails if T and I differ in size or alignment or if min > max.
func NewContiguous[T any, I Integer](min, max I) (Contiguous[T, I], error) {
	op := fmt.Sprintf("contiguous range [%d, %d]", min, max)
	switch {
	case sizeOf[T]() != sizeOf[I]():
		return Contiguous[T, I]{}, castError[T, I](op, ErrSizeMismatch)
	case alignOf[T]() != alignOf[I]():
		return Contiguous[T, I]{}, castError[T, I](op, ErrAlignmentMismatch)
	case min > max:
		return Contiguous[T, I]{}, castError[T, I](op, ErrEmptyRange)
	}
	return Contiguous[T, I]{min: min, max: max}, nil
}

// MustContiguous is like NewContiguous but panics on error. It is meant for
// package-level variables, which turns a bad range into a startup failure.
func MustContiguous[T any, I Integer](min, max I) Contiguous[T, I] {
	c, err := NewContiguous[T](min, max)
	if err != nil {
		panic(err)
	}
	return c
}

// FullRange returns the range of I over itself, in which every bit pattern
// is valid.
func FullRange[I Integer]() Contiguous[I, I] {
	var zero I
	if ^zero > zero {
		return Contiguous[I, I]{min: 0, max: ^zero}
	}
	lo := I(1) << (sizeOf[I]()*8 - 1)
	return Contiguous[I, I]{min: lo, max: ^lo}
}

// Min returns the smallest valid integer.
func (c Contiguous[T, I]) Min() I { return c.min }

// Max returns the largest valid integer.
func (c Contiguous[T, I]) Max() I { return c.max }

// IsValid reports whether i is the representation of some T.
func (c Contiguous[T, I]) IsValid(i I) bool {
	return c.min <= i && i <= c.max
}

// FromInt returns the T represented by i, or false if i is out of range.
func (c Contiguous[T, I]) FromInt(i I) (T, bool) {
	if !c.IsValid(i) {
		var zero T
		return zero, false
	}
	return Cast[T](i), true
}

// FromPtr reinterprets *p as a T in place, or returns false if *p is out of
// range.
func (c Contiguous[T, I]) FromPtr(p *I) (*T, bool) {
	if p == nil || !c.IsValid(*p) {
		return nil, false
	}
	return CastPtr[T](p), true
}

// ToInt returns the integer representation of v.
func (c Contiguous[T, I]) ToInt(v T) I {
	return Cast[I](v)
}

// AsInt views *p as its integer representation. Anything stored through the
// result must stay within [Min, Max] while p is in use as a T.
func (c Contiguous[T, I]) AsInt(p *T) *I {
	return CastPtr[I](p)
}

func (c Contiguous[T, I]) String() string {
	return fmt.Sprintf("%s in %s[%d, %d]", reflect.TypeFor[T](), reflect.TypeFor[I](), c.min, c.max)
}

var (
	// Bool is bool over uint8: 0 is false, 1 is true.
	Bool = MustContiguous[bool, uint8](0, 1)

	// Order is Ordering over int8: Less, Equal and Greater.
	Order = MustContiguous[Ordering, int8](int8(Less), int8(Greater))
)
