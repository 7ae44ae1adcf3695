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

// Package muck reinterprets the bytes of plain-old-data values as other
// plain-old-data types without copying.
//
// A type is plain old data here when it has no pointers, no padding, and every
// bit pattern of its size is a valid value. The lane, vector and mask types of
// package lanes all satisfy that, with one exception: mask types accept only
// all-zero or all-one lanes, so casts into them must go through the validating
// constructors of package lanes.
//
// Size and alignment relations cannot be expressed as Go type constraints, so
// Cast, CastPtr and CastSlice panic with a *CastError when the relation does
// not hold. TryCastSlice reports the same conditions as errors. For an
// arbitrary pair of types the check therefore runs when the cast is called,
// not at build time; the generated vector and mask types of package lanes
// also assert their size and alignment relations statically.
package muck

import (
	"errors"
	"fmt"
	"reflect"
	"unsafe"
)

var (
	// ErrSizeMismatch is returned when the sizes of two types are incompatible
	// for the requested cast.
	ErrSizeMismatch = errors.New("size mismatch")

	// ErrAlignmentMismatch is returned when the target type needs a stricter
	// alignment than the source guarantees.
	ErrAlignmentMismatch = errors.New("target alignment greater than source alignment")

	// ErrOutputSliceWouldHaveSlop is returned when the byte length of a slice
	// is not a multiple of the target element size.
	ErrOutputSliceWouldHaveSlop = errors.New("output slice would have slop")

	// ErrZeroSized is returned when either slice element type has size zero.
	ErrZeroSized = errors.New("zero-sized element type")
)

// CastError describes a failed cast between two types.
//
// The reason can be inspected with errors.Is against the Err* sentinels.
type CastError struct {
	Op   string
	From string
	To   string
	err  error
}

func (e *CastError) Error() string {
	return fmt.Sprintf("muck: %s from %s to %s: %v", e.Op, e.From, e.To, e.err)
}

func (e *CastError) Unwrap() error { return e.err }

func castError[To, From any](op string, err error) *CastError {
	return &CastError{
		Op:   op,
		From: reflect.TypeFor[From]().String(),
		To:   reflect.TypeFor[To]().String(),
		err:  err,
	}
}

func sizeOf[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

func alignOf[T any]() uintptr {
	var zero T
	return unsafe.Alignof(zero)
}

// Cast reinterprets the bytes of v as a To.
//
// It panics if To and From differ in size.
func Cast[To, From any](v From) To {
	n := unsafe.Sizeof(v)
	if sizeOf[To]() != n {
		panic(castError[To, From]("Cast", ErrSizeMismatch))
	}
	if alignOf[To]() <= unsafe.Alignof(v) {
		return *(*To)(unsafe.Pointer(&v))
	}
	// &v is only aligned for From; copy into a properly aligned To.
	var out To
	copy(unsafe.Slice((*byte)(unsafe.Pointer(&out)), n), unsafe.Slice((*byte)(unsafe.Pointer(&v)), n))
	return out
}

// CastPtr reinterprets p as a pointer to To. Writes through the result are
// visible through p. A nil p yields nil.
//
// It panics if To and From differ in size or if To needs a stricter
// alignment than From.
func CastPtr[To, From any](p *From) *To {
	if sizeOf[To]() != sizeOf[From]() {
		panic(castError[To, From]("CastPtr", ErrSizeMismatch))
	}
	if alignOf[To]() > alignOf[From]() {
		panic(castError[To, From]("CastPtr", ErrAlignmentMismatch))
	}
	return (*To)(unsafe.Pointer(p))
}

// CastSlice reinterprets s as a slice of To covering the same memory. The
// result has len(s)*size(From)/size(To) elements.
//
// It panics unless size(From) is a non-zero multiple of size(To) and From is
// at least as aligned as To.
func CastSlice[To, From any](s []From) []To {
	sf, st := sizeOf[From](), sizeOf[To]()
	switch {
	case sf == 0 || st == 0:
		panic(castError[To, From]("CastSlice", ErrZeroSized))
	case sf%st != 0:
		panic(castError[To, From]("CastSlice", ErrSizeMismatch))
	case alignOf[To]() > alignOf[From]():
		panic(castError[To, From]("CastSlice", ErrAlignmentMismatch))
	}
	if s == nil {
		return nil
	}
	k := int(sf / st)
	return unsafe.Slice((*To)(unsafe.Pointer(unsafe.SliceData(s))), cap(s)*k)[:len(s)*k]
}

// TryCastSlice is like CastSlice but accepts any pair of element sizes and
// checks the actual slice instead of the element types: the base address
// must be aligned for To and the byte length must divide evenly into To
// elements.
func TryCastSlice[To, From any](s []From) ([]To, error) {
	sf, st := sizeOf[From](), sizeOf[To]()
	if sf == 0 || st == 0 {
		return nil, castError[To, From]("TryCastSlice", ErrZeroSized)
	}
	if s == nil {
		return nil, nil
	}
	p := unsafe.Pointer(unsafe.SliceData(s))
	if at := alignOf[To](); at > alignOf[From]() && len(s) > 0 && uintptr(p)%at != 0 { //nolint:gosec // address is only inspected
		return nil, castError[To, From]("TryCastSlice", ErrAlignmentMismatch)
	}
	if sf == st {
		return unsafe.Slice((*To)(p), cap(s))[:len(s)], nil
	}
	nbytes := uintptr(len(s)) * sf
	if nbytes%st != 0 {
		return nil, castError[To, From]("TryCastSlice", ErrOutputSliceWouldHaveSlop)
	}
	capTo := uintptr(cap(s)) * sf / st
	return unsafe.Slice((*To)(p), capTo)[:nbytes/st], nil
}

// Bytes returns the bytes of *p. The result aliases p.
func Bytes[T any](p *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), unsafe.Sizeof(*p))
}

// SliceBytes returns the bytes backing the elements of s. The result aliases s.
func SliceBytes[T any](s []T) []byte {
	return CastSlice[byte](s)
}
