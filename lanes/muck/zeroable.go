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

// Zeroed returns the all-zero value of T.
func Zeroed[T any]() T {
	var zero T
	return zero
}

// WriteZeroed overwrites *p with zero bytes and returns p.
func WriteZeroed[T any](p *T) *T {
	var zero T
	*p = zero
	return p
}

// FillZeros overwrites every element of s with zero bytes and returns s.
func FillZeros[T any](s []T) []T {
	clear(s)
	return s
}
