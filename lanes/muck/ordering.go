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
	"cmp"
	"strconv"
)

// Ordering is the result of a three-way comparison.
type Ordering int8

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// Compare returns the Ordering of a relative to b.
func Compare[T cmp.Ordered](a, b T) Ordering {
	return Ordering(cmp.Compare(a, b))
}

func (o Ordering) IsEq() bool { return o == Equal }
func (o Ordering) IsNe() bool { return o != Equal }
func (o Ordering) IsLt() bool { return o < Equal }
func (o Ordering) IsGt() bool { return o > Equal }
func (o Ordering) IsLe() bool { return o <= Equal }
func (o Ordering) IsGe() bool { return o >= Equal }

// Reverse returns the ordering of the swapped comparison.
func (o Ordering) Reverse() Ordering { return -o }

// String returns "less", "equal" or "greater".
func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		return "Ordering(" + strconv.Itoa(int(o)) + ")"
	}
}
