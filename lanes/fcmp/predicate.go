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

// Package fcmp models the 32 floating point comparison predicates of the AVX
// VCMPPS/VCMPPD instructions and evaluates them on Go floats.
//
// A [Predicate] value is the immediate operand of the instruction, so its bits
// have fixed meaning: bits 0-1 select the relation, bit 2 negates the result,
// bit 3 flips how unordered (NaN) inputs are treated and bit 4 flips the
// signalling behaviour. The base relations LT and LE signal on quiet NaN by
// default, EQ and UNORD do not.
package fcmp

import (
	"fmt"
	"math"
	"strings"
)

// Predicate is an AVX floating point comparison predicate.
type Predicate int32

const (
	Eq           Predicate = iota // _CMP_EQ_OQ
	LtLoud                        // _CMP_LT_OS
	LeLoud                        // _CMP_LE_OS
	Unord                         // _CMP_UNORD_Q
	NeqUnord                      // _CMP_NEQ_UQ
	NltLoud                       // _CMP_NLT_US
	NleLoud                       // _CMP_NLE_US
	Ord                           // _CMP_ORD_Q
	EqUnord                       // _CMP_EQ_UQ
	NgeLoud                       // _CMP_NGE_US
	NgtLoud                       // _CMP_NGT_US
	False                         // _CMP_FALSE_OQ
	Neq                           // _CMP_NEQ_OQ
	GeLoud                        // _CMP_GE_OS
	GtLoud                        // _CMP_GT_OS
	True                          // _CMP_TRUE_UQ
	EqLoud                        // _CMP_EQ_OS
	Lt                            // _CMP_LT_OQ
	Le                            // _CMP_LE_OQ
	UnordLoud                     // _CMP_UNORD_S
	NeqUnordLoud                  // _CMP_NEQ_US
	Nlt                           // _CMP_NLT_UQ
	Nle                           // _CMP_NLE_UQ
	OrdLoud                       // _CMP_ORD_S
	EqUnordLoud                   // _CMP_EQ_US
	Nge                           // _CMP_NGE_UQ
	Ngt                           // _CMP_NGT_UQ
	FalseLoud                     // _CMP_FALSE_OS
	NeqLoud                       // _CMP_NEQ_OS
	Ge                            // _CMP_GE_OQ
	Gt                            // _CMP_GT_OQ
	TrueLoud                      // _CMP_TRUE_US

	numPredicates
)

const (
	resultBit Predicate = 0x04
	orderBit  Predicate = 0x08
	signalBit Predicate = 0x10
)

type predicateInfo struct {
	name  string
	cname string
	desc  string
}

var predicates = [numPredicates]predicateInfo{
	Eq:           {"Eq", "_CMP_EQ_OQ", "equal (ordered, quiet)"},
	LtLoud:       {"LtLoud", "_CMP_LT_OS", "less-than (ordered, loud)"},
	LeLoud:       {"LeLoud", "_CMP_LE_OS", "less-than-or-equal (ordered, loud)"},
	Unord:        {"Unord", "_CMP_UNORD_Q", "unordered (quiet)"},
	NeqUnord:     {"NeqUnord", "_CMP_NEQ_UQ", "not-equal (unordered, quiet)"},
	NltLoud:      {"NltLoud", "_CMP_NLT_US", "not-less-than (unordered, loud)"},
	NleLoud:      {"NleLoud", "_CMP_NLE_US", "not-less-than-or-equal (unordered, loud)"},
	Ord:          {"Ord", "_CMP_ORD_Q", "ordered (quiet)"},
	EqUnord:      {"EqUnord", "_CMP_EQ_UQ", "equal (unordered, quiet)"},
	NgeLoud:      {"NgeLoud", "_CMP_NGE_US", "not-greater-than-or-equal (unordered, loud)"},
	NgtLoud:      {"NgtLoud", "_CMP_NGT_US", "not-greater-than (unordered, loud)"},
	False:        {"False", "_CMP_FALSE_OQ", "false (ordered, quiet)"},
	Neq:          {"Neq", "_CMP_NEQ_OQ", "not-equal (ordered, quiet)"},
	GeLoud:       {"GeLoud", "_CMP_GE_OS", "greater-than-or-equal (ordered, loud)"},
	GtLoud:       {"GtLoud", "_CMP_GT_OS", "greater-than (ordered, loud)"},
	True:         {"True", "_CMP_TRUE_UQ", "true (unordered, quiet)"},
	EqLoud:       {"EqLoud", "_CMP_EQ_OS", "equal (ordered, loud)"},
	Lt:           {"Lt", "_CMP_LT_OQ", "less-than (ordered, quiet)"},
	Le:           {"Le", "_CMP_LE_OQ", "less-than-or-equal (ordered, quiet)"},
	UnordLoud:    {"UnordLoud", "_CMP_UNORD_S", "unordered (loud)"},
	NeqUnordLoud: {"NeqUnordLoud", "_CMP_NEQ_US", "not-equal (unordered, loud)"},
	Nlt:          {"Nlt", "_CMP_NLT_UQ", "not-less-than (unordered, quiet)"},
	Nle:          {"Nle", "_CMP_NLE_UQ", "not-less-than-or-equal (unordered, quiet)"},
	OrdLoud:      {"OrdLoud", "_CMP_ORD_S", "ordered (loud)"},
	EqUnordLoud:  {"EqUnordLoud", "_CMP_EQ_US", "equal (unordered, loud)"},
	Nge:          {"Nge", "_CMP_NGE_UQ", "not-greater-than-or-equal (unordered, quiet)"},
	Ngt:          {"Ngt", "_CMP_NGT_UQ", "not-greater-than (unordered, quiet)"},
	FalseLoud:    {"FalseLoud", "_CMP_FALSE_OS", "false (ordered, loud)"},
	NeqLoud:      {"NeqLoud", "_CMP_NEQ_OS", "not-equal (ordered, loud)"},
	Ge:           {"Ge", "_CMP_GE_OQ", "greater-than-or-equal (ordered, quiet)"},
	Gt:           {"Gt", "_CMP_GT_OQ", "greater-than (ordered, quiet)"},
	TrueLoud:     {"TrueLoud", "_CMP_TRUE_US", "true (unordered, loud)"},
}

// FromInt32 returns the predicate encoded by i, or false if i is outside 0..31.
func FromInt32(i int32) (Predicate, bool) {
	if i < 0 || i >= int32(numPredicates) {
		return 0, false
	}
	return Predicate(i), true
}

// Valid reports whether p is one of the 32 predicates.
func (p Predicate) Valid() bool {
	return p >= 0 && p < numPredicates
}

// Name returns the Go name of p, such as "NeqUnord".
func (p Predicate) Name() string {
	if !p.Valid() {
		return fmt.Sprintf("Predicate(%d)", int32(p))
	}
	return predicates[p].name
}

// CName returns the C intrinsic constant for p, such as "_CMP_NEQ_UQ".
func (p Predicate) CName() string {
	if !p.Valid() {
		return ""
	}
	return predicates[p].cname
}

// CNameStripped returns CName without the "_CMP_" prefix, such as "NEQ_UQ".
func (p Predicate) CNameStripped() string {
	return strings.TrimPrefix(p.CName(), "_CMP_")
}

// Description returns a short English description of p.
func (p Predicate) Description() string {
	if !p.Valid() {
		return ""
	}
	return predicates[p].desc
}

func (p Predicate) String() string { return p.Name() }

// Noise reports whether p signals on quiet NaN inputs.
type Noise uint8

const (
	Quiet Noise = iota
	Loud
)

func (n Noise) String() string {
	if n == Loud {
		return "loud"
	}
	return "quiet"
}

// Order is the result a predicate gives when either operand is NaN: false
// for Ordered, true for Unordered.
type Order uint8

const (
	Ordered Order = iota
	Unordered
)

func (o Order) String() string {
	if o == Unordered {
		return "unordered"
	}
	return "ordered"
}

// Noise returns whether p is quiet or loud.
func (p Predicate) Noise() Noise {
	loud := p&signalBit != 0
	if r := p & 3; r == 1 || r == 2 {
		loud = !loud
	}
	if loud {
		return Loud
	}
	return Quiet
}

// IsQuiet reports whether n is Quiet.
func (n Noise) IsQuiet() bool { return n == Quiet }

// IsLoud reports whether n is Loud.
func (n Noise) IsLoud() bool { return n == Loud }

// IsOrdered reports whether o is Ordered.
func (o Order) IsOrdered() bool { return o == Ordered }

// IsUnordered reports whether o is Unordered.
func (o Order) IsUnordered() bool { return o == Unordered }

// Order returns whether p is false or true on NaN inputs. It does not follow
// bit 3 alone: Unord has bit 3 clear and Neq has it set.
func (p Predicate) Order() Order {
	if p.truth()&onUnordered != 0 {
		return Unordered
	}
	return Ordered
}

// InverseNoise returns p with the opposite Noise.
func (p Predicate) InverseNoise() Predicate { return p ^ signalBit }

// InverseOrder returns the predicate that agrees with p on ordered inputs and
// gives the opposite result on NaN inputs.
func (p Predicate) InverseOrder() Predicate { return p ^ orderBit }

// Inverse returns the logical negation of p: for all a and b,
// p.Inverse().Eval(a, b) == !p.Eval(a, b).
func (p Predicate) Inverse() Predicate { return p ^ resultBit }

// Reverse returns the negation of p on ordered inputs with p's Order kept.
func (p Predicate) Reverse() Predicate { return p ^ (resultBit | orderBit) }

// Swap returns the predicate q such that q.Eval(b, a) == p.Eval(a, b).
func (p Predicate) Swap() Predicate { return swapped[p&(numPredicates-1)] }

// RequiresAVX reports whether p needs the VEX encoding. SSE compares only
// accept predicates 0 through 7.
func (p Predicate) RequiresAVX() bool { return p >= 8 }

// Eval applies p to a and b.
func (p Predicate) Eval(a, b float64) bool {
	unord := math.IsNaN(a) || math.IsNaN(b)
	var rel bool
	switch p & 3 {
	case 0:
		rel = a == b
	case 1:
		rel = a < b
	case 2:
		rel = a <= b
	}
	ordered := p&orderBit == 0
	if p&3 == 3 {
		ordered = !ordered
	}
	var res bool
	if ordered {
		res = !unord && rel
	} else {
		res = unord || rel
	}
	if p&resultBit != 0 {
		res = !res
	}
	return res
}

// Outcome classes of a comparison, used as bits of a truth table.
const (
	onLess uint8 = 1 << iota
	onEqual
	onGreater
	onUnordered
)

// truth returns the outcome classes for which p is true.
func (p Predicate) truth() uint8 {
	var t uint8
	if p.Eval(0, 1) {
		t |= onLess
	}
	if p.Eval(1, 1) {
		t |= onEqual
	}
	if p.Eval(1, 0) {
		t |= onGreater
	}
	if p.Eval(math.NaN(), 0) {
		t |= onUnordered
	}
	return t
}

var swapped [numPredicates]Predicate

func init() {
	// Swapping operands exchanges the less and greater outcomes.
	byTruth := make(map[[2]uint8]Predicate, numPredicates)
	for p := range numPredicates {
		byTruth[[2]uint8{uint8(p.Noise()), p.truth()}] = p
	}
	for p := range numPredicates {
		t := p.truth()
		want := t&(onEqual|onUnordered) | (t&onLess)<<2 | (t&onGreater)>>2
		q, ok := byTruth[[2]uint8{uint8(p.Noise()), want}]
		if !ok {
			panic("fcmp: no swapped predicate for " + p.Name())
		}
		swapped[p] = q
	}
}

// The relation classifiers below ignore Noise. IsEq and IsNeq hold for both
// orders; the others name one predicate pair per Order, as in the C names.

func (p Predicate) is(truth uint8) bool { return p.Valid() && p.truth() == truth }

// IsEq reports whether p is one of the four equality predicates.
func (p Predicate) IsEq() bool { return p.is(onEqual) || p.is(onEqual|onUnordered) }

// IsNeq reports whether p is one of the four not-equal predicates.
func (p Predicate) IsNeq() bool {
	return p.is(onLess|onGreater) || p.is(onLess|onGreater|onUnordered)
}

// IsLt reports whether p is Lt or LtLoud.
func (p Predicate) IsLt() bool { return p.is(onLess) }

// IsLe reports whether p is Le or LeLoud.
func (p Predicate) IsLe() bool { return p.is(onLess | onEqual) }

// IsGt reports whether p is Gt or GtLoud.
func (p Predicate) IsGt() bool { return p.is(onGreater) }

// IsGe reports whether p is Ge or GeLoud.
func (p Predicate) IsGe() bool { return p.is(onEqual | onGreater) }

// IsNlt reports whether p is Nlt or NltLoud.
func (p Predicate) IsNlt() bool { return p.is(onEqual | onGreater | onUnordered) }

// IsNle reports whether p is Nle or NleLoud.
func (p Predicate) IsNle() bool { return p.is(onGreater | onUnordered) }

// IsNgt reports whether p is Ngt or NgtLoud.
func (p Predicate) IsNgt() bool { return p.is(onLess | onEqual | onUnordered) }

// IsNge reports whether p is Nge or NgeLoud.
func (p Predicate) IsNge() bool { return p.is(onLess | onUnordered) }

// IsOrd reports whether p is Ord or OrdLoud.
func (p Predicate) IsOrd() bool { return p.is(onLess | onEqual | onGreater) }

// IsUnord reports whether p is Unord or UnordLoud.
func (p Predicate) IsUnord() bool { return p.is(onUnordered) }

// IsTrue reports whether p is True or TrueLoud.
func (p Predicate) IsTrue() bool { return p.is(onLess | onEqual | onGreater | onUnordered) }

// IsFalse reports whether p is False or FalseLoud.
func (p Predicate) IsFalse() bool { return p.is(0) }
