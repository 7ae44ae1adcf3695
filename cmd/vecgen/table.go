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

package main

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// maskKind is the kind whose vectors are masks. Every other kind maps its
// vectors to the mask vector of the same shape.
const maskKind = "mask"

// Table is the parsed form of vectors.yaml.
type Table struct {
	Kinds  []KindSpec    `yaml:"kinds"`
	Masks  []MaskSpec    `yaml:"masks"`
	Shapes map[int][]int `yaml:"shapes"`
}

// KindSpec is one family of vectors, for example the unsigned integers.
type KindSpec struct {
	Name   string         `yaml:"name"`
	Prefix string         `yaml:"prefix"`
	Lanes  map[int]string `yaml:"lanes"`
}

// MaskSpec is one scalar mask type.
type MaskSpec struct {
	Name     string   `yaml:"name"`
	Repr     string   `yaml:"repr"`
	Bits     string   `yaml:"bits"`
	Partners []string `yaml:"partners"`
}

// Vec is one generated vector type as the templates see it.
type Vec struct {
	Name      string
	Kind      string
	KindConst string
	Noun      string
	Recv      string
	Lane      string
	LaneBits  int
	Lanes     int
	LaneDoc   string
	Bits      int
	Article   string
	Size      int
	AlignType string
	IsMask    bool
	Mask      string
	MaskLane  string
	Signed    string
	Half      string
	HalfLanes int
	LastLane  int
	SetLanes  int
	Sample    string
	Casts     []Cast
}

// Cast is a same-shape bit reinterpretation method.
type Cast struct {
	From   string
	Method string
	Target string
	Back   string
}

// Mask is one generated scalar mask type as the templates see it.
type Mask struct {
	Name     string
	Repr     string
	Bits     string
	BitsDoc  string
	Partners []Partner
}

// Partner is a lane type sharing the layout of a scalar mask.
type Partner struct {
	Lane string
	Mask string
}

var title = cases.Title(language.English)

// LoadTable reads and validates the table at path.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	t, err := ParseTable(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// ParseTable decodes and validates a YAML table.
func ParseTable(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing table: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate checks that the table describes a consistent set of types.
func (t *Table) Validate() error {
	var errs []error
	if len(t.Shapes) == 0 {
		errs = append(errs, errors.New("no shapes"))
	}
	mk, ok := t.kind(maskKind)
	if !ok {
		errs = append(errs, fmt.Errorf("missing kind %q", maskKind))
	}
	if _, ok := t.kind("signed"); !ok {
		errs = append(errs, errors.New(`missing kind "signed"`))
	}
	if dup := lo.FindDuplicates(lo.Map(t.Kinds, func(k KindSpec, _ int) string { return k.Prefix })); len(dup) > 0 {
		errs = append(errs, fmt.Errorf("duplicate kind prefixes %v", dup))
	}
	for _, w := range t.LaneWidths() {
		switch w {
		case 8, 16, 32, 64:
		default:
			errs = append(errs, fmt.Errorf("lane width %d: want 8, 16, 32 or 64", w))
			continue
		}
		if ok && mk.Lanes[w] == "" {
			errs = append(errs, fmt.Errorf("lane width %d: no mask lane", w))
		}
		for _, n := range t.Shapes[w] {
			if n <= 0 || n&(n-1) != 0 {
				errs = append(errs, fmt.Errorf("shape %dx%d: lane count is not a power of two", w, n))
			}
			if bits := w * n; bits > 512 {
				errs = append(errs, fmt.Errorf("shape %dx%d: %d bits exceeds 512", w, n, bits))
			}
			if n > 1 && !slices.Contains(t.Shapes[w], n/2) {
				errs = append(errs, fmt.Errorf("shape %dx%d: half shape %dx%d missing", w, n, w, n/2))
			}
		}
	}
	maskNames := lo.Map(t.Masks, func(m MaskSpec, _ int) string { return m.Name })
	if ok {
		for w, name := range mk.Lanes {
			if !slices.Contains(maskNames, name) {
				errs = append(errs, fmt.Errorf("mask lane %s for width %d has no scalar mask", name, w))
			}
		}
	}
	return errors.Join(errs...)
}

func (t *Table) kind(name string) (KindSpec, bool) {
	return lo.Find(t.Kinds, func(k KindSpec) bool { return k.Name == name })
}

// LaneWidths returns the lane widths in ascending order.
func (t *Table) LaneWidths() []int {
	ws := lo.Keys(t.Shapes)
	slices.Sort(ws)
	return ws
}

// Vectors expands the table into every generated vector type, ordered by
// lane width, then lane count, then kind.
func (t *Table) Vectors() []Vec {
	mk, _ := t.kind(maskKind)
	sk, _ := t.kind("signed")
	var vecs []Vec
	for _, w := range t.LaneWidths() {
		counts := slices.Clone(t.Shapes[w])
		slices.Sort(counts)
		for _, n := range counts {
			kinds := lo.Filter(t.Kinds, func(k KindSpec, _ int) bool { return k.Lanes[w] != "" })
			for _, k := range kinds {
				vecs = append(vecs, t.vector(k, kinds, mk, sk, w, n))
			}
		}
	}
	return vecs
}

func typeName(k KindSpec, w, n int) string {
	return k.Prefix + strconv.Itoa(w) + "x" + strconv.Itoa(n)
}

func (t *Table) vector(k KindSpec, kinds []KindSpec, mk, sk KindSpec, w, n int) Vec {
	v := Vec{
		Name:      typeName(k, w, n),
		Kind:      k.Name,
		KindConst: "Kind" + title.String(k.Name),
		Noun:      "vector",
		Recv:      "v",
		Lane:      k.Lanes[w],
		LaneBits:  w,
		Lanes:     n,
		LaneDoc:   laneDoc(n, k.Lanes[w]),
		Bits:      w * n,
		Article:   article(w * n),
		Size:      w * n / 8,
		AlignType: alignType(w * n / 8),
		IsMask:    k.Name == maskKind,
		Mask:      typeName(mk, w, n),
		MaskLane:  mk.Lanes[w],
		Signed:    typeName(sk, w, n),
		LastLane:  n - 1,
		SetLanes:  (n + 1) / 2,
	}
	if n > 1 {
		v.Half = typeName(k, w, n/2)
		v.HalfLanes = n / 2
	}
	switch {
	case v.IsMask:
		v.Noun = "mask vector"
		v.Recv = "m"
		v.Sample = v.Lane + "FromBool(i%2 == 0)"
	case k.Name == "float":
		v.Sample = v.Lane + "(i) + 0.5"
	default:
		v.Sample = v.Lane + "(i + 1)"
	}
	if !v.IsMask {
		targets := lo.Filter(kinds, func(o KindSpec, _ int) bool { return o.Name != k.Name && o.Name != maskKind })
		v.Casts = lo.Map(targets, func(o KindSpec, _ int) Cast {
			return Cast{
				From:   v.Name,
				Method: title.String(o.Name),
				Target: typeName(o, w, n),
				Back:   title.String(k.Name),
			}
		})
	}
	return v
}

// article is the indefinite article for a bits-bit width in prose.
func article(bits int) string {
	if bits == 8 {
		return "an"
	}
	return "a"
}

func laneDoc(n int, lane string) string {
	if n == 1 {
		return "one " + lane + " lane"
	}
	return strconv.Itoa(n) + " " + lane + " lanes"
}

// alignType is the array element whose zero-length array gives a vector of
// size bytes its alignment; Go caps it at the alignment of uint64.
func alignType(size int) string {
	switch {
	case size >= 8:
		return "uint64"
	case size >= 4:
		return "uint32"
	case size >= 2:
		return "uint16"
	default:
		return "uint8"
	}
}

// ScalarMasks expands the scalar mask types.
func (t *Table) ScalarMasks() []Mask {
	return lo.Map(t.Masks, func(m MaskSpec, _ int) Mask {
		doc := m.Bits + "-bit"
		if _, err := strconv.Atoi(m.Bits); err != nil {
			doc = "pointer-sized"
		}
		return Mask{
			Name:    m.Name,
			Repr:    m.Repr,
			Bits:    m.Bits,
			BitsDoc: doc,
			Partners: lo.Map(m.Partners, func(p string, _ int) Partner {
				return Partner{Lane: p, Mask: m.Name}
			}),
		}
	})
}
