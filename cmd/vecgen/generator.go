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
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"text/template"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/tools/imports"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

const license = `// Copyright 2025 go-highway Authors
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
// limitations under the License.`

// Generator renders the table into Go source files.
type Generator struct {
	Table     *Table
	TableName string // shown in the generated header
	OutputDir string
	Package   string
}

// fileData is the value every template executes on.
type fileData struct {
	Header  string
	Package string
	Vecs    []Vec
	Masks   []Mask
}

// File is one generated output.
type File struct {
	Name     string
	Template string
	data     fileData
}

// Files returns the outputs for the table without rendering them.
func (g *Generator) Files() []File {
	base := fileData{
		Header:  g.header(),
		Package: g.Package,
	}
	vecs := g.Table.Vectors()
	byWidth := lo.GroupBy(vecs, func(v Vec) int { return v.LaneBits })

	masks := base
	masks.Masks = g.Table.ScalarMasks()
	files := []File{{Name: "z_masks.go", Template: "masks.tmpl", data: masks}}

	for _, w := range g.Table.LaneWidths() {
		d := base
		d.Vecs = byWidth[w]
		files = append(files, File{Name: "z_vec" + strconv.Itoa(w) + ".go", Template: "vectors.tmpl", data: d})
	}

	all := base
	all.Vecs = vecs
	files = append(files,
		File{Name: "z_layout.go", Template: "layout.tmpl", data: all},
		File{Name: "z_vectors_test.go", Template: "vectors_test.tmpl", data: all},
	)
	return files
}

func (g *Generator) header() string {
	name := filepath.Base(g.TableName)
	if name == "." || name == "" {
		name = "vectors.yaml"
	}
	return license + "\n\n// Code generated by vecgen from " + name + ". DO NOT EDIT.\n"
}

// Render executes the template of f and formats the result.
func (g *Generator) Render(f File) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, f.Template, f.data); err != nil {
		return nil, fmt.Errorf("%s: %w", f.Name, err)
	}
	src, err := imports.Process(f.Name, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("%s: formatting generated code: %w", f.Name, err)
	}
	return src, nil
}

// Run renders every file into OutputDir and returns the paths written.
func (g *Generator) Run() ([]string, error) {
	log := Logger()
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return nil, err
	}
	var written []string
	for _, f := range g.Files() {
		src, err := g.Render(f)
		if err != nil {
			return written, err
		}
		path := filepath.Join(g.OutputDir, f.Name)
		if err := os.WriteFile(path, src, 0o644); err != nil {
			return written, err
		}
		log.Info("generated file",
			zap.String("path", path),
			zap.Int("vectors", len(f.data.Vecs)),
			zap.Int("masks", len(f.data.Masks)),
			zap.Int("bytes", len(src)))
		written = append(written, path)
	}
	return written, nil
}
