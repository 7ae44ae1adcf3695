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

// Command vecgen generates the fixed-width vector and mask types of package
// lanes from a declarative table.
//
// Usage:
//
//	vecgen -table vectors.yaml -output .
//
// Or via go:generate:
//
//	//go:generate go run ../cmd/vecgen -table vectors.yaml -output .
//
// For every lane width listed under shapes the generator writes one file,
// z_vec<bits>.go, with the numeric and mask vectors of that width, their
// compile-time layout assertions, lane access, halves, mask conversions and
// bit casts. It also writes the scalar masks (z_masks.go), the layout table
// read by CheckLayouts (z_layout.go) and a test per type (z_vectors_test.go).
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
)

var (
	tableFile  = flag.String("table", "vectors.yaml", "YAML table describing the vector types")
	outputDir  = flag.String("output", ".", "Output directory (default: current directory)")
	packageOut = flag.String("pkg", "lanes", "Output package name")
	verbose    = flag.Bool("v", false, "Log each generated file")
)

func main() {
	flag.Parse()

	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		SetLogger(l)
		defer func() { _ = l.Sync() }()
	}

	table, err := LoadTable(*tableFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	gen := &Generator{
		Table:     table,
		TableName: *tableFile,
		OutputDir: *outputDir,
		Package:   *packageOut,
	}

	files, err := gen.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated %d files with %d vector types\n", len(files), len(table.Vectors()))
}
