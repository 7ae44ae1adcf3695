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

// Command lanesinfo prints the SIMD dispatch level, the capability tokens and
// the layout of every vector type as seen by the running program.
//
// Usage:
//
//	lanesinfo                 # platform and dispatch summary
//	lanesinfo layout [-k kind] [-b bits]
//	lanesinfo features
//	lanesinfo predicates
//
// Set LANES_NO_SIMD=1 to see the scalar fallback.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
