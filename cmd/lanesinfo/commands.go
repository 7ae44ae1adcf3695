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
	"fmt"
	"io"
	"runtime"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-lanes/lanes"
	"github.com/ajroetker/go-lanes/lanes/fcmp"
	"github.com/ajroetker/go-lanes/lanes/feature"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "lanesinfo",
		Short:         "Print SIMD dispatch, capability and vector layout information",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printSummary(cmd.OutOrStdout())
			return nil
		},
	}
	root.AddCommand(newLayoutCmd(), newFeaturesCmd(), newPredicatesCmd())
	return root
}

func printSummary(w io.Writer) {
	fmt.Fprintf(w, "GOOS: %s\n", runtime.GOOS)
	fmt.Fprintf(w, "GOARCH: %s\n", runtime.GOARCH)
	fmt.Fprintf(w, "NumCPU: %d\n", runtime.NumCPU())
	fmt.Fprintln(w)
	target := lanes.CurrentTarget()
	fmt.Fprintf(w, "Dispatch level: %s\n", target.Level)
	fmt.Fprintf(w, "Dispatch width: %d bytes\n", target.Width)
	fmt.Fprintf(w, "Narrowest register vector: %d bytes\n", target.MinRegister)
	fmt.Fprintf(w, "%s: %v\n", lanes.NoSimdEnvVar, lanes.NoSimdEnv())
	fmt.Fprintf(w, "Max lanes: float32=%d float64=%d uint8=%d\n",
		lanes.MaxLanes[float32](), lanes.MaxLanes[float64](), lanes.MaxLanes[uint8]())
	fmt.Fprintf(w, "Vector types: %d\n", len(lanes.Vectors()))
}

func newLayoutCmd() *cobra.Command {
	var (
		kind string
		bits int
	)
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "List vector types with their size, alignment and backing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if kind != "" && !validKind(kind) {
				return fmt.Errorf("unknown kind %q (want unsigned, signed, float or mask)", kind)
			}
			return printLayout(cmd.OutOrStdout(), kind, bits)
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", "", "only list vectors of this kind (unsigned, signed, float, mask)")
	cmd.Flags().IntVarP(&bits, "bits", "b", 0, "only list vectors of this total width in bits")
	return cmd
}

func validKind(kind string) bool {
	for _, k := range []lanes.Kind{lanes.KindUnsigned, lanes.KindSigned, lanes.KindFloat, lanes.KindMask} {
		if k.String() == kind {
			return true
		}
	}
	return false
}

func printLayout(w io.Writer, kind string, bits int) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TYPE\tLANE\tSHAPE\tSIZE\tALIGN\tSELF-ALIGN\tBACKING\tMASK\tHALF")
	for _, vi := range lanes.Vectors() {
		if kind != "" && vi.Kind.String() != kind {
			continue
		}
		if bits != 0 && vi.Bits() != bits {
			continue
		}
		half := vi.HalfName
		if half == "" {
			half = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%d\t%s\t%s\t%s\n",
			vi.Name, vi.Lane, vi.Shape, vi.Size(), vi.Align(), vi.Bytes(), vi.Backing(), vi.MaskName, half)
	}
	return tw.Flush()
}

func newFeaturesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "features",
		Short: "Report which capability tokens can be obtained",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			for _, f := range feature.All() {
				fmt.Fprintf(w, "  %-7s %v\n", f.String()+":", feature.Supported(f))
			}
			names := make([]string, 0, len(feature.All()))
			for _, f := range feature.List() {
				names = append(names, f.String())
			}
			fmt.Fprintf(w, "Supported: %s\n", strings.Join(names, ", "))
			return nil
		},
	}
}

func newPredicatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "predicates",
		Short: "List the AVX floating point comparison predicates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "IMM\tNAME\tC NAME\tORDER\tNOISE\tINVERSE\tSWAP\tDESCRIPTION")
			for i := range int32(32) {
				p, _ := fcmp.FromInt32(i)
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					i, p, p.CName(), p.Order(), p.Noise(), p.Inverse(), p.Swap(), p.Description())
			}
			return tw.Flush()
		},
	}
}
