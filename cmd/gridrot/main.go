// Package main provides gridrot, which rotates and clamps a JSON grid of numbers.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/sw965/blockgrid/mathx"
	"github.com/sw965/blockgrid/matrix/2d"
)

var ErrTrailingData = errors.New("unexpected data after grid")

type options struct {
	turns  int
	min    float64
	max    float64
	pretty bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "gridrot [input.json]",
		Short: "Rotate a rectangular JSON grid by quarter turns",
		Long: `gridrot reads a JSON array of equal-length number arrays (stdin when no
file is given), rotates it clockwise by --turns quarter turns and optionally
clamps every cell into [--min, --max].`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.turns, "turns", "n", 1, "Clockwise quarter turns (negative for counter-clockwise)")
	cmd.Flags().Float64Var(&opts.min, "min", 0, "Lower clamp bound")
	cmd.Flags().Float64Var(&opts.max, "max", 0, "Upper clamp bound")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "Pretty-print JSON output")
	cmd.MarkFlagsRequiredTogether("min", "max")
	return cmd
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	var grid [][]float64
	dec := json.NewDecoder(in)
	if err := dec.Decode(&grid); err != nil {
		return fmt.Errorf("failed to decode grid: %w", err)
	}
	if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		return ErrTrailingData
	}

	rotated, err := matrix2d.RotateN(grid, opts.turns)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("min") {
		for i := range rotated {
			for j := range rotated[i] {
				rotated[i][j], err = mathx.Clamp(rotated[i][j], opts.min, opts.max)
				if err != nil {
					return err
				}
			}
		}
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	if opts.pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(rotated)
}
