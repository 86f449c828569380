package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gogpu/glm"
	"github.com/gogpu/glm/interop"
)

// invertOpts holds the command-line flags for the invert command.
type invertOpts struct {
	columnMajor bool // read arguments column by column instead of row by row
}

func (c *CLI) invertCommand() *cobra.Command {
	var opts invertOpts

	cmd := &cobra.Command{
		Use:   "invert <9 or 16 numbers>",
		Short: "Invert a 3x3 or 4x4 matrix",
		Long: `Invert a 3x3 or 4x4 matrix. The elements are read row by row, the way the
matrix is written on paper, unless --column-major is given.

A singular matrix has no inverse; it is printed unchanged with a warning.
Put "--" before the elements when any of them is negative.`,
		Example: `  glm invert 2 0 1  1 3 0  0 1 4
  glm invert --column-major 1 0 0 0  0 1 0 0  0 0 1 0  5 6 7 1
  glm invert -- 1 -2 0  0 1 0  0 0 1`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 9 && len(args) != 16 {
				return fmt.Errorf("need 9 or 16 matrix elements, got %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseFloats(args)
			if err != nil {
				return err
			}
			return c.runInvert(cmd.OutOrStdout(), vals, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.columnMajor, "column-major", false, "elements are given column by column")

	return cmd
}

func (c *CLI) runInvert(w io.Writer, vals []float64, opts invertOpts) error {
	if len(vals) == 9 {
		var m glm.Mat3d
		if opts.columnMajor {
			interop.FromColumnMajor3(vals, &m)
		} else {
			interop.FromRowMajor3(vals, &m)
		}
		det := m.Determinant()
		c.Logger.Debug("inverting", "size", 3, "det", det)
		printMat3(w, "Input", &m)
		if !m.Invertible() {
			c.Logger.Warn("matrix is singular", "det", det)
			printWarning(w, "singular matrix (det = %s), left unchanged", formatElement(det))
		}
		m.Invert()
		printMat3(w, "Inverse", &m)
		return nil
	}

	var m glm.Mat4d
	if opts.columnMajor {
		interop.FromColumnMajor4(vals, &m)
	} else {
		interop.FromRowMajor4(vals, &m)
	}
	det := m.Determinant()
	c.Logger.Debug("inverting", "size", 4, "det", det)
	printMat4(w, "Input", &m)
	if !m.Invertible() {
		c.Logger.Warn("matrix is singular", "det", det)
		printWarning(w, "singular matrix (det = %s), left unchanged", formatElement(det))
	}
	m.Invert()
	printMat4(w, "Inverse", &m)
	return nil
}

// parseFloats converts command-line arguments to numbers.
func parseFloats(args []string) ([]float64, error) {
	vals := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i+1, err)
		}
		vals[i] = v
	}
	return vals, nil
}
