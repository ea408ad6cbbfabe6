// Package dense applies grid rotation and clamping to gonum matrices.
package dense

import (
	"fmt"

	"github.com/sw965/blockgrid/mathx"
	"github.com/sw965/blockgrid/matrix/2d"
	"gonum.org/v1/gonum/mat"
)

func dims(m mat.Matrix) (int, int, error) {
	r, c := m.Dims()
	if r <= 0 || c <= 0 {
		return 0, 0, &matrix2d.InvalidShapeError{Row: -1, Err: matrix2d.ErrEmptyGrid}
	}
	return r, c, nil
}

func FromRows(rows [][]float64) (*mat.Dense, error) {
	r, c, err := matrix2d.Shape(rows)
	if err != nil {
		return nil, err
	}
	d := mat.NewDense(r, c, nil)
	for i, row := range rows {
		d.SetRow(i, row)
	}
	return d, nil
}

func ToRows(m mat.Matrix) [][]float64 {
	r, c := m.Dims()
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = mat.Row(make([]float64, c), i, m)
	}
	return rows
}

// Rotate90 returns m rotated 90 degrees clockwise as a new matrix.
func Rotate90(m mat.Matrix) (*mat.Dense, error) {
	r, c, err := dims(m)
	if err != nil {
		return nil, err
	}
	d := mat.NewDense(c, r, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			d.Set(j, r-1-i, m.At(i, j))
		}
	}
	return d, nil
}

func Clamp(m mat.Matrix, min, max float64) (*mat.Dense, error) {
	r, c, err := dims(m)
	if err != nil {
		return nil, err
	}
	d := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := mathx.Clamp(m.At(i, j), min, max)
			if err != nil {
				return nil, fmt.Errorf("(%d, %d): %w", i, j, err)
			}
			d.Set(i, j, v)
		}
	}
	return d, nil
}
