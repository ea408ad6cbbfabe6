package tensor2d

import (
	"errors"
	"fmt"
	"slices"

	"github.com/sw965/blockgrid/mathx"
	"github.com/sw965/blockgrid/matrix/2d"
	"gonum.org/v1/gonum/blas/blas32"
)

var ErrBadStride = errors.New("ストライドエラー: Stride >= Cols かつ Data が十分な長さである必要があります")

func NewZeros(rows, cols int) blas32.General {
	return blas32.General{
		Rows:   rows,
		Cols:   cols,
		Stride: cols,
		Data:   make([]float32, rows*cols),
	}
}

func NewZerosLike(gen blas32.General) blas32.General {
	return NewZeros(gen.Rows, gen.Cols)
}

func Clone(gen blas32.General) blas32.General {
	return blas32.General{
		Rows:   gen.Rows,
		Cols:   gen.Cols,
		Stride: gen.Stride,
		Data:   slices.Clone(gen.Data),
	}
}

func At(gen blas32.General, row, col int) int {
	return row*gen.Stride + col
}

func Validate(gen blas32.General) error {
	if gen.Rows <= 0 || gen.Cols <= 0 {
		return &matrix2d.InvalidShapeError{Row: -1, Err: matrix2d.ErrEmptyGrid}
	}
	if gen.Stride < gen.Cols || len(gen.Data) < (gen.Rows-1)*gen.Stride+gen.Cols {
		return fmt.Errorf("%w: rows = %d, cols = %d, stride = %d, len(data) = %d",
			ErrBadStride, gen.Rows, gen.Cols, gen.Stride, len(gen.Data))
	}
	return nil
}

func Transpose(gen blas32.General) (blas32.General, error) {
	if err := Validate(gen); err != nil {
		return blas32.General{}, err
	}
	t := NewZeros(gen.Cols, gen.Rows)
	for i := range t.Rows {
		for j := range t.Cols {
			t.Data[At(t, i, j)] = gen.Data[At(gen, j, i)]
		}
	}
	return t, nil
}

// Rotate90 returns gen rotated 90 degrees clockwise as a new compact matrix (Stride == Cols).
//
// Rotate90はgenを時計回りに90度回転させた新しい行列を返します。
func Rotate90(gen blas32.General) (blas32.General, error) {
	if err := Validate(gen); err != nil {
		return blas32.General{}, err
	}
	m := gen.Rows
	r := NewZeros(gen.Cols, m)
	for i := 0; i < m; i++ {
		for j := 0; j < gen.Cols; j++ {
			r.Data[At(r, j, m-1-i)] = gen.Data[At(gen, i, j)]
		}
	}
	return r, nil
}

func Rotate180(gen blas32.General) (blas32.General, error) {
	r, err := Rotate90(gen)
	if err != nil {
		return blas32.General{}, err
	}
	return Rotate90(r)
}

func Rotate270(gen blas32.General) (blas32.General, error) {
	r, err := Rotate180(gen)
	if err != nil {
		return blas32.General{}, err
	}
	return Rotate90(r)
}

// Clamp bounds every element of gen to [min, max] in place.
// gen is left untouched when the interval is invalid or an element is NaN.
func Clamp(gen blas32.General, min, max float32) error {
	if err := Validate(gen); err != nil {
		return err
	}
	y := NewZerosLike(gen)
	for i := range gen.Rows {
		for j := range gen.Cols {
			v, err := mathx.ClampF32(gen.Data[At(gen, i, j)], min, max)
			if err != nil {
				return fmt.Errorf("(%d, %d): %w", i, j, err)
			}
			y.Data[At(y, i, j)] = v
		}
	}
	for i := range gen.Rows {
		blas32.Copy(
			blas32.Vector{N: y.Cols, Inc: 1, Data: y.Data[At(y, i, 0):]},
			blas32.Vector{N: gen.Cols, Inc: 1, Data: gen.Data[At(gen, i, 0):]},
		)
	}
	return nil
}

func FromRows(rows [][]float32) (blas32.General, error) {
	m, n, err := matrix2d.Shape(rows)
	if err != nil {
		return blas32.General{}, err
	}
	gen := NewZeros(m, n)
	for i, row := range rows {
		copy(gen.Data[At(gen, i, 0):], row)
	}
	return gen, nil
}

func ToRows(gen blas32.General) [][]float32 {
	rows := make([][]float32, gen.Rows)
	for i := range rows {
		rows[i] = slices.Clone(gen.Data[At(gen, i, 0):At(gen, i, gen.Cols)])
	}
	return rows
}
