// Package matrix2d provides shape checks and quarter-turn rotations for
// rectangular grids stored as slices of rows.
//
// Package matrix2d は行スライスで表された矩形グリッドの形状検査と90度単位の回転を提供します。
package matrix2d

import (
	"slices"
)

// Shape returns the number of rows and columns of ss.
// ss must have at least one row and one column, and every row must have the same length.
//
// Shapeはssの行数と列数を返します。
func Shape[Ss ~[]S, S ~[]E, E any](ss Ss) (int, int, error) {
	if len(ss) == 0 || len(ss[0]) == 0 {
		return 0, 0, &InvalidShapeError{Row: -1, Err: ErrEmptyGrid}
	}
	cols := len(ss[0])
	for i, row := range ss[1:] {
		if len(row) != cols {
			return 0, 0, &InvalidShapeError{Row: i + 1, Want: cols, Got: len(row), Err: ErrJaggedGrid}
		}
	}
	return len(ss), cols, nil
}

func Validate[Ss ~[]S, S ~[]E, E any](ss Ss) error {
	_, _, err := Shape(ss)
	return err
}

func NewZeros[Ss ~[]S, S ~[]E, E any](rows, cols int) Ss {
	ss := make(Ss, rows)
	for i := range ss {
		ss[i] = make(S, cols)
	}
	return ss
}

func Clone[Ss ~[]S, S ~[]E, E any](ss Ss) Ss {
	if ss == nil {
		return nil
	}
	c := make(Ss, len(ss))
	for i := range ss {
		c[i] = slices.Clone(ss[i])
	}
	return c
}

func Equal[Ss ~[]S, S ~[]E, E comparable](a, b Ss) bool {
	return slices.EqualFunc(a, b, func(x, y S) bool {
		return slices.Equal(x, y)
	})
}

// Rotate90 returns a new grid holding ss rotated 90 degrees clockwise.
// The cell at (y, x) of an R x C grid moves to (x, R-1-y) of the C x R result.
// ss is never modified and shares no memory with the result.
//
// Rotate90はssを時計回りに90度回転させた新しいグリッドを返します。
func Rotate90[Ss ~[]S, S ~[]E, E any](ss Ss) (Ss, error) {
	m, n, err := Shape(ss)
	if err != nil {
		return nil, err
	}
	rotated := NewZeros[Ss, S, E](n, m)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			rotated[j][m-1-i] = ss[i][j]
		}
	}
	return rotated, nil
}

func Rotate180[Ss ~[]S, S ~[]E, E any](ss Ss) (Ss, error) {
	r, err := Rotate90(ss)
	if err != nil {
		return nil, err
	}
	return Rotate90(r)
}

// Rotate270 rotates ss 90 degrees counter-clockwise.
func Rotate270[Ss ~[]S, S ~[]E, E any](ss Ss) (Ss, error) {
	r, err := Rotate180(ss)
	if err != nil {
		return nil, err
	}
	return Rotate90(r)
}

// RotateN rotates ss clockwise by n quarter turns. Negative n turns counter-clockwise.
//
// RotateNはssを時計回りにn回(90度単位)回転させます。nが負の場合は反時計回りです。
func RotateN[Ss ~[]S, S ~[]E, E any](ss Ss, n int) (Ss, error) {
	n %= 4
	if n < 0 {
		n += 4
	}
	switch n {
	case 1:
		return Rotate90(ss)
	case 2:
		return Rotate180(ss)
	case 3:
		return Rotate270(ss)
	}
	if err := Validate(ss); err != nil {
		return nil, err
	}
	return Clone(ss), nil
}

func Transpose[Ss ~[]S, S ~[]E, E any](ss Ss) (Ss, error) {
	m, n, err := Shape(ss)
	if err != nil {
		return nil, err
	}
	t := NewZeros[Ss, S, E](n, m)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			t[j][i] = ss[i][j]
		}
	}
	return t, nil
}
