package matrix2d

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyGrid  = errors.New("空グリッドエラー: 行数と列数は1以上である必要があります")
	ErrJaggedGrid = errors.New("非矩形グリッドエラー: 全ての行の長さが等しい必要があります")
)

// InvalidShapeError reports a grid that is not a non-empty rectangle.
// Row is the first offending row, or -1 when the grid is empty.
//
// InvalidShapeErrorは、空でない矩形ではないグリッドを表します。
type InvalidShapeError struct {
	Row  int
	Want int
	Got  int
	Err  error
}

func (e *InvalidShapeError) Error() string {
	if e.Row < 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v: row %d has %d cols, want %d", e.Err, e.Row, e.Got, e.Want)
}

func (e *InvalidShapeError) Unwrap() error {
	return e.Err
}
