package tetromino

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sw965/blockgrid/matrix/2d"
)

// Cell is 0 for an empty square, otherwise Kind.Cell of the piece that locked there.
type Cell uint8

const Empty Cell = 0

// Board is the playfield. Row 0 is the top.
//
// Boardは盤面を表します。0行目が最上段です。
type Board struct {
	cells [][]Cell
}

func NewBoard(rows, cols int) (*Board, error) {
	if rows < MinRows || cols < MinCols {
		return nil, fmt.Errorf("%w: %dx%d, 最小 %dx%d", ErrBoardSize, rows, cols, MinRows, MinCols)
	}
	return &Board{cells: matrix2d.NewZeros[[][]Cell](rows, cols)}, nil
}

func (b *Board) Rows() int {
	return len(b.cells)
}

func (b *Board) Cols() int {
	return len(b.cells[0])
}

// At returns the cell at (row, col). Squares outside the board read as Empty.
func (b *Board) At(row, col int) Cell {
	if row < 0 || row >= b.Rows() || col < 0 || col >= b.Cols() {
		return Empty
	}
	return b.cells[row][col]
}

func (b *Board) Set(row, col int, c Cell) {
	b.cells[row][col] = c
}

func (b *Board) IsFull(row int) bool {
	return !slices.Contains(b.cells[row], Empty)
}

// Collides reports whether any block of p lies outside the walls or floor, or overlaps a locked block.
// Blocks above row 0 do not collide.
func (b *Board) Collides(p Piece) bool {
	for _, pt := range p.Cells() {
		if pt.Col < 0 || pt.Col >= b.Cols() || pt.Row >= b.Rows() {
			return true
		}
		if pt.Row >= 0 && b.cells[pt.Row][pt.Col] != Empty {
			return true
		}
	}
	return false
}

// Lock writes p into the board. Blocks above row 0 are discarded.
func (b *Board) Lock(p Piece) error {
	if b.Collides(p) {
		return ErrCollision
	}
	for _, pt := range p.Cells() {
		if pt.Row >= 0 {
			b.cells[pt.Row][pt.Col] = p.Kind.Cell()
		}
	}
	return nil
}

// ClearLines removes every full row, shifts the rows above it down and returns the number removed.
func (b *Board) ClearLines() int {
	kept := make([][]Cell, 0, b.Rows())
	for i, row := range b.cells {
		if !b.IsFull(i) {
			kept = append(kept, row)
		}
	}
	n := b.Rows() - len(kept)
	if n == 0 {
		return 0
	}
	cleared := matrix2d.NewZeros[[][]Cell](n, b.Cols())
	b.cells = append(cleared, kept...)
	return n
}

func (b *Board) String() string {
	var sb strings.Builder
	for _, row := range b.cells {
		for _, c := range row {
			if c == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteString(Kind(c - 1).String())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
