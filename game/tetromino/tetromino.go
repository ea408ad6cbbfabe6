// Package tetromino implements falling-blocks piece logic: shapes, a board,
// collision, rotation with wall kicks and line clearing.
//
// Package tetromino は落ち物パズルのピース処理(形状、盤面、衝突判定、壁蹴り付き回転、ライン消去)を実装します。
package tetromino

import (
	"errors"
	"fmt"

	"github.com/sw965/blockgrid/mathx"
	"github.com/sw965/blockgrid/matrix/2d"
)

var (
	ErrBoardSize   = errors.New("盤面サイズエラー")
	ErrCollision   = errors.New("衝突エラー: ピースが壁または固定済みのブロックと重なっています")
	ErrGameOver    = errors.New("ゲームオーバー")
	ErrInvalidKind = errors.New("ピース種別エラー: I, O, T, S, Z, J, L のいずれかである必要があります")
)

const (
	MinRows = 4
	MinCols = 4
)

type Kind uint8

const (
	I Kind = iota
	O
	T
	S
	Z
	J
	L
)

var Kinds = []Kind{I, O, T, S, Z, J, L}

func (k Kind) String() string {
	if int(k) < len(Kinds) {
		return "IOTSZJL"[k : k+1]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Cell returns the board value written when a piece of kind k locks.
func (k Kind) Cell() Cell {
	return Cell(k) + 1
}

// Shape is a square occupancy grid. Shape[row][col] is true where the piece has a block.
type Shape [][]bool

func parseShape(rows ...string) Shape {
	s := make(Shape, len(rows))
	for i, row := range rows {
		s[i] = make([]bool, len(row))
		for j, c := range row {
			s[i][j] = c == '#'
		}
	}
	return s
}

var shapes = map[Kind]Shape{
	I: parseShape(
		"....",
		"####",
		"....",
		"....",
	),
	O: parseShape(
		"##",
		"##",
	),
	T: parseShape(
		".#.",
		"###",
		"...",
	),
	S: parseShape(
		".##",
		"##.",
		"...",
	),
	Z: parseShape(
		"##.",
		".##",
		"...",
	),
	J: parseShape(
		"#..",
		"###",
		"...",
	),
	L: parseShape(
		"..#",
		"###",
		"...",
	),
}

// Shape returns a fresh copy of the spawn orientation of k.
func (k Kind) Shape() Shape {
	return matrix2d.Clone(shapes[k])
}

// colSpan returns the first and last columns of s that hold a block.
func (s Shape) colSpan() (int, int) {
	first, last := len(s[0]), -1
	for _, row := range s {
		for j, ok := range row {
			if !ok {
				continue
			}
			first = min(first, j)
			last = max(last, j)
		}
	}
	return first, last
}

type Point struct {
	Row int
	Col int
}

// Piece is a shape placed on a board. Row and Col locate the top-left corner of Shape.
type Piece struct {
	Kind  Kind
	Shape Shape
	Row   int
	Col   int
}

// NewPiece returns a piece of kind k centred horizontally on a board with boardCols columns.
func NewPiece(k Kind, boardCols int) (Piece, error) {
	if _, ok := shapes[k]; !ok {
		return Piece{}, fmt.Errorf("%w: %v", ErrInvalidKind, k)
	}
	shape := k.Shape()
	lo, hi, err := colBounds(shape, boardCols)
	if err != nil {
		return Piece{}, err
	}
	col, err := mathx.Clamp((boardCols-len(shape[0]))/2, lo, hi)
	if err != nil {
		return Piece{}, err
	}
	return Piece{Kind: k, Shape: shape, Row: 0, Col: col}, nil
}

// colBounds returns the range of Col values that keep every block of shape inside boardCols columns.
func colBounds(shape Shape, boardCols int) (int, int, error) {
	first, last := shape.colSpan()
	if last-first+1 > boardCols {
		return 0, 0, fmt.Errorf("%w: cols = %d", ErrBoardSize, boardCols)
	}
	return -first, boardCols - 1 - last, nil
}

// Cells returns the board coordinates of every block of p.
func (p Piece) Cells() []Point {
	ps := make([]Point, 0, 4)
	for i, row := range p.Shape {
		for j, ok := range row {
			if ok {
				ps = append(ps, Point{Row: p.Row + i, Col: p.Col + j})
			}
		}
	}
	return ps
}

type Direction int

const (
	Clockwise        Direction = 1
	CounterClockwise Direction = -1
)

var kickOffsets = []int{0, -1, 1, -2, 2}

// Rotate turns p a quarter turn in dir. Each wall-kick offset is tried in order with
// the column kept inside the board; the first position that does not collide wins.
// When every offset collides, p is returned unchanged with false.
//
// Rotateはpを90度回転させます。壁蹴りの全候補が衝突する場合は、pをそのまま返します。
func Rotate(b *Board, p Piece, dir Direction) (Piece, bool) {
	var shape Shape
	var err error
	switch dir {
	case Clockwise:
		shape, err = matrix2d.Rotate90(p.Shape)
	case CounterClockwise:
		shape, err = matrix2d.Rotate270(p.Shape)
	default:
		return p, false
	}
	if err != nil {
		return p, false
	}

	lo, hi, err := colBounds(shape, b.Cols())
	if err != nil {
		return p, false
	}

	next := p
	next.Shape = shape
	for _, dx := range kickOffsets {
		col, err := mathx.Clamp(p.Col+dx, lo, hi)
		if err != nil {
			return p, false
		}
		next.Col = col
		if !b.Collides(next) {
			return next, true
		}
	}
	return p, false
}

func Move(b *Board, p Piece, dRow, dCol int) (Piece, bool) {
	next := p
	next.Row += dRow
	next.Col += dCol
	if b.Collides(next) {
		return p, false
	}
	return next, true
}

// HardDrop moves p straight down until it rests on the floor or another block.
// It returns the landed piece and the number of rows it fell.
func HardDrop(b *Board, p Piece) (Piece, int) {
	n := 0
	for {
		next, ok := Move(b, p, 1, 0)
		if !ok {
			return p, n
		}
		p = next
		n++
	}
}
