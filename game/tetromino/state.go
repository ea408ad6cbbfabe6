package tetromino

import (
	"math/rand/v2"
)

// State holds one falling-blocks game: the board, the falling piece and the running score.
// Advancing the piece over time is left to the caller.
//
// Stateは1ゲーム分の盤面、落下中のピース、得点を保持します。
type State struct {
	Board    *Board
	Current  Piece
	Next     Kind
	Score    int
	Lines    int
	Level    int
	GameOver bool

	rng *rand.Rand
}

func NewState(rows, cols int, rng *rand.Rand) (*State, error) {
	b, err := NewBoard(rows, cols)
	if err != nil {
		return nil, err
	}
	s := &State{
		Board: b,
		Level: 1,
		rng:   rng,
	}
	s.Next = s.randKind()
	if err := s.Spawn(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *State) randKind() Kind {
	return Kinds[s.rng.IntN(len(Kinds))]
}

// Spawn makes Next the falling piece and draws a new Next.
// GameOver is set when the new piece collides on entry.
func (s *State) Spawn() error {
	p, err := NewPiece(s.Next, s.Board.Cols())
	if err != nil {
		return err
	}
	s.Current = p
	s.Next = s.randKind()
	if s.Board.Collides(p) {
		s.GameOver = true
	}
	return nil
}

func (s *State) Move(dRow, dCol int) bool {
	if s.GameOver {
		return false
	}
	p, ok := Move(s.Board, s.Current, dRow, dCol)
	s.Current = p
	return ok
}

func (s *State) Rotate(dir Direction) bool {
	if s.GameOver {
		return false
	}
	p, ok := Rotate(s.Board, s.Current, dir)
	s.Current = p
	return ok
}

// LockAndClear locks the falling piece, clears full rows, updates the score and spawns the next piece.
// It returns the number of cleared rows.
func (s *State) LockAndClear() (int, error) {
	if s.GameOver {
		return 0, ErrGameOver
	}
	if err := s.Board.Lock(s.Current); err != nil {
		return 0, err
	}

	for _, pt := range s.Current.Cells() {
		if pt.Row < 0 {
			s.GameOver = true
			return 0, nil
		}
	}

	n := s.Board.ClearLines()
	s.Lines += n
	s.Score += 100 * n * n * s.Level
	s.Level = 1 + s.Lines/10
	return n, s.Spawn()
}

// HardDrop drops the falling piece, scoring 2 points per row fallen, then calls LockAndClear.
func (s *State) HardDrop() (int, error) {
	if s.GameOver {
		return 0, ErrGameOver
	}
	p, fell := HardDrop(s.Board, s.Current)
	s.Current = p
	s.Score += 2 * fell
	return s.LockAndClear()
}
