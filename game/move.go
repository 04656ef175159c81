package game

import "fmt"

// Pos addresses a cell by column and row.
type Pos struct {
	Col int
	Row int
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}

// Move represents a single action in the game. From is only used by MovePiece.
type Move struct {
	Kind MoveKind
	From Pos
	To   Pos
}

func NewPlacement(to Pos) Move {
	return Move{Kind: PlacePiece, To: to}
}

func NewBarrier(to Pos) Move {
	return Move{Kind: PlaceBarrier, To: to}
}

func NewMovement(from, to Pos) Move {
	return Move{Kind: MovePiece, From: from, To: to}
}

// SwitchesTurn reports whether applying the move hands the turn over.
func (m Move) SwitchesTurn() bool {
	return m.Kind != PlaceBarrier
}

func (m Move) String() string {
	if m.Kind == MovePiece {
		return fmt.Sprintf("%s %s->%s", m.Kind, m.From, m.To)
	}
	return fmt.Sprintf("%s %s", m.Kind, m.To)
}

// Turn is everything a player does before the turn passes: any number of
// barrier placements followed by one piece placement or movement.
type Turn struct {
	Barriers []Pos
	Action   Move
}
