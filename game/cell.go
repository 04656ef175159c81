package game

import "fmt"

// CellKind tags what occupies a board cell.
type CellKind int

const (
	EmptyCell   CellKind = iota // Nothing on the cell
	PieceCell                   // A player's piece
	BarrierCell                 // A temporary barrier
)

// Cell is the content of one square. Color is only meaningful for a
// PieceCell and Turns only for a BarrierCell.
type Cell struct {
	Kind  CellKind
	Color Color
	Turns int
}

func Empty() Cell {
	return Cell{Kind: EmptyCell}
}

func Occupied(color Color) Cell {
	return Cell{Kind: PieceCell, Color: color}
}

func Blocked(turns int) Cell {
	return Cell{Kind: BarrierCell, Turns: turns}
}

func (c Cell) IsEmpty() bool {
	return c.Kind == EmptyCell
}

func (c Cell) IsBarrier() bool {
	return c.Kind == BarrierCell
}

// Holds reports whether the cell carries a piece of the given colour.
func (c Cell) Holds(color Color) bool {
	return c.Kind == PieceCell && c.Color == color
}

func (c Cell) String() string {
	switch c.Kind {
	case EmptyCell:
		return "."
	case PieceCell:
		return string(c.Color.String()[0])
	case BarrierCell:
		return fmt.Sprintf("B%d", c.Turns)
	default:
		panic("unexpected cell kind")
	}
}
