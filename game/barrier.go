package game

// Barrier is a temporary obstacle standing on a cell.
type Barrier struct {
	Pos   Pos
	Turns int // Ticks left before the cell reopens
}

func (b Barrier) HasTurn() bool {
	return b.Turns > 0
}
