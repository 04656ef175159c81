package game

import "strings"

// Board is the 4x4 grid of cells plus the per-cell accessibility mask.
// Cells are indexed [row][col]. Board is a plain value: copying it copies
// the whole position.
type Board struct {
	cells      [Size][Size]Cell
	accessible [Size][Size]bool
	active     bool
}

// NewBoard returns an empty, active board with the top-left and
// bottom-right corners permanently closed.
func NewBoard() Board {
	b := Board{active: true}
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			b.accessible[row][col] = true
		}
	}
	b.accessible[0][0] = false
	b.accessible[Size-1][Size-1] = false
	return b
}

func inBounds(col, row int) bool {
	return col >= 0 && col < Size && row >= 0 && row < Size
}

// IsCorner reports whether (col, row) is one of the two cells that can
// never be used.
func IsCorner(col, row int) bool {
	return (col == 0 && row == 0) || (col == Size-1 && row == Size-1)
}

// Get returns the content at (row, col). Out-of-range reads are empty.
func (b *Board) Get(row, col int) Cell {
	if !inBounds(col, row) {
		return Empty()
	}
	return b.cells[row][col]
}

func (b *Board) IsAccessible(col, row int) bool {
	return inBounds(col, row) && b.accessible[row][col]
}

func (b *Board) isOpen(col, row int) bool {
	return b.IsAccessible(col, row) && b.cells[row][col].IsEmpty()
}

// PlacePiece puts a piece of the given colour on an accessible empty cell.
func (b *Board) PlacePiece(col, row int, color Color) bool {
	if color == NoColor || !b.isOpen(col, row) {
		return false
	}
	b.cells[row][col] = Occupied(color)
	return true
}

// MovePiece relocates the content of (col, row) one step in any of the
// eight directions onto an accessible empty cell.
func (b *Board) MovePiece(col, row, newCol, newRow int) bool {
	if !inBounds(col, row) {
		return false
	}
	if abs(newCol-col) > 1 || abs(newRow-row) > 1 {
		return false
	}
	if !b.isOpen(newCol, newRow) {
		return false
	}
	b.cells[newRow][newCol] = b.cells[row][col]
	b.cells[row][col] = Empty()
	return true
}

// PlaceBarrier blocks an accessible empty cell for the given number of ticks.
func (b *Board) PlaceBarrier(col, row, turns int) bool {
	if turns < 1 || !b.isOpen(col, row) {
		return false
	}
	b.cells[row][col] = Blocked(turns)
	b.accessible[row][col] = false
	return true
}

// RemovePiece clears a cell without any rule check. It is the inverse of a
// successful PlacePiece.
func (b *Board) RemovePiece(col, row int) {
	if inBounds(col, row) {
		b.cells[row][col] = Empty()
	}
}

// RemoveBarrier clears a barrier and reopens its cell without any rule
// check. It is the inverse of a successful PlaceBarrier.
func (b *Board) RemoveBarrier(col, row int) {
	if inBounds(col, row) && b.cells[row][col].IsBarrier() {
		b.cells[row][col] = Empty()
		b.accessible[row][col] = true
	}
}

// Tick counts down every barrier and returns the cells whose barrier
// expired on this tick.
func (b *Board) Tick() []Pos {
	var expired []Pos
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			cell := &b.cells[row][col]
			if !cell.IsBarrier() {
				continue
			}
			cell.Turns--
			if cell.Turns <= 0 {
				*cell = Empty()
				b.accessible[row][col] = true
				expired = append(expired, Pos{Col: col, Row: row})
			}
		}
	}
	return expired
}

// Barriers lists the barriers currently standing, row-major.
func (b *Board) Barriers() []Barrier {
	var barriers []Barrier
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if cell := b.cells[row][col]; cell.IsBarrier() {
				barriers = append(barriers, Barrier{Pos: Pos{Col: col, Row: row}, Turns: cell.Turns})
			}
		}
	}
	return barriers
}

// CountEmpty counts cells with no piece and no barrier, closed corners included.
func (b *Board) CountEmpty() int {
	empty := 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b.cells[row][col].IsEmpty() {
				empty++
			}
		}
	}
	return empty
}

func (b *Board) Active() bool {
	return b.active
}

func (b *Board) Deactivate() {
	b.active = false
}

func (b *Board) Activate() {
	b.active = true
}

// String renders the grid one row per line, '#' marking closed cells.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("   0  1  2  3\n")
	for row := 0; row < Size; row++ {
		sb.WriteByte(byte('0' + row))
		sb.WriteString(" ")
		for col := 0; col < Size; col++ {
			cell := b.cells[row][col]
			symbol := cell.String()
			if IsCorner(col, row) {
				symbol = "#"
			}
			sb.WriteString(" ")
			sb.WriteString(symbol)
			if len(symbol) < 2 {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
