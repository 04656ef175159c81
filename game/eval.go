package game

import "math"

// Heuristic weights
const (
	weightConnected     = 2
	weightPotentialWins = 3
	weightEmptyCells    = 1
	weightCenterControl = 2
	weightBlockOpponent = 4
	weightFormingLines  = 2
)

// Forward directions: right, down, down-right, up-right
var forward = []Pos{{Col: 1, Row: 0}, {Col: 0, Row: 1}, {Col: 1, Row: 1}, {Col: 1, Row: -1}}

// Directions scanned by CountConnected
var scanned = []Pos{{Col: 1, Row: 0}, {Col: 1, Row: 1}, {Col: 1, Row: -1}}

var center = []Pos{{Col: 1, Row: 1}, {Col: 2, Row: 1}, {Col: 1, Row: 2}, {Col: 2, Row: 2}}

// CountConnected probes runs of p's colour to the right and along both
// right-going diagonals from every piece of p. Each piece also scores a
// flat +1 in place of a vertical scan.
func CountConnected(g *Game, p *Player) int {
	connected := 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if !g.board.cells[row][col].Holds(p.Color) {
				continue
			}
			connected++
			for _, d := range scanned {
				for i := 1; i < Size; i++ {
					if !g.board.Get(row+d.Row*i, col+d.Col*i).Holds(p.Color) {
						break
					}
					connected++
				}
			}
		}
	}
	return connected
}

// openEnds counts, over every piece of the colour, the forward neighbours
// that are empty or already hold the colour.
func openEnds(b *Board, color Color) int {
	count := 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if !b.cells[row][col].Holds(color) {
				continue
			}
			for _, d := range forward {
				if !inBounds(col+d.Col, row+d.Row) {
					continue
				}
				if next := b.cells[row+d.Row][col+d.Col]; next.IsEmpty() || next.Holds(color) {
					count++
				}
			}
		}
	}
	return count
}

// PotentialWins is p's open-end count minus the opponent's.
func PotentialWins(g *Game, p *Player) int {
	return openEnds(&g.board, p.Color) - openEnds(&g.board, g.Opponent(p).Color)
}

func EmptyCells(g *Game) int {
	return g.board.CountEmpty()
}

// CenterControl counts p's pieces on the four central cells.
func CenterControl(g *Game, p *Player) int {
	control := 0
	for _, pos := range center {
		if g.board.cells[pos.Row][pos.Col].Holds(p.Color) {
			control++
		}
	}
	return control
}

func BlockOpponentWins(g *Game, p *Player) int {
	return -PotentialWins(g, p)
}

// FormingLines counts direct same-colour forward adjacencies of p's pieces.
func FormingLines(g *Game, p *Player) int {
	lines := 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if !g.board.cells[row][col].Holds(p.Color) {
				continue
			}
			for _, d := range forward {
				if g.board.Get(row+d.Row, col+d.Col).Holds(p.Color) {
					lines++
				}
			}
		}
	}
	return lines
}

// EvaluateState scores the position for p. It satisfies Evaluate.
func EvaluateState(g *Game, p *Player) float64 {
	switch winner := g.WinnerColor(); winner {
	case NoColor:
	case p.Color:
		return math.Inf(1)
	default:
		return math.Inf(-1)
	}

	score := weightConnected*CountConnected(g, p) +
		weightPotentialWins*PotentialWins(g, p) +
		weightEmptyCells*EmptyCells(g) +
		weightCenterControl*CenterControl(g, p) +
		weightBlockOpponent*BlockOpponentWins(g, p) +
		weightFormingLines*FormingLines(g, p)
	return float64(score)
}
