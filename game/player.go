package game

import "fmt"

// Player owns an identity, a colour and the stock of pieces and barriers
// still to be placed.
type Player struct {
	Name     string
	Color    Color
	pieces   int
	barriers int
}

func NewPlayer(name string, color Color) *Player {
	return &Player{
		Name:     name,
		Color:    color,
		pieces:   MAX_PIECES,
		barriers: MAX_BARRIERS,
	}
}

func (p *Player) Pieces() int {
	return p.pieces
}

func (p *Player) Barriers() int {
	return p.barriers
}

func (p *Player) HasPieces() bool {
	return p.pieces > 0
}

func (p *Player) HasBarriers() bool {
	return p.barriers > 0
}

// RemovePiece takes one piece from the stock.
func (p *Player) RemovePiece() bool {
	if p.pieces > 0 {
		p.pieces--
		return true
	}
	return false
}

// AddPiece returns a piece to the stock, undoing RemovePiece.
func (p *Player) AddPiece() {
	if p.pieces < MAX_PIECES {
		p.pieces++
	}
}

func (p *Player) RemoveBarrier() bool {
	if p.barriers > 0 {
		p.barriers--
		return true
	}
	return false
}

func (p *Player) AddBarrier() {
	if p.barriers < MAX_BARRIERS {
		p.barriers++
	}
}

func (p *Player) String() string {
	return fmt.Sprintf("%s(%s)", p.Name, p.Color)
}
