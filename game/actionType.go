package game

// MoveKind represents the kind of action a player can perform.
type MoveKind int

const (
	PlacePiece MoveKind = iota
	PlaceBarrier
	MovePiece
)

func (k MoveKind) String() string {
	switch k {
	case PlacePiece:
		return "place_piece"
	case PlaceBarrier:
		return "place_barrier"
	case MovePiece:
		return "move_piece"
	default:
		return "unknown"
	}
}
