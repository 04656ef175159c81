package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"time"

	"golang.org/x/exp/rand"
)

// Game owns the board and both players and enforces turn order and the
// placing/moving phases. The zero value is not usable; see NewGame.
type Game struct {
	board    Board
	players  [2]*Player
	current  int // Index into players, -1 until the game starts
	selected *Pos
	rules    Rules
	rand     *rand.Rand
}

type Option func(g *Game)

func WithRules(rules Rules) Option {
	return func(g *Game) {
		if rules != nil {
			g.rules = rules
		}
	}
}

// WithRand injects the generator used to pick the first mover.
func WithRand(r *rand.Rand) Option {
	return func(g *Game) {
		if r != nil {
			g.rand = r
		}
	}
}

func NewGame(player1, player2 *Player, options ...Option) (*Game, error) {
	if player1 == nil || player2 == nil {
		return nil, ErrMissingPlayer
	}
	if player1.Color == player2.Color {
		return nil, fmt.Errorf("%w: both players are %s", ErrSameColor, player1.Color)
	}

	g := &Game{ // Default values
		board:   NewBoard(),
		players: [2]*Player{player1, player2},
		current: -1,
		rules:   NewStandardRules(),
	}
	for _, option := range options {
		option(g)
	}
	if g.rand == nil {
		g.rand = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return g, nil
}

// Start picks the first mover uniformly at random.
func (g *Game) Start() *Player {
	g.current = g.rand.Intn(len(g.players))
	return g.players[g.current]
}

// SetCurrentPlayer hands the turn to the game's player with p's colour.
func (g *Game) SetCurrentPlayer(p *Player) bool {
	i := g.indexOf(p)
	if i < 0 {
		return false
	}
	g.current = i
	return true
}

// SwitchPlayer toggles the side to move and returns the new current player.
func (g *Game) SwitchPlayer() *Player {
	if g.current < 0 {
		g.current = 0
	} else {
		g.current = 1 - g.current
	}
	return g.players[g.current]
}

func (g *Game) Board() *Board {
	return &g.board
}

func (g *Game) Rules() Rules {
	return g.rules
}

func (g *Game) Player1() *Player {
	return g.players[0]
}

func (g *Game) Player2() *Player {
	return g.players[1]
}

// CurrentPlayer returns the side to move, or nil before Start.
func (g *Game) CurrentPlayer() *Player {
	if g.current < 0 {
		return nil
	}
	return g.players[g.current]
}

// indexOf matches players by colour, so a player taken from a copy of
// the game resolves to the same seat here.
func (g *Game) indexOf(p *Player) int {
	if p == nil {
		return -1
	}
	for i, player := range g.players {
		if player.Color == p.Color {
			return i
		}
	}
	return -1
}

// PlayerByColor returns the game's player holding the colour, or nil.
func (g *Game) PlayerByColor(color Color) *Player {
	for _, player := range g.players {
		if player.Color == color {
			return player
		}
	}
	return nil
}

// Opponent returns the other seat relative to p.
func (g *Game) Opponent(p *Player) *Player {
	if g.indexOf(p) == 0 {
		return g.players[1]
	}
	return g.players[0]
}

// Copy returns a deep, independent clone. Rules and the random generator
// are shared.
func (g *Game) Copy() *Game {
	player1 := *g.players[0]
	player2 := *g.players[1]
	c := &Game{
		board:   g.board,
		players: [2]*Player{&player1, &player2},
		current: g.current,
		rules:   g.rules,
		rand:    g.rand,
	}
	if g.selected != nil {
		selected := *g.selected
		c.selected = &selected
	}
	return c
}

// Snapshot is a value copy of everything a move can change.
type Snapshot struct {
	board       Board
	players     [2]Player
	current     int
	selected    Pos
	hasSelected bool
}

func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		board:   g.board,
		players: [2]Player{*g.players[0], *g.players[1]},
		current: g.current,
	}
	if g.selected != nil {
		s.selected = *g.selected
		s.hasSelected = true
	}
	return s
}

// Restore rewinds the game to a snapshot taken from it. Player pointers
// handed out earlier stay valid.
func (g *Game) Restore(s Snapshot) {
	g.board = s.board
	*g.players[0] = s.players[0]
	*g.players[1] = s.players[1]
	g.current = s.current
	g.selected = nil
	if s.hasSelected {
		selected := s.selected
		g.selected = &selected
	}
}

func (g *Game) canAct() bool {
	return g.current >= 0 && g.board.active
}

// PlacePiece puts one of the current player's pieces on (col, row) and
// passes the turn.
func (g *Game) PlacePiece(col, row int) bool {
	if !g.canAct() {
		return false
	}
	player := g.players[g.current]
	if !player.HasPieces() || !g.board.PlacePiece(col, row, player.Color) {
		return false
	}
	player.RemovePiece()
	g.selected = nil
	g.SwitchPlayer()
	return true
}

// PlaceBarrier spends one of the current player's barriers on (col, row).
// The turn does not pass.
func (g *Game) PlaceBarrier(col, row int) bool {
	if !g.canAct() {
		return false
	}
	player := g.players[g.current]
	if !player.HasBarriers() || !g.board.PlaceBarrier(col, row, g.rules.BarrierTurns()) {
		return false
	}
	player.RemoveBarrier()
	return true
}

// MovePiece moves one of the current player's pieces a single step and
// passes the turn. Only legal once all pieces are placed.
func (g *Game) MovePiece(col, row, newCol, newRow int) bool {
	if !g.canAct() {
		return false
	}
	player := g.players[g.current]
	if player.HasPieces() || !g.board.Get(row, col).Holds(player.Color) {
		return false
	}
	if !g.board.MovePiece(col, row, newCol, newRow) {
		return false
	}
	g.selected = nil
	g.SwitchPlayer()
	return true
}

// Apply performs a move for the current player and names the failure.
func (g *Game) Apply(m Move) error {
	if g.current < 0 {
		return ErrNotStarted
	}
	if !g.board.active {
		return ErrGameOver
	}

	switch m.Kind {
	case PlacePiece:
		if !g.PlacePiece(m.To.Col, m.To.Row) {
			return fmt.Errorf("%w: piece at %s", ErrInvalidPlacement, m.To)
		}
	case PlaceBarrier:
		if !g.PlaceBarrier(m.To.Col, m.To.Row) {
			return fmt.Errorf("%w: barrier at %s", ErrInvalidPlacement, m.To)
		}
	case MovePiece:
		if !g.MovePiece(m.From.Col, m.From.Row, m.To.Col, m.To.Row) {
			return fmt.Errorf("%w: %s to %s", ErrInvalidMovement, m.From, m.To)
		}
	default:
		panic(fmt.Sprintf("unexpected move kind %d", m.Kind))
	}
	return nil
}

// ApplyTurn performs a whole turn. Either every part succeeds or the game
// is left untouched.
func (g *Game) ApplyTurn(t Turn) error {
	if !t.Action.SwitchesTurn() {
		return fmt.Errorf("%w: a turn must end with a piece action", ErrInvalidPlacement)
	}

	snapshot := g.Snapshot()
	for _, pos := range t.Barriers {
		if err := g.Apply(NewBarrier(pos)); err != nil {
			g.Restore(snapshot)
			return err
		}
	}
	if err := g.Apply(t.Action); err != nil {
		g.Restore(snapshot)
		return err
	}
	return nil
}

// SelectPiece marks one of the current player's pieces as the origin of a
// pending move. Selecting the same cell again clears the selection.
func (g *Game) SelectPiece(col, row int) bool {
	if g.current < 0 {
		return false
	}
	pos := Pos{Col: col, Row: row}
	if g.selected != nil && *g.selected == pos {
		g.UnselectPiece()
		return false
	}
	if g.board.IsAccessible(col, row) && g.board.Get(row, col).Holds(g.players[g.current].Color) {
		g.selected = &pos
		return true
	}
	return false
}

func (g *Game) UnselectPiece() {
	g.selected = nil
}

func (g *Game) SelectedPiece() (Pos, bool) {
	if g.selected == nil {
		return Pos{}, false
	}
	return *g.selected, true
}

// Tick ages every barrier by one turn and returns the cells that reopened.
func (g *Game) Tick() []Pos {
	return g.board.Tick()
}

// Barriers lists the barriers currently on the board.
func (g *Game) Barriers() []Barrier {
	return g.board.Barriers()
}

// WinLines holds every run of LineLength cells along a row, a column or a
// diagonal, in the order they are checked.
var WinLines = buildWinLines()

func buildWinLines() [][LineLength]Pos {
	// Rows, columns, down-right diagonals, down-left diagonals
	directions := []Pos{{Col: 1, Row: 0}, {Col: 0, Row: 1}, {Col: 1, Row: 1}, {Col: -1, Row: 1}}

	var lines [][LineLength]Pos
	for _, d := range directions {
		for row := 0; row < Size; row++ {
			for col := 0; col < Size; col++ {
				if !inBounds(col+d.Col*(LineLength-1), row+d.Row*(LineLength-1)) {
					continue
				}
				var line [LineLength]Pos
				for i := range line {
					line[i] = Pos{Col: col + d.Col*i, Row: row + d.Row*i}
				}
				lines = append(lines, line)
			}
		}
	}
	return lines
}

// WinnerColor returns the colour with LineLength aligned pieces, or NoColor.
func (g *Game) WinnerColor() Color {
	for _, line := range WinLines {
		first := g.board.cells[line[0].Row][line[0].Col]
		if first.Kind != PieceCell {
			continue
		}
		won := true
		for _, pos := range line[1:] {
			if !g.board.cells[pos.Row][pos.Col].Holds(first.Color) {
				won = false
				break
			}
		}
		if won {
			return first.Color
		}
	}
	return NoColor
}

// CheckWinner returns the name of the player with three in a line, or "".
func (g *Game) CheckWinner() string {
	color := g.WinnerColor()
	if color == NoColor {
		return ""
	}
	if winner := g.PlayerByColor(color); winner != nil {
		return winner.Name
	}
	return ""
}

// IsOver reports whether play has ended: the board was deactivated or a
// line has been completed.
func (g *Game) IsOver() bool {
	return !g.board.active || g.WinnerColor() != NoColor
}

func (g *Game) openCells() []Pos {
	var cells []Pos
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if g.board.isOpen(col, row) {
				cells = append(cells, Pos{Col: col, Row: row})
			}
		}
	}
	return cells
}

// GetPossiblePiecesPlaces lists every accessible empty cell, row-major.
func (g *Game) GetPossiblePiecesPlaces() []Pos {
	return g.openCells()
}

// GetPossibleBarrierPlacements lists every accessible empty cell, row-major.
func (g *Game) GetPossibleBarrierPlacements() []Pos {
	return g.openCells()
}

// GetPossiblePiecesMoves lists every one-step relocation of p's pieces onto
// an accessible empty neighbour.
func (g *Game) GetPossiblePiecesMoves(p *Player) []Move {
	var moves []Move
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if !g.board.cells[row][col].Holds(p.Color) {
				continue
			}
			for dRow := -1; dRow <= 1; dRow++ {
				for dCol := -1; dCol <= 1; dCol++ {
					if dRow == 0 && dCol == 0 {
						continue
					}
					if g.board.isOpen(col+dCol, row+dRow) {
						moves = append(moves, NewMovement(Pos{Col: col, Row: row}, Pos{Col: col + dCol, Row: row + dRow}))
					}
				}
			}
		}
	}
	return moves
}

// GetLegalMoves returns every move p could make if it were p's turn:
// placements while pieces remain, barriers while barriers remain, and
// movements once all pieces are placed.
func (g *Game) GetLegalMoves(p *Player) []Move {
	i := g.indexOf(p)
	if i < 0 {
		return nil
	}
	player := g.players[i]

	var moves []Move
	if player.HasPieces() {
		for _, pos := range g.openCells() {
			moves = append(moves, NewPlacement(pos))
		}
	}
	if player.HasBarriers() {
		for _, pos := range g.openCells() {
			moves = append(moves, NewBarrier(pos))
		}
	}
	if !player.HasPieces() {
		moves = append(moves, g.GetPossiblePiecesMoves(player)...)
	}
	return moves
}

// Hash identifies the position: cells, accessibility, stocks, side to move
// and the active flag.
func (g *Game) Hash() StateHash {
	hasher := fnv.New64a()

	// Hash current player
	binary.Write(hasher, binary.LittleEndian, int64(g.current))

	// Hash cells and accessibility
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			cell := g.board.cells[row][col]
			binary.Write(hasher, binary.LittleEndian, int64(cell.Kind))
			binary.Write(hasher, binary.LittleEndian, int64(cell.Color))
			binary.Write(hasher, binary.LittleEndian, int64(cell.Turns))
			binary.Write(hasher, binary.LittleEndian, g.board.accessible[row][col])
		}
	}

	// Hash stocks
	for _, player := range g.players {
		binary.Write(hasher, binary.LittleEndian, int64(player.pieces))
		binary.Write(hasher, binary.LittleEndian, int64(player.barriers))
	}

	binary.Write(hasher, binary.LittleEndian, g.board.active)

	return StateHash(hasher.Sum64())
}
