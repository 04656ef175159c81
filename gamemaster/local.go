package gamemaster

import (
	"fmt"
	"sync"

	"morris/game"
)

// Update describes one applied move or pass.
type Update struct {
	Step    int // Completed turns before this update
	Player  string
	Move    game.Move
	Passed  bool
	Expired []game.Pos // Barriers that reopened after the move
	Winner  string
}

// UpdateGetter returns the next update not yet seen by its caller, if any.
type UpdateGetter func() (Update, bool)

// Session referees a started game one move at a time: it applies moves for
// the current player, ends the game on a completed line and ages barriers
// whenever the turn passes.
type Session struct {
	mu      sync.Mutex
	game    *game.Game
	history []Update
	step    int
	over    bool
}

func NewSession(g *game.Game) *Session {
	if g.CurrentPlayer() == nil {
		g.Start()
	}
	return &Session{game: g}
}

func (s *Session) Game() *game.Game {
	return s.game
}

// Init returns the game and a getter that walks the updates in order.
func (s *Session) Init() (*game.Game, UpdateGetter) {
	next := 0
	return s.game, func() (Update, bool) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if next >= len(s.history) {
			return Update{}, false
		}
		u := s.history[next]
		next++
		return u, true
	}
}

func (s *Session) Over() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.over
}

// Step returns the number of completed turns.
func (s *Session) Step() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

// Play applies a single move for the current player.
func (s *Session) Play(move game.Move) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.over {
		return game.ErrGameOver
	}
	player := s.game.CurrentPlayer()
	if err := s.game.Apply(move); err != nil {
		return err
	}
	s.settle(Update{Player: player.Name, Move: move}, move.SwitchesTurn())
	return nil
}

// PlayTurn applies a whole turn for the current player. Nothing is applied
// if any part of it is illegal.
func (s *Session) PlayTurn(turn game.Turn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.over {
		return game.ErrGameOver
	}
	player := s.game.CurrentPlayer()
	if err := s.game.ApplyTurn(turn); err != nil {
		return err
	}
	for _, pos := range turn.Barriers {
		s.history = append(s.history, Update{Step: s.step, Player: player.Name, Move: game.NewBarrier(pos)})
	}
	s.settle(Update{Player: player.Name, Move: turn.Action}, true)
	return nil
}

// Pass hands the turn over without a move.
func (s *Session) Pass() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.over {
		return game.ErrGameOver
	}
	player := s.game.CurrentPlayer()
	s.game.SwitchPlayer()
	s.settle(Update{Player: player.Name, Passed: true}, true)
	return nil
}

func (s *Session) settle(u Update, turnPassed bool) {
	u.Step = s.step
	if winner := s.game.CheckWinner(); winner != "" {
		s.game.Board().Deactivate()
		s.over = true
		u.Winner = winner
	}
	if turnPassed {
		s.step++
		if !s.over {
			u.Expired = s.game.Tick()
		}
	}
	s.history = append(s.history, u)
}

func (u Update) String() string {
	switch {
	case u.Passed:
		return fmt.Sprintf("%s passes", u.Player)
	case u.Winner != "":
		return fmt.Sprintf("%s plays %s and wins", u.Player, u.Move)
	default:
		return fmt.Sprintf("%s plays %s", u.Player, u.Move)
	}
}
