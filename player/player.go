package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"morris/experiments/metrics"
	"morris/game"
)

// ErrQuit is returned when the player asks to leave the game.
var ErrQuit = errors.New("player quit")

const usage = `commands:
  place <col> <row>                 place a piece and end the turn
  barrier <col> <row>               place a barrier, the turn goes on
  select <col> <row>                select one of your pieces (again to unselect)
  move <col> <row>                  move the selected piece and end the turn
  move <col> <row> <newCol> <newRow> move a piece and end the turn
  board                             show the board
  help                              show this message
  quit                              leave the game
`

// Console is a human player typing commands on a terminal.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// FindTurn reads commands until the player completes a turn. Barriers and
// selections are tried on a copy of the game, so nothing is applied to g.
func (c *Console) FindTurn(g *game.Game) (game.Turn, metrics.SearchMetric, error) {
	if g.CurrentPlayer() == nil {
		return game.Turn{}, metrics.SearchMetric{}, game.ErrNotStarted
	}

	trial := g.Copy()
	me := trial.CurrentPlayer()
	if !hasPieceAction(trial, me) {
		fmt.Fprintf(c.out, "%s has no legal move and passes\n", me)
		return game.Turn{}, metrics.SearchMetric{}, game.ErrNoLegalMove
	}
	var turn game.Turn

	fmt.Fprint(c.out, trial.Board().String())
	for {
		fmt.Fprintf(c.out, "%s [pieces %d, barriers %d]> ", me, me.Pieces(), me.Barriers())
		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return game.Turn{}, metrics.SearchMetric{}, err
			}
			return game.Turn{}, metrics.SearchMetric{}, io.EOF
		}

		fields := strings.Fields(c.in.Text())
		if len(fields) == 0 {
			continue
		}
		args, err := parseCoords(fields[1:])
		if err != nil {
			fmt.Fprintln(c.out, err)
			continue
		}

		switch strings.ToLower(fields[0]) {
		case "help", "?":
			fmt.Fprint(c.out, usage)
		case "board":
			fmt.Fprint(c.out, trial.Board().String())
		case "quit", "exit":
			return game.Turn{}, metrics.SearchMetric{}, ErrQuit
		case "barrier":
			if len(args) != 2 {
				fmt.Fprintln(c.out, "usage: barrier <col> <row>")
				continue
			}
			pos := game.Pos{Col: args[0], Row: args[1]}
			snapshot := trial.Snapshot()
			if err := trial.Apply(game.NewBarrier(pos)); err != nil {
				fmt.Fprintln(c.out, err)
				continue
			}
			if !hasPieceAction(trial, me) {
				trial.Restore(snapshot)
				fmt.Fprintf(c.out, "a barrier at %s would leave you without a move\n", pos)
				continue
			}
			turn.Barriers = append(turn.Barriers, pos)
			fmt.Fprint(c.out, trial.Board().String())
		case "select":
			if len(args) != 2 {
				fmt.Fprintln(c.out, "usage: select <col> <row>")
				continue
			}
			if trial.SelectPiece(args[0], args[1]) {
				fmt.Fprintf(c.out, "selected %s\n", game.Pos{Col: args[0], Row: args[1]})
			} else {
				fmt.Fprintln(c.out, "no piece selected")
			}
		case "place":
			if len(args) != 2 {
				fmt.Fprintln(c.out, "usage: place <col> <row>")
				continue
			}
			turn.Action = game.NewPlacement(game.Pos{Col: args[0], Row: args[1]})
			if err := trial.Apply(turn.Action); err != nil {
				fmt.Fprintln(c.out, err)
				continue
			}
			return turn, metrics.SearchMetric{}, nil
		case "move":
			var from, to game.Pos
			switch len(args) {
			case 2:
				selected, ok := trial.SelectedPiece()
				if !ok {
					fmt.Fprintln(c.out, "select a piece first")
					continue
				}
				from, to = selected, game.Pos{Col: args[0], Row: args[1]}
			case 4:
				from, to = game.Pos{Col: args[0], Row: args[1]}, game.Pos{Col: args[2], Row: args[3]}
			default:
				fmt.Fprintln(c.out, "usage: move <col> <row> [<newCol> <newRow>]")
				continue
			}
			turn.Action = game.NewMovement(from, to)
			if err := trial.Apply(turn.Action); err != nil {
				fmt.Fprintln(c.out, err)
				continue
			}
			return turn, metrics.SearchMetric{}, nil
		default:
			fmt.Fprintf(c.out, "unknown command %q, type help\n", fields[0])
		}
	}
}

func hasPieceAction(g *game.Game, p *game.Player) bool {
	for _, m := range g.GetLegalMoves(p) {
		if m.SwitchesTurn() {
			return true
		}
	}
	return false
}

func parseCoords(fields []string) ([]int, error) {
	coords := make([]int, len(fields))
	for i, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("not a coordinate: %q", field)
		}
		coords[i] = n
	}
	return coords, nil
}
