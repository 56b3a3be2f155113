package engine

import (
	"errors"
	"fmt"
	"strings"

	"hex/experiments/metrics"
	"hex/game"
	"hex/searcher"
)

// ErrQuit is returned by a human player who entered the quit command.
var ErrQuit = errors.New("player quit")

// Player produces the next move for one side. The board argument is
// read-only; the engine applies the returned cell itself.
type Player interface {
	Name() string
	Side() game.Occupancy
	NextMove(b *game.Board) (game.Cell, metrics.SearchMetric, error)
}

// ComputerPlayer answers with the evaluator's best move.
type ComputerPlayer struct {
	name      string
	side      game.Occupancy
	evaluator *searcher.Evaluator
}

func NewComputerPlayer(name string, side game.Occupancy, evaluator *searcher.Evaluator) *ComputerPlayer {
	return &ComputerPlayer{name: name, side: side, evaluator: evaluator}
}

func (p *ComputerPlayer) Name() string         { return p.name }
func (p *ComputerPlayer) Side() game.Occupancy { return p.side }

func (p *ComputerPlayer) NextMove(b *game.Board) (game.Cell, metrics.SearchMetric, error) {
	return p.evaluator.Search(b, p.side)
}

// HumanPlayer reads coordinate tokens from a prompt function until it
// gets a legal move. Entering -1 quits the game.
type HumanPlayer struct {
	name   string
	side   game.Occupancy
	prompt func(question string) (string, error)
	notify func(message string)
}

func NewHumanPlayer(name string, side game.Occupancy,
	prompt func(question string) (string, error), notify func(message string)) *HumanPlayer {
	if notify == nil {
		notify = func(string) {}
	}
	return &HumanPlayer{name: name, side: side, prompt: prompt, notify: notify}
}

func (p *HumanPlayer) Name() string         { return p.name }
func (p *HumanPlayer) Side() game.Occupancy { return p.side }

func (p *HumanPlayer) NextMove(b *game.Board) (game.Cell, metrics.SearchMetric, error) {
	for {
		token, err := p.prompt(fmt.Sprintf("%s, where would you like to place your move? (i.e. A1, B2, etc.): ", p.name))
		if err != nil {
			return game.Cell{}, metrics.SearchMetric{}, err
		}
		token = strings.TrimSpace(token)
		if token == "-1" {
			return game.Cell{}, metrics.SearchMetric{}, ErrQuit
		}

		cell, err := ParseCoord(token, b.Size())
		if err != nil {
			p.notify(fmt.Sprintf("%s is not a valid entry! Entry must be within a size of %d", token, b.Size()))
			continue
		}
		if b.Occupant(cell.Row, cell.Col) != game.Empty {
			p.notify(fmt.Sprintf("%s is already occupied. Choose another entry.", token))
			continue
		}
		return cell, metrics.SearchMetric{}, nil
	}
}
