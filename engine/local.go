package engine

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"hex/experiments/metrics"
	"hex/game"
)

// MaxMoves bounds the turn loop. A Hex board of the maximum size
// fills after N*N moves, so the bound only trips on a broken player.
const MaxMoves = game.MaxSize * game.MaxSize

// Engine owns the live board and alternates between the two players
// until one of them completes a chain. Each game carries a unique ID
// that tags its log lines and metric records.
type Engine struct {
	ID      string
	Board   *game.Board
	Players [2]Player // P1 first; P1 always opens

	// OnMove, when set, is called after every applied move. The
	// terminal frontend uses it to redraw the board.
	OnMove func(b *game.Board, p Player, cell game.Cell)
}

// NewLocalEngine wires a game between p1 (playing P1, north-south)
// and p2 (playing P2, west-east).
func NewLocalEngine(board *game.Board, p1, p2 Player) *Engine {
	if p1.Side() != game.P1 || p2.Side() != game.P2 {
		panic("engine: players wired to the wrong sides")
	}
	return &Engine{
		ID:      uuid.NewString(),
		Board:   board,
		Players: [2]Player{p1, p2},
	}
}

// Run executes the game loop until a winner is found. It returns the
// winning side and the per-move search metrics. A player error (for
// example ErrQuit) ends the game with no winner.
func (e *Engine) Run() (game.Occupancy, []metrics.MoveMetric, error) {
	log.Info().Str("game", e.ID).Int("size", e.Board.Size()).
		Str("p1", e.Players[0].Name()).Str("p2", e.Players[1].Name()).
		Msg("game started")

	var moveMetrics []metrics.MoveMetric
	mover := 0
	for step := 1; step <= MaxMoves; step++ {
		player := e.Players[mover]
		side := player.Side()

		cell, metric, err := player.NextMove(e.Board)
		if err != nil {
			return game.Empty, moveMetrics, fmt.Errorf("%s: %w", player.Name(), err)
		}
		if err := e.Board.ApplyMove(cell.Row, cell.Col, side); err != nil {
			// Players must hand back empty in-range cells.
			panic(fmt.Sprintf("engine: %s returned illegal move %s: %v", player.Name(), FormatCoord(cell), err))
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       mover + 1,
			SearchMetric: metric,
		})
		log.Info().Str("game", e.ID).Int("step", step).
			Str("player", player.Name()).Str("move", FormatCoord(cell)).
			Msg("move applied")

		if e.OnMove != nil {
			e.OnMove(e.Board, player, cell)
		}

		// A winning chain needs at least N stones, so skip the oracle
		// until the mover has that many.
		if e.Board.Stones(side) >= e.Board.Size() {
			if winner := game.Winner(e.Board, side); winner != game.Empty {
				log.Info().Str("game", e.ID).Int("moves", step).
					Stringer("winner", winner).Msg("game over")
				return winner, moveMetrics, nil
			}
		}

		mover = 1 - mover
	}

	panic("engine: exceeded the move bound without a winner")
}
