package searcher

import (
	"golang.org/x/exp/rand"

	"hex/game"
)

// playout owns the scratch buffers for running simulations: a board
// to overwrite and a permutation slice, both reused across every
// playout of a ChooseMove call.
type playout struct {
	scratch *game.Board
	perm    []game.Cell
}

func newPlayout(b *game.Board) *playout {
	n := b.Size()
	return &playout{
		scratch: b.Clone(),
		perm:    make([]game.Cell, 0, n*n),
	}
}

// run plays one random completion of base and reports whether side
// wins it. side has just moved on base, so the opponent places first.
// A shuffled permutation of the empties stands in for uniform random
// move selection: each cell is touched exactly once, so no legality
// checks are needed, and the winner is decided in a single oracle
// query once the board is full.
func (p *playout) run(base *game.Board, empties []game.Cell, side game.Occupancy, rng *rand.Rand) bool {
	p.scratch.CopyFrom(base)
	p.perm = append(p.perm[:0], empties...)
	rng.Shuffle(len(p.perm), func(i, j int) {
		p.perm[i], p.perm[j] = p.perm[j], p.perm[i]
	})

	mover := side.Opponent()
	for _, cell := range p.perm {
		if err := p.scratch.ApplyMove(cell.Row, cell.Col, mover); err != nil {
			panic(err) // perm holds each empty cell exactly once
		}
		mover = mover.Opponent()
	}

	return game.Winner(p.scratch, side) == side
}
