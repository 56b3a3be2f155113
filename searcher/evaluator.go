package searcher

import (
	"errors"
	"sync"
	"time"

	"golang.org/x/exp/rand"

	"hex/experiments/metrics"
	"hex/game"
)

// DefaultSimulations is the playout budget per candidate cell.
const DefaultSimulations = 1000

var ErrNoLegalMoves = errors.New("no legal moves: board is full")

type Option func(e *Evaluator)

// Evaluator picks moves by flat Monte Carlo: every empty cell is a
// candidate, each candidate is scored by random playouts to a full
// board, and the best observed win rate wins. No tree, no reuse
// between calls.
type Evaluator struct {
	sims       int
	goroutines int
	rng        *rand.Rand
	metrics    metrics.Collector
}

// WithSimulations sets the playout budget per candidate.
func WithSimulations(sims int) Option {
	return func(e *Evaluator) {
		if sims > 0 {
			e.sims = sims
		}
	}
}

// WithGoroutines runs each candidate's playouts on this many workers.
// More than one worker trades fixed-seed reproducibility for speed.
func WithGoroutines(goroutines int) Option {
	return func(e *Evaluator) {
		if goroutines > 0 {
			e.goroutines = goroutines
		}
	}
}

// WithRand injects the PRNG. Fixed seeds give fixed move choices when
// running on a single goroutine.
func WithRand(rng *rand.Rand) Option {
	return func(e *Evaluator) {
		if rng != nil {
			e.rng = rng
		}
	}
}

func WithMetrics() Option {
	return func(e *Evaluator) {
		e.metrics = metrics.NewCollector()
	}
}

func NewEvaluator(options ...Option) *Evaluator {
	e := &Evaluator{ // Default values
		sims:       DefaultSimulations,
		goroutines: 1,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return e
}

// ChooseMove returns the empty cell with the best estimated winning
// probability for side. The board must have at least one empty cell.
func (e *Evaluator) ChooseMove(b *game.Board, side game.Occupancy) (game.Cell, error) {
	move, _, err := e.Search(b, side)
	return move, err
}

// Search is ChooseMove plus the collected search metrics.
func (e *Evaluator) Search(b *game.Board, side game.Occupancy) (game.Cell, metrics.SearchMetric, error) {
	candidates := b.EmptyCells()
	if len(candidates) == 0 {
		return game.Cell{}, metrics.SearchMetric{}, ErrNoLegalMoves
	}

	// A fresh permutation per call: with the strict-improvement rule
	// the candidate order decides ties, so shuffling keeps the choice
	// unbiased over symmetric positions.
	e.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	e.metrics.Start(e.goroutines, e.sims)

	bestProb := -1.0
	bestMove := candidates[0]
	scratch := newPlayout(b)

	for _, candidate := range candidates {
		e.metrics.AddCandidate()

		clone := b.Clone()
		if err := clone.ApplyMove(candidate.Row, candidate.Col, side); err != nil {
			panic(err) // candidate came from EmptyCells
		}

		// A move that completes a chain is a certain win; no later
		// candidate can strictly beat a rate of 1.0.
		if game.HasWinningChain(clone, side) {
			bestMove = candidate
			break
		}

		var rate float64
		if e.goroutines > 1 {
			rate = e.sampleParallel(clone, side, bestProb)
		} else {
			rate = e.sample(clone, side, bestProb, scratch)
		}
		if rate > bestProb {
			bestProb = rate
			bestMove = candidate
		}
	}

	return bestMove, e.metrics.Complete(), nil
}

// sample estimates the win rate of the position in clone (side has
// just moved) with up to e.sims playouts. It gives up as soon as the
// best final rate still reachable cannot strictly beat bestProb.
func (e *Evaluator) sample(clone *game.Board, side game.Occupancy, bestProb float64, scratch *playout) float64 {
	empties := clone.EmptyCells()

	wins := 0
	for k := 0; k < e.sims; k++ {
		if float64(wins+e.sims-k) <= bestProb*float64(e.sims) {
			e.metrics.AddCutoff()
			break
		}
		if scratch.run(clone, empties, side, e.rng) {
			wins++
		}
		e.metrics.AddPlayout()
	}
	return float64(wins) / float64(e.sims)
}

// sampleParallel distributes one candidate's playouts over
// e.goroutines workers with independent PRNGs, summing wins. The
// cutoff bound is re-checked under the shared tally lock so batching
// never runs a playout the sequential rule would have skipped.
func (e *Evaluator) sampleParallel(clone *game.Board, side game.Occupancy, bestProb float64) float64 {
	task := make(chan struct{}, e.sims)
	for i := 0; i < e.sims; i++ {
		task <- struct{}{}
	}
	close(task)

	var mu sync.Mutex
	wins, done := 0, 0
	cut := false

	var wg sync.WaitGroup
	for i := 0; i < e.goroutines; i++ {
		seed := e.rng.Uint64()
		wg.Add(1)
		go func() {
			defer wg.Done()

			rng := rand.New(rand.NewSource(seed))
			scratch := newPlayout(clone)
			empties := clone.EmptyCells()

			for range task {
				mu.Lock()
				if cut {
					mu.Unlock()
					return
				}
				if float64(wins+e.sims-done) <= bestProb*float64(e.sims) {
					cut = true
					mu.Unlock()
					return
				}
				mu.Unlock()

				won := scratch.run(clone, empties, side, rng)

				mu.Lock()
				done++
				if won {
					wins++
				}
				mu.Unlock()
				e.metrics.AddPlayout()
			}
		}()
	}
	wg.Wait()

	if cut {
		e.metrics.AddCutoff()
	}
	return float64(wins) / float64(e.sims)
}
