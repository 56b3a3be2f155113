package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric summarizes one move search.
type SearchMetric struct {
	Goroutines  int
	Simulations int // Playout budget per candidate
	Candidates  int // Candidate cells examined
	Playouts    int // Playouts actually run
	Cutoffs     int // Candidates abandoned by the early cutoff
	Duration    time.Duration
}

type MoveMetric struct {
	Step   int
	Player int // Player ID
	SearchMetric
}

type GameMetric struct {
	GameID         string // Engine game ID
	StartingPlayer int    // Player ID
	Winner         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(goroutines, simulations int)
	AddCandidate()
	AddPlayout()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	goroutines  int
	simulations int
	startTime   time.Time
	candidates  atomic.Int32
	playouts    atomic.Int64
	cutoffs     atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines, simulations int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.simulations = simulations
	m.candidates.Store(0)
	m.playouts.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) AddCandidate() {
	m.candidates.Add(1)
}

func (m *collector) AddPlayout() {
	m.playouts.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines:  m.goroutines,
		Simulations: m.simulations,
		Candidates:  int(m.candidates.Load()),
		Playouts:    int(m.playouts.Load()),
		Cutoffs:     int(m.cutoffs.Load()),
		Duration:    time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, simulations int) {}
func (m *dummyCollector) AddCandidate()                     {}
func (m *dummyCollector) AddPlayout()                       {}
func (m *dummyCollector) AddCutoff()                        {}
func (m *dummyCollector) Complete() SearchMetric            { return SearchMetric{} }
