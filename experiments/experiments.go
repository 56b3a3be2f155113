package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"hex/engine"
	"hex/experiments/metrics"
	"hex/game"
	"hex/searcher"
)

// Matchup pairs the config playing P1 with the config playing P2.
type Matchup struct {
	Agent1 metrics.AgentConfig
	Agent2 metrics.AgentConfig
}

// RunStrengthExperiment plays games between agents with increasing
// playout budgets against a fixed baseline, to measure how much
// simulations buy in playing strength.
func RunStrengthExperiment(boardSize, gamesPerMatchup int) error {
	baseline := metrics.AgentConfig{ID: 0, Simulations: 100, Goroutines: 1}
	configs := []metrics.AgentConfig{
		{ID: 1, Simulations: 100, Goroutines: 1},
		{ID: 2, Simulations: 300, Goroutines: 1},
		{ID: 3, Simulations: 1000, Goroutines: 1},
	}

	matchups := []Matchup{}
	for _, config := range configs {
		matchups = append(matchups, Matchup{Agent1: baseline, Agent2: config})
	}

	return run("strength", boardSize, gamesPerMatchup, append(configs, baseline), matchups)
}

// RunSpeedupExperiment plays same-strength agents against each other
// while varying the worker count, to measure playout throughput.
func RunSpeedupExperiment(boardSize, gamesPerMatchup int) error {
	configs := []metrics.AgentConfig{
		{ID: 1, Simulations: 1000, Goroutines: 1},
		{ID: 2, Simulations: 1000, Goroutines: 4},
		{ID: 3, Simulations: 1000, Goroutines: 8},
		{ID: 4, Simulations: 1000, Goroutines: 16},
	}

	matchups := []Matchup{}
	for _, config := range configs {
		matchups = append(matchups, Matchup{Agent1: config, Agent2: config})
	}

	return run("speedup", boardSize, gamesPerMatchup, configs, matchups)
}

func run(name string, boardSize, gamesPerMatchup int, configs []metrics.AgentConfig, matchups []Matchup) error {
	writer, err := metrics.NewWriter(name)
	if err != nil {
		return err
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return err
	}

	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord

	gameID := 0
	for _, matchup := range matchups {
		log.Info().Str("experiment", name).
			Int("agent1", matchup.Agent1.ID).Int("agent2", matchup.Agent2.ID).
			Msg("matchup started")

		for i := 0; i < gamesPerMatchup; i++ {
			gameID++
			record, moves, err := playGame(gameID, boardSize, matchup)
			if err != nil {
				return fmt.Errorf("game %d: %w", gameID, err)
			}
			gameRecords = append(gameRecords, record)
			moveRecords = append(moveRecords, moves...)

			log.Info().Str("experiment", name).Int("game", gameID).
				Str("winner", record.Winner).Int("moves", record.TotalMoves).
				Msg("game over")
		}
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	return writer.WriteMoveRecords(moveRecords)
}

func playGame(id, boardSize int, matchup Matchup) (metrics.GameRecord, []metrics.MoveRecord, error) {
	board, err := game.NewBoard(boardSize)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	p1 := engine.NewComputerPlayer("Agent1", game.P1, newEvaluator(matchup.Agent1))
	p2 := engine.NewComputerPlayer("Agent2", game.P2, newEvaluator(matchup.Agent2))
	e := engine.NewLocalEngine(board, p1, p2)

	start := time.Now()
	winner, moveMetrics, err := e.Run()
	end := time.Now()
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	record := metrics.GameRecord{
		ID:     id,
		Agent1: matchup.Agent1.ID,
		Agent2: matchup.Agent2.ID,
		GameMetric: metrics.GameMetric{
			GameID:         e.ID,
			StartingPlayer: 1,
			Winner:         winner.String(),
			StartTime:      start,
			EndTime:        end,
			Duration:       end.Sub(start),
			TotalMoves:     len(moveMetrics),
		},
	}

	moves := make([]metrics.MoveRecord, len(moveMetrics))
	for i, m := range moveMetrics {
		moves[i] = metrics.MoveRecord{Game: id, MoveMetric: m}
	}
	return record, moves, nil
}

func newEvaluator(config metrics.AgentConfig) *searcher.Evaluator {
	return searcher.NewEvaluator(
		searcher.WithSimulations(config.Simulations),
		searcher.WithGoroutines(config.Goroutines),
		searcher.WithRand(rand.New(rand.NewSource(uint64(time.Now().UnixNano())))),
		searcher.WithMetrics(),
	)
}
