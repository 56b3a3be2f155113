package experiments

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hex/experiments/metrics"
)

func TestPlayGame(t *testing.T) {
	matchup := Matchup{
		Agent1: metrics.AgentConfig{ID: 1, Simulations: 20, Goroutines: 1},
		Agent2: metrics.AgentConfig{ID: 2, Simulations: 20, Goroutines: 1},
	}

	record, moves, err := playGame(7, 3, matchup)

	require.NoError(t, err)
	require.Equal(t, 7, record.ID)
	require.Equal(t, 1, record.Agent1)
	require.Equal(t, 2, record.Agent2)
	require.NotEmpty(t, record.GameID)
	require.Contains(t, []string{"X", "O"}, record.Winner)
	require.Equal(t, record.TotalMoves, len(moves))
	require.GreaterOrEqual(t, record.TotalMoves, 3, "a winning chain on size 3 needs three stones")
	for _, m := range moves {
		require.Equal(t, 7, m.Game)
		require.Equal(t, 20, m.Simulations)
	}
}
