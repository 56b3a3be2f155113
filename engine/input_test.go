package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hex/game"
)

func TestParseCoord(t *testing.T) {
	t.Run("valid tokens", func(t *testing.T) {
		tests := []struct {
			token string
			n     int
			want  game.Cell
		}{
			{"A1", 3, game.Cell{Row: 0, Col: 0}},
			{"a1", 3, game.Cell{Row: 0, Col: 0}},
			{"C3", 3, game.Cell{Row: 2, Col: 2}},
			{"B2", 11, game.Cell{Row: 1, Col: 1}},
			{"K11", 11, game.Cell{Row: 10, Col: 10}},
			{"A10", 10, game.Cell{Row: 9, Col: 0}},
			{" D4 ", 5, game.Cell{Row: 3, Col: 3}},
		}
		for _, tt := range tests {
			got, err := ParseCoord(tt.token, tt.n)
			require.NoError(t, err, "token %q", tt.token)
			require.Equal(t, tt.want, got, "token %q", tt.token)
		}
	})

	t.Run("invalid tokens", func(t *testing.T) {
		tests := []struct {
			token string
			n     int
		}{
			{"", 3},
			{"A", 3},
			{"1A", 3},
			{"AK", 3},
			{"A0", 3},
			{"A4", 3},   // row past the board
			{"D1", 3},   // column past the board
			{"A12", 11}, // row past the max board
			{"L1", 11},  // column past A..K
			{"A100", 11},
		}
		for _, tt := range tests {
			_, err := ParseCoord(tt.token, tt.n)
			require.Error(t, err, "token %q", tt.token)
		}
	})
}

func TestFormatCoord(t *testing.T) {
	require.Equal(t, "A1", FormatCoord(game.Cell{Row: 0, Col: 0}))
	require.Equal(t, "C2", FormatCoord(game.Cell{Row: 1, Col: 2}))
	require.Equal(t, "K11", FormatCoord(game.Cell{Row: 10, Col: 10}))
}

func TestCoordRoundTrip(t *testing.T) {
	for r := 0; r < 11; r++ {
		for c := 0; c < 11; c++ {
			cell := game.Cell{Row: r, Col: c}
			got, err := ParseCoord(FormatCoord(cell), 11)
			require.NoError(t, err)
			require.Equal(t, cell, got)
		}
	}
}
