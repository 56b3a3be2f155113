package engine

import (
	"fmt"
	"strconv"
	"strings"

	"hex/game"
)

// ParseCoord converts a <letter><digits> token like "A1" or "k11"
// into a 0-based cell on a board of size n. The letter is the column,
// the digits are the 1-based row.
func ParseCoord(token string, n int) (game.Cell, error) {
	token = strings.ToUpper(strings.TrimSpace(token))
	if len(token) < 2 || len(token) > 3 {
		return game.Cell{}, fmt.Errorf("invalid coordinate %q", token)
	}

	col := int(token[0] - 'A')
	if col < 0 || col >= n {
		return game.Cell{}, fmt.Errorf("column %q out of range for size %d", token[:1], n)
	}

	row, err := strconv.Atoi(token[1:])
	if err != nil {
		return game.Cell{}, fmt.Errorf("invalid row in %q", token)
	}
	if row < 1 || row > n {
		return game.Cell{}, fmt.Errorf("row %d out of range for size %d", row, n)
	}

	return game.Cell{Row: row - 1, Col: col}, nil
}

// FormatCoord renders a cell in the letter+digit notation, e.g.
// (0,0) -> "A1".
func FormatCoord(cell game.Cell) string {
	return fmt.Sprintf("%c%d", rune('A'+cell.Col), cell.Row+1)
}
