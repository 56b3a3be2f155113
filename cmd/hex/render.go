package main

import (
	"fmt"
	"strings"

	"hex/game"
)

// render draws the rhombus board with its boundary labels, slanting
// each row right so the hex adjacencies read correctly:
//
//	1  X - . - .   1
//	    \ / \ / \
//	   2  . - O - .   2
func render(b *game.Board) string {
	n := b.Size()
	var sb strings.Builder

	fmt.Fprintf(&sb, "\n%*s\n\n", 2*n+4, "NORTH")

	sb.WriteString("  ")
	for c := 0; c < n; c++ {
		fmt.Fprintf(&sb, "%c   ", byte('A'+c))
	}
	sb.WriteString("\n\n")

	for r := 0; r < n; r++ {
		indent := r * 2
		if r >= 9 { // Two-digit row numbers take an extra column
			indent--
		}
		sb.WriteString(strings.Repeat(" ", indent))
		fmt.Fprintf(&sb, "%d  ", r+1)

		for c := 0; c < n; c++ {
			sb.WriteString(b.Occupant(r, c).String())
			if c < n-1 {
				sb.WriteString(" - ")
			}
		}
		fmt.Fprintf(&sb, "   %d\n", r+1)

		if r < n-1 {
			sb.WriteString("  ")
			sb.WriteString(strings.Repeat(" ", r*2+1))
			sb.WriteString(" \\")
			sb.WriteString(strings.Repeat(" / \\", n-1))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(strings.Repeat(" ", 2*n+2))
	for c := 0; c < n; c++ {
		fmt.Fprintf(&sb, "%c   ", byte('A'+c))
	}
	sb.WriteString("\n\n")

	fmt.Fprintf(&sb, "%*s\n\n", 4*n+3, "SOUTH")
	return sb.String()
}
