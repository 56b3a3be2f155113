package game

import (
	"errors"
	"fmt"
)

// Board size limits. The rhombic board is N x N with 2 <= N <= 11, so
// column letters stay within A..K.
const (
	MinSize = 2
	MaxSize = 11
)

var (
	ErrInvalidSize  = errors.New("board size out of range")
	ErrOutOfRange   = errors.New("cell out of range")
	ErrCellOccupied = errors.New("cell already occupied")
)

// Occupancy marks who holds a cell. P1 connects north to south, P2
// connects west to east.
type Occupancy int8

const (
	Empty Occupancy = iota
	P1
	P2
)

func (o Occupancy) String() string {
	switch o {
	case P1:
		return "X"
	case P2:
		return "O"
	default:
		return "."
	}
}

// Opponent returns the other side. Calling it on Empty is a
// programming error.
func (o Occupancy) Opponent() Occupancy {
	switch o {
	case P1:
		return P2
	case P2:
		return P1
	default:
		panic("game: Empty has no opponent")
	}
}

// Cell is a board coordinate, 0-based.
type Cell struct {
	Row int
	Col int
}

// Node identifies a vertex of the occupancy graph: real cells are
// r*n+c, the four virtual boundary nodes sit right after the last
// real cell.
type Node int

// Board is the full game state. Occupancy is the only thing that
// changes after construction; adjacency is derived from coordinates,
// and the four virtual nodes keep their owner for the life of the
// board.
type Board struct {
	n     int
	cells []Occupancy
}

// NewBoard returns an empty n x n board.
func NewBoard(n int) (*Board, error) {
	if n < MinSize || n > MaxSize {
		return nil, fmt.Errorf("%w: %d not in [%d,%d]", ErrInvalidSize, n, MinSize, MaxSize)
	}
	return &Board{
		n:     n,
		cells: make([]Occupancy, n*n),
	}, nil
}

// Size returns the side length N.
func (b *Board) Size() int {
	return b.n
}

func (b *Board) inRange(r, c int) bool {
	return r >= 0 && r < b.n && c >= 0 && c < b.n
}

// Occupant returns the occupancy of (r,c). Out-of-range coordinates
// are a programming error.
func (b *Board) Occupant(r, c int) Occupancy {
	if !b.inRange(r, c) {
		panic(fmt.Sprintf("game: cell (%d,%d) out of range for size %d", r, c, b.n))
	}
	return b.cells[r*b.n+c]
}

// ApplyMove places side on (r,c). It rejects occupied or
// out-of-range targets; occupancy never reverts.
func (b *Board) ApplyMove(r, c int, side Occupancy) error {
	if side != P1 && side != P2 {
		panic("game: move must be P1 or P2")
	}
	if !b.inRange(r, c) {
		return fmt.Errorf("%w: (%d,%d) on size %d", ErrOutOfRange, r, c, b.n)
	}
	i := r*b.n + c
	if b.cells[i] != Empty {
		return fmt.Errorf("%w: (%d,%d)", ErrCellOccupied, r, c)
	}
	b.cells[i] = side
	return nil
}

// EmptyCells returns every unoccupied cell, in no promised order.
func (b *Board) EmptyCells() []Cell {
	cells := make([]Cell, 0, len(b.cells))
	for i, o := range b.cells {
		if o == Empty {
			cells = append(cells, Cell{Row: i / b.n, Col: i % b.n})
		}
	}
	return cells
}

// Full reports whether no empty cell remains.
func (b *Board) Full() bool {
	for _, o := range b.cells {
		if o == Empty {
			return false
		}
	}
	return true
}

// Stones counts the cells held by side.
func (b *Board) Stones(side Occupancy) int {
	count := 0
	for _, o := range b.cells {
		if o == side {
			count++
		}
	}
	return count
}

// Clone returns a deep, independent copy.
func (b *Board) Clone() *Board {
	cells := make([]Occupancy, len(b.cells))
	copy(cells, b.cells)
	return &Board{n: b.n, cells: cells}
}

// CopyFrom overwrites b with src's occupancy without allocating.
// Both boards must have the same size.
func (b *Board) CopyFrom(src *Board) {
	if b.n != src.n {
		panic(fmt.Sprintf("game: cannot copy size %d board into size %d board", src.n, b.n))
	}
	copy(b.cells, src.cells)
}

// Virtual boundary nodes, numbered after the real cells.
func (b *Board) north() Node { return Node(b.n * b.n) }
func (b *Board) south() Node { return Node(b.n*b.n + 1) }
func (b *Board) west() Node  { return Node(b.n*b.n + 2) }
func (b *Board) east() Node  { return Node(b.n*b.n + 3) }

// BoundaryEndpoints returns the start and end virtual nodes for side:
// (north, south) for P1, (west, east) for P2.
func (b *Board) BoundaryEndpoints(side Occupancy) (Node, Node) {
	if side == P1 {
		return b.north(), b.south()
	}
	return b.west(), b.east()
}

// owner resolves occupancy for graph nodes, virtuals included. North
// and south are permanently P1, west and east permanently P2.
func (b *Board) owner(v Node) Occupancy {
	switch {
	case int(v) < b.n*b.n:
		return b.cells[v]
	case v == b.north(), v == b.south():
		return P1
	default:
		return P2
	}
}

// appendNeighbors appends the graph neighbors of v to buf and returns
// it. Real cells get up to six hex neighbors plus any adjacent
// virtual; a virtual node gets its whole edge row or column.
func (b *Board) appendNeighbors(v Node, buf []Node) []Node {
	n := b.n
	if int(v) >= n*n {
		switch v {
		case b.north():
			for c := 0; c < n; c++ {
				buf = append(buf, Node(c))
			}
		case b.south():
			for c := 0; c < n; c++ {
				buf = append(buf, Node((n-1)*n+c))
			}
		case b.west():
			for r := 0; r < n; r++ {
				buf = append(buf, Node(r*n))
			}
		case b.east():
			for r := 0; r < n; r++ {
				buf = append(buf, Node(r*n+n-1))
			}
		}
		return buf
	}

	r, c := int(v)/n, int(v)%n
	if r > 0 {
		buf = append(buf, v-Node(n)) // up left
		if c < n-1 {
			buf = append(buf, v-Node(n)+1) // up right
		}
	}
	if c > 0 {
		buf = append(buf, v-1) // left
		if r < n-1 {
			buf = append(buf, v+Node(n)-1) // down left
		}
	}
	if c < n-1 {
		buf = append(buf, v+1) // right
	}
	if r < n-1 {
		buf = append(buf, v+Node(n)) // down right
	}

	if r == 0 {
		buf = append(buf, b.north())
	}
	if r == n-1 {
		buf = append(buf, b.south())
	}
	if c == 0 {
		buf = append(buf, b.west())
	}
	if c == n-1 {
		buf = append(buf, b.east())
	}
	return buf
}
