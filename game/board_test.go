package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	t.Run("accepts sizes within range", func(t *testing.T) {
		for n := MinSize; n <= MaxSize; n++ {
			b, err := NewBoard(n)
			require.NoError(t, err)
			require.Equal(t, n, b.Size())
			require.Len(t, b.EmptyCells(), n*n, "all cells should start empty")
		}
	})

	t.Run("rejects sizes out of range", func(t *testing.T) {
		for _, n := range []int{-1, 0, 1, 12, 100} {
			_, err := NewBoard(n)
			require.ErrorIs(t, err, ErrInvalidSize)
		}
	})
}

func TestApplyMove(t *testing.T) {
	t.Run("places a stone on an empty cell", func(t *testing.T) {
		b, _ := NewBoard(3)

		require.NoError(t, b.ApplyMove(1, 2, P1))

		require.Equal(t, P1, b.Occupant(1, 2))
		require.Len(t, b.EmptyCells(), 8)
	})

	t.Run("rejects an occupied cell", func(t *testing.T) {
		b, _ := NewBoard(3)
		require.NoError(t, b.ApplyMove(0, 0, P1))

		err := b.ApplyMove(0, 0, P2)

		require.ErrorIs(t, err, ErrCellOccupied)
		require.Equal(t, P1, b.Occupant(0, 0), "occupancy should not revert")
	})

	t.Run("rejects a second application by the same side", func(t *testing.T) {
		b, _ := NewBoard(3)
		require.NoError(t, b.ApplyMove(0, 0, P1))

		require.ErrorIs(t, b.ApplyMove(0, 0, P1), ErrCellOccupied)
	})

	t.Run("rejects out-of-range cells", func(t *testing.T) {
		b, _ := NewBoard(3)

		for _, cell := range []Cell{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
			require.ErrorIs(t, b.ApplyMove(cell.Row, cell.Col, P1), ErrOutOfRange)
		}
	})
}

func TestOccupantPanicsOutOfRange(t *testing.T) {
	b, _ := NewBoard(3)

	require.Panics(t, func() { b.Occupant(3, 0) })
	require.Panics(t, func() { b.Occupant(0, -1) })
}

func TestOccupancyMonotone(t *testing.T) {
	// Once set, a cell's occupancy stays fixed for any further move
	// sequence.
	b, _ := NewBoard(4)
	require.NoError(t, b.ApplyMove(2, 2, P2))

	side := P1
	for _, cell := range b.EmptyCells() {
		require.NoError(t, b.ApplyMove(cell.Row, cell.Col, side))
		require.Equal(t, P2, b.Occupant(2, 2))
		side = side.Opponent()
	}
	require.True(t, b.Full())
}

func TestCloneIndependence(t *testing.T) {
	b, _ := NewBoard(3)
	require.NoError(t, b.ApplyMove(0, 0, P1))

	clone := b.Clone()
	for _, cell := range clone.EmptyCells() {
		require.NoError(t, clone.ApplyMove(cell.Row, cell.Col, P2))
	}

	require.Equal(t, P1, b.Occupant(0, 0))
	require.Len(t, b.EmptyCells(), 8, "mutating the clone must not touch the original")
	require.True(t, clone.Full())
}

func TestCopyFrom(t *testing.T) {
	t.Run("overwrites occupancy in place", func(t *testing.T) {
		src, _ := NewBoard(3)
		require.NoError(t, src.ApplyMove(1, 1, P1))
		dst, _ := NewBoard(3)
		require.NoError(t, dst.ApplyMove(0, 0, P2))

		dst.CopyFrom(src)

		require.Equal(t, Empty, dst.Occupant(0, 0))
		require.Equal(t, P1, dst.Occupant(1, 1))
	})

	t.Run("panics on size mismatch", func(t *testing.T) {
		src, _ := NewBoard(3)
		dst, _ := NewBoard(4)

		require.Panics(t, func() { dst.CopyFrom(src) })
	})
}

func TestStones(t *testing.T) {
	b, _ := NewBoard(3)
	require.NoError(t, b.ApplyMove(0, 0, P1))
	require.NoError(t, b.ApplyMove(0, 1, P1))
	require.NoError(t, b.ApplyMove(2, 2, P2))

	require.Equal(t, 2, b.Stones(P1))
	require.Equal(t, 1, b.Stones(P2))
}

func TestBoundaryEndpoints(t *testing.T) {
	b, _ := NewBoard(5)

	p1Start, p1End := b.BoundaryEndpoints(P1)
	p2Start, p2End := b.BoundaryEndpoints(P2)

	nodes := map[Node]bool{p1Start: true, p1End: true, p2Start: true, p2End: true}
	require.Len(t, nodes, 4, "the four virtual nodes must be distinct")
	for v := range nodes {
		require.GreaterOrEqual(t, int(v), 25, "virtual nodes live outside the cell index space")
	}

	require.Equal(t, P1, b.owner(p1Start))
	require.Equal(t, P1, b.owner(p1End))
	require.Equal(t, P2, b.owner(p2Start))
	require.Equal(t, P2, b.owner(p2End))
}

func TestNeighbors(t *testing.T) {
	b, _ := NewBoard(3)
	cellNode := func(r, c int) Node { return Node(r*3 + c) }

	t.Run("interior cell has six cell neighbors", func(t *testing.T) {
		got := b.appendNeighbors(cellNode(1, 1), nil)

		require.ElementsMatch(t, []Node{
			cellNode(0, 1), cellNode(0, 2),
			cellNode(1, 0), cellNode(1, 2),
			cellNode(2, 0), cellNode(2, 1),
		}, got)
	})

	t.Run("corner touches its two virtual edges", func(t *testing.T) {
		got := b.appendNeighbors(cellNode(0, 0), nil)

		require.ElementsMatch(t, []Node{
			cellNode(0, 1), cellNode(1, 0),
			b.north(), b.west(),
		}, got)
	})

	t.Run("virtual node touches its whole edge", func(t *testing.T) {
		got := b.appendNeighbors(b.south(), nil)

		require.ElementsMatch(t, []Node{cellNode(2, 0), cellNode(2, 1), cellNode(2, 2)}, got)
	})

	t.Run("adjacency is symmetric", func(t *testing.T) {
		contains := func(list []Node, v Node) bool {
			for _, x := range list {
				if x == v {
					return true
				}
			}
			return false
		}
		for v := Node(0); int(v) < 9+4; v++ {
			for _, w := range b.appendNeighbors(v, nil) {
				require.True(t, contains(b.appendNeighbors(w, nil), v),
					"edge (%d,%d) must exist both ways", v, w)
			}
		}
	})
}
