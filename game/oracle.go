package game

// HasWinningChain reports whether side has a path of its own stones
// from its start boundary to its end boundary. Just BFS over the
// occupancy graph: an edge (u,v) is walkable when v is a real cell
// held by side, or the matching end virtual.
func HasWinningChain(b *Board, side Occupancy) bool {
	start, end := b.BoundaryEndpoints(side)

	visited := make([]bool, b.n*b.n+4)
	visited[start] = true
	queue := []Node{start}

	var neighbors []Node
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		neighbors = b.appendNeighbors(current, neighbors[:0])
		for _, next := range neighbors {
			if next == end {
				return true
			}
			if visited[next] || b.owner(next) != side {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}
	return false
}

// Winner returns the side with a completed chain, or Empty when
// neither has one. The side given first is checked first; since a
// finished chain blocks every crossing chain of the opponent, at most
// one side can win and the order only saves a search.
func Winner(b *Board, first Occupancy) Occupancy {
	if first != P1 && first != P2 {
		panic("game: winner check needs P1 or P2")
	}
	if HasWinningChain(b, first) {
		return first
	}
	other := first.Opponent()
	if HasWinningChain(b, other) {
		return other
	}
	return Empty
}
