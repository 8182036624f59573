package grid

// Reachable returns every passable cell connected to from by orthogonal moves,
// in BFS discovery order starting with from itself.
// Returns nil if from is a wall or outside the grid.
//
// Time:   O(R·C).
// Memory: O(R·C) for seen flags and output.
func (g *Grid) Reachable(from Cell) []Cell {
	if g.IsWall(from) {
		return nil
	}
	seen := make([]bool, g.rows*g.cols)
	seen[g.index(from)] = true
	queue := []Cell{from}

	for qi := 0; qi < len(queue); qi++ {
		for _, n := range g.Neighbors(queue[qi]) {
			i := g.index(n)
			if !seen[i] {
				seen[i] = true
				queue = append(queue, n)
			}
		}
	}
	return queue
}

// StepDistance returns the fewest orthogonal steps from one cell to another
// through passable cells, and whether to is reachable at all.
// Both endpoints must be passable; a wall endpoint is unreachable.
//
// Time:   O(R·C).
// Memory: O(R·C) for the distance table.
func (g *Grid) StepDistance(from, to Cell) (int, bool) {
	if g.IsWall(from) || g.IsWall(to) {
		return 0, false
	}
	if from == to {
		return 0, true
	}
	dist := make([]int, g.rows*g.cols)
	for i := range dist {
		dist[i] = -1
	}
	dist[g.index(from)] = 0
	queue := []Cell{from}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		du := dist[g.index(u)]
		for _, n := range g.Neighbors(u) {
			i := g.index(n)
			if dist[i] >= 0 {
				continue
			}
			dist[i] = du + 1
			if n == to {
				return dist[i], true
			}
			queue = append(queue, n)
		}
	}
	return 0, false
}

// index maps c to a row-major index: Row*cols + Col.
// Complexity: O(1).
func (g *Grid) index(c Cell) int {
	return c.Row*g.cols + c.Col
}
