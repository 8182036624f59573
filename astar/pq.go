package astar

import "github.com/katalvlaran/gridpath/grid"

// frontierItem is one pending frontier entry. An item becomes stale once its
// cell is closed through a cheaper entry; stale items are skipped at pop time.
type frontierItem struct {
	cell grid.Cell
	g    int // steps from start
	h    int // Manhattan distance to end
}

// f is the total priority g + h.
func (it frontierItem) f() int { return it.g + it.h }

// frontier is a min-heap of frontierItem ordered by (f, h, row, col) ascending.
type frontier []frontierItem

// Len returns the number of items in the heap.
func (q frontier) Len() int { return len(q) }

// Less orders by f, then h, then row, then column.
func (q frontier) Less(i, j int) bool {
	a, b := q[i], q[j]
	if fa, fb := a.f(), b.f(); fa != fb {
		return fa < fb
	}
	if a.h != b.h {
		return a.h < b.h
	}
	if a.cell.Row != b.cell.Row {
		return a.cell.Row < b.cell.Row
	}
	return a.cell.Col < b.cell.Col
}

// Swap swaps two elements in the heap.
func (q frontier) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

// Push adds x onto the heap. Called by heap.Push; x must be a frontierItem.
func (q *frontier) Push(x interface{}) { *q = append(*q, x.(frontierItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (q *frontier) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]

	return item
}
