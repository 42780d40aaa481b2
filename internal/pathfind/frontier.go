package pathfind

import "container/heap"

// frontierItem wraps a queued cell. seq preserves insertion order so ties on
// (f, h) pop oldest-first.
type frontierItem struct {
	cell  *Cell
	index int // heap index
	seq   int
}

type frontierHeap []*frontierItem

func (h frontierHeap) Len() int { return len(h) }

func (h frontierHeap) Less(i, j int) bool {
	a, b := h[i].cell, h[j].cell
	if a.F != b.F {
		return a.F < b.F
	}
	if a.H != b.H {
		return a.H < b.H
	}
	return h[i].seq < h[j].seq
}

func (h frontierHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *frontierHeap) Push(x any) {
	it := x.(*frontierItem)
	it.index = len(*h)
	*h = append(*h, it)
}

func (h *frontierHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return it
}

// Frontier is the open list: cells discovered but not yet expanded, ordered
// by (f, h) ascending with insertion order as the final tie-break. A cell
// appears at most once; its key always reflects the cell's current F and H.
type Frontier struct {
	heap    frontierHeap
	byCell  map[*Cell]*frontierItem
	nextSeq int
}

// NewFrontier creates an empty frontier.
func NewFrontier() *Frontier {
	return &Frontier{byCell: make(map[*Cell]*frontierItem)}
}

// Push inserts the cell or, if already queued, re-orders it to match the
// cell's current key. The engine only pushes after a strict improvement, so
// this is decrease-key: a key never worsens.
func (f *Frontier) Push(c *Cell) {
	if it, ok := f.byCell[c]; ok {
		heap.Fix(&f.heap, it.index)
		return
	}
	it := &frontierItem{cell: c, seq: f.nextSeq}
	f.nextSeq++
	f.byCell[c] = it
	heap.Push(&f.heap, it)
}

// PopMin removes and returns the cell with the smallest (f, h) key, or nil
// when the frontier is empty.
func (f *Frontier) PopMin() *Cell {
	if f.heap.Len() == 0 {
		return nil
	}
	it := heap.Pop(&f.heap).(*frontierItem)
	delete(f.byCell, it.cell)
	return it.cell
}

// IsEmpty reports whether no cells are queued.
func (f *Frontier) IsEmpty() bool { return f.heap.Len() == 0 }

// Len reports how many cells are queued.
func (f *Frontier) Len() int { return f.heap.Len() }

// Contains reports whether the cell is currently queued.
func (f *Frontier) Contains(c *Cell) bool {
	_, ok := f.byCell[c]
	return ok
}

// Clear discards all queued cells.
func (f *Frontier) Clear() {
	for i := range f.heap {
		f.heap[i] = nil
	}
	f.heap = f.heap[:0]
	f.byCell = make(map[*Cell]*frontierItem)
	f.nextSeq = 0
}
