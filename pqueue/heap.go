package pqueue

import "golang.org/x/exp/constraints"

// Heap is a binary min-heap over a dense slice. Tree links are pure index
// arithmetic; see parent, left and right.
type Heap[T comparable, P constraints.Ordered] struct {
	items []node[T, P]
}

// NewHeap returns an empty Heap.
func NewHeap[T comparable, P constraints.Ordered]() *Heap[T, P] {
	return &Heap[T, P]{}
}

// IsEmpty reports whether the heap holds no entries.
func (h *Heap[T, P]) IsEmpty() bool { return len(h.items) == 0 }

// Len returns the number of entries.
func (h *Heap[T, P]) Len() int { return len(h.items) }

// Insert appends (elem, prio) as the last leaf and sifts it up. O(log n).
func (h *Heap[T, P]) Insert(elem T, prio P) {
	h.items = append(h.items, node[T, P]{elem: elem, prio: prio})
	h.siftUp(len(h.items) - 1)
}

// ExtractMin removes and returns the root.
//
// Steps:
//  1. Empty heap ⇒ (zero, false).
//  2. Save the root element.
//  3. Move the last leaf into the root slot and shrink by one.
//  4. Sift the new root down.
//
// Complexity: O(log n).
func (h *Heap[T, P]) ExtractMin() (T, bool) {
	n := len(h.items)
	if n == 0 {
		var zero T
		return zero, false
	}
	root := h.items[0].elem

	last := n - 1
	h.items[0] = h.items[last]
	h.items[last] = node[T, P]{} // drop the reference held by the vacated slot
	h.items = h.items[:last]
	if last > 0 {
		h.siftDown(0)
	}

	return root, true
}

// Peek returns the root entry without removing it.
func (h *Heap[T, P]) Peek() (T, P, bool) {
	if len(h.items) == 0 {
		var (
			zeroT T
			zeroP P
		)
		return zeroT, zeroP, false
	}

	return h.items[0].elem, h.items[0].prio, true
}

// AdjustPriority locates the first entry holding elem by linear scan,
// replaces its priority and restores the heap order: up if the priority
// decreased, down if it increased, nowhere if unchanged.
//
// Complexity: O(n) lookup + O(log n) repair.
func (h *Heap[T, P]) AdjustPriority(elem T, prio P) {
	i := h.indexOf(elem)
	if i < 0 {
		return
	}
	old := h.items[i].prio
	h.items[i].prio = prio
	switch {
	case prio < old:
		h.siftUp(i)
	case prio > old:
		h.siftDown(i)
	}
}

// indexOf returns the slot of the first entry holding elem, or -1.
func (h *Heap[T, P]) indexOf(elem T) int {
	for i := range h.items {
		if h.items[i].elem == elem {
			return i
		}
	}

	return -1
}

// siftUp swaps the entry at i with its parent while it is strictly smaller.
func (h *Heap[T, P]) siftUp(i int) {
	for i > 0 {
		p := parent(i)
		if !(h.items[i].prio < h.items[p].prio) {
			return
		}
		h.items[i], h.items[p] = h.items[p], h.items[i]
		i = p
	}
}

// siftDown swaps the entry at i with its smaller child while that child is
// strictly smaller. The left child wins when both children tie.
func (h *Heap[T, P]) siftDown(i int) {
	n := len(h.items)
	for {
		l := left(i)
		if l >= n {
			return
		}
		smallest := l
		if r := right(i); r < n && h.items[r].prio < h.items[l].prio {
			smallest = r
		}
		if !(h.items[smallest].prio < h.items[i].prio) {
			return
		}
		h.items[i], h.items[smallest] = h.items[smallest], h.items[i]
		i = smallest
	}
}

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int { return 2*i + 1 }
func right(i int) int { return 2*i + 2 }
