package pqueue

import "golang.org/x/exp/constraints"

// List is a min-priority queue over an unordered slice.
// Ordering is recomputed on every ExtractMin, so updates never reorder.
type List[T comparable, P constraints.Ordered] struct {
	items []node[T, P]
}

// NewList returns an empty List.
func NewList[T comparable, P constraints.Ordered]() *List[T, P] {
	return &List[T, P]{}
}

// IsEmpty reports whether the list holds no entries.
func (l *List[T, P]) IsEmpty() bool { return len(l.items) == 0 }

// Len returns the number of entries.
func (l *List[T, P]) Len() int { return len(l.items) }

// Insert appends (elem, prio). O(1) amortized.
func (l *List[T, P]) Insert(elem T, prio P) {
	l.items = append(l.items, node[T, P]{elem: elem, prio: prio})
}

// ExtractMin scans for the smallest priority, first occurrence winning ties,
// and removes it while keeping the order of the remaining entries. O(n).
func (l *List[T, P]) ExtractMin() (T, bool) {
	i, ok := l.minIndex()
	if !ok {
		var zero T
		return zero, false
	}
	elem := l.items[i].elem
	l.items = append(l.items[:i], l.items[i+1:]...)

	return elem, true
}

// Peek returns the entry ExtractMin would remove, without removing it.
func (l *List[T, P]) Peek() (T, P, bool) {
	i, ok := l.minIndex()
	if !ok {
		var (
			zeroT T
			zeroP P
		)
		return zeroT, zeroP, false
	}

	return l.items[i].elem, l.items[i].prio, true
}

// AdjustPriority replaces the priority of the first entry holding elem. O(n).
func (l *List[T, P]) AdjustPriority(elem T, prio P) {
	for i := range l.items {
		if l.items[i].elem == elem {
			l.items[i].prio = prio
			return
		}
	}
}

// minIndex returns the index of the first entry with the smallest priority.
func (l *List[T, P]) minIndex() (int, bool) {
	if len(l.items) == 0 {
		return 0, false
	}
	best := 0
	for i := 1; i < len(l.items); i++ {
		if l.items[i].prio < l.items[best].prio {
			best = i
		}
	}

	return best, true
}
