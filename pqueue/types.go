package pqueue

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// ErrUnknownKind is returned by ParseKind for an unrecognized queue name.
var ErrUnknownKind = errors.New("pqueue: unknown queue kind")

// Queue is the min-priority queue contract shared by List and Heap.
type Queue[T comparable, P constraints.Ordered] interface {
	// IsEmpty reports whether the queue holds no entries.
	IsEmpty() bool

	// Len returns the number of entries, duplicates included.
	Len() int

	// Insert adds a new entry; an existing entry for elem is left untouched.
	Insert(elem T, prio P)

	// ExtractMin removes and returns the element with the smallest priority.
	// ok is false only when the queue is empty.
	ExtractMin() (elem T, ok bool)

	// AdjustPriority sets the priority of the first entry holding elem.
	// It is a no-op when elem is not queued.
	AdjustPriority(elem T, prio P)
}

var (
	_ Queue[string, float64] = (*List[string, float64])(nil)
	_ Queue[string, float64] = (*Heap[string, float64])(nil)
)

// node is one queued (element, priority) pair.
type node[T comparable, P constraints.Ordered] struct {
	elem T
	prio P
}

// Kind selects a Queue implementation.
type Kind int

const (
	// KindHeap selects the binary min-heap.
	KindHeap Kind = iota

	// KindList selects the unordered list with linear-scan extraction.
	KindList
)

// String returns the configuration name of k.
func (k Kind) String() string {
	switch k {
	case KindHeap:
		return "heap"
	case KindList:
		return "list"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a configuration name ("heap" or "list", case-insensitive) to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "heap":
		return KindHeap, nil
	case "list":
		return KindList, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// New returns an empty Queue of the given kind. Unknown kinds fall back to
// the heap.
func New[T comparable, P constraints.Ordered](kind Kind) Queue[T, P] {
	if kind == KindList {
		return NewList[T, P]()
	}

	return NewHeap[T, P]()
}
