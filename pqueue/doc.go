// Package pqueue provides min-priority queues behind a single Queue contract,
// with two interchangeable implementations:
//
//   - List: an unordered slice. Insert is O(1); ExtractMin scans every entry, O(n).
//     Ties go to the first entry in slice order.
//   - Heap: a binary min-heap stored as a dense slice. Insert and ExtractMin
//     are O(log n); AdjustPriority is O(n) to locate the entry plus O(log n) to
//     restore order.
//
// Heap layout:
//
//	parent(i) = (i-1)/2
//	left(i)   = 2i+1
//	right(i)  = 2i+2
//
// Invariant: prio(parent(i)) <= prio(i) for every non-root index i, after any
// Insert, ExtractMin or AdjustPriority.
//
// Duplicates: Insert never looks for an existing entry, so the same element
// may be queued several times with different priorities. AdjustPriority
// updates the first matching entry only.
//
// Priorities are any ordered type (golang.org/x/exp/constraints.Ordered).
// Queues are not safe for concurrent use.
package pqueue
