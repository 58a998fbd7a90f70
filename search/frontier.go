package search

import "container/heap"

// frontier is a min-heap of Entry ordered by Less. Every coordinate is pushed
// at most once (the visited set guarantees it), so there are no stale entries
// to skip on pop.
type frontier []Entry

// Len returns the number of items in the heap.
func (f frontier) Len() int { return len(f) }

// Less defines the comparison: lower cost first, then row-major coordinate.
func (f frontier) Less(i, j int) bool { return Less(f[i], f[j]) }

// Swap swaps two elements in the heap.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type Entry.
func (f *frontier) Push(x any) { *f = append(*f, x.(Entry)) }

// Pop removes and returns the last element; heap.Pop has already moved the
// minimum there.
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}

// push and pop keep the heap.Interface plumbing out of the search loop.
func (f *frontier) push(e Entry) { heap.Push(f, e) }
func (f *frontier) pop() Entry   { return heap.Pop(f).(Entry) }
