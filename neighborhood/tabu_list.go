package neighborhood

import "fmt"

// TabuList is a bounded FIFO of tabu tokens. Pushing beyond capacity evicts
// the oldest tokens first. A TabuList is not safe for concurrent mutation;
// solvers own it and hand out snapshots.
type TabuList[T any] struct {
	items    []T
	capacity int
}

// NewTabuList returns an empty list holding at most capacity tokens.
// Panics on a negative capacity.
func NewTabuList[T any](capacity int) *TabuList[T] {
	if capacity < 0 {
		panic(fmt.Sprintf("neighborhood: NewTabuList(%d)", capacity))
	}
	return &TabuList[T]{items: make([]T, 0, capacity), capacity: capacity}
}

// Push appends tokens and evicts from the front while over capacity.
func (l *TabuList[T]) Push(tokens ...T) {
	l.items = append(l.items, tokens...)
	if over := len(l.items) - l.capacity; over > 0 {
		// shift down instead of reslicing so the backing array does not grow forever
		n := copy(l.items, l.items[over:])
		clear(l.items[n:])
		l.items = l.items[:n]
	}
}

// Items returns a snapshot, oldest first.
func (l *TabuList[T]) Items() []T {
	cp := make([]T, len(l.items))
	copy(cp, l.items)
	return cp
}

// Len returns the number of stored tokens.
func (l *TabuList[T]) Len() int { return len(l.items) }

// Cap returns the configured capacity.
func (l *TabuList[T]) Cap() int { return l.capacity }
