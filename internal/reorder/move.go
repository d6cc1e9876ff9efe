// Package reorder holds the one piece of list logic the widgets need:
// moving a single element to a new position without touching the input.
package reorder

// InRange reports whether a move between from and to is applicable to a
// sequence of length n.
func InRange(n, from, to int) bool {
	return from >= 0 && from < n && to >= 0 && to < n
}

// Move returns a new slice where the element at from has been removed and
// reinserted at to. Every other element keeps its relative order.
// items is never modified. Out-of-range indices yield an unchanged copy.
func Move[T any](items []T, from, to int) []T {
	out := make([]T, len(items))
	copy(out, items)
	if !InRange(len(items), from, to) || from == to {
		return out
	}

	moved := out[from]
	if from < to {
		copy(out[from:to], out[from+1:to+1])
	} else {
		copy(out[to+1:from+1], out[to:from])
	}
	out[to] = moved
	return out
}
