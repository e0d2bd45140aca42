package records

import "slices"

// Policy tells the store how to identify, order and present one record type.
type Policy[T any] struct {
	ID    func(item *T) string
	Order func(item *T) *int
	Less  func(a, b *T) bool
}

// ByOrder sorts on the order key alone.
func ByOrder[T any](order func(item *T) *int) func(a, b *T) bool {
	return func(a, b *T) bool {
		return *order(a) < *order(b)
	}
}

// NextOrder is the order given to a record appended to a collection of size n.
func NextOrder(n int) int {
	return n
}

// SortStable returns a sorted copy; equal records keep their stored sequence.
func SortStable[T any](items []T, less func(a, b *T) bool) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b T) int {
		switch {
		case less(&a, &b):
			return -1
		case less(&b, &a):
			return 1
		default:
			return 0
		}
	})
	return out
}

// presentation returns indexes into items in display order.
func presentation[T any](items []T, less func(a, b *T) bool) []int {
	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		switch {
		case less(&items[a], &items[b]):
			return -1
		case less(&items[b], &items[a]):
			return 1
		default:
			return 0
		}
	})
	return idx
}

// SwapAdjacent exchanges the order keys of the record with the given id and
// its display neighbour in direction (-1 up, +1 down). It reports false when
// the record is already at that edge of the list or the keys are equal.
func SwapAdjacent[T any](items []T, p Policy[T], id string, direction int) (bool, error) {
	if direction != -1 && direction != 1 {
		return false, ErrInvalidDirection
	}

	display := presentation(items, p.Less)
	pos := -1
	for i, at := range display {
		if p.ID(&items[at]) == id {
			pos = i
			break
		}
	}
	if pos < 0 {
		return false, ErrNotFound
	}

	neighbour := pos + direction
	if neighbour < 0 || neighbour >= len(display) {
		return false, nil
	}

	a := p.Order(&items[display[pos]])
	b := p.Order(&items[display[neighbour]])
	if *a == *b {
		return false, nil
	}
	*a, *b = *b, *a
	return true, nil
}
