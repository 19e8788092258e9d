package types

import "fmt"

// Reorder returns a copy of list with the element at from removed and
// reinserted at to. The relative order of every other element is kept.
//
// Both indexes must address an existing element. Out-of-range indexes are
// rejected with ErrIndexOutOfRange and an unchanged copy of list is returned;
// Reorder never clamps.
func Reorder[T any](list []T, from, to int) ([]T, error) {
	out := append(make([]T, 0, len(list)), list...)
	if from < 0 || from >= len(list) || to < 0 || to >= len(list) {
		return out, fmt.Errorf("%w: move %d to %d in list of %d", ErrIndexOutOfRange, from, to, len(list))
	}
	if from == to {
		return out, nil
	}
	moved := out[from]
	if from < to {
		copy(out[from:to], out[from+1:to+1])
	} else {
		copy(out[to+1:from+1], out[to:from])
	}
	out[to] = moved
	return out, nil
}
