// Package chunk splits ordered slices into fixed-size groups.
package chunk

import (
	"errors"
	"fmt"
)

// ErrInvalidSize is returned when the requested group size is not positive.
var ErrInvalidSize = errors.New("chunk: size must be positive")

// Chunk splits items into ceil(len(items)/size) groups of size elements each.
// The last group holds the remainder when len(items) is not a multiple of size.
// Order is preserved within and across groups. An empty input yields no groups.
//
// Groups share the backing array of items but are capped, so appending to one
// group never overwrites the next.
func Chunk[T any](items []T, size int) ([][]T, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	if len(items) == 0 {
		return nil, nil
	}

	groups := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		groups = append(groups, items[start:end:end])
	}
	return groups, nil
}
