package xslices

import (
	"iter"
	"math"
)

// Partition splits slice s into at most n uniformly filled consecutive parts.
// The last part takes the remainder. Parts share the backing array of s but
// have their capacity clipped, so appending to a part never overwrites its neighbour.
func Partition[Slice ~[]E, E any](s Slice, n int) iter.Seq[Slice] {
	if n < 1 {
		panic("xslices: number of parts cannot be less than 1")
	}

	return func(yield func(Slice) bool) {
		k := max(1, int(math.Round(float64(len(s))/float64(n))))

		for i := range n {
			start := min(i*k, len(s))
			end := min((i+1)*k, len(s))

			if i == n-1 {
				end = len(s)
			}

			if end == start {
				return
			}

			if !yield(s[start:end:end]) {
				return
			}
		}
	}
}
