// Package own provides the relocation primitives behind the owned array
// splits: a value is moved out of its slot and the slot is left empty, so
// exactly one slot owns the value at any time.
package own

// Take returns the value stored at p and leaves the zero value in its place.
func Take[T any](p *T) (v T) {
	v, *p = *p, v

	return v
}

// Relocate moves min(len(dst), len(src)) leading elements of src into dst,
// preserving their order, and empties every source slot it moved from.
// It returns the number of relocated elements.
//
// Overlapping dst and src are not supported.
func Relocate[S ~[]E, E any](dst, src S) int {
	n := min(len(dst), len(src))

	for i := range n {
		dst[i] = Take(&src[i])
	}

	return n
}
