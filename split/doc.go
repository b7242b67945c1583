// Package split moves the elements of a fixed-size array into two smaller
// fixed-size arrays.
//
// IntoKxL takes an N-element array, N = K + L, and returns its first K
// elements as left and the remaining L elements as right, keeping their
// order:
//
//	digits := [7]int{0, 1, 2, 3, 4, 5, 6}
//	left, right := split.Into3x4(&digits)
//	// left == [3]int{0, 1, 2}, right == [4]int{3, 4, 5, 6}
//
// The source array is consumed: every slot is reset to the zero value, so each
// element is owned by exactly one of the results. Nothing is allocated.
//
// Lengths are checked by the compiler. Into2x4(&digits) does not build,
// since *[7]int is not a *[6]int, and neither does assigning the results to
// variables of other lengths.
//
// Functions exist for every N up to 8. Longer arrays get a split method
// from the ownsplit generator:
//
//	//ownsplit:split 10 9
//	type Samples [19]float64
package split

//go:generate go run ../cmd/splittable --max 8 --pkg split --out table_gen.go
