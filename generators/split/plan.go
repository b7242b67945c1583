package split

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrArityMismatch reports N != K + L.
	ErrArityMismatch = errors.New("length of original array has to be equal to sum of lengths of resulting arrays")
	// ErrNegativeLength reports a negative array length.
	ErrNegativeLength = errors.New("array length cannot be negative")
)

// Plan is a validated split of an N-element array into K and L elements.
// The zero Plan splits an empty array into two empty arrays.
type Plan struct {
	n, k, l int
}

// NewPlan returns a plan only when n == k + l and all lengths are non-negative.
func NewPlan(n, k, l int) (Plan, error) {
	if n < 0 || k < 0 || l < 0 {
		return Plan{}, fmt.Errorf("%w: %d = %d + %d", ErrNegativeLength, n, k, l)
	}

	if n != k+l {
		return Plan{}, fmt.Errorf("%w: %d != %d + %d", ErrArityMismatch, n, k, l)
	}

	return Plan{n: n, k: k, l: l}, nil
}

// N is the length of the source array.
func (p Plan) N() int { return p.n }

// K is the length of the left array.
func (p Plan) K() int { return p.k }

// L is the length of the right array.
func (p Plan) L() int { return p.l }

// Name formats the conventional function name, e.g. "Split3x4".
func (p Plan) Name(prefix string) string {
	return prefix + strconv.Itoa(p.k) + "x" + strconv.Itoa(p.l)
}

// Plans returns every split of every array length in [0, maxN], ordered by N then K.
func Plans(maxN int) ([]Plan, error) {
	if maxN < 0 {
		return nil, fmt.Errorf("%w: max length %d", ErrNegativeLength, maxN)
	}

	plans := make([]Plan, 0, (maxN+1)*(maxN+2)/2)

	for n := range maxN + 1 {
		for k := range n + 1 {
			plans = append(plans, Plan{n: n, k: k, l: n - k})
		}
	}

	return plans, nil
}
