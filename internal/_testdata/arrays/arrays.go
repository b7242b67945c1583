package arrays

import (
	stdtime "time"
)

//ownsplit:split 3 4
//ownsplit:split 0 7 --name Detach
type Digits [7]int

// Ring is a fixed ring of samples.
//
//ownsplit:split 2 3
type Ring[T any] [5]T

//ownsplit:split 1 1
type Timeouts [2]stdtime.Duration

// Unmarked has no directives.
type Unmarked [3]int

// Other directives are not ours.
//
//mockgen:stub
type Other [1]int
