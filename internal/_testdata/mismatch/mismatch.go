package mismatch

//ownsplit:split 2 4
type Digits [7]int
