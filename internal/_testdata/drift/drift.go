package drift

// Digits grew by one element after drift_split_gen.go was written.
//
//ownsplit:split 3 5
type Digits [8]int
