package broken

var count int = "three"

//ownsplit:split 1 1
type Pair [2]int
