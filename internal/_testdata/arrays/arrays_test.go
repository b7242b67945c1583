package arrays

//ownsplit:split 1 2
type trio [3]string
