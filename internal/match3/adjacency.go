package match3

// AreAdjacent reports whether b is one of a's raw straight-line neighbours
// (a-Columns, a+1, a+Columns, a-1).
//
// The test is a pure index difference: the last cell of one row and the first cell of
// the next differ by one and count as adjacent.
func AreAdjacent(a, b int) bool {
	for _, d := range Directions {
		if a+Offset(d) == b {
			return true
		}
	}
	return false
}
