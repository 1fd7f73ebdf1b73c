package match3

// MatchDetail is the run report for one scanned candy. The counts exclude the candy
// itself.
type MatchDetail struct {
	Up      int
	Right   int
	Down    int
	Left    int
	Matched bool
	Index   int
}

// Count returns the run length in direction d.
func (m MatchDetail) Count(d Direction) int {
	switch d {
	case DirUp:
		return m.Up
	case DirRight:
		return m.Right
	case DirDown:
		return m.Down
	case DirLeft:
		return m.Left
	default:
		return 0
	}
}

// MatchResult is the outcome of scanning a whole grid.
// MatchingList holds one entry per scanned candy, matched or not, in index order.
type MatchResult struct {
	ThereWereMatches bool
	MatchingList     []MatchDetail
}

// Matched returns only the matched entries.
func (r MatchResult) Matched() []MatchDetail {
	var out []MatchDetail
	for _, d := range r.MatchingList {
		if d.Matched {
			out = append(out, d)
		}
	}
	return out
}

// IsMatched reports whether the candy at index is part of a match.
func (r MatchResult) IsMatched(index int) bool {
	for _, d := range r.MatchingList {
		if d.Index == index {
			return d.Matched
		}
	}
	return false
}

// DetectMatches scans every Candy and SuperCandy in the grid.
func DetectMatches(items Items, tiles Tiles) MatchResult {
	mustShape(items, tiles)

	var result MatchResult
	for i, it := range items {
		if !it.Matchable() {
			continue
		}
		detail := candyMatching(i, items)
		if detail.Matched {
			result.ThereWereMatches = true
		}
		result.MatchingList = append(result.MatchingList, detail)
	}
	return result
}

// candyMatching walks outward from index in all four directions, counting
// consecutive same-colour neighbours until a different colour, an item without
// colour or the grid edge.
func candyMatching(index int, items Items) MatchDetail {
	candy := items[index]
	var counts [4]int

	for _, d := range Directions {
		limit := Steps(index, d)
		step := Offset(d)
		for n := 1; n <= limit; n++ {
			if !candy.SameColor(items[index+step*n]) {
				break
			}
			counts[d]++
		}
	}

	detail := MatchDetail{
		Up:    counts[DirUp],
		Right: counts[DirRight],
		Down:  counts[DirDown],
		Left:  counts[DirLeft],
		Index: index,
	}
	detail.Matched = (detail.Up > 0 && detail.Down > 0) ||
		(detail.Left > 0 && detail.Right > 0) ||
		detail.Up > 1 || detail.Right > 1 || detail.Down > 1 || detail.Left > 1
	return detail
}

// LegalMoves returns every adjacent swap (rightward and downward pairs, in index order)
// that would produce at least one match. Swaps touching absent tiles are skipped.
func LegalMoves(items Items, tiles Tiles) []Swap {
	mustShape(items, tiles)

	var moves []Swap
	trial := items.Clone()
	for i := range trial {
		if !tiles[i] {
			continue
		}
		for _, d := range [2]Direction{DirRight, DirDown} {
			if Steps(i, d) == 0 {
				continue
			}
			j := Neighbor(i, d)
			if !tiles[j] {
				continue
			}
			trial[i], trial[j] = trial[j], trial[i]
			if DetectMatches(trial, tiles).ThereWereMatches {
				moves = append(moves, Swap{From: i, To: j})
			}
			trial[i], trial[j] = trial[j], trial[i]
		}
	}
	return moves
}
