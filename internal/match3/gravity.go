package match3

// NewItemPosition records one fall: Index is the source cell that supplied the item,
// TilesToMove the number of rows it travelled.
type NewItemPosition struct {
	Index       int
	TilesToMove int
}

// GravityResult is a settled grid plus the falls that produced it, in resolution order.
type GravityResult struct {
	Items       Items
	Repositions []NewItemPosition
}

// ApplyGravity fills empty present cells from above, bottom row first.
//
// For each empty target the search climbs its column, skipping holes and empty cells,
// and counts every row it climbs, holes included. The first item found moves into the
// target and leaves its source empty. Holes are never written.
func ApplyGravity(items Items, tiles Tiles) GravityResult {
	mustShape(items, tiles)

	out := items.Clone()
	var moves []NewItemPosition

	// Nothing can fall into the first row.
	for i := len(out) - 1; i >= Columns; i-- {
		if !tiles[i] || !out[i].IsEmpty() {
			continue
		}

		src, distance := itemAbove(i, out, tiles)
		if src < 0 {
			continue
		}

		out[i] = out[src]
		out[src] = Empty()
		moves = append(moves, NewItemPosition{Index: src, TilesToMove: distance})
	}

	return GravityResult{Items: out, Repositions: moves}
}

// itemAbove finds the nearest item above index in the same column.
// Returns -1 when the column above is exhausted.
func itemAbove(index int, items Items, tiles Tiles) (src, distance int) {
	distance = 1
	for next := index - Columns; next >= 0; next -= Columns {
		if tiles[next] && !items[next].IsEmpty() {
			return next, distance
		}
		distance++
	}
	return -1, distance
}
