package match3

// Spawn is a freshly generated item placed at Index.
type Spawn struct {
	Index int
	Item  Item
}

// Refill puts a random candy into every present, empty cell and returns the new grid
// with the spawns in index order. Occupied cells and holes are left alone.
func Refill(items Items, tiles Tiles, sp *Spawner) (Items, []Spawn) {
	mustShape(items, tiles)

	out := items.Clone()
	var spawns []Spawn
	for i := range out {
		if !tiles[i] || !out[i].IsEmpty() {
			continue
		}
		out[i] = sp.RandomCandy()
		spawns = append(spawns, Spawn{Index: i, Item: out[i]})
	}
	return out, spawns
}
