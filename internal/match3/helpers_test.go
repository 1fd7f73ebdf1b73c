package match3

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// cycleRand replays a fixed sequence of draws.
type cycleRand struct {
	seq []int
	pos int
}

func (c *cycleRand) Intn(n int) int {
	v := c.seq[c.pos%len(c.seq)] % n
	c.pos++
	return v
}

// baseRows has no two equal neighbours in any row or column.
var baseRows = []string{
	"ROYGBPROY",
	"YGBPROYGB",
	"BPROYGBPR",
	"ROYGBPROY",
	"YGBPROYGB",
	"BPROYGBPR",
	"ROYGBPROY",
	"YGBPROYGB",
	"BPROYGBPR",
}

// withRows returns baseRows with the given rows replaced.
func withRows(over map[int]string) []string {
	rows := append([]string(nil), baseRows...)
	for r, s := range over {
		rows[r] = s
	}
	return rows
}

func newTestSpawner(seq ...int) *Spawner {
	if len(seq) == 0 {
		seq = []int{0}
	}
	return NewSpawner(NewCounterKeys("k"), &cycleRand{seq: seq})
}

// parseGrid builds a grid from glyph rows; 'x' marks a hole.
func parseGrid(t *testing.T, sp *Spawner, rows []string) (Items, Tiles) {
	t.Helper()
	require.Len(t, rows, Rows)

	items := make(Items, 0, CellCount)
	tiles := make(Tiles, 0, CellCount)
	for _, row := range rows {
		require.Len(t, row, Columns, "row %q", row)
		for _, r := range row {
			if r == 'x' {
				items = append(items, Empty())
				tiles = append(tiles, false)
				continue
			}
			it, ok := ItemFromGlyph(r, sp)
			require.True(t, ok, "glyph %q", r)
			items = append(items, it)
			tiles = append(tiles, true)
		}
	}
	return items, tiles
}

func rowsOf(items Items) []string {
	out := make([]string, 0, Rows)
	for r := range Rows {
		out = append(out, Items(items[r*Columns:(r+1)*Columns]).String())
	}
	return out
}
