package match3

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAreAdjacentStraightNeighbours(t *testing.T) {
	for i := range CellCount {
		for _, d := range Directions {
			j := i + Offset(d)
			if !InBounds(j) {
				continue
			}
			assert.True(t, AreAdjacent(i, j), "AreAdjacent(%d, %d)", i, j)
		}
	}
}

func TestAreAdjacentRejectsOthers(t *testing.T) {
	for i := range CellCount {
		for j := range CellCount {
			diff := j - i
			if diff == -Columns || diff == 1 || diff == Columns || diff == -1 {
				continue
			}
			if AreAdjacent(i, j) {
				t.Fatalf("AreAdjacent(%d, %d) = true, want false", i, j)
			}
		}
	}
}

func TestAreAdjacentSameIndex(t *testing.T) {
	assert.False(t, AreAdjacent(40, 40))
}

// Index arithmetic only: the end of one row and the start of the next count as
// neighbours even though they are on different rows.
func TestAreAdjacentRowWrap(t *testing.T) {
	assert.True(t, AreAdjacent(8, 9))
	assert.True(t, AreAdjacent(9, 8))
	assert.True(t, AreAdjacent(17, 18))
	assert.NotEqual(t, Row(8), Row(9))
}
