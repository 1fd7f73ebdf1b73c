package levels

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev0926/candy-tiles/internal/match3"
)

const validLevel = `
id: 7
name: Test Kitchen
moves: 10
target_score: 900
tasks:
  - kind: color
    color: red
    count: 5
  - kind: super
    count: 1
tiles:
  - "#########"
  - "#########"
  - "#########"
  - "#########"
  - "####.####"
  - "#########"
  - "#########"
  - "#########"
  - "#########"
items:
  - "ROYGBPROY"
  - "YGBPROYGB"
  - "BPROYGBPR"
  - "ROYGBPROY"
  - "YGBP.OYGB"
  - "BPROYGBPR"
  - "rOYGBPROY"
  - "YGBPC?YGB"
  - "BPROYGBPR"
`

func TestParseValidLevel(t *testing.T) {
	lvl, err := Parse([]byte(validLevel))
	require.NoError(t, err)

	assert.Equal(t, 7, lvl.ID)
	assert.Equal(t, "Test Kitchen", lvl.Name)
	assert.Equal(t, 10, lvl.Moves)
	assert.Equal(t, 900, lvl.TargetScore)
	require.Len(t, lvl.Tasks, 2)
	assert.Equal(t, Task{Kind: TaskColor, Color: match3.ColorRed, Count: 5}, lvl.Tasks[0])
	assert.Equal(t, Task{Kind: TaskSuper, Count: 1}, lvl.Tasks[1])
	assert.False(t, lvl.Tiles[40])
	assert.True(t, lvl.Tiles[39])
}

func TestParseDefaultsToFullTilesAndName(t *testing.T) {
	src := "id: 3\nmoves: 5\nitems:\n" + strings.Repeat("  - \"?????????\"\n", 9)
	lvl, err := Parse([]byte(src))
	require.NoError(t, err)

	assert.Equal(t, "Level 3", lvl.Name)
	assert.Equal(t, match3.FullTiles(), lvl.Tiles)
	assert.Empty(t, lvl.Tasks)
}

func TestParseRejectsBadLayouts(t *testing.T) {
	nineRows := func(row string) string {
		return strings.Repeat("  - \""+row+"\"\n", 9)
	}

	tests := []struct {
		name string
		src  string
	}{
		{"missing id", "moves: 5\nitems:\n" + nineRows("?????????")},
		{"no moves", "id: 1\nitems:\n" + nineRows("?????????")},
		{"short row", "id: 1\nmoves: 5\nitems:\n" + nineRows("????????")},
		{"eight rows", "id: 1\nmoves: 5\nitems:\n" + strings.Repeat("  - \"?????????\"\n", 8)},
		{"unknown glyph", "id: 1\nmoves: 5\nitems:\n" + nineRows("????X????")},
		{"lowercase chocolate", "id: 1\nmoves: 5\nitems:\n" + nineRows("????c????")},
		{"item in hole", "id: 1\nmoves: 5\ntiles:\n" + nineRows(".########") + "items:\n" + nineRows("?????????")},
		{"bad tile glyph", "id: 1\nmoves: 5\ntiles:\n" + nineRows("x########") + "items:\n" + nineRows("?????????")},
		{"unknown task", "id: 1\nmoves: 5\ntasks:\n  - kind: lollipop\n    count: 1\nitems:\n" + nineRows("?????????")},
		{"colour task without colour", "id: 1\nmoves: 5\ntasks:\n  - kind: color\n    count: 1\nitems:\n" + nineRows("?????????")},
		{"zero count", "id: 1\nmoves: 5\ntasks:\n  - kind: super\n    count: 0\nitems:\n" + nineRows("?????????")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.src))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidLayout), "got %v", err)
		})
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("id: [1"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidLayout))
}

func TestBuildResolvesGlyphs(t *testing.T) {
	lvl, err := Parse([]byte(validLevel))
	require.NoError(t, err)

	sp := match3.NewSpawner(match3.NewCounterKeys("k"), fixedRand(4))
	tiles, items := lvl.Build(sp)

	require.Len(t, items, match3.CellCount)
	assert.True(t, items[40].IsEmpty())
	assert.Equal(t, match3.KindSuperCandy, items[54].Kind)
	assert.Equal(t, match3.ColorRed, items[54].Color)
	assert.Equal(t, match3.KindChocolate, items[67].Kind)
	assert.Equal(t, match3.Item{Kind: match3.KindCandy, Color: match3.ColorBlue, Key: items[68].Key}, items[68])

	seen := make(map[string]bool)
	for i, it := range items {
		if it.IsEmpty() {
			continue
		}
		assert.False(t, seen[it.Key], "duplicate key at %d", i)
		seen[it.Key] = true
	}

	tiles[0] = false
	assert.True(t, lvl.Tiles[0], "Build returns a copy of the tiles")
}

func TestBuildRerollsRandomCellsOutOfMatches(t *testing.T) {
	for _, lvl := range append(mustBuiltin(t), Endless()) {
		sp := match3.NewSpawner(match3.NewCounterKeys("k"), rand.New(rand.NewSource(int64(lvl.ID)+1)))
		tiles, items := lvl.Build(sp)
		assert.False(t, match3.DetectMatches(items, tiles).ThereWereMatches, "level %d starts with a match", lvl.ID)
	}
}

func TestBuildKeepsFixedMatches(t *testing.T) {
	src := "id: 1\nmoves: 5\nitems:\n" + "  - \"RRR??????\"\n" + strings.Repeat("  - \"?????????\"\n", 8)
	lvl, err := Parse([]byte(src))
	require.NoError(t, err)

	sp := match3.NewSpawner(match3.NewCounterKeys("k"), rand.New(rand.NewSource(3)))
	_, items := lvl.Build(sp)
	assert.Equal(t, "RRR", items[:3].String(), "designer-placed candies are never redrawn")
}

func TestEndlessLayout(t *testing.T) {
	lvl := Endless()
	assert.Equal(t, match3.FullTiles(), lvl.Tiles)
	assert.Zero(t, lvl.Moves)
	assert.Empty(t, lvl.Tasks)
	require.Len(t, lvl.Items, match3.Rows)
	assert.Equal(t, "?????????", lvl.Items[8])
}

func mustBuiltin(t *testing.T) []Level {
	t.Helper()
	list, err := Builtin()
	require.NoError(t, err)
	return list
}

func TestTaskCounting(t *testing.T) {
	red := match3.Item{Kind: match3.KindCandy, Color: match3.ColorRed}
	superRed := match3.Item{Kind: match3.KindSuperCandy, Color: match3.ColorRed}
	superBlue := match3.Item{Kind: match3.KindSuperCandy, Color: match3.ColorBlue}
	choc := match3.Item{Kind: match3.KindChocolate}

	colorTask := Task{Kind: TaskColor, Color: match3.ColorRed, Count: 3}
	assert.True(t, colorTask.CountsRemoval(red))
	assert.True(t, colorTask.CountsRemoval(superRed))
	assert.False(t, colorTask.CountsRemoval(superBlue))
	assert.False(t, colorTask.CountsFusion(superRed))

	anySuper := Task{Kind: TaskSuper, Count: 1}
	assert.True(t, anySuper.CountsFusion(superRed))
	assert.True(t, anySuper.CountsFusion(superBlue))
	assert.False(t, anySuper.CountsFusion(choc))
	assert.False(t, anySuper.CountsRemoval(superRed))

	blueSuper := Task{Kind: TaskSuper, Color: match3.ColorBlue, Count: 1}
	assert.False(t, blueSuper.CountsFusion(superRed))
	assert.True(t, blueSuper.CountsFusion(superBlue))

	chocTask := Task{Kind: TaskChocolate, Count: 1}
	assert.True(t, chocTask.CountsFusion(choc))
	assert.False(t, chocTask.CountsRemoval(choc))
}

func TestTaskString(t *testing.T) {
	assert.Equal(t, "5 red", Task{Kind: TaskColor, Color: match3.ColorRed, Count: 5}.String())
	assert.Equal(t, "2 super", Task{Kind: TaskSuper, Count: 2}.String())
	assert.Equal(t, "1 super blue", Task{Kind: TaskSuper, Color: match3.ColorBlue, Count: 1}.String())
	assert.Equal(t, "1 chocolate", Task{Kind: TaskChocolate, Count: 1}.String())
}

// fixedRand always returns v modulo n.
type fixedRand int

func (f fixedRand) Intn(n int) int { return int(f) % n }
