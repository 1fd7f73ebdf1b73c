package match3

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFusionKind(t *testing.T) {
	candy := Item{Kind: KindCandy, Color: ColorBlue, Key: "prev"}

	tests := []struct {
		name   string
		detail MatchDetail
		prev   Item
		want   Kind
	}{
		{"end of three", MatchDetail{Right: 2, Matched: true}, candy, KindEmpty},
		{"middle of three", MatchDetail{Left: 1, Right: 1, Matched: true}, candy, KindEmpty},
		{"end of four", MatchDetail{Right: 3, Matched: true}, candy, KindSuperCandy},
		{"inside four", MatchDetail{Left: 1, Right: 2, Matched: true}, candy, KindSuperCandy},
		{"vertical four", MatchDetail{Up: 2, Down: 1, Matched: true}, candy, KindSuperCandy},
		{"middle of five", MatchDetail{Left: 2, Right: 2, Matched: true}, candy, KindChocolate},
		{"corner of L", MatchDetail{Right: 2, Down: 2, Matched: true}, candy, KindChocolate},
		{"end of five", MatchDetail{Left: 4, Matched: true}, candy, KindChocolate},
		{"super candy fuses", MatchDetail{Right: 3, Matched: true}, Item{Kind: KindSuperCandy, Color: ColorRed}, KindSuperCandy},
		{"chocolate never fuses", MatchDetail{Left: 2, Right: 2, Matched: true}, Item{Kind: KindChocolate}, KindEmpty},
		{"empty never fuses", MatchDetail{Right: 3, Matched: true}, Empty(), KindEmpty},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FusionKind(tc.detail, tc.prev))
		})
	}
}

func TestResolveFusionChocolateBeatsSuperCandy(t *testing.T) {
	sp := newTestSpawner()
	prev := Item{Kind: KindCandy, Color: ColorGreen, Key: "old"}
	detail := MatchDetail{Up: 2, Right: 2, Down: 2, Left: 2, Matched: true, Index: 40}

	got, ok := ResolveFusion(detail, prev, sp)
	assert.True(t, ok)
	assert.Equal(t, KindChocolate, got.Kind)
	assert.Equal(t, ColorNone, got.Color)
	assert.NotEqual(t, prev.Key, got.Key)
}

func TestResolveFusionSuperCandyInheritsColour(t *testing.T) {
	sp := newTestSpawner()
	prev := Item{Kind: KindCandy, Color: ColorPurple, Key: "old"}

	got, ok := ResolveFusion(MatchDetail{Up: 3, Matched: true}, prev, sp)
	assert.True(t, ok)
	assert.Equal(t, Item{Kind: KindSuperCandy, Color: ColorPurple, Key: "k1"}, got)
}

func TestResolveFusionRemoves(t *testing.T) {
	sp := newTestSpawner()

	_, ok := ResolveFusion(MatchDetail{Left: 1, Right: 1, Matched: true}, Item{Kind: KindCandy, Color: ColorRed}, sp)
	assert.False(t, ok)
}
