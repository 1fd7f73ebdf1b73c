package match3

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, rows []string, seq ...int) *Session {
	t.Helper()
	items, tiles := parseGrid(t, newTestSpawner(), rows)
	if len(seq) == 0 {
		seq = []int{0}
	}
	return NewSession(tiles, items,
		WithKeys(NewCounterKeys("s")),
		WithRand(&cycleRand{seq: seq}),
	)
}

func TestNewSessionPanicsOnItemInHole(t *testing.T) {
	items, tiles := parseGrid(t, newTestSpawner(), baseRows)
	tiles[40] = false

	assert.Panics(t, func() { NewSession(tiles, items) })
}

func TestSessionMoveAdoptsResolvedGrid(t *testing.T) {
	s := newTestSession(t, withRows(map[int]string{0: "RRORBPROY"}), 5, 0, 3)

	res := s.Move(Swap{From: 2, To: 3})
	require.Equal(t, OutcomeResolved, res.Outcome)
	assert.Equal(t, "PRGOBPROY", rowsOf(s.Items())[0])
	assert.Equal(t, "s1", res.Items[0].Key)
}

func TestSessionMoveKeepsGridOnRevert(t *testing.T) {
	s := newTestSession(t, baseRows)
	before := s.Items()

	res := s.Move(Swap{From: 0, To: 1})
	assert.Equal(t, OutcomeReverted, res.Outcome)
	assert.True(t, before.Equal(s.Items()))
}

func TestSessionItemsReturnsCopy(t *testing.T) {
	s := newTestSession(t, baseRows)
	items := s.Items()
	items[0] = Empty()

	assert.False(t, s.Items()[0].IsEmpty())
}

func TestSessionSettleResolvesStandingMatches(t *testing.T) {
	s := newTestSession(t, withRows(map[int]string{0: "RRRGBPROY"}), 5, 0, 3)

	trace := s.Settle()
	require.Len(t, trace.Rounds, 1)
	assert.Equal(t, "PRGGBPROY", rowsOf(s.Items())[0])
	assert.Empty(t, s.Settle().Rounds)
}

func TestSessionFill(t *testing.T) {
	s := newTestSession(t, withRows(map[int]string{0: "x..GBPROY"}), 4, 5)

	assert.False(t, s.Filled())
	spawns := s.Fill()
	assert.Equal(t, []int{1, 2}, spawnIndices(spawns))
	assert.True(t, s.Filled())
	assert.Equal(t, ".BPGBPROY", rowsOf(s.Items())[0])
}

func TestSessionShuffleKeepsKeysAndFindsPlayableBoard(t *testing.T) {
	items, tiles := parseGrid(t, newTestSpawner(), baseRows)
	s := NewSession(tiles, items, WithKeys(NewCounterKeys("s")), WithSeed(7))

	require.True(t, s.Shuffle(2000))

	after := s.Items()
	assert.False(t, DetectMatches(after, tiles).ThereWereMatches)
	assert.NotEmpty(t, s.LegalMoves())
	assert.Empty(t, Removed(items, after), "shuffle keeps every item")
	assert.Len(t, Removed(after, items), 0)
}

func TestSessionLegalMoves(t *testing.T) {
	s := newTestSession(t, withRows(map[int]string{0: "RRORBPROY"}))
	moves := s.LegalMoves()
	require.Contains(t, moves, Swap{From: 2, To: 3})

	for _, mv := range moves {
		res := ResolveMove(s.Items(), s.Tiles(), mv, newTestSpawner(), s.Rules())
		assert.Equal(t, OutcomeResolved, res.Outcome, "swap %v", mv)
	}
}

func TestUUIDKeysAreVersion7(t *testing.T) {
	var keys UUIDKeys
	a, b := keys.NewKey(), keys.NewKey()

	id, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
	assert.NotEqual(t, a, b)
}

func TestCounterKeys(t *testing.T) {
	k := NewCounterKeys("k")
	assert.Equal(t, "k1", k.NewKey())
	assert.Equal(t, "k2", k.NewKey())
}
