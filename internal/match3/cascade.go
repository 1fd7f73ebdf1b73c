package match3

import "fmt"

// DefaultMaxCascadeRounds bounds a single move's cascade when Rules leaves it unset.
const DefaultMaxCascadeRounds = 50

// Rules tunes the cascade loop.
type Rules struct {
	// MaxCascadeRounds stops resolution after this many rounds. <= 0 uses
	// DefaultMaxCascadeRounds.
	MaxCascadeRounds int

	// MergeFusions keeps a single special item per connected group of matched
	// same-colour candies (the strongest one, preferring the swapped cells, then the
	// lowest index). When false every matched candy is fused on its own, which lets a
	// straight run of four re-fuse into four super candies every round.
	MergeFusions bool
}

// DefaultRules returns the rules used by the game.
func DefaultRules() Rules {
	return Rules{
		MaxCascadeRounds: DefaultMaxCascadeRounds,
		MergeFusions:     true,
	}
}

func (r Rules) maxRounds() int {
	if r.MaxCascadeRounds <= 0 {
		return DefaultMaxCascadeRounds
	}
	return r.MaxCascadeRounds
}

// Swap is a request to exchange the items of two cells.
type Swap struct {
	From int
	To   int
}

// Outcome says how a move ended.
type Outcome int

const (
	// OutcomeRejected: the cells are not adjacent or one of them is a hole.
	OutcomeRejected Outcome = iota
	// OutcomeReverted: the swap produced no match and was undone.
	OutcomeReverted
	// OutcomeResolved: the swap matched and the cascade ran to completion.
	OutcomeResolved
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeRejected:
		return "rejected"
	case OutcomeReverted:
		return "reverted"
	case OutcomeResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// Fusion is a special item created at Index during a round.
type Fusion struct {
	Index int
	Item  Item
}

// Round is one match → fusion/removal → gravity → refill pass.
type Round struct {
	Before      Items // grid the round started from
	Matches     MatchResult
	Fusions     []Fusion
	Removed     []Removal // every matched item, including those replaced by a fusion
	Cleared     Items     // grid after fusion and removal
	Repositions []NewItemPosition
	Settled     Items // grid after gravity
	Spawns      []Spawn
	After       Items // grid after refill
}

// Trace is the ordered list of rounds of one move.
type Trace struct {
	Rounds []Round
	// Capped is set when the loop stopped at the round limit with matches left.
	Capped bool
}

// Removed returns every item consumed across all rounds, in order.
func (t Trace) Removed() []Removal {
	var out []Removal
	for _, r := range t.Rounds {
		out = append(out, r.Removed...)
	}
	return out
}

// MoveResult is the settled outcome of one swap intent.
type MoveResult struct {
	Outcome Outcome
	Swapped Items // tentative grid right after the swap; nil when rejected
	Items   Items // final grid; equal to the input unless resolved
	Trace   Trace
}

// ThereWereMatches reports whether the swap produced at least one match.
func (r MoveResult) ThereWereMatches() bool {
	return r.Outcome == OutcomeResolved
}

// ResolveMove validates and applies a swap, then runs the cascade until no match is
// left. Panics if either index is out of range or the grid is malformed.
func ResolveMove(items Items, tiles Tiles, swap Swap, sp *Spawner, rules Rules) MoveResult {
	mustShape(items, tiles)
	mustIndex(swap.From)
	mustIndex(swap.To)

	if !AreAdjacent(swap.From, swap.To) || !tiles[swap.From] || !tiles[swap.To] {
		return MoveResult{Outcome: OutcomeRejected, Items: items.Clone()}
	}

	swapped := items.Clone()
	swapped[swap.From], swapped[swap.To] = swapped[swap.To], swapped[swap.From]

	if !DetectMatches(swapped, tiles).ThereWereMatches {
		return MoveResult{Outcome: OutcomeReverted, Swapped: swapped, Items: items.Clone()}
	}

	final, trace := ResolveCascade(swapped, tiles, sp, rules, swap.To, swap.From)
	return MoveResult{
		Outcome: OutcomeResolved,
		Swapped: swapped,
		Items:   final,
		Trace:   trace,
	}
}

// ResolveCascade runs rounds on items until a detection pass finds no match or the
// round limit is reached. Preferred indices win fusion ties in the first round only.
func ResolveCascade(items Items, tiles Tiles, sp *Spawner, rules Rules, preferred ...int) (Items, Trace) {
	mustShape(items, tiles)

	var trace Trace
	current := items.Clone()
	matches := DetectMatches(current, tiles)

	for matches.ThereWereMatches {
		if len(trace.Rounds) >= rules.maxRounds() {
			trace.Capped = true
			break
		}

		round := Round{Before: current, Matches: matches}
		round.Cleared, round.Fusions, round.Removed = clearMatches(current, matches, sp, rules, preferred)

		gravity := ApplyGravity(round.Cleared, tiles)
		round.Settled = gravity.Items
		round.Repositions = gravity.Repositions

		round.After, round.Spawns = Refill(round.Settled, tiles, sp)

		trace.Rounds = append(trace.Rounds, round)
		current = round.After
		preferred = nil
		matches = DetectMatches(current, tiles)
	}

	return current, trace
}

// clearMatches replaces every matched candy with its fusion result or Empty.
// Fusion is evaluated against the items at the start of the round.
func clearMatches(items Items, matches MatchResult, sp *Spawner, rules Rules, preferred []int) (Items, []Fusion, []Removal) {
	matched := matches.Matched()
	out := items.Clone()

	var kinds map[int]Kind
	if rules.MergeFusions {
		kinds = mergedFusionKinds(items, matched, preferred)
	}

	var fusions []Fusion
	removed := make([]Removal, 0, len(matched))
	for _, d := range matched {
		prev := items[d.Index]
		removed = append(removed, Removal{Index: d.Index, Item: prev})

		var (
			survivor Item
			ok       bool
		)
		if kinds == nil {
			survivor, ok = ResolveFusion(d, prev, sp)
		} else {
			survivor, ok = spawnKind(kinds[d.Index], prev, sp)
		}

		if ok {
			out[d.Index] = survivor
			fusions = append(fusions, Fusion{Index: d.Index, Item: survivor})
		} else {
			out[d.Index] = Empty()
		}
	}

	return out, fusions, removed
}

// mergedFusionKinds groups matched cells into connected same-colour components and
// keeps only the strongest fusion of each component.
func mergedFusionKinds(items Items, matched []MatchDetail, preferred []int) map[int]Kind {
	kinds := make(map[int]Kind, len(matched))
	isMatched := make(map[int]bool, len(matched))
	for _, d := range matched {
		kinds[d.Index] = FusionKind(d, items[d.Index])
		isMatched[d.Index] = true
	}

	groups := newUnionFind(len(items))
	for _, d := range matched {
		for _, dir := range [2]Direction{DirRight, DirDown} {
			if Steps(d.Index, dir) == 0 {
				continue
			}
			j := Neighbor(d.Index, dir)
			if isMatched[j] && items[d.Index].SameColor(items[j]) {
				groups.union(d.Index, j)
			}
		}
	}

	best := make(map[int]int) // group root -> surviving index
	for _, d := range matched {
		root := groups.find(d.Index)
		cur, seen := best[root]
		if !seen || betterSurvivor(d.Index, cur, kinds, preferred) {
			best[root] = d.Index
		}
	}

	for _, d := range matched {
		if best[groups.find(d.Index)] != d.Index {
			kinds[d.Index] = KindEmpty
		}
	}
	return kinds
}

// betterSurvivor reports whether candidate beats current as a group's survivor.
func betterSurvivor(candidate, current int, kinds map[int]Kind, preferred []int) bool {
	rc, rk := fusionRank(kinds[candidate]), fusionRank(kinds[current])
	if rc != rk {
		return rc > rk
	}
	pc, pk := preferenceOf(candidate, preferred), preferenceOf(current, preferred)
	if pc != pk {
		return pc < pk
	}
	return candidate < current
}

func preferenceOf(index int, preferred []int) int {
	for i, p := range preferred {
		if p == index {
			return i
		}
	}
	return len(preferred)
}

func spawnKind(k Kind, prev Item, sp *Spawner) (Item, bool) {
	switch k {
	case KindChocolate:
		return sp.Chocolate(), true
	case KindSuperCandy:
		return sp.SuperCandy(prev.Color), true
	case KindEmpty:
		return Item{}, false
	default:
		panic(fmt.Sprintf("match3: cannot fuse into %s", k))
	}
}

type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return &unionFind{parent: p}
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra != rb {
		u.parent[rb] = ra
	}
}
