package match3

import (
	"fmt"
	"math/rand"
	"time"
)

// Session is the caller-held context for one level: the immutable tiles, the current
// items and the sources used to mint new items. It is not safe for concurrent use;
// callers must let a move finish before starting the next one.
type Session struct {
	tiles   Tiles
	items   Items
	spawner *Spawner
	rules   Rules
}

// Option configures a Session.
type Option func(*sessionOptions)

type sessionOptions struct {
	keys  KeyGenerator
	rnd   Intn
	rules Rules
}

// WithKeys sets the identity generator. Defaults to UUIDKeys.
func WithKeys(k KeyGenerator) Option {
	return func(o *sessionOptions) { o.keys = k }
}

// WithRand sets the refill colour source. Defaults to a time-seeded math/rand source.
func WithRand(r Intn) Option {
	return func(o *sessionOptions) { o.rnd = r }
}

// WithSeed seeds a math/rand source for refill colours.
func WithSeed(seed int64) Option {
	return func(o *sessionOptions) { o.rnd = rand.New(rand.NewSource(seed)) }
}

// WithRules sets the cascade rules. Defaults to DefaultRules.
func WithRules(r Rules) Option {
	return func(o *sessionOptions) { o.rules = r }
}

// NewSession starts a session on the given layout. Panics if the grid is malformed or a
// hole holds an item.
func NewSession(tiles Tiles, items Items, opts ...Option) *Session {
	mustShape(items, tiles)
	for i, it := range items {
		if !tiles[i] && !it.IsEmpty() {
			panic(fmt.Sprintf("match3: hole at %d holds %s", i, it))
		}
	}

	o := sessionOptions{rules: DefaultRules()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.keys == nil {
		o.keys = UUIDKeys{}
	}
	if o.rnd == nil {
		o.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Session{
		tiles:   tiles.Clone(),
		items:   items.Clone(),
		spawner: NewSpawner(o.keys, o.rnd),
		rules:   o.rules,
	}
}

// Tiles returns a copy of the layout.
func (s *Session) Tiles() Tiles {
	return s.tiles.Clone()
}

// Items returns a copy of the current grid.
func (s *Session) Items() Items {
	return s.items.Clone()
}

// Spawner returns the session's item factory.
func (s *Session) Spawner() *Spawner {
	return s.spawner
}

// Rules returns the cascade rules in effect.
func (s *Session) Rules() Rules {
	return s.rules
}

// Move resolves a swap against the current grid and, when it resolved, adopts the
// final grid as current.
func (s *Session) Move(swap Swap) MoveResult {
	res := ResolveMove(s.items, s.tiles, swap, s.spawner, s.rules)
	if res.Outcome == OutcomeResolved {
		s.items = res.Items.Clone()
	}
	return res
}

// Settle resolves matches already present on the grid, e.g. on a freshly generated
// board, and adopts the result.
func (s *Session) Settle() Trace {
	final, trace := ResolveCascade(s.items, s.tiles, s.spawner, s.rules)
	s.items = final
	return trace
}

// Fill refills every empty present cell without resolving matches.
func (s *Session) Fill() []Spawn {
	items, spawns := Refill(s.items, s.tiles, s.spawner)
	s.items = items
	return spawns
}

// Filled reports whether every present tile holds an item.
func (s *Session) Filled() bool {
	return AllTilesFilled(s.items, s.tiles)
}

// LegalMoves lists the swaps that would match on the current grid.
func (s *Session) LegalMoves() []Swap {
	return LegalMoves(s.items, s.tiles)
}

// Shuffle redistributes the current items over their present cells with fresh
// positions but the same keys, retrying until the board has no standing match and at
// least one legal move, or attempts run out. Returns whether a playable board was found.
func (s *Session) Shuffle(attempts int) bool {
	var cells []int
	for i, present := range s.tiles {
		if present {
			cells = append(cells, i)
		}
	}

	for range attempts {
		next := s.items.Clone()
		perm := make([]Item, len(cells))
		for k, idx := range cells {
			perm[k] = s.items[idx]
		}
		for k := len(perm) - 1; k > 0; k-- {
			j := s.spawner.rnd.Intn(k + 1)
			perm[k], perm[j] = perm[j], perm[k]
		}
		for k, idx := range cells {
			next[idx] = perm[k]
		}

		if DetectMatches(next, s.tiles).ThereWereMatches {
			continue
		}
		if len(LegalMoves(next, s.tiles)) == 0 {
			continue
		}
		s.items = next
		return true
	}
	return false
}
