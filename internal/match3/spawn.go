package match3

import (
	"strconv"

	"github.com/google/uuid"
)

// KeyGenerator mints identity tokens. Implementations must never return the same token
// twice for the lifetime of a session.
type KeyGenerator interface {
	NewKey() string
}

// UUIDKeys generates time-sortable UUIDv7 tokens.
type UUIDKeys struct{}

// NewKey returns a fresh UUIDv7 string. Panics if the system entropy source fails.
func (UUIDKeys) NewKey() string {
	return uuid.Must(uuid.NewV7()).String()
}

// CounterKeys hands out "<prefix><n>" tokens from a monotonic counter.
// Deterministic, so traces are reproducible in tests. Not safe for concurrent use.
type CounterKeys struct {
	Prefix string
	next   uint64
}

// NewCounterKeys returns a counter starting at 1.
func NewCounterKeys(prefix string) *CounterKeys {
	return &CounterKeys{Prefix: prefix}
}

// NewKey returns the next token.
func (c *CounterKeys) NewKey() string {
	c.next++
	return c.Prefix + strconv.FormatUint(c.next, 10)
}

// Intn is the random source used to pick refill colours. *math/rand.Rand satisfies it.
type Intn interface {
	Intn(n int) int
}

// Spawner creates new items. It owns the two injectable sources of the engine:
// identity tokens and refill colours.
type Spawner struct {
	keys KeyGenerator
	rnd  Intn
}

// NewSpawner returns a spawner using the given sources.
func NewSpawner(keys KeyGenerator, rnd Intn) *Spawner {
	if keys == nil {
		keys = UUIDKeys{}
	}
	return &Spawner{keys: keys, rnd: rnd}
}

// Candy returns a new plain candy.
func (s *Spawner) Candy(c Color) Item {
	return Item{Kind: KindCandy, Color: c, Key: s.keys.NewKey()}
}

// SuperCandy returns a new super candy.
func (s *Spawner) SuperCandy(c Color) Item {
	return Item{Kind: KindSuperCandy, Color: c, Key: s.keys.NewKey()}
}

// Chocolate returns a new chocolate.
func (s *Spawner) Chocolate() Item {
	return Item{Kind: KindChocolate, Key: s.keys.NewKey()}
}

// RandomColor draws uniformly from Colors.
func (s *Spawner) RandomColor() Color {
	if s.rnd == nil {
		panic("match3: spawner has no random source")
	}
	return Colors[s.rnd.Intn(len(Colors))]
}

// RandomCandy returns a new candy of a random colour.
func (s *Spawner) RandomCandy() Item {
	return s.Candy(s.RandomColor())
}
