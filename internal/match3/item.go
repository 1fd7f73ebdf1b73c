package match3

import (
	"fmt"
	"strings"
)

// Color is a candy colour. ColorNone is carried by items that have no colour.
type Color uint8

const (
	ColorNone Color = iota
	ColorRed
	ColorOrange
	ColorYellow
	ColorGreen
	ColorBlue
	ColorPurple
)

// Colors lists the six colours refill draws from, in enumeration order.
var Colors = [...]Color{ColorRed, ColorOrange, ColorYellow, ColorGreen, ColorBlue, ColorPurple}

// String returns the colour name.
func (c Color) String() string {
	switch c {
	case ColorNone:
		return "none"
	case ColorRed:
		return "red"
	case ColorOrange:
		return "orange"
	case ColorYellow:
		return "yellow"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorPurple:
		return "purple"
	default:
		return "unknown"
	}
}

// Char returns the single-letter glyph used by level files and text dumps.
func (c Color) Char() rune {
	switch c {
	case ColorRed:
		return 'R'
	case ColorOrange:
		return 'O'
	case ColorYellow:
		return 'Y'
	case ColorGreen:
		return 'G'
	case ColorBlue:
		return 'B'
	case ColorPurple:
		return 'P'
	default:
		return '?'
	}
}

// ParseColor converts a name or single-letter glyph to a Color.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(s) {
	case "red", "r":
		return ColorRed, true
	case "orange", "o":
		return ColorOrange, true
	case "yellow", "y":
		return ColorYellow, true
	case "green", "g":
		return ColorGreen, true
	case "blue", "b":
		return ColorBlue, true
	case "purple", "p":
		return ColorPurple, true
	default:
		return ColorNone, false
	}
}

// Kind is the item variant.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindCandy
	KindSuperCandy
	KindChocolate
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindCandy:
		return "candy"
	case KindSuperCandy:
		return "super"
	case KindChocolate:
		return "chocolate"
	default:
		return "unknown"
	}
}

// Item is whatever occupies a tile. The zero value is Empty.
// Key is an opaque identity token; it is never reused for another logical item.
type Item struct {
	Kind  Kind
	Color Color
	Key   string
}

// Empty returns the empty item.
func Empty() Item {
	return Item{}
}

// IsEmpty reports whether the cell holds nothing.
func (it Item) IsEmpty() bool {
	return it.Kind == KindEmpty
}

// Matchable reports whether the item takes part in runs (Candy or SuperCandy).
func (it Item) Matchable() bool {
	return it.Kind == KindCandy || it.Kind == KindSuperCandy
}

// SameColor reports whether other is a coloured item of the same colour as it.
func (it Item) SameColor(other Item) bool {
	return it.Matchable() && other.Matchable() && it.Color == other.Color
}

// Glyph returns the level-file glyph for the item: colour letter for Candy, lower-case
// letter for SuperCandy, 'C' for Chocolate and '.' for Empty.
func (it Item) Glyph() rune {
	switch it.Kind {
	case KindCandy:
		return it.Color.Char()
	case KindSuperCandy:
		return it.Color.Char() + ('a' - 'A')
	case KindChocolate:
		return 'C'
	default:
		return '.'
	}
}

// String implements fmt.Stringer.
func (it Item) String() string {
	switch it.Kind {
	case KindEmpty:
		return "empty"
	case KindChocolate:
		return fmt.Sprintf("chocolate(%s)", it.Key)
	default:
		return fmt.Sprintf("%s:%s(%s)", it.Kind, it.Color, it.Key)
	}
}

// Items is a full grid of items, indexed like the grid.
type Items []Item

// Clone returns an independent copy.
func (s Items) Clone() Items {
	out := make(Items, len(s))
	copy(out, s)
	return out
}

// Equal reports whether both snapshots hold the same items, keys included.
func (s Items) Equal(other Items) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// String renders the grid as Rows lines of glyphs.
func (s Items) String() string {
	var sb strings.Builder
	for i, it := range s {
		if i > 0 && i%Columns == 0 {
			sb.WriteByte('\n')
		}
		sb.WriteRune(it.Glyph())
	}
	return sb.String()
}

// Tiles holds per-cell playability: true for a present tile, false for a permanent hole.
type Tiles []bool

// FullTiles returns a grid where every tile is present.
func FullTiles() Tiles {
	t := make(Tiles, CellCount)
	for i := range t {
		t[i] = true
	}
	return t
}

// Clone returns an independent copy.
func (t Tiles) Clone() Tiles {
	out := make(Tiles, len(t))
	copy(out, t)
	return out
}

// Present reports whether cell i is playable.
func (t Tiles) Present(i int) bool {
	return i >= 0 && i < len(t) && t[i]
}

// Removal is an item consumed by a match, recorded at the index it occupied.
type Removal struct {
	Index int
	Item  Item
}

// Removed returns the items of before whose keys no longer appear in after, in index
// order. This is how collaborators detect "item removed" between two snapshots.
func Removed(before, after Items) []Removal {
	alive := make(map[string]struct{}, len(after))
	for _, it := range after {
		if it.Key != "" {
			alive[it.Key] = struct{}{}
		}
	}

	var out []Removal
	for i, it := range before {
		if it.IsEmpty() || it.Key == "" {
			continue
		}
		if _, ok := alive[it.Key]; !ok {
			out = append(out, Removal{Index: i, Item: it})
		}
	}
	return out
}

// AllTilesFilled reports whether every present tile holds a non-empty item.
func AllTilesFilled(items Items, tiles Tiles) bool {
	mustShape(items, tiles)
	for i, it := range items {
		if tiles[i] && it.IsEmpty() {
			return false
		}
	}
	return true
}

func mustShape(items Items, tiles Tiles) {
	if len(items) != CellCount || len(tiles) != CellCount {
		panic(fmt.Sprintf("match3: grid shape mismatch: %d items, %d tiles, want %d",
			len(items), len(tiles), CellCount))
	}
}

// ItemFromGlyph builds an item from its level-file glyph using sp for the key.
// '?' yields a random candy. Returns false for unknown glyphs.
func ItemFromGlyph(r rune, sp *Spawner) (Item, bool) {
	switch {
	case r == '.':
		return Empty(), true
	case r == '?':
		return sp.RandomCandy(), true
	case r == 'C':
		return sp.Chocolate(), true
	}

	if c, ok := ParseColor(string(r)); ok {
		if r >= 'a' && r <= 'z' {
			return sp.SuperCandy(c), true
		}
		return sp.Candy(c), true
	}
	return Item{}, false
}
