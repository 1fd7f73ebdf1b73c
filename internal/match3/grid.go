package match3

import "fmt"

// Grid dimensions. Indices are row-major and 0-based: index = row*Columns + col.
const (
	Columns   = 9
	Rows      = 9
	CellCount = Columns * Rows
)

// Direction is one of the four straight-line directions on the grid.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// Directions lists the scan order used by the match detector.
var Directions = [4]Direction{DirUp, DirRight, DirDown, DirLeft}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}

// InBounds reports whether i is a valid cell index.
func InBounds(i int) bool {
	return i >= 0 && i < CellCount
}

// Row returns the 1-based row of index i.
func Row(i int) int {
	return (i + Columns) / Columns
}

// Col returns the 1-based column of index i.
func Col(i int) int {
	return (i + 1) - (Row(i)-1)*Columns
}

// Index converts 1-based row and column back to a linear index.
func Index(row, col int) int {
	return (row-1)*Columns + (col - 1)
}

// Offset returns the linear index delta of one step in direction d.
func Offset(d Direction) int {
	switch d {
	case DirUp:
		return -Columns
	case DirRight:
		return 1
	case DirDown:
		return Columns
	case DirLeft:
		return -1
	default:
		panic(fmt.Sprintf("match3: unknown direction %d", d))
	}
}

// Neighbor returns the raw neighbour index of i in direction d.
// The result may be out of range or, horizontally, on another row; use Steps to
// know how far a scan may go.
func Neighbor(i int, d Direction) int {
	return i + Offset(d)
}

// Steps returns how many cells lie between i and the grid edge in direction d.
// Computed from row and column so horizontal walks never wrap to another row.
func Steps(i int, d Direction) int {
	row, col := Row(i), Col(i)
	switch d {
	case DirUp:
		return row - 1
	case DirRight:
		return Columns - col
	case DirDown:
		return Rows - row
	case DirLeft:
		return col - 1
	default:
		panic(fmt.Sprintf("match3: unknown direction %d", d))
	}
}

// LineIndices returns every index on the row of i followed by every index on its column.
// The cell itself appears in both halves.
func LineIndices(i int) []int {
	mustIndex(i)
	row, col := Row(i), Col(i)

	out := make([]int, 0, Columns+Rows)
	start := (row - 1) * Columns
	for c := range Columns {
		out = append(out, start+c)
	}
	for r := range Rows {
		out = append(out, r*Columns+(col-1))
	}
	return out
}

// SwapOffset returns the translation, in percent of a cell, that moves the item at
// index toward target: top is -100/100 for a vertical partner, left is -100/100 for a
// horizontal one. Both are 0 when target is not a raw neighbour.
func SwapOffset(index, target int) (top, left int) {
	switch target {
	case index - Columns:
		top = -100
	case index + Columns:
		top = 100
	}
	switch target {
	case index - 1:
		left = -100
	case index + 1:
		left = 100
	}
	return top, left
}

func mustIndex(i int) {
	if !InBounds(i) {
		panic(fmt.Sprintf("match3: index %d out of range [0,%d)", i, CellCount))
	}
}
