package match3

import (
	"fmt"
	"strings"
)

// FormatTrace renders a trace as plain text, one block per round. Keys are omitted so
// the output only depends on the grid contents.
func FormatTrace(t Trace) string {
	var sb strings.Builder
	for n, r := range t.Rounds {
		fmt.Fprintf(&sb, "round %d\n", n+1)

		matched := r.Matches.Matched()
		fmt.Fprintf(&sb, "matched:")
		for _, d := range matched {
			fmt.Fprintf(&sb, " %d(u%d r%d d%d l%d)", d.Index, d.Up, d.Right, d.Down, d.Left)
		}
		sb.WriteByte('\n')

		fmt.Fprintf(&sb, "fusions:")
		for _, f := range r.Fusions {
			fmt.Fprintf(&sb, " %d=%c", f.Index, f.Item.Glyph())
		}
		sb.WriteByte('\n')

		fmt.Fprintf(&sb, "removed:")
		for _, rm := range r.Removed {
			fmt.Fprintf(&sb, " %d=%c", rm.Index, rm.Item.Glyph())
		}
		sb.WriteByte('\n')

		fmt.Fprintf(&sb, "falls:")
		for _, p := range r.Repositions {
			fmt.Fprintf(&sb, " %d+%d", p.Index, p.TilesToMove)
		}
		sb.WriteByte('\n')

		fmt.Fprintf(&sb, "spawns:")
		for _, s := range r.Spawns {
			fmt.Fprintf(&sb, " %d=%c", s.Index, s.Item.Glyph())
		}
		sb.WriteByte('\n')

		sb.WriteString(r.After.String())
		sb.WriteByte('\n')
	}
	if t.Capped {
		sb.WriteString("capped\n")
	}
	return sb.String()
}
