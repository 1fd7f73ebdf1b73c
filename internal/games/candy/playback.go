package candy

import "github.com/dev0926/candy-tiles/internal/match3"

// Phase is what the board is currently showing.
type Phase int

const (
	PhaseIdle     Phase = iota
	PhaseSwap           // the two items trade places
	PhaseRevert         // the swap matched nothing and slides back
	PhaseMatched        // matched items are highlighted
	PhaseCleared        // matched items are gone, fusions appear
	PhaseFallen         // items have dropped into the gaps
	PhaseRefilled       // new items fill the top
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSwap:
		return "swap"
	case PhaseRevert:
		return "revert"
	case PhaseMatched:
		return "matched"
	case PhaseCleared:
		return "cleared"
	case PhaseFallen:
		return "fallen"
	case PhaseRefilled:
		return "refilled"
	default:
		return "unknown"
	}
}

// frame is one step of playback: a grid to show for a number of ticks.
type frame struct {
	phase    Phase
	grid     match3.Items
	marks    map[int]bool // cells to highlight
	round    int          // 1-based cascade round, 0 outside the cascade
	before   match3.Items // for PhaseCleared: the grid the round started from
	fusions  []match3.Fusion
	duration int
}

// playback walks through frames one tick at a time.
type playback struct {
	frames []frame
	pos    int
	ticks  int
}

func (p *playback) current() *frame {
	if p == nil || p.pos >= len(p.frames) {
		return nil
	}
	return &p.frames[p.pos]
}

// advance moves one tick forward. Returns the frame that was entered on this tick, or
// nil if the current frame continues or playback ended.
func (p *playback) advance() *frame {
	f := p.current()
	if f == nil {
		return nil
	}
	p.ticks++
	if p.ticks < f.duration {
		return nil
	}
	p.pos++
	p.ticks = 0
	return p.current()
}

func (p *playback) done() bool {
	return p == nil || p.pos >= len(p.frames)
}

// swapFrames builds the frames of a swap that matched nothing.
func swapFrames(res match3.MoveResult, swap match3.Swap, ticks int) []frame {
	marks := map[int]bool{swap.From: true, swap.To: true}
	return []frame{
		{phase: PhaseSwap, grid: res.Swapped, marks: marks, duration: ticks},
		{phase: PhaseRevert, grid: res.Items, marks: marks, duration: ticks},
	}
}

// traceFrames builds the frames of a resolved move: the swap, then four phases per
// cascade round.
func traceFrames(res match3.MoveResult, swap match3.Swap, swapTicks, phaseTicks int) []frame {
	frames := []frame{{
		phase:    PhaseSwap,
		grid:     res.Swapped,
		marks:    map[int]bool{swap.From: true, swap.To: true},
		duration: swapTicks,
	}}

	for n, r := range res.Trace.Rounds {
		matched := make(map[int]bool)
		for _, d := range r.Matches.Matched() {
			matched[d.Index] = true
		}

		fused := make(map[int]bool)
		for _, f := range r.Fusions {
			fused[f.Index] = true
		}

		fallen := make(map[int]bool)
		for _, p := range r.Repositions {
			fallen[p.Index+p.TilesToMove*match3.Columns] = true
		}

		spawned := make(map[int]bool)
		for _, s := range r.Spawns {
			spawned[s.Index] = true
		}

		frames = append(frames,
			frame{phase: PhaseMatched, grid: r.Before, marks: matched, round: n + 1, duration: phaseTicks},
			frame{phase: PhaseCleared, grid: r.Cleared, marks: fused, round: n + 1, before: r.Before, fusions: r.Fusions, duration: phaseTicks},
			frame{phase: PhaseFallen, grid: r.Settled, marks: fallen, round: n + 1, duration: phaseTicks},
			frame{phase: PhaseRefilled, grid: r.After, marks: spawned, round: n + 1, duration: phaseTicks},
		)
	}
	return frames
}
