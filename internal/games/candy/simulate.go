package candy

import (
	"math/rand"

	"github.com/dev0926/candy-tiles/internal/config"
	"github.com/dev0926/candy-tiles/internal/levels"
	"github.com/dev0926/candy-tiles/internal/match3"
)

// RoundReport summarizes one cascade round of a simulated move.
type RoundReport struct {
	Matched int
	Fusions int
	Spawned int
	Points  int
}

// MoveReport summarizes one simulated move.
type MoveReport struct {
	Move     int
	Swap     match3.Swap
	Rounds   []RoundReport
	Capped   bool
	Shuffled bool // the board had no legal move and was shuffled first
	Score    int
}

// SimResult is the outcome of a headless run.
type SimResult struct {
	Moves     int
	Score     int
	Stars     int
	TasksDone bool
	Completed bool
	Board     string
}

// Simulate plays random legal moves on lvl without any UI. It stops when the level is
// complete, its move budget is spent, maxMoves is reached or the board is stuck.
// Identity keys come from a counter so two runs with the same seed are identical.
// report, when non-nil, is called after every move.
func Simulate(lvl levels.Level, cfg config.CandyConfig, seed int64, maxMoves int, report func(MoveReport)) SimResult {
	rng := rand.New(rand.NewSource(seed))
	keys := match3.NewCounterKeys("k")

	tiles, items := lvl.Build(match3.NewSpawner(keys, rng))
	session := match3.NewSession(tiles, items,
		match3.WithKeys(keys),
		match3.WithRand(rng),
		match3.WithRules(cfg.Rules.Engine()),
	)
	session.Settle()
	scorer := NewScorer(cfg.Scoring, lvl.Tasks)

	budget := maxMoves
	campaign := lvl.ID > 0
	switch {
	case lvl.Moves > 0:
		budget = min(budget, cfg.MovesFor(lvl.Moves))
	case !campaign && cfg.Endless.Moves > 0:
		budget = min(budget, cfg.Endless.Moves)
	}

	var res SimResult
	for res.Moves < budget {
		if campaign && scorer.Score() >= lvl.TargetScore && scorer.TasksDone() {
			break
		}

		shuffled := false
		moves := session.LegalMoves()
		if len(moves) == 0 {
			if !session.Shuffle(cfg.Rules.ShuffleAttempts) {
				break
			}
			shuffled = true
			moves = session.LegalMoves()
		}

		swap := moves[rng.Intn(len(moves))]
		out := session.Move(swap)
		res.Moves++

		rep := MoveReport{Move: res.Moves, Swap: swap, Capped: out.Trace.Capped, Shuffled: shuffled}
		for n, r := range out.Trace.Rounds {
			rep.Rounds = append(rep.Rounds, RoundReport{
				Matched: len(r.Matches.Matched()),
				Fusions: len(r.Fusions),
				Spawned: len(r.Spawns),
				Points:  scorer.OnRound(n+1, r.Before, r.Cleared, r.Fusions),
			})
		}
		rep.Score = scorer.Score()
		if report != nil {
			report(rep)
		}
	}

	res.Score = scorer.Score()
	res.TasksDone = scorer.TasksDone()
	res.Completed = campaign && res.Score >= lvl.TargetScore && res.TasksDone
	if res.Completed {
		res.Stars = Stars(res.Score, lvl.TargetScore, cfg.Scoring)
	}
	res.Board = session.Items().String()
	return res
}
