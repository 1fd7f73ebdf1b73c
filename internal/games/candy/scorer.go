package candy

import (
	"github.com/dev0926/candy-tiles/internal/config"
	"github.com/dev0926/candy-tiles/internal/levels"
	"github.com/dev0926/candy-tiles/internal/match3"
)

// TaskStatus is the progress of one level task.
type TaskStatus struct {
	Task levels.Task
	Done int
}

// Complete reports whether the task count has been reached.
func (s TaskStatus) Complete() bool {
	return s.Done >= s.Task.Count
}

// Scorer keeps score and task counters. It learns about removals by diffing the grid
// before and after a round's removal step, the same way any observer of the board
// would: an item whose key disappeared was consumed.
type Scorer struct {
	scoring config.CandyScoring
	tasks   []TaskStatus
	score   int
	removed int
}

// NewScorer creates a scorer for the given tasks.
func NewScorer(scoring config.CandyScoring, tasks []levels.Task) *Scorer {
	s := &Scorer{scoring: scoring}
	for _, t := range tasks {
		s.tasks = append(s.tasks, TaskStatus{Task: t})
	}
	return s
}

// OnRound records one cascade round. n is the 1-based round number within the move;
// every round after the first adds RoundBonus per removed item. Returns points gained.
func (s *Scorer) OnRound(n int, before, cleared match3.Items, fusions []match3.Fusion) int {
	gained := 0
	for _, rm := range match3.Removed(before, cleared) {
		gained += s.pointsFor(rm.Item) + s.scoring.RoundBonus*(n-1)
		s.removed++
		for i := range s.tasks {
			if s.tasks[i].Task.CountsRemoval(rm.Item) {
				s.tasks[i].Done++
			}
		}
	}

	for _, f := range fusions {
		for i := range s.tasks {
			if s.tasks[i].Task.CountsFusion(f.Item) {
				s.tasks[i].Done++
			}
		}
	}

	s.score += gained
	return gained
}

func (s *Scorer) pointsFor(it match3.Item) int {
	switch it.Kind {
	case match3.KindSuperCandy:
		return s.scoring.SuperCandy
	case match3.KindChocolate:
		return s.scoring.Chocolate
	default:
		return s.scoring.Candy
	}
}

// Score returns the running total.
func (s *Scorer) Score() int {
	return s.score
}

// Removed returns how many items were consumed so far.
func (s *Scorer) Removed() int {
	return s.removed
}

// Tasks returns a copy of the task progress.
func (s *Scorer) Tasks() []TaskStatus {
	return append([]TaskStatus(nil), s.tasks...)
}

// TasksDone reports whether every task is complete. True when there are no tasks.
func (s *Scorer) TasksDone() bool {
	for _, t := range s.tasks {
		if !t.Complete() {
			return false
		}
	}
	return true
}

// Stars rates a score against a level target: 1 at the target, 2 and 3 at the
// configured multiples. A zero target rates every score as 3 stars.
func Stars(score, target int, scoring config.CandyScoring) int {
	if target <= 0 {
		return 3
	}
	s := float64(score)
	t := float64(target)
	switch {
	case s >= t*scoring.ThreeStars:
		return 3
	case s >= t*scoring.TwoStars:
		return 2
	case score >= target:
		return 1
	default:
		return 0
	}
}
