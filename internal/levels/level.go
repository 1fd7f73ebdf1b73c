// Package levels loads candy level layouts: which of the 81 cells are playable, the
// starting items, the move budget and the goals.
package levels

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dev0926/candy-tiles/internal/match3"
)

var (
	// ErrNotFound is returned when no level has the requested ID.
	ErrNotFound = errors.New("levels: level not found")
	// ErrInvalidLayout is returned when a level file does not describe a valid 9x9 board.
	ErrInvalidLayout = errors.New("levels: invalid layout")
)

// TaskKind is what a task counts.
type TaskKind string

const (
	TaskColor     TaskKind = "color"     // remove candies of one colour, any variant
	TaskSuper     TaskKind = "super"     // create super candies, optionally of one colour
	TaskChocolate TaskKind = "chocolate" // create chocolates
)

// Task is a goal that must be met to complete a level.
type Task struct {
	Kind  TaskKind
	Color match3.Color // ColorNone matches any colour
	Count int
}

// CountsRemoval reports whether removing it advances this task.
func (t Task) CountsRemoval(it match3.Item) bool {
	return t.Kind == TaskColor && it.Kind != match3.KindChocolate && it.Color == t.Color
}

// CountsFusion reports whether creating it advances this task.
func (t Task) CountsFusion(it match3.Item) bool {
	switch t.Kind {
	case TaskSuper:
		return it.Kind == match3.KindSuperCandy && (t.Color == match3.ColorNone || it.Color == t.Color)
	case TaskChocolate:
		return it.Kind == match3.KindChocolate
	default:
		return false
	}
}

// String returns a short label such as "12 red" or "2 chocolate".
func (t Task) String() string {
	switch t.Kind {
	case TaskColor:
		return fmt.Sprintf("%d %s", t.Count, t.Color)
	case TaskSuper:
		if t.Color == match3.ColorNone {
			return fmt.Sprintf("%d super", t.Count)
		}
		return fmt.Sprintf("%d super %s", t.Count, t.Color)
	default:
		return fmt.Sprintf("%d %s", t.Count, t.Kind)
	}
}

// Level is a validated level definition.
type Level struct {
	ID          int
	Name        string
	Moves       int
	TargetScore int
	Tasks       []Task
	Tiles       match3.Tiles
	Items       []string // item glyph rows, resolved by Build
	FilePath    string   // empty for built-in levels
}

// rerollPasses bounds how often Build redraws random cells that complete a run.
const rerollPasses = 50

// Build returns the level's tiles and a fresh item grid. Every item gets a new key from
// sp. '?' cells draw a random candy and are redrawn while they complete a run, so a
// board made only of random cells starts without standing matches.
func (l *Level) Build(sp *match3.Spawner) (match3.Tiles, match3.Items) {
	items := make(match3.Items, 0, match3.CellCount)
	random := make([]bool, 0, match3.CellCount)
	for _, row := range l.Items {
		for _, r := range row {
			it, _ := match3.ItemFromGlyph(r, sp) // glyphs were validated by Parse
			items = append(items, it)
			random = append(random, r == '?')
		}
	}

	tiles := l.Tiles.Clone()
	for range rerollPasses {
		matches := match3.DetectMatches(items, tiles)
		if !matches.ThereWereMatches {
			break
		}
		changed := false
		for _, d := range matches.Matched() {
			if random[d.Index] {
				items[d.Index] = sp.RandomCandy()
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	return tiles, items
}

// Endless returns the layout used by the endless variant: every tile present, every
// item random, no goals and no move limit.
func Endless() Level {
	rows := make([]string, match3.Rows)
	for r := range rows {
		rows[r] = strings.Repeat("?", match3.Columns)
	}
	return Level{
		Name:  "Endless",
		Tiles: match3.FullTiles(),
		Items: rows,
	}
}

type yamlTask struct {
	Kind  string `yaml:"kind"`
	Color string `yaml:"color,omitempty"`
	Count int    `yaml:"count"`
}

type yamlLevel struct {
	ID          int        `yaml:"id"`
	Name        string     `yaml:"name"`
	Moves       int        `yaml:"moves"`
	TargetScore int        `yaml:"target_score"`
	Tasks       []yamlTask `yaml:"tasks,omitempty"`
	Tiles       []string   `yaml:"tiles,omitempty"`
	Items       []string   `yaml:"items"`
}

// Parse decodes and validates a YAML level. Layout problems wrap ErrInvalidLayout.
func Parse(data []byte) (Level, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("levels: yaml unmarshal: %w", err)
	}

	if yl.ID <= 0 {
		return Level{}, fmt.Errorf("%w: id must be positive, got %d", ErrInvalidLayout, yl.ID)
	}
	if yl.Moves <= 0 {
		return Level{}, fmt.Errorf("%w: level %d: moves must be positive", ErrInvalidLayout, yl.ID)
	}
	if yl.TargetScore < 0 {
		return Level{}, fmt.Errorf("%w: level %d: negative target score", ErrInvalidLayout, yl.ID)
	}

	tiles, err := parseTiles(yl.Tiles)
	if err != nil {
		return Level{}, fmt.Errorf("%w: level %d: %v", ErrInvalidLayout, yl.ID, err)
	}
	if err := checkItems(yl.Items, tiles); err != nil {
		return Level{}, fmt.Errorf("%w: level %d: %v", ErrInvalidLayout, yl.ID, err)
	}

	tasks := make([]Task, 0, len(yl.Tasks))
	for _, yt := range yl.Tasks {
		t, err := parseTask(yt)
		if err != nil {
			return Level{}, fmt.Errorf("%w: level %d: %v", ErrInvalidLayout, yl.ID, err)
		}
		tasks = append(tasks, t)
	}

	name := yl.Name
	if name == "" {
		name = fmt.Sprintf("Level %d", yl.ID)
	}

	return Level{
		ID:          yl.ID,
		Name:        name,
		Moves:       yl.Moves,
		TargetScore: yl.TargetScore,
		Tasks:       tasks,
		Tiles:       tiles,
		Items:       append([]string(nil), yl.Items...),
	}, nil
}

// parseTiles reads '#' (present) and '.' (hole) rows. No rows means every tile is present.
func parseTiles(rows []string) (match3.Tiles, error) {
	if len(rows) == 0 {
		return match3.FullTiles(), nil
	}
	if len(rows) != match3.Rows {
		return nil, fmt.Errorf("tiles: want %d rows, got %d", match3.Rows, len(rows))
	}

	tiles := make(match3.Tiles, 0, match3.CellCount)
	for r, row := range rows {
		if len(row) != match3.Columns {
			return nil, fmt.Errorf("tiles row %d: want %d cells, got %d", r+1, match3.Columns, len(row))
		}
		for c, ch := range row {
			switch ch {
			case '#':
				tiles = append(tiles, true)
			case '.':
				tiles = append(tiles, false)
			default:
				return nil, fmt.Errorf("tiles row %d col %d: unknown glyph %q", r+1, c+1, ch)
			}
		}
	}
	return tiles, nil
}

func checkItems(rows []string, tiles match3.Tiles) error {
	if len(rows) != match3.Rows {
		return fmt.Errorf("items: want %d rows, got %d", match3.Rows, len(rows))
	}
	for r, row := range rows {
		if len(row) != match3.Columns {
			return fmt.Errorf("items row %d: want %d cells, got %d", r+1, match3.Columns, len(row))
		}
		for c, ch := range row {
			if !validGlyph(ch) {
				return fmt.Errorf("items row %d col %d: unknown glyph %q", r+1, c+1, ch)
			}
			if !tiles[match3.Index(r+1, c+1)] && ch != '.' {
				return fmt.Errorf("items row %d col %d: hole holds %q", r+1, c+1, ch)
			}
		}
	}
	return nil
}

func validGlyph(r rune) bool {
	if r == '.' || r == '?' || r == 'C' {
		return true
	}
	_, ok := match3.ParseColor(string(r))
	return ok
}

func parseTask(yt yamlTask) (Task, error) {
	if yt.Count <= 0 {
		return Task{}, fmt.Errorf("task %q: count must be positive", yt.Kind)
	}

	t := Task{Kind: TaskKind(strings.ToLower(yt.Kind)), Count: yt.Count}
	if yt.Color != "" {
		c, ok := match3.ParseColor(yt.Color)
		if !ok {
			return Task{}, fmt.Errorf("task %q: unknown colour %q", yt.Kind, yt.Color)
		}
		t.Color = c
	}

	switch t.Kind {
	case TaskColor:
		if t.Color == match3.ColorNone {
			return Task{}, fmt.Errorf("task color: colour is required")
		}
	case TaskSuper, TaskChocolate:
	default:
		return Task{}, fmt.Errorf("unknown task kind %q", yt.Kind)
	}
	return t, nil
}
