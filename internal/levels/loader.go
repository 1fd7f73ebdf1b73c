package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Loader reads level files from a directory tree.
type Loader struct {
	Root string
}

// NewLoader creates a loader rooted at root.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively loads every .yaml/.yml file under Root, sorted by ID.
// Files that fail to parse are skipped.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isLevelFile(path) {
			return nil
		}

		lvl, err := l.LoadFile(path)
		if err != nil {
			return nil
		}
		levels = append(levels, lvl)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walking directory %s: %w", l.Root, err)
	}

	sortByID(levels)
	return levels, nil
}

// LoadFile loads and validates a single level file.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("levels: reading file %s: %w", path, err)
	}

	lvl, err := Parse(data)
	if err != nil {
		return Level{}, fmt.Errorf("levels: parsing file %s: %w", path, err)
	}
	lvl.FilePath = path
	return lvl, nil
}

// LoadByID loads the level with the given ID. Returns an error wrapping ErrNotFound
// when no file declares it.
func (l *Loader) LoadByID(id int) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	return Find(levels, id)
}

// Builtin returns the embedded campaign, sorted by ID.
func Builtin() ([]Level, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("levels: reading embedded levels: %w", err)
	}

	levels := make([]Level, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !isLevelFile(e.Name()) {
			continue
		}
		data, err := builtinFS.ReadFile("builtin/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("levels: reading embedded %s: %w", e.Name(), err)
		}
		lvl, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("levels: embedded %s: %w", e.Name(), err)
		}
		levels = append(levels, lvl)
	}

	sortByID(levels)
	return levels, nil
}

// Campaign returns the levels in dir, or the embedded campaign when dir is empty.
func Campaign(dir string) ([]Level, error) {
	if dir == "" {
		return Builtin()
	}
	return NewLoader(dir).LoadAll()
}

// Find returns the level with the given ID from list.
func Find(list []Level, id int) (Level, error) {
	for _, lvl := range list {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("%w: %d", ErrNotFound, id)
}

func isLevelFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func sortByID(levels []Level) {
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
}
