package levels

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev0926/candy-tiles/internal/match3"
)

func writeLevel(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestBuiltinCampaign(t *testing.T) {
	list, err := Builtin()
	require.NoError(t, err)
	require.NotEmpty(t, list)

	for i, lvl := range list {
		assert.Equal(t, i+1, lvl.ID, "built-in IDs are consecutive from 1")
		assert.NotEmpty(t, lvl.Name)
		assert.Positive(t, lvl.Moves)
		assert.Empty(t, lvl.FilePath)

		sp := match3.NewSpawner(match3.NewCounterKeys("k"), fixedRand(0))
		tiles, items := lvl.Build(sp)
		assert.True(t, match3.AllTilesFilled(items, tiles), "level %d fills every tile", lvl.ID)
	}
}

func TestLoaderLoadAllSortsAndSkipsInvalid(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, "b.yaml", validLevel)
	writeLevel(t, dir, "nested/a.yml", "id: 2\nmoves: 3\nitems:\n"+nineQuestionRows())
	writeLevel(t, dir, "broken.yaml", "id: 9\nmoves: 3\nitems: []\n")
	writeLevel(t, dir, "notes.txt", "not a level")

	list, err := NewLoader(dir).LoadAll()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 2, list[0].ID)
	assert.Equal(t, 7, list[1].ID)
	assert.Equal(t, filepath.Join(dir, "b.yaml"), list[1].FilePath)
}

func TestLoaderLoadFileError(t *testing.T) {
	dir := t.TempDir()
	path := writeLevel(t, dir, "bad.yaml", "id: 1\nmoves: 3\nitems:\n  - \"?\"\n")

	_, err := NewLoader(dir).LoadFile(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidLayout))

	_, err = NewLoader(dir).LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoaderLoadByID(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, "seven.yaml", validLevel)

	lvl, err := NewLoader(dir).LoadByID(7)
	require.NoError(t, err)
	assert.Equal(t, "Test Kitchen", lvl.Name)

	_, err = NewLoader(dir).LoadByID(8)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestCampaignFallsBackToBuiltin(t *testing.T) {
	builtin, err := Builtin()
	require.NoError(t, err)

	list, err := Campaign("")
	require.NoError(t, err)
	assert.Len(t, list, len(builtin))

	_, err = Find(list, 999)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func nineQuestionRows() string {
	var s string
	for range match3.Rows {
		s += "  - \"?????????\"\n"
	}
	return s
}
