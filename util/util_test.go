package util

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinMaxClamp(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(2, Min(2, 5))
	assert.Equal(5, Max(2, 5))
	assert.Equal(15, Clamp(18, 0, 15))
	assert.Equal(0, Clamp(-3, 0, 15))
	assert.Equal(7, Clamp(7, 0, 15))
}

func TestSum(t *testing.T) {
	assert.Equal(t, uint64(6), Sum([]uint8{1, 2, 3}))
	assert.Equal(t, uint64(0), Sum([]int{}))
}

func TestGetKeys(t *testing.T) {
	keys := GetKeys(map[string]int{"a": 1, "b": 2})
	sort.Strings(keys)
	assert.Equal(t, []string{"a", "b"}, keys)
}

func TestGatherAllMidiPaths(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0777))
	for _, name := range []string{"a.mid", "b.MIDI", "notes.txt", "nested/c.mid"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte{}, 0666))
	}

	assert := assert.New(t)
	paths, err := GatherAllMidiPaths(dir, 0)
	assert.NoError(err)
	assert.Equal([]string{
		filepath.Join(dir, "a.mid"),
		filepath.Join(dir, "b.MIDI"),
		filepath.Join(dir, "nested", "c.mid"),
	}, paths)

	paths, err = GatherAllMidiPaths(dir, 1)
	assert.NoError(err)
	assert.Len(paths, 1)

	_, err = GatherAllMidiPaths(filepath.Join(dir, "missing"), 0)
	assert.Error(err)
}

func TestRecreateOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, os.MkdirAll(dir, 0777))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "old.mml"), []byte("t120"), 0666))

	assert := assert.New(t)
	assert.NoError(RecreateOutputDir(dir))
	entries, err := os.ReadDir(dir)
	assert.NoError(err)
	assert.Empty(entries)
}
