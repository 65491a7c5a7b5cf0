package file

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputPath(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(filepath.Join("out", "song.mml"), OutputPath("out", filepath.Join("media", "song.mid")))
	assert.Equal(filepath.Join("out", "a.b.mml"), OutputPath("out", "a.b.MIDI"))
}

func TestCreateOutputMap(t *testing.T) {
	paths := []string{
		filepath.Join("a", "theme.mid"),
		filepath.Join("b", "theme.mid"),
		filepath.Join("c", "theme.midi"),
		filepath.Join("c", "intro.mid"),
	}
	m := CreateOutputMap(paths, "out")

	assert := assert.New(t)
	assert.Equal(map[string]string{
		paths[0]: filepath.Join("out", "theme.mml"),
		paths[1]: filepath.Join("out", "theme-1.mml"),
		paths[2]: filepath.Join("out", "theme-2.mml"),
		paths[3]: filepath.Join("out", "intro.mml"),
	}, m)
}

func TestCreateOutputMapAvoidsSuffixClash(t *testing.T) {
	paths := []string{
		filepath.Join("a", "x.mid"),
		filepath.Join("b", "x.mid"),
		filepath.Join("c", "x-1.mid"),
		filepath.Join("d", "x.mid"),
	}
	m := CreateOutputMap(paths, "out")

	assert := assert.New(t)
	assert.Equal(map[string]string{
		paths[0]: filepath.Join("out", "x.mml"),
		paths[1]: filepath.Join("out", "x-1.mml"),
		paths[2]: filepath.Join("out", "x-1-1.mml"),
		paths[3]: filepath.Join("out", "x-2.mml"),
	}, m)
}
