// Package batch converts many MIDI files into notation files.
package batch

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jsphweid/midimml/model"
	"github.com/jsphweid/midimml/song"
	"github.com/jsphweid/midimml/util"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Result struct {
	Path   string
	Output string
	Tracks int
	Notes  int
	Chords int
	Err    error
}

// WriteMML writes one rendered track per line to path.
func WriteMML(path string, s *song.Song) error {
	if err := os.MkdirAll(filepath.Dir(path), 0777); err != nil {
		return errors.Wrap(err, "creating output dir")
	}
	content := strings.Join(s.ToMML(), "\n") + "\n"
	return errors.Wrapf(os.WriteFile(path, []byte(content), 0666), "writing %v", path)
}

func processMidiFile(path, output string, opts model.SongOptions) Result {
	res := Result{Path: path, Output: output}
	s, err := song.FromPath(path, opts)
	if err != nil {
		res.Err = err
		return res
	}
	if err := WriteMML(output, s); err != nil {
		res.Err = err
		return res
	}

	res.Tracks = len(s.Tracks)
	res.Notes = s.NoteCount()
	for i := range s.Tracks {
		res.Chords += s.Tracks[i].ChordCount()
	}
	return res
}

// ProcessAllMidiFiles converts every MIDI path in m to the output path it
// maps to. Files that fail are logged and skipped; every file gets a Result.
func ProcessAllMidiFiles(log *zap.SugaredLogger, m map[string]string, opts model.SongOptions) []Result {
	keys := util.GetKeys(m)
	sort.Strings(keys)

	results := make([]Result, 0, len(keys))
	for i, path := range keys {
		log.Debugf("Processing %v of %v midi files", i+1, len(keys))
		res := processMidiFile(path, m[path], opts)
		if res.Err != nil {
			log.Warnw("Skipping midi file", "path", path, "error", res.Err)
		} else {
			log.Infow("Converted midi file", "path", path, "output", res.Output, "tracks", res.Tracks)
		}
		results = append(results, res)
	}
	return results
}

// Failed counts results that carry an error.
func Failed(results []Result) int {
	var n int
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
