package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/jsphweid/midimml/model"
	"github.com/jsphweid/midimml/song"
	"github.com/jsphweid/midimml/util"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report <dir>",
	Short: "Creates a report",
	Long:  `Converts every MIDI file under a directory in memory and reports tracks, notes and chords per file.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.log.Sync()

		paths, err := util.GatherAllMidiPaths(args[0], 0)
		if err != nil {
			return err
		}
		r := analyze(a.log, paths, a.opts)

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "file\ttracks\tnotes\tchords")
		for _, f := range r.files {
			fmt.Fprintf(w, "%v\t%v\t%v\t%v\n", f.path, f.tracks, f.notes, f.chords)
		}
		fmt.Fprintf(w, "total (%v skipped)\t%v\t%v\t%v\n",
			r.skipped, util.Sum(r.tracks()), util.Sum(r.notes()), util.Sum(r.chords()))
		return w.Flush()
	},
}

type fileReport struct {
	path   string
	tracks int
	notes  int
	chords int
}

type songsReport struct {
	files   []fileReport
	skipped int
}

func (r songsReport) tracks() []int {
	res := make([]int, 0, len(r.files))
	for _, f := range r.files {
		res = append(res, f.tracks)
	}
	return res
}

func (r songsReport) notes() []int {
	res := make([]int, 0, len(r.files))
	for _, f := range r.files {
		res = append(res, f.notes)
	}
	return res
}

func (r songsReport) chords() []int {
	res := make([]int, 0, len(r.files))
	for _, f := range r.files {
		res = append(res, f.chords)
	}
	return res
}

func analyze(log *zap.SugaredLogger, paths []string, opts model.SongOptions) songsReport {
	var report songsReport
	for _, path := range paths {
		s, err := song.FromPath(path, opts)
		if err != nil {
			log.Warnw("Skipping midi file", "path", path, "error", err)
			report.skipped++
			continue
		}

		f := fileReport{path: path, tracks: len(s.Tracks), notes: s.NoteCount()}
		for i := range s.Tracks {
			f.chords += s.Tracks[i].ChordCount()
		}
		report.files = append(report.files, f)
	}
	return report
}
