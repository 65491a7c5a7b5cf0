package cmd

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/midimml/batch"
	"github.com/jsphweid/midimml/file"
	"github.com/jsphweid/midimml/song"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-converts a MIDI file whenever it changes",
	Long:  `Re-converts a MIDI file into MIDIMML_OUT_DIR whenever it changes, until interrupted.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.log.Sync()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return watch(ctx, a, args[0])
	},
}

func convertToOutDir(a *app, path string) {
	output := file.OutputPath(a.cfg.OutDir, path)
	s, err := song.FromPath(path, a.opts)
	if err != nil {
		a.log.Warnw("Could not convert midi file", "path", path, "error", err)
		return
	}
	if err := batch.WriteMML(output, s); err != nil {
		a.log.Errorw("Could not write notation", "path", output, "error", err)
		return
	}
	a.log.Infow("Converted midi file", "path", path, "output", output, "tracks", len(s.Tracks))
}

// watch polls path for modification time changes. Editors tend to write a
// file in several steps, so conversions are debounced.
func watch(ctx context.Context, a *app, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	lastMod := info.ModTime()
	convertToOutDir(a, path)

	debounced := debounce.New(a.cfg.Debounce)
	ticker := time.NewTicker(a.cfg.WatchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			info, err := os.Stat(path)
			if err != nil {
				a.log.Debugw("Could not stat watched file", "path", path, "error", err)
				continue
			}
			if info.ModTime().Equal(lastMod) {
				continue
			}
			lastMod = info.ModTime()
			debounced(func() { convertToOutDir(a, path) })
		}
	}
}
