package cmd

import (
	"fmt"

	"github.com/jsphweid/midimml/batch"
	"github.com/jsphweid/midimml/song"
	"github.com/spf13/cobra"
)

var convertOut string

func init() {
	convertCmd.Flags().StringVarP(&convertOut, "out", "o", "", "write the notation to this file instead of stdout")
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Converts one MIDI file",
	Long:  `Converts one MIDI file and prints one line of MML per track.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.log.Sync()
		return convert(cmd, a, args[0])
	},
}

func convert(cmd *cobra.Command, a *app, path string) error {
	s, err := song.FromPath(path, a.opts)
	if err != nil {
		return err
	}
	a.log.Debugw("Converted song", "path", path, "tracks", len(s.Tracks), "bpm", s.BPM, "ppq", s.PPQ)

	if convertOut != "" {
		return batch.WriteMML(convertOut, s)
	}
	for _, line := range s.ToMML() {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}
