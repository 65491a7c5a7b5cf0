package cmd

import (
	"os"

	"github.com/jsphweid/midimml/sample"
	"github.com/spf13/cobra"
)

var samplePPQ uint16

func init() {
	sampleCmd.Flags().Uint16Var(&samplePPQ, "ppq", 480, "pulses per quarter note of the written file")
	rootCmd.AddCommand(sampleCmd)
}

var sampleCmd = &cobra.Command{
	Use:   "sample <out.mid>",
	Short: "Writes a demo MIDI file",
	Long:  `Writes a short two track demo MIDI file to try the other commands on.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := sample.Create(samplePPQ, sample.Scale(sample.Demo(), samplePPQ)...)
		if err != nil {
			return err
		}
		data, err := sample.Bytes(s)
		if err != nil {
			return err
		}
		return os.WriteFile(args[0], data, 0666)
	},
}
