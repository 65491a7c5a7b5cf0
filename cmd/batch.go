package cmd

import (
	"fmt"
	"strconv"

	"github.com/jsphweid/midimml/batch"
	"github.com/jsphweid/midimml/file"
	"github.com/jsphweid/midimml/util"
	"github.com/spf13/cobra"
)

var (
	batchOut   string
	batchClean bool
)

func init() {
	batchCmd.Flags().StringVarP(&batchOut, "out", "o", "", "output directory (defaults to MIDIMML_OUT_DIR)")
	batchCmd.Flags().BoolVar(&batchClean, "clean", false, "empty the output directory first")
	rootCmd.AddCommand(batchCmd)
}

var batchCmd = &cobra.Command{
	Use:   "batch <dir> [max]",
	Short: "Converts every MIDI file under a directory",
	Long:  `Converts every .mid/.midi file under a directory, writing one .mml file per song.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var maxNum int
		if len(args) == 2 {
			arg, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			maxNum = arg
		}

		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.log.Sync()
		return runBatch(cmd, a, args[0], maxNum)
	},
}

func runBatch(cmd *cobra.Command, a *app, dir string, maxNum int) error {
	outDir := batchOut
	if outDir == "" {
		outDir = a.cfg.OutDir
	}
	if batchClean {
		if err := util.RecreateOutputDir(outDir); err != nil {
			return err
		}
	}

	paths, err := util.GatherAllMidiPaths(dir, maxNum)
	if err != nil {
		return err
	}
	results := batch.ProcessAllMidiFiles(a.log, file.CreateOutputMap(paths, outDir), a.opts)
	fmt.Fprintf(cmd.OutOrStdout(), "Converted %v of %v midi files into %v\n",
		len(results)-batch.Failed(results), len(results), outDir)
	return nil
}
