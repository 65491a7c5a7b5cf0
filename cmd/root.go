package cmd

import (
	"context"

	"github.com/jsphweid/midimml/config"
	"github.com/jsphweid/midimml/logger"
	"github.com/jsphweid/midimml/model"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:          "midimml",
	Short:        "Converts MIDI files to MML",
	Long:         `Converts Standard MIDI Files into one line of Music Macro Language per track.`,
	SilenceUsage: true,
}

var songFlags struct {
	autoBootVelocity bool
	velocityMin      uint8
	velocityMax      uint8
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&songFlags.autoBootVelocity, "auto-boot-velocity", true, "lift all notes so the loudest one reaches v15")
	pf.Uint8Var(&songFlags.velocityMin, "velocity-min", 0, "lowest dynamics value a note can get")
	pf.Uint8Var(&songFlags.velocityMax, "velocity-max", 15, "highest dynamics value a note can get")
}

func Execute() {
	cobra.CheckErr(rootCmd.ExecuteContext(context.Background()))
}

type app struct {
	cfg  config.Config
	log  *zap.SugaredLogger
	opts model.SongOptions
}

// newApp loads the environment and applies any song option flags given on
// the command line on top of it.
func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.ProvideConfig()
	if err != nil {
		return nil, err
	}
	log, err := logger.ProvideLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	opts := cfg.SongOptions()
	flags := cmd.Flags()
	if flags.Changed("auto-boot-velocity") {
		opts.AutoBootVelocity = songFlags.autoBootVelocity
	}
	if flags.Changed("velocity-min") {
		opts.VelocityMin = songFlags.velocityMin
	}
	if flags.Changed("velocity-max") {
		opts.VelocityMax = songFlags.velocityMax
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	return &app{cfg: cfg, log: log, opts: opts}, nil
}
