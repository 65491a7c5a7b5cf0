package model

import (
	"github.com/jsphweid/midimml/constants"
	"github.com/pkg/errors"
)

type SongOptions struct {
	// AutoBootVelocity shifts every note so the loudest one in the song
	// reaches the maximum dynamics value.
	AutoBootVelocity bool  `json:"auto_boot_velocity" yaml:"auto_boot_velocity"`
	VelocityMin      uint8 `json:"velocity_min" yaml:"velocity_min"`
	VelocityMax      uint8 `json:"velocity_max" yaml:"velocity_max"`
}

func DefaultSongOptions() SongOptions {
	return SongOptions{
		AutoBootVelocity: constants.DefaultAutoBootVelocity,
		VelocityMin:      constants.DefaultVelocityMin,
		VelocityMax:      constants.DefaultVelocityMax,
	}
}

func (o SongOptions) Validate() error {
	if o.VelocityMax > constants.MaxVelocity {
		return errors.Errorf("velocity max %v is above %v", o.VelocityMax, constants.MaxVelocity)
	}
	if o.VelocityMin > o.VelocityMax {
		return errors.Errorf("velocity min %v is above velocity max %v", o.VelocityMin, o.VelocityMax)
	}
	return nil
}
