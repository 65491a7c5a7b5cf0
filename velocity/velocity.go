// Package velocity maps raw MIDI velocities onto the notation's dynamics
// range (0 to 15) and lifts quiet songs up to full volume.
package velocity

import (
	"math"

	"github.com/jsphweid/midimml/constants"
	"github.com/jsphweid/midimml/model"
	"github.com/jsphweid/midimml/util"
)

// Map scales a raw 0-127 velocity linearly into [min, max].
func Map(raw, min, max uint8) uint8 {
	raw = util.Min(raw, constants.MaxMidiVelocity)
	if max <= min {
		return min
	}
	scaled := float64(raw) / constants.MaxMidiVelocity * float64(max-min)
	return min + uint8(math.Round(scaled))
}

// Highest returns the loudest dynamics value among notes, 0 if there are none.
func Highest(notes []model.Note) uint8 {
	var max uint8
	for _, n := range notes {
		max = util.Max(max, n.Velocity)
	}
	return max
}

// BoostAmount is how far every note has to move up so the loudest one sits at
// the maximum dynamics value.
func BoostAmount(highest uint8) int {
	return constants.MaxVelocity - int(highest)
}

// Shift moves a dynamics value by diff, clamped to the valid range.
func Shift(v uint8, diff int) uint8 {
	return uint8(util.Clamp(int(v)+diff, 0, constants.MaxVelocity))
}
