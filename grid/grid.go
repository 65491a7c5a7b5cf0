package grid

import (
	"math"

	"github.com/jsphweid/midimml/constants"
)

// SmallestUnitInTicks returns how many MIDI ticks make up one grid unit for
// a file with the given pulses per quarter note.
func SmallestUnitInTicks(ppq uint16) float64 {
	return float64(ppq) / (float64(constants.SmallestUnit) / 4)
}

// TickToSmallestUnit quantizes a tick position or length onto the grid,
// rounding half away from zero.
func TickToSmallestUnit(tick uint32, ppq uint16) uint32 {
	unit := SmallestUnitInTicks(ppq)
	return uint32(math.Round(float64(tick) / unit))
}
