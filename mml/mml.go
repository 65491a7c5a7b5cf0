// Package mml turns quantized durations and MIDI keys into Music Macro
// Language tokens.
package mml

import (
	"fmt"
	"strings"

	"github.com/jsphweid/midimml/constants"
)

// Length is one rung of the note-length ladder: a power-of-two duration in
// grid units and the number the notation uses for it (1 = whole, 4 = quarter).
type Length struct {
	DurationInSmallestUnit uint32
	Value                  uint32
}

// Ladder lists every note length from a whole note down to a single grid
// unit, longest first.
func Ladder(smallestUnit uint32) []Length {
	var res []Length
	for d := smallestUnit; d >= 1; d /= 2 {
		res = append(res, Length{DurationInSmallestUnit: d, Value: smallestUnit / d})
	}
	return res
}

var ladder = Ladder(constants.SmallestUnit)

// Encode writes a duration as note-length tokens for symbol, tied with "&"
// and dotted where the remainder allows. The token lengths always add up to
// duration exactly. Encode panics on a zero duration.
func Encode(duration uint32, symbol string) string {
	if duration == 0 {
		panic("mml: cannot encode a zero duration")
	}

	var sb strings.Builder
	for duration > 0 {
		var picked Length
		for _, l := range ladder {
			if duration >= l.DurationInSmallestUnit {
				picked = l
				break
			}
		}
		duration -= picked.DurationInSmallestUnit
		fmt.Fprintf(&sb, "%s%d", symbol, picked.Value)

		half := picked.DurationInSmallestUnit / 2
		if half > 0 && duration >= half {
			sb.WriteString(".")
			duration -= half
		}

		if duration > 0 {
			sb.WriteString("&")
		}
	}
	return sb.String()
}
