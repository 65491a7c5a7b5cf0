// Package chord decides how a note that starts while another is still
// sounding fits into a track that can only play one note or chord at a time.
package chord

import (
	"fmt"

	"github.com/jsphweid/midimml/model"
)

// TryConnectToChord checks whether current belongs to the same chord as
// before, the note opened just ahead of it. If it does, a ConnectChord
// carrying current is appended and true is returned; the caller must not
// add a SetNote for current in that case.
//
// Notes landing on the same grid unit always join. Otherwise current has to
// be at least about a fifth as long as before, and start within a fifth of
// before's length in ticks.
func TryConnectToChord(events []model.TrackEvent, current, before model.Note) ([]model.TrackEvent, bool) {
	if current.PositionInSmallestUnit < before.PositionInSmallestUnit {
		panic(fmt.Sprintf("chord: note at %v starts before previous note at %v",
			current.PositionInSmallestUnit, before.PositionInSmallestUnit))
	}

	positionDiff := current.PositionInSmallestUnit - before.PositionInSmallestUnit
	isLessThanSmallestUnit := positionDiff < 1
	isSameDuration := current.DurationInSmallestUnit > before.DurationInSmallestUnit/5
	// compared against raw ticks on purpose, the grid is too coarse here
	isSamePosition := positionDiff < before.DurationInTick/5

	if isLessThanSmallestUnit || (isSamePosition && isSameDuration) {
		return append(events, model.ConnectChord{Note: current}), true
	}
	return events, false
}

// Overlaps reports whether a note starting at position would begin while
// one of the emitted SetNote events is still sounding.
func Overlaps(events []model.TrackEvent, position uint32) bool {
	for _, event := range events {
		if e, ok := event.(model.SetNote); ok && e.Note.EndInSmallestUnit() > position {
			return true
		}
	}
	return false
}

// CutPreviousNotes shortens every SetNote that is still sounding at
// position so it ends exactly there.
func CutPreviousNotes(events []model.TrackEvent, position uint32) {
	for i, event := range events {
		e, ok := event.(model.SetNote)
		if !ok {
			continue
		}

		end := e.Note.EndInSmallestUnit()
		if end <= position {
			continue
		}
		if e.Note.PositionInSmallestUnit > position {
			panic(fmt.Sprintf("chord: cannot cut note at %v back to %v",
				e.Note.PositionInSmallestUnit, position))
		}
		e.Note.DurationInSmallestUnit -= end - position
		events[i] = e
	}
}
