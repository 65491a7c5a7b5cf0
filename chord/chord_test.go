package chord

import (
	"fmt"
	"testing"

	"github.com/jsphweid/midimml/model"
	"github.com/stretchr/testify/assert"
)

// note builds a note at 480 ppq, where one grid unit is 30 ticks.
func note(key uint8, position, duration uint32) model.Note {
	return model.Note{
		Key:                    key,
		PositionInTick:         position * 30,
		DurationInTick:         duration * 30,
		PositionInSmallestUnit: position,
		DurationInSmallestUnit: duration,
	}
}

func TestSamePositionAlwaysChords(t *testing.T) {
	cases := []struct {
		before model.Note
		curr   model.Note
	}{
		{note(60, 0, 16), note(64, 0, 16)},
		{note(60, 0, 64), note(64, 0, 1)},
		{note(60, 8, 1), note(64, 8, 64)},
	}

	for _, c := range cases {
		name := fmt.Sprintf("before %v long, current %v long", c.before.DurationInSmallestUnit, c.curr.DurationInSmallestUnit)
		t.Run(name, func(t *testing.T) {
			events, ok := TryConnectToChord(nil, c.curr, c.before)
			assert := assert.New(t)
			assert.True(ok)
			assert.Equal([]model.TrackEvent{model.ConnectChord{Note: c.curr}}, events)
		})
	}
}

func TestSlightlyLateNoteChords(t *testing.T) {
	before := note(60, 0, 16)
	curr := note(64, 1, 16)
	// diff of 1 unit is below 480 ticks / 5
	events, ok := TryConnectToChord([]model.TrackEvent{model.SetNote{Note: before}}, curr, before)

	assert := assert.New(t)
	assert.True(ok)
	assert.Len(events, 2)
	assert.Equal(model.ConnectChord{Note: curr}, events[1])
}

func TestMuchShorterNoteDoesNotChord(t *testing.T) {
	before := note(60, 0, 64)
	curr := note(64, 1, 12)
	events, ok := TryConnectToChord(nil, curr, before)

	assert := assert.New(t)
	assert.False(ok)
	assert.Empty(events)
}

func TestLateNoteDoesNotChord(t *testing.T) {
	// 60 ticks long, so anything 12 or more units later starts its own note
	before := note(60, 0, 2)
	curr := note(64, 12, 2)
	events, ok := TryConnectToChord(nil, curr, before)

	assert := assert.New(t)
	assert.False(ok)
	assert.Empty(events)
}

func TestPositionComparedInTicks(t *testing.T) {
	// 4 units late against a 96 tick note: 4 < 96/5 chords even though the
	// earlier note is only 3 units long on the grid
	before := model.Note{PositionInSmallestUnit: 0, DurationInSmallestUnit: 3, DurationInTick: 96}
	curr := model.Note{PositionInSmallestUnit: 4, DurationInSmallestUnit: 3, DurationInTick: 96}
	_, ok := TryConnectToChord(nil, curr, before)
	assert.True(t, ok)
}

func TestTryConnectPanicsOnUnorderedNotes(t *testing.T) {
	assert.Panics(t, func() {
		TryConnectToChord(nil, note(60, 0, 4), note(60, 4, 4))
	})
}

func TestCutPreviousNotes(t *testing.T) {
	events := []model.TrackEvent{
		model.SetNote{Note: note(60, 0, 32)},
		model.ConnectChord{Note: note(64, 0, 32)},
		model.SetNote{Note: note(67, 8, 4)},
		model.SetNote{Note: note(72, 12, 8)},
	}
	CutPreviousNotes(events, 16)

	assert := assert.New(t)
	assert.Equal(uint32(16), events[0].(model.SetNote).Note.DurationInSmallestUnit)
	assert.Equal(uint32(32), events[1].(model.ConnectChord).Note.DurationInSmallestUnit)
	assert.Equal(uint32(4), events[2].(model.SetNote).Note.DurationInSmallestUnit)
	assert.Equal(uint32(4), events[3].(model.SetNote).Note.DurationInSmallestUnit)

	for _, event := range events {
		if e, ok := event.(model.SetNote); ok {
			assert.LessOrEqual(e.Note.EndInSmallestUnit(), uint32(16))
		}
	}
}

func TestCutPreviousNotesPanicsPastNoteStart(t *testing.T) {
	events := []model.TrackEvent{model.SetNote{Note: note(60, 8, 8)}}
	assert.Panics(t, func() { CutPreviousNotes(events, 4) })
}

func TestOverlaps(t *testing.T) {
	events := []model.TrackEvent{
		model.SetNote{Note: note(60, 0, 8)},
		model.ConnectChord{Note: note(64, 0, 32)},
	}

	assert := assert.New(t)
	assert.True(Overlaps(events, 7))
	assert.False(Overlaps(events, 8))
	assert.False(Overlaps(nil, 0))
}
