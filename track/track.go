// Package track turns one MIDI track into an ordered list of notes and
// chords that a single notation line can play.
package track

import (
	"math"
	"sort"

	"github.com/jsphweid/midimml/chord"
	"github.com/jsphweid/midimml/grid"
	"github.com/jsphweid/midimml/model"
	"github.com/jsphweid/midimml/velocity"
	"gitlab.com/gomidi/midi/v2/smf"
)

type Track struct {
	Name   string             `json:"name" yaml:"name"`
	BPM    uint16             `json:"bpm" yaml:"bpm"`
	Notes  []model.Note       `json:"notes" yaml:"notes"`
	Events []model.TrackEvent `json:"-" yaml:"-"`
}

type pendingNote struct {
	tick     uint32
	velocity uint8
}

type noteID struct {
	channel uint8
	key     uint8
}

// New builds a Track from src. bpm is the tempo known before this track; a
// tempo event inside src replaces it, and the tempo in effect at the end of
// src is returned so the caller can pass it to the next track.
func New(src smf.Track, ppq uint16, bpm uint16, velocityMin, velocityMax uint8) (Track, uint16) {
	res := Track{}
	pending := make(map[noteID][]pendingNote)
	var notes []model.Note
	var absTicks uint32

	closeNote := func(id noteID, p pendingNote, end uint32) {
		duration := end - p.tick
		n := model.Note{
			Channel:                id.channel,
			Key:                    id.key,
			Velocity:               velocity.Map(p.velocity, velocityMin, velocityMax),
			PositionInTick:         p.tick,
			DurationInTick:         duration,
			PositionInSmallestUnit: grid.TickToSmallestUnit(p.tick, ppq),
			DurationInSmallestUnit: grid.TickToSmallestUnit(duration, ppq),
		}
		if n.DurationInSmallestUnit == 0 {
			n.DurationInSmallestUnit = 1
		}
		notes = append(notes, n)
	}

	for _, event := range src {
		absTicks += event.Delta
		msg := event.Message

		var channel, key, vel uint8
		var tempo float64
		var name string
		switch {
		case msg.GetMetaTempo(&tempo):
			bpm = uint16(math.Min(math.Round(tempo), math.MaxUint16))
		case msg.GetMetaTrackName(&name):
			res.Name = name
		case msg.GetNoteStart(&channel, &key, &vel):
			id := noteID{channel, key}
			pending[id] = append(pending[id], pendingNote{tick: absTicks, velocity: vel})
		case msg.GetNoteEnd(&channel, &key):
			id := noteID{channel, key}
			open := pending[id]
			if len(open) == 0 {
				continue
			}
			closeNote(id, open[0], absTicks)
			pending[id] = open[1:]
		}
	}

	// anything never released stops at the end of the track
	for id, open := range pending {
		for _, p := range open {
			closeNote(id, p, absTicks)
		}
	}

	sort.SliceStable(notes, func(i, j int) bool {
		if notes[i].PositionInTick != notes[j].PositionInTick {
			return notes[i].PositionInTick < notes[j].PositionInTick
		}
		if notes[i].Key != notes[j].Key {
			return notes[i].Key < notes[j].Key
		}
		return notes[i].Channel < notes[j].Channel
	})

	res.Notes = notes
	res.Events = resolveEvents(notes)
	res.BPM = bpm
	return res, bpm
}

// resolveEvents walks notes in start order. A note that starts while the
// line is still sounding either joins the previous note's chord or cuts
// everything that is still playing; otherwise it simply follows.
func resolveEvents(notes []model.Note) []model.TrackEvent {
	var events []model.TrackEvent
	for i, current := range notes {
		position := current.PositionInSmallestUnit
		if i > 0 && isSounding(events, notes[i-1], position) {
			var connected bool
			events, connected = chord.TryConnectToChord(events, current, notes[i-1])
			if connected {
				continue
			}
			chord.CutPreviousNotes(events, position)
		}
		events = append(events, model.SetNote{Note: current})
	}
	return events
}

func isSounding(events []model.TrackEvent, before model.Note, position uint32) bool {
	return before.EndInSmallestUnit() > position || chord.Overlaps(events, position)
}

// HighestVelocity returns the loudest dynamics value in the track.
func (t *Track) HighestVelocity() uint8 {
	return velocity.Highest(t.Notes)
}

// ModifyVelocity shifts the dynamics of every note, in both the note list
// and the event list, by diff.
func (t *Track) ModifyVelocity(diff int) {
	for i := range t.Notes {
		t.Notes[i].Velocity = velocity.Shift(t.Notes[i].Velocity, diff)
	}
	for i, event := range t.Events {
		switch e := event.(type) {
		case model.SetNote:
			e.Note.Velocity = velocity.Shift(e.Note.Velocity, diff)
			t.Events[i] = e
		case model.ConnectChord:
			e.Note.Velocity = velocity.Shift(e.Note.Velocity, diff)
			t.Events[i] = e
		}
	}
}

// ChordCount returns how many ConnectChord events the track holds.
func (t *Track) ChordCount() int {
	var count int
	for _, event := range t.Events {
		if _, ok := event.(model.ConnectChord); ok {
			count++
		}
	}
	return count
}
