// Package sample writes small Standard MIDI Files from note descriptions.
// It backs the sample command and the fixtures used in tests.
package sample

import (
	"bytes"
	"sort"

	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

type Note struct {
	Channel  uint8
	Key      uint8
	Velocity uint8
	Start    uint32
	Length   uint32
}

type Track struct {
	Name string
	// Tempo in beats per minute, written at tick 0 when set.
	Tempo float64
	Notes []Note
}

type timedMsg struct {
	tick uint32
	// note offs sort ahead of note ons on the same tick
	order int
	msg   []byte
}

// BuildTrack lays out t's notes as delta-timed events ending in an end of
// track marker.
func BuildTrack(t Track) smf.Track {
	var msgs []timedMsg
	if t.Name != "" {
		msgs = append(msgs, timedMsg{0, 0, smf.MetaTrackSequenceName(t.Name)})
	}
	if t.Tempo > 0 {
		msgs = append(msgs, timedMsg{0, 0, smf.MetaTempo(t.Tempo)})
	}
	for _, n := range t.Notes {
		msgs = append(msgs,
			timedMsg{n.Start, 2, midi.NoteOn(n.Channel, n.Key, n.Velocity)},
			timedMsg{n.Start + n.Length, 1, midi.NoteOff(n.Channel, n.Key)},
		)
	}
	sort.SliceStable(msgs, func(i, j int) bool {
		if msgs[i].tick != msgs[j].tick {
			return msgs[i].tick < msgs[j].tick
		}
		return msgs[i].order < msgs[j].order
	})

	var res smf.Track
	var absTicks uint32
	for _, m := range msgs {
		res.Add(m.tick-absTicks, m.msg)
		absTicks = m.tick
	}
	res.Close(0)
	return res
}

// CreateWithTimeFormat builds a file with the given header timing.
func CreateWithTimeFormat(tf smf.TimeFormat, tracks ...Track) (*smf.SMF, error) {
	res := smf.New()
	res.TimeFormat = tf
	for _, t := range tracks {
		if err := res.Add(BuildTrack(t)); err != nil {
			return nil, errors.Wrap(err, "adding track")
		}
	}
	return res, nil
}

// Create builds a metrically timed file.
func Create(ppq uint16, tracks ...Track) (*smf.SMF, error) {
	return CreateWithTimeFormat(smf.MetricTicks(ppq), tracks...)
}

// Bytes encodes s as a Standard MIDI File.
func Bytes(s *smf.SMF) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(err, "writing midi")
	}
	return buf.Bytes(), nil
}

// Demo is a short two track piece: a melody with a held chord underneath.
func Demo() []Track {
	melody := Track{Name: "Melody", Tempo: 140}
	for i, key := range []uint8{72, 74, 76, 77, 79, 77, 76, 74} {
		melody.Notes = append(melody.Notes, Note{Key: key, Velocity: 100, Start: uint32(i) * 240, Length: 240})
	}
	melody.Notes = append(melody.Notes, Note{Key: 72, Velocity: 110, Start: 1920, Length: 1440})

	chords := Track{Name: "Chords"}
	for i, root := range []uint8{48, 53, 55, 48} {
		for _, interval := range []uint8{0, 4, 7} {
			chords.Notes = append(chords.Notes, Note{
				Channel:  1,
				Key:      root + interval,
				Velocity: 70,
				Start:    uint32(i) * 960,
				Length:   960,
			})
		}
	}
	return []Track{melody, chords}
}

// Scale rewrites tracks laid out at 480 ticks per quarter note for ppq.
func Scale(tracks []Track, ppq uint16) []Track {
	res := make([]Track, len(tracks))
	for i, t := range tracks {
		res[i] = t
		res[i].Notes = make([]Note, len(t.Notes))
		for j, n := range t.Notes {
			n.Start = n.Start * uint32(ppq) / 480
			n.Length = n.Length * uint32(ppq) / 480
			res[i].Notes[j] = n
		}
	}
	return res
}
