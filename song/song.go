// Package song converts a whole Standard MIDI File into per-track notation.
package song

import (
	"math"

	"github.com/jsphweid/midimml/constants"
	"github.com/jsphweid/midimml/grid"
	"github.com/jsphweid/midimml/midi"
	"github.com/jsphweid/midimml/model"
	"github.com/jsphweid/midimml/track"
	"github.com/jsphweid/midimml/velocity"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Song is every track of a MIDI file that has at least one note, in file
// order.
type Song struct {
	PPQ    uint16        `json:"ppq" yaml:"ppq"`
	BPM    uint16        `json:"bpm" yaml:"bpm"`
	Tracks []track.Track `json:"tracks" yaml:"tracks"`
}

// ErrTooLong is wrapped into the error for a file whose timeline does not
// fit in MaxLengthInSmallestUnit grid units.
var ErrTooLong = errors.New("midi timeline too long")

// FromPath reads the file at path and converts it. Read errors are returned
// as they are.
func FromPath(path string, opts model.SongOptions) (*Song, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		return nil, err
	}
	return fromSMF(s, opts)
}

// FromBytes parses data and builds its tracks one after another. A tempo
// change met in one track carries over to the tracks after it.
func FromBytes(data []byte, opts model.SongOptions) (*Song, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	s, err := midi.Parse(data)
	if err != nil {
		return nil, err
	}
	return fromSMF(s, opts)
}

func fromSMF(s *smf.SMF, opts model.SongOptions) (*Song, error) {
	ppq, ok := midi.PPQ(s)
	if !ok {
		ppq = constants.DefaultPPQ
	}
	if err := checkLength(s, ppq); err != nil {
		return nil, err
	}

	bpm := uint16(constants.DefaultBPM)
	var tracks []track.Track
	for _, src := range s.Tracks {
		var t track.Track
		t, bpm = track.New(src, ppq, bpm, opts.VelocityMin, opts.VelocityMax)
		if len(t.Notes) > 0 {
			tracks = append(tracks, t)
		}
	}

	if opts.AutoBootVelocity {
		bootVelocity(tracks)
	}

	return &Song{PPQ: ppq, BPM: bpm, Tracks: tracks}, nil
}

// checkLength rejects tracks whose last tick lies beyond
// MaxLengthInSmallestUnit on the grid. Every note of a track ends at or
// before that tick.
func checkLength(s *smf.SMF, ppq uint16) error {
	unit := grid.SmallestUnitInTicks(ppq)
	for i, src := range s.Tracks {
		var ticks uint64
		for _, event := range src {
			ticks += uint64(event.Delta)
		}
		if ticks > math.MaxUint32 || float64(ticks)/unit > constants.MaxLengthInSmallestUnit {
			return errors.Wrapf(ErrTooLong, "track %d ends at tick %d", i, ticks)
		}
	}
	return nil
}

// bootVelocity lifts every note by the same amount so the loudest note of
// the song reaches the maximum dynamics value.
func bootVelocity(tracks []track.Track) {
	var max uint8
	for i := range tracks {
		if v := tracks[i].HighestVelocity(); v > max {
			max = v
		}
	}

	diff := velocity.BoostAmount(max)
	for i := range tracks {
		tracks[i].ModifyVelocity(diff)
	}
}

// ToMML renders each track, in order.
func (s *Song) ToMML() []string {
	res := make([]string, 0, len(s.Tracks))
	for i := range s.Tracks {
		res = append(res, s.Tracks[i].ToMML())
	}
	return res
}

// NoteCount is the number of notes across all tracks.
func (s *Song) NoteCount() int {
	var count int
	for _, t := range s.Tracks {
		count += len(t.Notes)
	}
	return count
}

// Conversion summarises the rendered song for storage and HTTP responses.
func (s *Song) Conversion() model.Conversion {
	res := model.Conversion{PPQ: s.PPQ, BPM: s.BPM, Tracks: make([]model.ConvertedTrack, 0, len(s.Tracks))}
	for i := range s.Tracks {
		t := &s.Tracks[i]
		res.Tracks = append(res.Tracks, model.ConvertedTrack{
			Name:   t.Name,
			Notes:  len(t.Notes),
			Chords: t.ChordCount(),
			MML:    t.ToMML(),
		})
	}
	return res
}
