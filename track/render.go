package track

import (
	"fmt"
	"strings"

	"github.com/jsphweid/midimml/mml"
	"github.com/jsphweid/midimml/model"
	"github.com/jsphweid/midimml/util"
)

const (
	restSymbol     = "r"
	chordConnector = ":"
)

type renderer struct {
	sb       strings.Builder
	cursor   uint32
	octave   int
	velocity int
	// length of the SetNote the current chord hangs off, 0 when skipped
	head uint32
}

func (r *renderer) setVelocity(v uint8) {
	if int(v) != r.velocity {
		fmt.Fprintf(&r.sb, "v%d", v)
		r.velocity = int(v)
	}
}

func (r *renderer) writeNote(n model.Note, duration uint32) {
	if octave := mml.Octave(n.Key); octave != r.octave {
		fmt.Fprintf(&r.sb, "o%d", octave)
		r.octave = octave
	}
	r.sb.WriteString(mml.Encode(duration, mml.PitchClass(n.Key)))
}

func (r *renderer) setNote(n model.Note) {
	r.head = n.DurationInSmallestUnit
	if r.head == 0 {
		return
	}
	if n.PositionInSmallestUnit > r.cursor {
		r.sb.WriteString(mml.Encode(n.PositionInSmallestUnit-r.cursor, restSymbol))
	}
	r.setVelocity(n.Velocity)
	r.writeNote(n, r.head)
	r.cursor = util.Max(r.cursor, n.PositionInSmallestUnit) + r.head
}

func (r *renderer) connectChord(n model.Note) {
	if r.head == 0 {
		return
	}
	r.sb.WriteString(chordConnector)
	r.writeNote(n, util.Min(n.DurationInSmallestUnit, r.head))
}

// ToMML renders the track as one line of notation: the tempo, then notes
// and rests in event order, chord members joined with ":".
func (t *Track) ToMML() string {
	r := renderer{octave: -2, velocity: -1}
	fmt.Fprintf(&r.sb, "t%d", t.BPM)

	for _, event := range t.Events {
		switch e := event.(type) {
		case model.SetNote:
			r.setNote(e.Note)
		case model.ConnectChord:
			r.connectChord(e.Note)
		default:
			panic(fmt.Sprintf("track: unknown event %T", event))
		}
	}
	return r.sb.String()
}
