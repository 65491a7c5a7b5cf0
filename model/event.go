package model

// TrackEvent is one step of a track's playback order. It is either a
// SetNote or a ConnectChord.
type TrackEvent interface {
	isTrackEvent()
}

// SetNote starts a new note that plays on its own.
type SetNote struct {
	Note Note
}

// ConnectChord adds Note to the chord started by the closest SetNote before
// it.
type ConnectChord struct {
	Note Note
}

func (SetNote) isTrackEvent()      {}
func (ConnectChord) isTrackEvent() {}
