package model

// ConvertedTrack is one rendered track as returned over HTTP.
type ConvertedTrack struct {
	Name   string `json:"name"`
	Notes  int    `json:"notes"`
	Chords int    `json:"chords"`
	MML    string `json:"mml"`
}

type Conversion struct {
	ID     string           `json:"id,omitempty"`
	PPQ    uint16           `json:"ppq"`
	BPM    uint16           `json:"bpm"`
	Tracks []ConvertedTrack `json:"tracks"`
}

type CreateResponse struct {
	ID string `json:"id"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
