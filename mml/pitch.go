package mml

var pitchClasses = [12]string{"C", "C+", "D", "D+", "E", "F", "F+", "G", "G+", "A", "A+", "B"}

// PitchClass returns the note name for a MIDI key, sharps written as "+".
func PitchClass(key uint8) string {
	return pitchClasses[key%12]
}

// Octave returns the octave of a MIDI key where key 60 (middle C) is in
// octave 4. Keys below 12 land in octave -1.
func Octave(key uint8) int {
	return int(key)/12 - 1
}
