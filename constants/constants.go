package constants

// SmallestUnit is the grid resolution relative to a whole note: 64 means
// everything is quantized to sixty-fourth notes.
const SmallestUnit = 64

// DefaultPPQ is used when the file header doesn't carry metrical timing.
const DefaultPPQ = 480

const DefaultBPM = 120

// MaxLengthInSmallestUnit bounds how far into a song a note may end: 4096
// whole notes on the grid.
const MaxLengthInSmallestUnit = 4096 * SmallestUnit

// MaxVelocity is the loudest dynamics value the notation accepts (v15).
const MaxVelocity = 15

const (
	DefaultAutoBootVelocity = true
	DefaultVelocityMin      = 0
	DefaultVelocityMax      = MaxVelocity
)

// MaxMidiVelocity is the raw upper bound of a MIDI note-on velocity.
const MaxMidiVelocity = 127

const MMLExtension = ".mml"
