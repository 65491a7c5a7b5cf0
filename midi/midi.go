package midi

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

// ErrMalformed is wrapped into every error caused by bytes that are not a
// readable Standard MIDI File.
var ErrMalformed = errors.New("malformed midi data")

// metricDivision stands in for an SMPTE division while gomidi reads the
// file; it only works out tempo changes for metrical timing.
const metricDivision = 480

// Parse decodes a Standard MIDI File. SMPTE timed files parse too, and keep
// their smf.TimeCode time format.
func Parse(data []byte) (s *smf.SMF, e error) {
	// gomidi can panic on truncated input
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r := recover(); r != nil {
			s = nil
			e = errors.Wrap(ErrMalformed, fmt.Sprint(r))
		}
	}()

	timeCode, isTimeCode := headerTimeCode(data)
	if isTimeCode {
		data = append([]byte(nil), data...)
		binary.BigEndian.PutUint16(data[12:14], metricDivision)
	}

	res, err := smf.ReadFrom(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(ErrMalformed, err.Error())
	}
	if isTimeCode {
		res.TimeFormat = timeCode
	}
	return res, nil
}

// headerTimeCode reads the division word of the MThd chunk. The top bit set
// means SMPTE timing: a negative frame rate and the ticks per frame.
func headerTimeCode(data []byte) (smf.TimeCode, bool) {
	if len(data) < 14 || !bytes.HasPrefix(data, []byte("MThd")) || data[12]&0x80 == 0 {
		return smf.TimeCode{}, false
	}
	return smf.TimeCode{FramesPerSecond: uint8(-int8(data[12])), SubFrames: data[13]}, true
}

// ReadMidiFile reads and parses the file at path. Errors from reading the
// file come back untouched.
func ReadMidiFile(path string) (*smf.SMF, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// PPQ returns the pulses per quarter note of a metrically timed file; ok is
// false for SMPTE timed files.
func PPQ(s *smf.SMF) (ppq uint16, ok bool) {
	ticks, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		return 0, false
	}
	return uint16(ticks), true
}
