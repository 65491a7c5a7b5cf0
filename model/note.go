package model

// Note is a single sounding note. Ticks keep the file's native timing,
// smallest units keep the same timeline quantized onto the grid.
type Note struct {
	Channel  uint8 `json:"channel" yaml:"channel"`
	Key      uint8 `json:"key" yaml:"key"`
	Velocity uint8 `json:"velocity" yaml:"velocity"`

	PositionInTick uint32 `json:"position_in_tick" yaml:"position_in_tick"`
	DurationInTick uint32 `json:"duration_in_tick" yaml:"duration_in_tick"`

	PositionInSmallestUnit uint32 `json:"position_in_smallest_unit" yaml:"position_in_smallest_unit"`
	DurationInSmallestUnit uint32 `json:"duration_in_smallest_unit" yaml:"duration_in_smallest_unit"`
}

// EndInSmallestUnit is where the note stops sounding on the grid.
func (n Note) EndInSmallestUnit() uint32 {
	return n.PositionInSmallestUnit + n.DurationInSmallestUnit
}
