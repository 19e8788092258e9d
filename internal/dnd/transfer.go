package dnd

// Effect is a drag operation effect.
type Effect string

// Drag effects.
const (
	EffectNone Effect = "none"
	EffectMove Effect = "move"
)

// DataTransfer carries string data between the source and the target of one
// gesture, keyed by format.
type DataTransfer struct {
	data          map[string]string
	EffectAllowed Effect
	DropEffect    Effect
}

// NewDataTransfer returns an empty channel.
func NewDataTransfer() *DataTransfer {
	return &DataTransfer{
		data:          make(map[string]string),
		EffectAllowed: EffectNone,
		DropEffect:    EffectNone,
	}
}

// SetData stores value under format, replacing any previous value.
func (dt *DataTransfer) SetData(format, value string) {
	dt.data[format] = value
}

// GetData returns the value under format, or "" if none was set.
func (dt *DataTransfer) GetData(format string) string {
	return dt.data[format]
}
