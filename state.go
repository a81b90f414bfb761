package rf433

// RunningState is the firmware's single dispatch variable: exactly one
// task is ever the intended recipient of the main loop's next resume.
type RunningState uint8

const (
	SyncSearch RunningState = iota
	DecodingASK
	DecodingOOK
	DecodingManchester
	DecodeRawPulses
	DecodeDone
	ReceivingCommand
)

func (s RunningState) String() string {
	switch s {
	case SyncSearch:
		return "SyncSearch"
	case DecodingASK:
		return "DecodingASK"
	case DecodingOOK:
		return "DecodingOOK"
	case DecodingManchester:
		return "DecodingManchester"
	case DecodeRawPulses:
		return "DecodeRawPulses"
	case DecodeDone:
		return "DecodeDone"
	case ReceivingCommand:
		return "ReceivingCommand"
	default:
		return "Unknown"
	}
}
