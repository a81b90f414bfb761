package rf433

// TransceiverMode is the half-duplex state.
type TransceiverMode uint8

const (
	ModeIdle TransceiverMode = iota
	ModeReceiving
	ModeStartTransmit
	ModeTransmitting
)

func (m TransceiverMode) String() string {
	switch m {
	case ModeIdle:
		return "Idle"
	case ModeReceiving:
		return "Receiving"
	case ModeStartTransmit:
		return "StartTransmit"
	case ModeTransmitting:
		return "Transmitting"
	default:
		return "Unknown"
	}
}

// Transceiver gates which of the two timer-compare interrupts (RX sampler
// vs TX driver) is armed, enforcing the invariant that at most one is ever
// enabled at a time.
type Transceiver struct {
	antenna OutputPin

	mode     TransceiverMode
	rxArmed  bool
	txArmed  bool
	txDriver *TxDriver
}

// NewTransceiver returns a Transceiver that switches antenna between RX
// and TX, replaying through driver when transmitting.
func NewTransceiver(antenna OutputPin, driver *TxDriver) *Transceiver {
	return &Transceiver{antenna: antenna, txDriver: driver}
}

func (tc *Transceiver) Mode() TransceiverMode { return tc.mode }

// RxArmed and TxArmed let tests assert the half-duplex invariant directly.
func (tc *Transceiver) RxArmed() bool { return tc.rxArmed }
func (tc *Transceiver) TxArmed() bool { return tc.txArmed }

// EnableReceiver disarms transmit, clears the antenna line, and arms the
// sampler's compare interrupt.
func (tc *Transceiver) EnableReceiver() {
	tc.rxArmed, tc.txArmed = false, false
	tc.antenna.Set(false)
	tc.mode = ModeReceiving
	tc.rxArmed = true
}

// EnableTransmitter disarms receive, sets the antenna line, arms the TX
// compare interrupt, and starts the replay driver.
func (tc *Transceiver) EnableTransmitter() {
	tc.rxArmed, tc.txArmed = false, false
	tc.antenna.Set(true)
	tc.mode = ModeStartTransmit
	tc.txArmed = true
	tc.txDriver.Start()
	tc.mode = ModeTransmitting
}

// Disable disarms both interrupts, clears the antenna line, and idles.
func (tc *Transceiver) Disable() {
	tc.rxArmed, tc.txArmed = false, false
	tc.antenna.Set(false)
	tc.mode = ModeIdle
}

// TickTx advances the transmit driver by one tick while armed, and
// autonomously returns the transceiver to Idle once the ring range has
// been fully replayed — the transmit path completes its own transition
// rather than waiting on the dispatch loop.
func (tc *Transceiver) TickTx() {
	if !tc.txArmed || tc.mode != ModeTransmitting {
		return
	}
	if tc.txDriver.Tick() {
		tc.mode = ModeIdle
		tc.txArmed = false
	}
}
