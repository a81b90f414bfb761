package rf433

// TxDriver is the replay transmitter: invoked from the transmit
// timer-compare path while the transceiver is in StartTransmit or
// Transmitting, it walks the ring from MsgStart to MsgEnd and reproduces
// the captured pulse shape on the transmitter pin. A 433 MHz ASK/OOK
// module keys its own RF oscillator directly, so there's no subcarrier to
// modulate; the driver just ticks in lockstep with the sampler,
// decrementing a remaining-ticks counter for whichever phase is current.
type TxDriver struct {
	ring *Ring
	pin  OutputPin

	bit    bool // false selects Low remainder, true selects High
	remain [2]uint8
}

// NewTxDriver returns a TxDriver that replays ring onto pin.
func NewTxDriver(ring *Ring, pin OutputPin) *TxDriver {
	return &TxDriver{ring: ring, pin: pin}
}

// remainAt/setRemain address remain by phase: false selects Low, true
// selects High.
func (t *TxDriver) remainAt(bit bool) uint8 {
	if bit {
		return t.remain[1]
	}
	return t.remain[0]
}

func (t *TxDriver) setRemain(bit bool, v uint8) {
	if bit {
		t.remain[1] = v
	} else {
		t.remain[0] = v
	}
}

// Start begins replay from ring.MsgStart(): pin high, load the first
// pulse, bit=true.
func (t *TxDriver) Start() {
	t.bit = true
	t.ring.current = t.ring.msgStart
	p := t.ring.At(t.ring.current)
	t.remain[0], t.remain[1] = p.Low, p.High
	t.pin.Set(true)
}

// Tick advances one timer tick of replay and reports whether the message
// is finished (the caller should transition the transceiver back to
// Idle when this returns true).
func (t *TxDriver) Tick() (done bool) {
	if r := t.remainAt(t.bit); r > 0 {
		t.setRemain(t.bit, r-1)
	}
	if t.remainAt(t.bit) == 0 {
		t.bit = !t.bit
		if t.bit {
			t.ring.current++
			p := t.ring.At(t.ring.current)
			t.remain[0], t.remain[1] = p.Low, p.High
			if t.ring.current == t.ring.msgEnd {
				t.pin.Set(false)
				return true
			}
			// A pulse whose high phase is zero has no high segment to
			// transmit; skip straight past it.
			t.bit = t.remain[1] != 0
		}
	}
	t.pin.Set(t.bit)
	return false
}
