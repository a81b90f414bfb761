package rf433

// Ring is the 256-slot circular buffer of pulse pairs shared between the
// sampler (the only writer of Current while receiving; the transmit driver
// reuses it as its replay cursor) and the decoders (readers that may
// walk any slot except the one the sampler is actively filling). Indices
// and distances wrap modulo 256 by construction, since they're plain
// uint8: wrap-subtract arithmetic replaces bounds checks rather than
// widening to a larger, bounds-checked buffer.
type Ring struct {
	slots [256]Pulse

	current  uint8 // sampler write head; TxDriver moves it only while transmitting
	msgStart uint8 // decoder-owned: start of the message being decoded/sent
	msgEnd   uint8 // decoder/transmitter-owned: one past the last slot to send
}

// Current returns the sampler's write cursor.
func (r *Ring) Current() uint8 { return r.current }

// MsgStart and MsgEnd expose the decode/transmit window cursors.
func (r *Ring) MsgStart() uint8    { return r.msgStart }
func (r *Ring) MsgEnd() uint8      { return r.msgEnd }
func (r *Ring) SetMsgStart(v uint8) { r.msgStart = v }
func (r *Ring) SetMsgEnd(v uint8)   { r.msgEnd = v }

// At returns the pulse stored at slot i. Callers must not read the slot
// the sampler is currently filling (i == r.Current()); every decoder loop
// in this package enforces that by yielding while pi == r.Current().
func (r *Ring) At(i uint8) Pulse { return r.slots[i] }

// Set writes slot i directly. Used only by the sampler (Sampler.Tick) and
// by the command parser to pre-populate a message for transmit — both are
// single-writer contexts.
func (r *Ring) Set(i uint8, p Pulse) { r.slots[i] = p }

// Distance is how many pulses lie between from and the sampler's current
// write cursor, i.e. OvfSub(from, r.current): the number of slots a
// decoder cursor at "from" may still advance through before it catches
// up with the sampler.
func (r *Ring) Distance(from uint8) uint8 {
	return OvfSub(from, r.current)
}

// advanceWrite moves the write cursor forward by one and clears the new
// slot, so the next sampler tick starts counting from zero.
func (r *Ring) advanceWrite() {
	r.current++
	r.slots[r.current] = Pulse{}
}

// Reset returns all three cursors to zero, as happens on power-on and
// after every command.
func (r *Ring) Reset() {
	r.current, r.msgStart, r.msgEnd = 0, 0, 0
}
