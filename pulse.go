// Package rf433 implements the pulse-capture and demodulation engine for a
// 433 MHz ASK/OOK transceiver bridge: a timer-driven sampler, a shared
// circular pulse buffer, a family of decoders (ASK, OOK, Manchester, raw),
// a half-duplex transmit path, and the line-oriented serial protocol that
// carries decoded frames to a host and accepts replay commands back.
package rf433

// Pulse is one low/high tick pair measured between consecutive rising
// edges on the receiver pin. Each phase saturates at 255, the same value
// the command parser writes as the end-of-message sentinel
// (see Pulse.Saturated) — a genuine long pulse and the sentinel are
// indistinguishable by design, not a gap to close.
type Pulse struct {
	Low  uint8
	High uint8
}

// maxPhaseTicks is the ceiling a phase counter saturates at. A pulse that
// runs long enough to hit it reads identically to EndSentinel.
const maxPhaseTicks = 255

// Sum is the cycle duration, low phase plus high phase.
func (p Pulse) Sum() uint16 {
	return uint16(p.Low) + uint16(p.High)
}

// Saturated reports whether this pulse is the end-of-message marker: a low
// phase pinned at 255. Genuine long pulses that reach saturation are
// indistinguishable from this sentinel; callers must not try to "fix" that
// by widening the counter.
func (p Pulse) Saturated() bool {
	return p.Low == 255
}

// AbsSub is absolute-value subtraction over tick counts.
func AbsSub(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

// OvfSub is the overflow-aware distance used for cursor arithmetic:
// how far you must advance from v1 to reach v2, modulo 256.
func OvfSub(v1, v2 uint8) uint8 {
	// uint8 subtraction wraps, which is exactly (v2 - v1) mod 256.
	return v2 - v1
}

// EndSentinel is the synthetic pulse the command parser places after a
// message in the ring; the transmit driver replays it like any other pulse.
var EndSentinel = Pulse{Low: 255, High: 0}
