// Package rawpulse implements the pulse dumper: it prints every captured
// pulse pair verbatim as hex, without attempting to decode bits. This is
// the "learning mode" path used to characterize an unknown transmitter.
package rawpulse

import (
	rf433 "github.com/sparques/rf433bridge"
)

// Decoder dumps pulse pairs verbatim.
type Decoder struct{}

// New returns a raw pulse Decoder.
func New() *Decoder { return &Decoder{} }

// Run implements rf433.Decoder.
func (d *Decoder) Run(sess *rf433.Session, ring *rf433.Ring, emit *rf433.LineEmitter, y rf433.Yielder) bool {
	pi := ring.MsgStart()
	emit.Header('P')

	for {
		for pi == ring.Current() {
			y.Yield()
		}
		p := ring.At(pi)
		emit.RawByte(sess, p.High)
		emit.RawByte(sess, p.Low)
		sess.BitCount++
		done := p.Saturated()
		pi++
		if done {
			break
		}
	}

	ring.SetMsgStart(pi)
	sess.Decoded = true
	return true
}
