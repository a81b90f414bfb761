// Package manchester implements the Manchester pulse decoder: each cycle
// carries two half-bit periods, and a transition mid-cycle (rather than
// only at cycle boundaries) is what carries the data.
package manchester

import (
	rf433 "github.com/sparques/rf433bridge"
)

// lockInLen is the number of consecutive valid pulses required before
// commit — more than ASK's 20, since Manchester has twice the edge density.
const lockInLen = 32

// overrunLimit guards against a train that never saturates.
const overrunLimit = 0xd0

// Decoder decodes Manchester-encoded pulse trains.
type Decoder struct{}

// New returns a Manchester Decoder.
func New() *Decoder { return &Decoder{} }

func phaseOf(p rf433.Pulse, phase uint8) uint8 {
	if phase == 0 {
		return p.Low
	}
	return p.High
}

// Run implements rf433.Decoder.
func (d *Decoder) Run(sess *rf433.Session, ring *rf433.Ring, emit *rf433.LineEmitter, y rf433.Yielder) bool {
	margin := sess.SyncDuration / 4
	half := sess.SyncDuration / 2

	start := ring.MsgStart()
	pi := start

	for count := uint8(0); count < lockInLen; {
		for pi == ring.Current() {
			y.Yield()
		}
		p := ring.At(pi)
		if rf433.AbsSub(p.Low, sess.SyncDuration) <= margin ||
			rf433.AbsSub(p.High, sess.SyncDuration) <= margin ||
			rf433.AbsSub(p.Low, half) <= margin ||
			rf433.AbsSub(p.High, half) <= margin {
			count++
			pi++
			continue
		}
		ring.SetMsgStart(pi)
		return false
	}

	pi = start
	emit.Header('M')

	var bit, phase uint8 = 0, 1
	var demiClock, stuffClock uint8
	msgEnd := false

	for !msgEnd && sess.BitCount < overrunLimit {
		for pi == ring.Current() {
			y.Yield()
		}
		for pi != ring.Current() && !msgEnd {
			p := ring.At(pi)
			msgEnd = p.Saturated()

			if stuffClock != demiClock {
				if stuffClock&1 == 1 {
					emit.StuffBit(sess, bit, msgEnd)
				}
				stuffClock++
			}
			if rf433.AbsSub(phaseOf(p, phase), sess.SyncDuration) < margin {
				bit = phase
				demiClock++
			}
			demiClock++
			if stuffClock != demiClock {
				if stuffClock&1 == 1 {
					emit.StuffBit(sess, bit, msgEnd)
				}
				stuffClock++
			}
			if phase == 0 {
				pi++
			}
			phase = 1 - phase
		}
	}

	ring.SetMsgStart(pi)
	emit.Flush(sess)
	sess.Decoded = sess.BitCount >= lockInLen
	return sess.Decoded
}
