// Package ask implements the amplitude-shift-keyed pulse decoder: a bit
// per cycle, decided by which half of the cycle ran longer.
package ask

import (
	rf433 "github.com/sparques/rf433bridge"
)

// lockInLen is how many consecutive cycles must agree with the sync
// duration before the decoder commits to a message.
const lockInLen = 20

// tolerance is the maximum allowed deviation between a cycle's duration
// and sync_duration during lock-in.
const tolerance = 8

// Decoder decodes amplitude-shift-keyed pulse trains.
type Decoder struct{}

// New returns an ASK Decoder.
func New() *Decoder { return &Decoder{} }

// Run implements rf433.Decoder.
func (d *Decoder) Run(sess *rf433.Session, ring *rf433.Ring, emit *rf433.LineEmitter, y rf433.Yielder) bool {
	start := ring.MsgStart()
	pi := start

	for count := uint8(0); count < lockInLen; {
		for pi == ring.Current() {
			y.Yield()
		}
		p := ring.At(pi)
		if p.Saturated() {
			ring.SetMsgStart(pi)
			return false
		}
		cycle := p.Low + p.High
		if rf433.AbsSub(cycle, sess.SyncDuration) > tolerance {
			pi++
			start = pi
			count = 0
			continue
		}
		count++
		pi++
	}

	emit.Header('A')
	pi = start
	for {
		for pi == ring.Current() {
			y.Yield()
		}
		p := ring.At(pi)
		if p.Saturated() {
			ring.SetMsgStart(pi)
			break
		}
		bit := byte(0)
		if p.High > p.Low {
			bit = 1
		}
		emit.StuffBit(sess, bit, false)
		pi++
	}
	emit.Flush(sess)
	sess.Decoded = sess.BitCount >= lockInLen
	return sess.Decoded
}
