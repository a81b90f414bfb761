// Package ook implements the on-off-keyed pulse decoder: a degenerate
// ASK where either phase of a cycle may itself span one or two cycle
// widths.
package ook

import (
	rf433 "github.com/sparques/rf433bridge"
)

const lockInLen = 20

// Decoder decodes on-off-keyed pulse trains.
type Decoder struct{}

// New returns an OOK Decoder.
func New() *Decoder { return &Decoder{} }

func matches(v, target, margin uint8) bool {
	return rf433.AbsSub(v, target) <= margin
}

// Run implements rf433.Decoder.
func (d *Decoder) Run(sess *rf433.Session, ring *rf433.Ring, emit *rf433.LineEmitter, y rf433.Yielder) bool {
	margin := sess.SyncDuration / 8
	half := sess.SyncDuration / 2

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
		ok0 := matches(p.Low, sess.SyncDuration, margin) || matches(p.Low, half, margin)
		ok1 := matches(p.High, sess.SyncDuration, margin) || matches(p.High, half, margin)
		if !ok0 && !ok1 {
			pi++
			start = pi
			count = 0
			continue
		}
		count++
		pi++
	}

	emit.Header('O')
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
		if matches(p.Low, sess.SyncDuration, margin) {
			emit.StuffBit(sess, 0, false)
		}
		if matches(p.High, sess.SyncDuration, margin) {
			emit.StuffBit(sess, 1, false)
		}
		pi++
	}
	emit.Flush(sess)
	sess.Decoded = sess.BitCount >= lockInLen
	return sess.Decoded
}
