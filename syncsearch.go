package rf433

// syncLen is the number of consecutive ~equal-duration pulses the
// searcher requires before it commits to a modulation guess.
const syncLen = 8

// syncSearchBody walks the ring looking for 8 consecutive shape-matching
// cycles, classifies the modulation, and hands control to the matching
// decoder task, retrying once as Manchester if an ASK lock-in fails but
// the cycle shapes looked half-Manchester along the way.
func (b *Bridge) syncSearchBody(y Yielder) {
	pi := b.Ring.Current()
	var syncStart uint8

	for {
		for pi == b.Ring.Current() || b.State() != SyncSearch {
			if b.State() == SyncSearch && b.Sess.SyncLen == 0 && b.Port.Available() {
				b.setState(ReceivingCommand)
			}
			y.Yield()
		}

		for pi != b.Ring.Current() && b.Sess.SyncLen < syncLen {
			p := b.Ring.At(pi)
			p0, p1 := p.Low, p.High
			d := p.Sum() // widened: p0+p1 routinely exceeds 255 for OOK trains

			// Shape normalization: let a train that alternates full- and
			// half-clock pulses still register as consistent cycles.
			if d > 0x70 {
				switch {
				case uint16(AbsSub(p0/2, p1)) < d/8:
					p0 /= 2
					d = uint16(p0) + uint16(p1)
				case uint16(AbsSub(p0, p1/2)) < d/8:
					p1 /= 2
					d = uint16(p0) + uint16(p1)
				case absSub16(d/2, uint16(b.Sess.SyncDuration)) < d/16:
					p0, p1 = p0/2, p1/2
					d /= 2
				}
			}

			if d < 0x20 || absSub16(d, uint16(b.Sess.SyncDuration)) > 8 {
				syncStart = pi
				b.Sess.SyncDuration = uint8(d)
				b.Sess.ResetSync()
				tracef(b.Port, "sync:reset")
			} else {
				tracef(b.Port, "sync:accept")
				if uint16(AbsSub(p1, p0)) < d/8 {
					b.Sess.ManchesterHits++
				}
				// Low-pass over cycles: some transmitters start slow and
				// gradually get up to speed.
				b.Sess.SyncDuration += uint8((d - uint16(b.Sess.SyncDuration)) / 2)
				b.Sess.SyncLen++
			}
			pi++
		}

		if b.Sess.SyncLen != syncLen {
			continue
		}

		tracef(b.Port, "lockin:enter")
		newState := b.classify()
		manchesterHits := b.Sess.ManchesterHits
		for newState != SyncSearch {
			b.Ring.SetMsgStart(syncStart)
			b.Sess.ResetForDecode()
			b.Ring.SetMsgEnd(0)
			b.setState(newState)
			for b.State() != SyncSearch {
				y.Yield()
			}
			if newState == DecodingASK && manchesterHits > 0 && !b.Sess.Decoded {
				newState = DecodingManchester
				continue
			}
			break
		}

		b.Sess.SyncLen, b.Sess.ManchesterHits, b.Sess.SyncDuration = 0, 0, 0
		pi = b.Ring.MsgStart()
		syncStart = pi + 1
		tracef(b.Port, "lockin:exit")
	}
}

// absSub16 is AbsSub's widened counterpart, used while d (a cycle duration,
// low phase plus high phase) hasn't yet been narrowed back to uint8.
func absSub16(a, b uint16) uint16 {
	if a > b {
		return a - b
	}
	return b - a
}

// classify picks the decoder to try first once 8 matching cycles have
// been seen.
func (b *Bridge) classify() RunningState {
	switch {
	case b.DisplayPulses:
		return DecodeRawPulses
	case b.Sess.SyncDuration > 0x80:
		return DecodingOOK
	case b.Sess.ManchesterHits > 4:
		return DecodingManchester
	default:
		return DecodingASK
	}
}
