package rf433

// Sampler is the timer-driven edge detector. It owns the ring's write
// cursor exclusively — nothing else may call Tick. It measures both
// phases of every cycle on every tick, so a decoder inspecting a slot
// later can see pulse shape without a second pass.
type Sampler struct {
	ring *Ring

	lastLevel bool
}

// NewSampler returns a Sampler that fills ring.
func NewSampler(ring *Ring) *Sampler {
	return &Sampler{ring: ring}
}

// Tick is invoked from the receive timer-compare interrupt at a fixed tick
// rate, tuned on the reference board so typical ASK bit durations land in
// the 0x40-0x80 range. level is the receiver pin state sampled this tick.
func (s *Sampler) Tick(level bool) {
	cur := s.ring.Current()
	slot := s.ring.At(cur)

	if level {
		if slot.High < maxPhaseTicks {
			slot.High++
		}
	} else {
		if slot.Low < maxPhaseTicks {
			slot.Low++
		}
	}
	s.ring.Set(cur, slot)

	// Rising edge: previous level low, current level high.
	if !s.lastLevel && level {
		// Filter spurious spikes: only advance if either phase of the
		// slot we're leaving ran long enough to be a real cycle.
		if slot.Low > 20 || slot.High > 20 {
			s.ring.advanceWrite()
		} else {
			s.ring.Set(cur, Pulse{})
		}
	}

	s.lastLevel = level
}
