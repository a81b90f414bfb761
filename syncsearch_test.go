package rf433_test

import (
	"testing"

	rf433 "github.com/sparques/rf433bridge"
	"github.com/sparques/rf433bridge/decode/ask"
	"github.com/sparques/rf433bridge/decode/manchester"
	"github.com/sparques/rf433bridge/decode/ook"
	"github.com/sparques/rf433bridge/decode/rawpulse"
)

type ssFakePort struct{}

func (ssFakePort) WriteByte(b byte) error  { return nil }
func (ssFakePort) ReadByte() (byte, error) { return 0, rf433.ErrNoByte }
func (ssFakePort) Available() bool         { return false }

type ssFakeOutputPin struct{ level bool }

func (p *ssFakeOutputPin) Set(level bool) { p.level = level }

func ssFeed(b *rf433.Bridge, level bool, n int) {
	for i := 0; i < n; i++ {
		b.Tick(level)
	}
}

func newSSBridge() *rf433.Bridge {
	decoders := rf433.Decoders{
		ASK:        ask.New(),
		OOK:        ook.New(),
		Manchester: manchester.New(),
		RawPulses:  rawpulse.New(),
	}
	return rf433.NewBridge(ssFakePort{}, &ssFakeOutputPin{}, &ssFakeOutputPin{}, decoders)
}

// TestSyncSearchAdaptivity feeds a train whose cycle duration shrinks
// monotonically from 0x90 down to 0x60 (never moving by more than the
// acceptance tolerance in one step), and checks the low-pass update on
// sync_duration tracks the drift closely enough that lock-in is still
// reached partway down the ramp, with sync_duration close to the cycle
// duration at that point.
func TestSyncSearchAdaptivity(t *testing.T) {
	b := newSSBridge()
	ssFeed(b, false, 100) // boundary run-in, discarded

	const start, end, steps = 0x90, 0x60, 20
	for i := 0; i < steps; i++ {
		d := start - (start-end)*i/(steps-1)
		high := uint8(d / 2)
		low := uint8(d) - high
		ssFeed(b, true, int(high))
		ssFeed(b, false, int(low))
	}
	// Then hold the final duration steady for ten more cycles.
	finalHigh := uint8(end / 2)
	finalLow := uint8(end) - finalHigh
	for i := 0; i < 10; i++ {
		ssFeed(b, true, int(finalHigh))
		ssFeed(b, false, int(finalLow))
	}

	if b.State() == rf433.SyncSearch {
		t.Fatalf("State() = SyncSearch after a settled shrinking-duration train, want lock-in to have fired")
	}
	// Ramp cycle 0 seeds sync_duration and cycles 1-8 are accepted, so the
	// searcher commits on cycle 8, well before the ramp ends; sync_duration
	// is not updated again while the chosen decoder runs.
	const lockCycle = 8
	lockDur := start - (start-end)*lockCycle/(steps-1)
	if got := rf433.AbsSub(b.Sess.SyncDuration, uint8(lockDur)); got > 8 {
		t.Errorf("SyncDuration = %#x, want within 8 of %#x (low-pass should track the ramp down)", b.Sess.SyncDuration, lockDur)
	}
}

// TestSyncSearchWidenedCycleDurationDoesNotCorruptLockIn is a regression
// test for a cycle whose low+high sum exceeds 255 (an OOK off phase that
// runs two cycle-widths long, per the glossary). Seven ordinary cycles
// converge sync_duration to 130 (already OOK-range), then one glitch
// cycle with a true sum of 265 arrives as the eighth and final cycle
// needed to reach lock-in. Shape normalization folds it back to 132,
// which matches sync_duration closely enough to accept — but only if the
// sum was computed without truncating to uint8 first. A truncated sum
// wraps to 9, skips normalization entirely (9 is nowhere near > 0x70),
// and resets sync_len back to zero instead of accepting the cycle.
func TestSyncSearchWidenedCycleDurationDoesNotCorruptLockIn(t *testing.T) {
	b := newSSBridge()
	ssFeed(b, false, 100) // boundary run-in

	for k := 0; k < 10; k++ {
		if k == 8 {
			// True sum 265; normalizes to (122,10), d=132.
			ssFeed(b, true, 20)
			ssFeed(b, false, 245)
			continue
		}
		// Steady cycle: (Low, High) = (110, 20), d = 130.
		ssFeed(b, true, 20)
		ssFeed(b, false, 110)
	}

	if got := b.State(); got != rf433.DecodingOOK {
		t.Fatalf("State() = %v, want DecodingOOK (a wrapped cycle sum must not reset lock-in progress)", got)
	}
}

// TestSyncSearchClassifiesByModulation drives three separate trains, one
// each for ASK, OOK, and a Manchester-shaped square wave, and checks the
// searcher's classify() choice for each.
func TestSyncSearchClassifiesByModulation(t *testing.T) {
	t.Run("ASK", func(t *testing.T) {
		b := newSSBridge()
		ssFeed(b, false, 100)
		for i := 0; i < 10; i++ {
			ssFeed(b, true, 16) // commits {Low:48,High:16}, sum 0x40, not manchester-shaped
			ssFeed(b, false, 48)
		}
		if got := b.State(); got != rf433.DecodingASK {
			t.Errorf("State() = %v, want DecodingASK", got)
		}
	})

	t.Run("OOK", func(t *testing.T) {
		b := newSSBridge()
		ssFeed(b, false, 100)
		for i := 0; i < 10; i++ {
			ssFeed(b, true, 4) // sum = 0xa0 > 0x80
			ssFeed(b, false, 156)
		}
		if got := b.State(); got != rf433.DecodingOOK {
			t.Errorf("State() = %v, want DecodingOOK", got)
		}
	})

	t.Run("Manchester", func(t *testing.T) {
		b := newSSBridge()
		ssFeed(b, false, 100)
		for i := 0; i < 10; i++ {
			// Symmetric phases: |p1-p0| is always 0 < d/8, so every one
			// of the 8 accepted cycles counts as a manchester_hit.
			ssFeed(b, true, 32)
			ssFeed(b, false, 32)
		}
		if got := b.State(); got != rf433.DecodingManchester {
			t.Errorf("State() = %v, want DecodingManchester", got)
		}
	})
}
