package rf433

import "testing"

func TestRingSetAt(t *testing.T) {
	r := &Ring{}
	r.Set(5, Pulse{Low: 10, High: 20})
	got := r.At(5)
	if got.Low != 10 || got.High != 20 {
		t.Errorf("At(5) = %+v, want {10 20}", got)
	}
	if r.At(6) != (Pulse{}) {
		t.Errorf("untouched slot should be zero value")
	}
}

func TestRingCursors(t *testing.T) {
	r := &Ring{}
	r.SetMsgStart(3)
	r.SetMsgEnd(9)
	if r.MsgStart() != 3 || r.MsgEnd() != 9 {
		t.Fatalf("cursors not stored: start=%d end=%d", r.MsgStart(), r.MsgEnd())
	}
}

func TestRingDistanceWraps(t *testing.T) {
	r := &Ring{}
	r.advanceWrite() // current = 1
	if got := r.Distance(0); got != 1 {
		t.Errorf("Distance(0) = %d, want 1", got)
	}
	// current is 1; from=250 should wrap around to a large distance.
	if got := r.Distance(250); got != OvfSub(250, 1) {
		t.Errorf("Distance(250) = %d, want %d", got, OvfSub(250, 1))
	}
}

func TestRingAdvanceWriteClearsNewSlot(t *testing.T) {
	r := &Ring{}
	r.Set(0, Pulse{Low: 99, High: 99})
	r.Set(1, Pulse{Low: 5, High: 5})
	r.advanceWrite()
	if r.Current() != 1 {
		t.Fatalf("Current() = %d, want 1", r.Current())
	}
	if r.At(1) != (Pulse{}) {
		t.Errorf("advanceWrite must zero the new current slot, got %+v", r.At(1))
	}
	if r.At(0).Low != 99 {
		t.Errorf("advanceWrite must not touch the slot it left, got %+v", r.At(0))
	}
}

func TestRingReset(t *testing.T) {
	r := &Ring{}
	r.advanceWrite()
	r.advanceWrite()
	r.SetMsgStart(1)
	r.SetMsgEnd(2)
	r.Reset()
	if r.Current() != 0 || r.MsgStart() != 0 || r.MsgEnd() != 0 {
		t.Errorf("Reset left cursors at (%d,%d,%d), want all zero", r.Current(), r.MsgStart(), r.MsgEnd())
	}
}
