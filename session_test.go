package rf433

import "testing"

func TestSessionResetForDecode(t *testing.T) {
	s := &Session{ByteAcc: 5, BitCount: 10, Checksum: 200, Decoded: true, SyncDuration: 0x40, SyncLen: 8}
	s.ResetForDecode()
	if s.ByteAcc != 0 || s.BitCount != 0 || s.Decoded {
		t.Errorf("ResetForDecode left ByteAcc=%d BitCount=%d Decoded=%v", s.ByteAcc, s.BitCount, s.Decoded)
	}
	if s.Checksum != initialChecksum {
		t.Errorf("Checksum = %#x, want reseeded to %#x", s.Checksum, initialChecksum)
	}
	if s.SyncDuration != 0x40 || s.SyncLen != 8 {
		t.Errorf("ResetForDecode must not touch sync-acquisition fields, got SyncDuration=%#x SyncLen=%d", s.SyncDuration, s.SyncLen)
	}
}

func TestSessionResetSync(t *testing.T) {
	s := &Session{SyncLen: 8, ManchesterHits: 5, SyncDuration: 0x40, BitCount: 3}
	s.ResetSync()
	if s.SyncLen != 0 || s.ManchesterHits != 0 {
		t.Errorf("ResetSync left SyncLen=%d ManchesterHits=%d", s.SyncLen, s.ManchesterHits)
	}
	if s.SyncDuration != 0x40 || s.BitCount != 3 {
		t.Errorf("ResetSync must not touch decode-in-progress fields, got SyncDuration=%#x BitCount=%d", s.SyncDuration, s.BitCount)
	}
}
