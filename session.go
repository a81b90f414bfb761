package rf433

// Session holds the scratch state shared between the sync searcher and
// whichever decoder it hands control to. Exactly one task writes it at a
// time, serialized by RunningState.
type Session struct {
	SyncDuration    uint8
	SyncLen         uint8
	ManchesterHits  uint8

	ByteAcc  uint8
	BitCount uint8
	Checksum uint8
	MsgType  byte // 'A', 'M', 'P', or 'O'
	Decoded  bool
}

// initialChecksum is the additive checksum's starting value.
const initialChecksum = 0x55

// ResetForDecode is what the sync searcher does right before handing off
// to a decoder: clear the byte accumulator, bit count, and decoded flag,
// and reseed the checksum.
func (s *Session) ResetForDecode() {
	s.ByteAcc = 0
	s.BitCount = 0
	s.Checksum = initialChecksum
	s.Decoded = false
}

// ResetSync clears the sync-acquisition counters, done whenever a
// candidate cycle fails the acceptance test or a decode attempt is
// abandoned back to sync search.
func (s *Session) ResetSync() {
	s.SyncLen = 0
	s.ManchesterHits = 0
}
