package rf433

// Decoder is the interface every pulse decoder implements: given the
// shared session/ring and a way to emit bits, walk the ring from
// ring.MsgStart(), commit to a lock-in or bail out, and report whether it
// produced a decoded message. On return the decoder must have left
// ring.MsgStart() pointing at the pulse it stopped on.
//
// Implementations live in the decode/ subpackages (ask, ook, manchester,
// rawpulse) so each can carry its own doc comment and tests.
type Decoder interface {
	Run(sess *Session, ring *Ring, emit *LineEmitter, y Yielder) (decoded bool)
}
