package rf433

// hexDigits formats a byte as two lowercase hex nibbles without pulling
// in fmt, which is unnecessary weight for the two-nibble case this is
// always used for.
const hexDigits = "0123456789abcdef"

// LineEmitter packs decoded bits MSB-first into bytes and streams them to
// the serial port as hex, folding each flushed byte into the session
// checksum, then emits the trailer once a decoder reaches DecodeDone.
type LineEmitter struct {
	port Port
}

func NewLineEmitter(port Port) *LineEmitter {
	return &LineEmitter{port: port}
}

// Header writes "M<type>:" to start a frame.
func (e *LineEmitter) Header(msgType byte) {
	e.writeByte('M')
	e.writeByte(msgType)
	e.writeByte(':')
}

// StuffBit packs one bit into the session's byte accumulator MSB-first;
// every 8th bit, or the final bit of the message (last==true), flushes a
// hex byte and folds it into the checksum.
func (e *LineEmitter) StuffBit(sess *Session, bit byte, last bool) {
	bn := sess.BitCount % 8
	sess.ByteAcc |= bit << (7 - bn)
	sess.BitCount++
	if last || bn == 7 {
		sess.Checksum += sess.ByteAcc
		e.writeHexByte(sess.ByteAcc)
		sess.ByteAcc = 0
	}
}

// Flush forces out a partial byte accumulated by StuffBit when a message
// ends on a bit count that isn't a multiple of 8.
func (e *LineEmitter) Flush(sess *Session) {
	if sess.BitCount%8 == 0 {
		return
	}
	sess.Checksum += sess.ByteAcc
	e.writeHexByte(sess.ByteAcc)
	sess.ByteAcc = 0
}

// RawByte emits one already-formed byte verbatim as two hex nibbles and
// folds it into the checksum — used by the raw pulse dumper, which prints
// pulse components directly rather than bit-stuffing them.
func (e *LineEmitter) RawByte(sess *Session, b uint8) {
	sess.Checksum += b
	e.writeHexByte(b)
}

// Trailer emits "#<bit_count>!<sync_duration>*<checksum>\n", folding
// BitCount and SyncDuration into the checksum first.
func (e *LineEmitter) Trailer(sess *Session) {
	sess.Checksum += sess.BitCount
	sess.Checksum += sess.SyncDuration
	e.writeByte('#')
	e.writeHexByte(sess.BitCount)
	e.writeByte('!')
	e.writeHexByte(sess.SyncDuration)
	e.writeByte('*')
	e.writeHexByte(sess.Checksum)
	e.writeByte('\n')
}

func (e *LineEmitter) writeHexByte(b uint8) {
	e.writeByte(hexDigits[b>>4])
	e.writeByte(hexDigits[b&0xf])
}

func (e *LineEmitter) writeByte(b byte) {
	// Fire-and-forget: a write error here means the host isn't
	// listening, and there is nothing useful to do about that.
	_ = e.port.WriteByte(b)
}
