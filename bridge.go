package rf433

// Bridge wires the ring, sampler, transmit driver, transceiver state
// machine, line emitter, and the six cooperative tasks together into the
// runnable firmware. It is the composition root: everything downstream
// of a receive sample or an inbound command byte flows through here.
type Bridge struct {
	Ring        *Ring
	Sampler     *Sampler
	Transceiver *Transceiver
	Emitter     *LineEmitter
	Port        Port
	Sess        Session

	DisplayPulses bool
	displayStacks bool

	decoders struct {
		ask, ook, manchester, rawPulses Decoder
	}

	tasks struct {
		syncSearch, ask, ook, manchester, rawPulses, command *Task
	}

	state RunningState
	ticks uint32
}

// Decoders groups the four pluggable decode-state-machines a Bridge
// dispatches to; each implements the Decoder interface defined in this
// package but lives in its own decode/ subpackage.
type Decoders struct {
	ASK        Decoder
	OOK        Decoder
	Manchester Decoder
	RawPulses  Decoder
}

// NewBridge constructs a Bridge ready to be driven by Tick. port carries the wire
// protocol; antenna and txPin are driven by the transceiver and transmit
// driver respectively. The receiver pin is not wired here — callers feed
// receive samples through Tick, which is what lets tests drive the engine
// without any GPIO at all.
func NewBridge(port Port, antenna, txPin OutputPin, decoders Decoders) *Bridge {
	ring := &Ring{}
	b := &Bridge{
		Ring:    ring,
		Sampler: NewSampler(ring),
		Emitter: NewLineEmitter(port),
		Port:    port,
	}
	b.Transceiver = NewTransceiver(antenna, NewTxDriver(ring, txPin))
	b.decoders.ask = decoders.ASK
	b.decoders.ook = decoders.OOK
	b.decoders.manchester = decoders.Manchester
	b.decoders.rawPulses = decoders.RawPulses
	b.startTasks()
	b.Transceiver.EnableReceiver()
	return b
}

func (b *Bridge) startTasks() {
	b.tasks.syncSearch = NewTask(b.syncSearchBody)
	b.tasks.ask = NewTask(b.decodeBody(&b.decoders.ask))
	b.tasks.ook = NewTask(b.decodeBody(&b.decoders.ook))
	b.tasks.manchester = NewTask(b.decodeBody(&b.decoders.manchester))
	b.tasks.rawPulses = NewTask(b.decodeBody(&b.decoders.rawPulses))
	b.tasks.command = NewTask(b.commandBody)
}

// State returns the dispatch variable every task and the main loop read.
func (b *Bridge) State() RunningState { return b.state }

func (b *Bridge) setState(s RunningState) { b.state = s }

// Ticks is the free-running tick counter the command parser's idle
// timeout is measured against. It advances on every call to Tick,
// independent of which decoder/transceiver mode is active.
func (b *Bridge) Ticks() uint32 { return b.ticks }

// Tick drives the engine by exactly one timer tick: it feeds rxLevel to
// the sampler or steps the transmit driver depending on the transceiver's
// current mode, then dispatches control to whichever task RunningState
// names.
func (b *Bridge) Tick(rxLevel bool) {
	b.ticks++
	switch b.Transceiver.Mode() {
	case ModeReceiving:
		b.Sampler.Tick(rxLevel)
	case ModeTransmitting:
		b.Transceiver.TickTx()
	}
	b.dispatch()
}

func (b *Bridge) dispatch() {
	switch b.state {
	case SyncSearch:
		b.tasks.syncSearch.Resume()
	case DecodingASK:
		b.tasks.ask.Resume()
	case DecodingOOK:
		b.tasks.ook.Resume()
	case DecodingManchester:
		b.tasks.manchester.Resume()
	case DecodeRawPulses:
		b.tasks.rawPulses.Resume()
	case DecodeDone:
		if b.Sess.BitCount > 0 {
			b.Emitter.Trailer(&b.Sess)
		}
		b.state = SyncSearch
	case ReceivingCommand:
		b.tasks.command.Resume()
	}
}

// decodeBody adapts a Decoder into a Task body: run it once per
// activation, then transition to DecodeDone or back to SyncSearch
// depending on whether it committed to a message.
func (b *Bridge) decodeBody(slot *Decoder) func(Yielder) {
	return func(y Yielder) {
		for {
			y.Yield()
			decoded := (*slot).Run(&b.Sess, b.Ring, b.Emitter, y)
			b.Sess.Decoded = decoded
			if decoded {
				b.state = DecodeDone
			} else {
				b.state = SyncSearch
			}
		}
	}
}

// StackReport is the STACK command's diagnostic payload. Go goroutines
// don't expose byte-level stack headroom, so this reports the nearest
// faithful equivalent instead of a stack-depth number — see DESIGN.md.
type StackReport struct {
	Goroutines int
}
