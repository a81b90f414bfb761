package rf433

// Task is a stackful cooperative task: a goroutine parked behind a pair
// of unbuffered handoff channels. Go's own per-goroutine stack stands in
// for a hand-rolled fiber stack. Exactly one task is ever runnable past
// its Yield call at a time: Resume blocks until the task yields back, so
// there is no preemption between tasks, only the scheduler deciding which
// one runs next.
type Task struct {
	resume chan struct{}
	yield  chan struct{}
	done   bool
}

// Yielder is what a task body sees; it can only ever suspend itself.
type Yielder interface {
	Yield()
}

// NewTask starts body as a task. body must call Yield at every point
// where it would otherwise spin waiting for the ring or the UART, and
// must never return: every task body in this package loops forever.
func NewTask(body func(Yielder)) *Task {
	t := &Task{
		resume: make(chan struct{}),
		yield:  make(chan struct{}),
	}
	go func() {
		<-t.resume
		body(t)
		t.done = true
		t.yield <- struct{}{}
	}()
	return t
}

// Yield suspends the calling task until the scheduler resumes it again.
func (t *Task) Yield() {
	t.yield <- struct{}{}
	<-t.resume
}

// Resume hands control to the task and blocks until it either yields back
// or (should its body ever return, which none of this package's tasks do)
// finishes.
func (t *Task) Resume() {
	t.resume <- struct{}{}
	<-t.yield
}

// Done reports whether the task's body has returned.
func (t *Task) Done() bool { return t.done }
