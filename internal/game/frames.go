package game

import "errors"

// ErrTornDown is returned when scheduling on a torn-down scheduler.
var ErrTornDown = errors.New("frame scheduler torn down")

type frameTask struct {
	id   uint64
	name string
	fn   func()
}

// Frames runs per-frame callbacks in registration order. Each callback keeps
// running every frame until it is cancelled or the scheduler is torn down.
// A torn-down scheduler cannot be restarted.
type Frames struct {
	tasks    []frameTask
	cleanup  []func()
	nextID   uint64
	torn     bool
	running  bool
	canceled map[uint64]bool
}

// NewFrames creates an empty scheduler.
func NewFrames() *Frames {
	return &Frames{canceled: make(map[uint64]bool)}
}

// Schedule adds fn to the per-frame sequence and returns its cancel func.
func (f *Frames) Schedule(name string, fn func()) (cancel func(), err error) {
	if f.torn {
		return func() {}, ErrTornDown
	}
	f.nextID++
	id := f.nextID
	f.tasks = append(f.tasks, frameTask{id: id, name: name, fn: fn})
	return func() { f.cancel(id) }, nil
}

func (f *Frames) cancel(id uint64) {
	if f.running {
		f.canceled[id] = true
		return
	}
	for i, t := range f.tasks {
		if t.id == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return
		}
	}
}

// OnTeardown registers fn to run at teardown. Hooks run in registration
// order, so input detaches registered first stop before later resources close.
func (f *Frames) OnTeardown(fn func()) {
	if f.torn {
		fn()
		return
	}
	f.cleanup = append(f.cleanup, fn)
}

// Run executes one frame of every scheduled callback.
func (f *Frames) Run() {
	if f.torn {
		return
	}
	f.running = true
	for _, t := range f.tasks {
		if f.torn {
			break
		}
		if f.canceled[t.id] {
			continue
		}
		t.fn()
	}
	f.running = false
	if len(f.canceled) > 0 {
		kept := f.tasks[:0]
		for _, t := range f.tasks {
			if !f.canceled[t.id] {
				kept = append(kept, t)
			}
		}
		f.tasks = kept
		clear(f.canceled)
	}
}

// Names returns the names of the live callbacks, in run order.
func (f *Frames) Names() []string {
	out := make([]string, 0, len(f.tasks))
	for _, t := range f.tasks {
		out = append(out, t.name)
	}
	return out
}

// Teardown cancels every callback and runs the teardown hooks once.
func (f *Frames) Teardown() {
	if f.torn {
		return
	}
	f.torn = true
	f.tasks = nil
	hooks := f.cleanup
	f.cleanup = nil
	for _, fn := range hooks {
		fn()
	}
}

// TornDown reports whether Teardown has run.
func (f *Frames) TornDown() bool { return f.torn }
