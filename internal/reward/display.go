package reward

import (
	"sync"
	"time"
)

// DisplayDuration is how long a celebration stays visible.
const DisplayDuration = 4000 * time.Millisecond

// Timer is the subset of *time.Timer the display needs.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f after d. time.AfterFunc satisfies it once wrapped.
type AfterFunc func(d time.Duration, f func()) Timer

func systemAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Display tracks the active celebration. Each Show replaces the active
// kind and restarts the clear timer; nothing is queued.
type Display struct {
	mu       sync.Mutex
	active   Kind
	timer    Timer
	gen      uint64
	duration time.Duration
	after    AfterFunc
	onChange func(Kind)
}

// DisplayOption configures a Display.
type DisplayOption func(*Display)

// WithAfterFunc replaces the timer source, for tests.
func WithAfterFunc(f AfterFunc) DisplayOption {
	return func(d *Display) { d.after = f }
}

// WithDuration replaces DisplayDuration.
func WithDuration(dur time.Duration) DisplayOption {
	return func(d *Display) { d.duration = dur }
}

// OnChange registers a callback invoked with the new active kind after
// every show and clear. It runs without the display lock held.
func OnChange(f func(Kind)) DisplayOption {
	return func(d *Display) { d.onChange = f }
}

// NewDisplay returns an idle Display.
func NewDisplay(opts ...DisplayOption) *Display {
	d := &Display{
		active:   None,
		duration: DisplayDuration,
		after:    systemAfterFunc,
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Show activates k and schedules it to clear. Any pending clear from an
// earlier Show is cancelled first. Show(None) does nothing.
func (d *Display) Show(k Kind) {
	if k == None || k == "" {
		return
	}

	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.active = k
	d.timer = d.after(d.duration, func() { d.clear(gen) })
	cb := d.onChange
	d.mu.Unlock()

	if cb != nil {
		cb(k)
	}
}

// clear deactivates the display if no newer Show happened since gen was
// issued. Stale timers that fire after being superseded are ignored.
func (d *Display) clear(gen uint64) {
	d.mu.Lock()
	if gen != d.gen || d.active == None {
		d.mu.Unlock()
		return
	}
	d.active = None
	d.timer = nil
	cb := d.onChange
	d.mu.Unlock()

	if cb != nil {
		cb(None)
	}
}

// Active returns the celebration currently shown.
func (d *Display) Active() Kind {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.active
}

// Stop cancels any pending clear and deactivates the display without
// notifying. Safe to call more than once.
func (d *Display) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
	d.active = None
}
