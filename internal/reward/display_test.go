package reward

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTimer records scheduling; fire runs the callback by hand.
type fakeTimer struct {
	d       time.Duration
	f       func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

type fakeScheduler struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

func (s *fakeScheduler) after(d time.Duration, f func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &fakeTimer{d: d, f: f}
	s.timers = append(s.timers, t)
	return t
}

func (s *fakeScheduler) fire(i int) {
	s.mu.Lock()
	t := s.timers[i]
	s.mu.Unlock()
	t.f()
}

func TestDisplayShowAndClear(t *testing.T) {
	sched := &fakeScheduler{}
	var changes []Kind
	d := NewDisplay(WithAfterFunc(sched.after), OnChange(func(k Kind) { changes = append(changes, k) }))

	assert.Equal(t, None, d.Active())

	d.Show(Confetti)
	assert.Equal(t, Confetti, d.Active())
	require.Len(t, sched.timers, 1)
	assert.Equal(t, DisplayDuration, sched.timers[0].d)

	sched.fire(0)
	assert.Equal(t, None, d.Active())
	assert.Equal(t, []Kind{Confetti, None}, changes)
}

func TestDisplayLatestWins(t *testing.T) {
	sched := &fakeScheduler{}
	d := NewDisplay(WithAfterFunc(sched.after))

	d.Show(Confetti)
	d.Show(Fireworks)

	require.Len(t, sched.timers, 2)
	assert.True(t, sched.timers[0].stopped, "first timer must be cancelled")
	assert.Equal(t, Fireworks, d.Active())

	// A superseded timer that fires anyway must not clear the new reward.
	sched.fire(0)
	assert.Equal(t, Fireworks, d.Active())

	sched.fire(1)
	assert.Equal(t, None, d.Active())
}

func TestDisplayShowNoneIsNoop(t *testing.T) {
	sched := &fakeScheduler{}
	d := NewDisplay(WithAfterFunc(sched.after))

	d.Show(Confetti)
	d.Show(None)

	assert.Equal(t, Confetti, d.Active())
	assert.Len(t, sched.timers, 1)
	assert.False(t, sched.timers[0].stopped)
}

func TestDisplayStop(t *testing.T) {
	sched := &fakeScheduler{}
	calls := 0
	d := NewDisplay(WithAfterFunc(sched.after), OnChange(func(Kind) { calls++ }))

	d.Show(Fireworks)
	d.Stop()
	d.Stop()

	assert.Equal(t, None, d.Active())
	assert.True(t, sched.timers[0].stopped)

	sched.fire(0)
	assert.Equal(t, 1, calls, "no callback after stop")
}

func TestDisplayRealTimer(t *testing.T) {
	done := make(chan Kind, 2)
	d := NewDisplay(WithDuration(10*time.Millisecond), OnChange(func(k Kind) { done <- k }))

	d.Show(Confetti)
	assert.Equal(t, Confetti, <-done)

	select {
	case k := <-done:
		assert.Equal(t, None, k)
	case <-time.After(2 * time.Second):
		t.Fatal("display never cleared")
	}
	assert.Equal(t, None, d.Active())
}
