package game

import (
	"sync"
	"time"

	"github.com/mo-shahab/go-pong/scores"
)

// cyclingSigns returns its values in order, wrapping around
type cyclingSigns struct {
	values []float64
	next   int
}

func signs(values ...float64) *cyclingSigns {
	return &cyclingSigns{values: values}
}

func (c *cyclingSigns) Sign() float64 {
	v := c.values[c.next%len(c.values)]
	c.next++
	return v
}

type fakeTimer struct {
	delay   time.Duration
	fn      func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	wasActive := !t.stopped
	t.stopped = true
	return wasActive
}

// fire runs the callback the way time.AfterFunc would, even if stopped too late
func (t *fakeTimer) fire() {
	t.fn()
}

type fakeClock struct {
	timers []*fakeTimer
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	t := &fakeTimer{delay: d, fn: f}
	c.timers = append(c.timers, t)
	return t
}

type recorder struct {
	mu     sync.Mutex
	frames []Snapshot
	scored []scores.Side
	pauses []bool
}

func (r *recorder) OnFrame(s Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, s)
}

func (r *recorder) OnScore(_ scores.Scores, whoScored scores.Side) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scored = append(r.scored, whoScored)
}

func (r *recorder) OnPauseChanged(paused bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pauses = append(r.pauses, paused)
}

func (r *recorder) frameCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.frames)
}
