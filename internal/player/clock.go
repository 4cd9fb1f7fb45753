package player

import (
	"sync"
	"time"
)

// Clock is a Transport that advances position against the wall clock at a
// configurable speed. It stands in for a real audio element in the CLI and
// in tests: same contract, no audio.
type Clock struct {
	mu        sync.Mutex
	pos       float64 // position at the last state change, seconds
	startedAt time.Time
	playing   bool
	speed     float64
	duration  float64
	endTimer  *time.Timer

	listeners map[int]Listener
	nextID    int
}

// NewClock creates a clock transport for a track of the given duration in
// seconds. Speed scales wall-clock time; values <= 0 mean real time.
func NewClock(duration, speed float64) *Clock {
	if speed <= 0 {
		speed = 1
	}
	if duration < 0 {
		duration = 0
	}
	return &Clock{
		speed:     speed,
		duration:  duration,
		listeners: make(map[int]Listener),
	}
}

// CurrentTime returns the playback position, clamped to the duration.
func (c *Clock) CurrentTime() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.positionLocked()
}

// Duration returns the track duration.
func (c *Clock) Duration() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.duration
}

// Play starts the clock and announces the transition.
func (c *Clock) Play() {
	c.mu.Lock()
	if c.playing {
		c.mu.Unlock()
		return
	}
	c.playing = true
	c.startedAt = time.Now()
	c.armEndLocked()
	ls := c.snapshotLocked()
	c.mu.Unlock()

	for _, l := range ls {
		if l.OnPlay != nil {
			l.OnPlay()
		}
	}
}

// Pause freezes the clock and announces the transition.
func (c *Clock) Pause() {
	c.mu.Lock()
	if !c.playing {
		c.mu.Unlock()
		return
	}
	c.pos = c.positionLocked()
	c.playing = false
	c.disarmEndLocked()
	ls := c.snapshotLocked()
	c.mu.Unlock()

	for _, l := range ls {
		if l.OnPause != nil {
			l.OnPause()
		}
	}
}

// Seek jumps to t, clamped to the track bounds, and announces the completed
// seek.
func (c *Clock) Seek(t float64) {
	c.mu.Lock()
	if t < 0 {
		t = 0
	}
	if c.duration > 0 && t > c.duration {
		t = c.duration
	}
	c.pos = t
	c.startedAt = time.Now()
	if c.playing {
		c.armEndLocked()
	}
	ls := c.snapshotLocked()
	c.mu.Unlock()

	for _, l := range ls {
		if l.OnSeeked != nil {
			l.OnSeeked(t)
		}
	}
}

// Subscribe registers a listener. The duration is known up front, so it is
// announced to the new listener immediately, the way an audio element
// reports metadata shortly after listeners attach.
func (c *Clock) Subscribe(l Listener) func() {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = l
	d := c.duration
	c.mu.Unlock()

	if l.OnDurationKnown != nil && d > 0 {
		l.OnDurationKnown(d)
	}

	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

// positionLocked computes the live position.
func (c *Clock) positionLocked() float64 {
	p := c.pos
	if c.playing {
		p += time.Since(c.startedAt).Seconds() * c.speed
	}
	if c.duration > 0 && p > c.duration {
		p = c.duration
	}
	return p
}

// armEndLocked schedules the end-of-track notification for the remaining
// scaled play time.
func (c *Clock) armEndLocked() {
	c.disarmEndLocked()
	if c.duration <= 0 {
		return
	}
	remaining := c.duration - c.positionLocked()
	if remaining < 0 {
		remaining = 0
	}
	wait := time.Duration(remaining / c.speed * float64(time.Second))
	c.endTimer = time.AfterFunc(wait, c.finish)
}

func (c *Clock) disarmEndLocked() {
	if c.endTimer != nil {
		c.endTimer.Stop()
		c.endTimer = nil
	}
}

// finish marks the track ended: position pinned at the duration, clock
// stopped, pause and ended announced in that order.
func (c *Clock) finish() {
	c.mu.Lock()
	if !c.playing {
		c.mu.Unlock()
		return
	}
	c.pos = c.duration
	c.playing = false
	c.endTimer = nil
	ls := c.snapshotLocked()
	c.mu.Unlock()

	for _, l := range ls {
		if l.OnPause != nil {
			l.OnPause()
		}
	}
	for _, l := range ls {
		if l.OnEnded != nil {
			l.OnEnded()
		}
	}
}

func (c *Clock) snapshotLocked() []Listener {
	ls := make([]Listener, 0, len(c.listeners))
	for _, l := range c.listeners {
		ls = append(ls, l)
	}
	return ls
}
