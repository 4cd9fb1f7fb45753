package player

import (
	"testing"
	"time"
)

func TestClock_PlayAdvancesAndEnds(t *testing.T) {
	// 1 second of track at 50x plays out in ~20ms of wall time.
	c := NewClock(1.0, 50)

	ended := make(chan struct{})
	paused := make(chan struct{}, 1)
	unsub := c.Subscribe(Listener{
		OnEnded: func() { close(ended) },
		OnPause: func() { paused <- struct{}{} },
	})
	defer unsub()

	c.Play()

	select {
	case <-ended:
	case <-time.After(2 * time.Second):
		t.Fatal("clock never reached end of track")
	}

	select {
	case <-paused:
	default:
		t.Error("no pause notification before ended")
	}

	if got := c.CurrentTime(); got != 1.0 {
		t.Errorf("position after end = %v, want pinned at 1.0", got)
	}
}

func TestClock_PauseFreezesPosition(t *testing.T) {
	c := NewClock(100, 1000)
	c.Play()
	time.Sleep(5 * time.Millisecond)
	c.Pause()

	p1 := c.CurrentTime()
	if p1 <= 0 {
		t.Fatalf("position after play = %v, want > 0", p1)
	}
	time.Sleep(10 * time.Millisecond)
	if p2 := c.CurrentTime(); p2 != p1 {
		t.Errorf("position moved while paused: %v -> %v", p1, p2)
	}
}

func TestClock_SeekClampsAndNotifies(t *testing.T) {
	c := NewClock(10, 1)

	var seeked []float64
	unsub := c.Subscribe(Listener{
		OnSeeked: func(pos float64) { seeked = append(seeked, pos) },
	})
	defer unsub()

	c.Seek(4)
	c.Seek(-3)
	c.Seek(25)

	want := []float64{4, 0, 10}
	if len(seeked) != len(want) {
		t.Fatalf("seeked = %v, want %v", seeked, want)
	}
	for i := range want {
		if seeked[i] != want[i] {
			t.Errorf("seek %d landed at %v, want %v", i, seeked[i], want[i])
		}
	}
	if got := c.CurrentTime(); got != 10 {
		t.Errorf("position = %v, want clamped 10", got)
	}
}

func TestClock_AnnouncesDurationOnSubscribe(t *testing.T) {
	c := NewClock(12.5, 1)

	var known []float64
	unsub := c.Subscribe(Listener{
		OnDurationKnown: func(d float64) { known = append(known, d) },
	})
	defer unsub()

	if len(known) != 1 || known[0] != 12.5 {
		t.Errorf("duration announcements = %v, want [12.5]", known)
	}
	if got := c.Duration(); got != 12.5 {
		t.Errorf("Duration = %v, want 12.5", got)
	}
}

func TestClock_PlayPauseNotifications(t *testing.T) {
	c := NewClock(60, 1)

	var events []string
	unsub := c.Subscribe(Listener{
		OnPlay:  func() { events = append(events, "play") },
		OnPause: func() { events = append(events, "pause") },
	})
	defer unsub()

	c.Play()
	c.Play() // already playing, no duplicate event
	c.Pause()
	c.Pause()

	if len(events) != 2 || events[0] != "play" || events[1] != "pause" {
		t.Errorf("events = %v, want [play pause]", events)
	}
}
