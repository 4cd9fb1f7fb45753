package player

// Transport is the audio-playback capability the synchronizer drives. It
// abstracts a real audio element so the engine can run against hardware
// playback, a simulated clock, or a scripted fake in tests.
type Transport interface {
	// CurrentTime returns the current playback position in seconds.
	CurrentTime() float64

	// Duration returns the track duration in seconds, or 0 while unknown.
	Duration() float64

	// Play starts or resumes playback. The observable playing state follows
	// the transport's own notification, not this call.
	Play()

	// Pause halts playback.
	Pause()

	// Seek jumps to the given position in seconds.
	Seek(t float64)

	// Subscribe registers a listener for transport notifications and returns
	// a function that removes it. Every Subscribe must be paired with a call
	// to the returned function.
	Subscribe(l Listener) (unsubscribe func())
}

// Listener carries the transport-originated notifications the synchronizer
// consumes. Nil callbacks are skipped by emitters.
type Listener struct {
	OnPlay          func()
	OnPause         func()
	OnEnded         func()
	OnTimeUpdate    func(t float64)
	OnSeeked        func(t float64)
	OnDurationKnown func(d float64)
}
