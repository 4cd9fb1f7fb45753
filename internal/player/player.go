package player

import (
	"sync"
	"time"

	"scriptsync/internal/segment"
)

// State is a snapshot of the playback state owned by the Synchronizer.
type State struct {
	CurrentTime float64
	Duration    float64
	Playing     bool
	Scrubbing   bool
	CurrentWord int // -1 when no word is active
}

// Options configures a Synchronizer.
type Options struct {
	// PollInterval is the cadence of the polling loop that runs while the
	// transport is playing. Zero means the default.
	PollInterval time.Duration

	// OnChange is invoked with a state snapshot after every observable state
	// transition. Called without internal locks held; may call back into the
	// Synchronizer.
	OnChange func(State)

	// OnDurationChange is invoked exactly once per loaded alignment, when a
	// real transport duration replaces the estimate.
	OnDurationChange func(d float64)
}

const defaultPollInterval = 33 * time.Millisecond

// Synchronizer keeps a current-word pointer in step with audio time. It is
// the single writer of the playback state: transport notifications and the
// polling loop both funnel through it, and every other component is a pure
// reader. All control operations degrade to no-ops when no transport is
// attached or a target cannot be resolved; this is a user-facing control
// surface, not a system with fatal errors.
type Synchronizer struct {
	mu sync.Mutex

	transport   Transport
	unsubscribe func()

	segments []segment.Segment
	words    []segment.Word

	state         State
	durationKnown bool

	// gen invalidates in-flight poll iterations across alignment swaps. A
	// stale tick observes a mismatch and writes nothing.
	gen      int
	pollStop chan struct{}

	pollInterval     time.Duration
	onChange         func(State)
	onDurationChange func(float64)
}

// New creates a Synchronizer with no alignment and no transport.
func New(opts Options) *Synchronizer {
	interval := opts.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}
	return &Synchronizer{
		state:            State{CurrentWord: -1},
		pollInterval:     interval,
		onChange:         opts.OnChange,
		onDurationChange: opts.OnDurationChange,
	}
}

// Attach binds a transport and subscribes to its notifications. Any
// previously attached transport is released first.
func (s *Synchronizer) Attach(t Transport) {
	s.Detach()

	s.mu.Lock()
	s.transport = t
	s.mu.Unlock()

	// Subscribe outside the lock: the transport may deliver notifications
	// (duration, say) synchronously during registration.
	unsub := t.Subscribe(Listener{
		OnPlay:          s.handlePlay,
		OnPause:         s.handlePause,
		OnEnded:         s.handleEnded,
		OnTimeUpdate:    s.handleTime,
		OnSeeked:        s.handleTime,
		OnDurationKnown: s.handleDurationKnown,
	})

	s.mu.Lock()
	s.unsubscribe = unsub
	s.mu.Unlock()
}

// Detach unsubscribes from the transport and stops the polling loop.
func (s *Synchronizer) Detach() {
	s.mu.Lock()
	unsub := s.unsubscribe
	s.unsubscribe = nil
	s.transport = nil
	s.stopPollingLocked()
	s.mu.Unlock()

	if unsub != nil {
		unsub()
	}
}

// Load binds a new alignment's segments and words, resetting all derived
// state: time back to 0, duration to the caller's estimate (falling back to
// the last word's end time), and the current word to the first word if any.
// A poll iteration scheduled against the previous alignment can no longer
// touch the new state.
func (s *Synchronizer) Load(segments []segment.Segment, words []segment.Word, estimatedDuration float64) {
	s.mu.Lock()
	s.gen++
	s.stopPollingLocked()

	s.segments = segments
	s.words = words

	est := estimatedDuration
	if est <= 0 && len(words) > 0 {
		est = words[len(words)-1].End
	}
	if est < 0 {
		est = 0
	}

	s.durationKnown = false
	s.state = State{
		Duration:    est,
		Playing:     s.state.Playing,
		CurrentWord: -1,
	}
	if len(words) > 0 {
		s.state.CurrentWord = 0
	}

	if s.state.Playing && s.transport != nil {
		s.startPollingLocked()
	}
	st := s.state
	s.mu.Unlock()

	s.notify(st)
}

// State returns a snapshot of the playback state.
func (s *Synchronizer) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// View derives the spoken/current/unspoken split for the current word.
func (s *Synchronizer) View() segment.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return segment.SplitView(s.segments, s.words, s.state.CurrentWord)
}

// SeekToTime reflects t as the current time immediately, ahead of transport
// confirmation, recomputes the word index, and tells the transport to jump.
// The optimistic write keeps rapid scrub sequences visibly in step.
func (s *Synchronizer) SeekToTime(t float64) {
	s.mu.Lock()
	tr := s.transport
	if tr == nil {
		s.mu.Unlock()
		return
	}
	s.setTimeLocked(t)
	st := s.state
	s.mu.Unlock()

	s.notify(st)
	tr.Seek(t)
}

// SeekToWord jumps to the start time of the word at the given word index.
// Unresolvable indices are a no-op.
func (s *Synchronizer) SeekToWord(i int) {
	s.mu.Lock()
	if i < 0 || i >= len(s.words) {
		s.mu.Unlock()
		return
	}
	t := s.words[i].Start
	s.mu.Unlock()

	s.SeekToTime(t)
}

// SeekTo jumps to the start of the given word. A word that does not belong
// to the loaded word list is a no-op.
func (s *Synchronizer) SeekTo(w segment.Word) {
	s.mu.Lock()
	i := w.WordIndex
	ok := i >= 0 && i < len(s.words) && s.words[i] == w
	s.mu.Unlock()

	if ok {
		s.SeekToTime(w.Start)
	}
}

// Play asks the transport to start playback. Idempotent: a no-op while
// already playing. The observable playing state flips only on the
// transport's own notification.
func (s *Synchronizer) Play() {
	s.mu.Lock()
	tr := s.transport
	playing := s.state.Playing
	s.mu.Unlock()

	if tr == nil || playing {
		return
	}
	tr.Play()
}

// Pause asks the transport to halt playback. Idempotent.
func (s *Synchronizer) Pause() {
	s.mu.Lock()
	tr := s.transport
	playing := s.state.Playing
	s.mu.Unlock()

	if tr == nil || !playing {
		return
	}
	tr.Pause()
}

// StartScrubbing suspends the polling loop while the user drags the
// position. The playing state is untouched.
func (s *Synchronizer) StartScrubbing() {
	s.mu.Lock()
	s.state.Scrubbing = true
	s.stopPollingLocked()
	st := s.state
	s.mu.Unlock()

	s.notify(st)
}

// EndScrubbing leaves scrub mode and restarts the polling loop, but only if
// the transport is currently playing.
func (s *Synchronizer) EndScrubbing() {
	s.mu.Lock()
	s.state.Scrubbing = false
	if s.state.Playing && s.transport != nil {
		s.startPollingLocked()
	}
	st := s.state
	s.mu.Unlock()

	s.notify(st)
}

// transport notification handlers

func (s *Synchronizer) handlePlay() {
	s.mu.Lock()
	s.state.Playing = true
	if !s.state.Scrubbing {
		s.startPollingLocked()
	}
	st := s.state
	s.mu.Unlock()

	s.notify(st)
}

func (s *Synchronizer) handlePause() {
	s.mu.Lock()
	s.state.Playing = false
	s.stopPollingLocked()
	st := s.state
	s.mu.Unlock()

	s.notify(st)
}

func (s *Synchronizer) handleEnded() {
	s.mu.Lock()
	s.state.Playing = false
	s.stopPollingLocked()
	if s.state.Duration > 0 {
		s.setTimeLocked(s.state.Duration)
	}
	st := s.state
	s.mu.Unlock()

	s.notify(st)
}

func (s *Synchronizer) handleTime(t float64) {
	s.mu.Lock()
	s.setTimeLocked(t)
	st := s.state
	s.mu.Unlock()

	s.notify(st)
}

func (s *Synchronizer) handleDurationKnown(d float64) {
	s.mu.Lock()
	adopted := s.adoptDurationLocked(d)
	st := s.state
	s.mu.Unlock()

	if adopted {
		s.notify(st)
		s.notifyDuration(d)
	}
}

// setTimeLocked updates the current time and re-runs the word-index policy.
func (s *Synchronizer) setTimeLocked(t float64) {
	s.state.CurrentTime = t
	s.state.CurrentWord = nextWordIndex(s.words, s.state.CurrentWord, t)
}

// adoptDurationLocked installs a real transport duration over the estimate.
// Only the first positive value per loaded alignment is adopted.
func (s *Synchronizer) adoptDurationLocked(d float64) bool {
	if s.durationKnown || d <= 0 {
		return false
	}
	s.durationKnown = true
	s.state.Duration = d
	return true
}

// polling loop

// startPollingLocked starts the poll goroutine, cancelling any running one
// first so a restart never stacks a duplicate loop.
func (s *Synchronizer) startPollingLocked() {
	s.stopPollingLocked()

	stop := make(chan struct{})
	s.pollStop = stop
	gen := s.gen
	interval := s.pollInterval

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				if !s.pollTick(gen) {
					return
				}
			}
		}
	}()
}

func (s *Synchronizer) stopPollingLocked() {
	if s.pollStop != nil {
		close(s.pollStop)
		s.pollStop = nil
	}
}

// pollTick runs one polling iteration: read the transport's time, update
// state through the word-index policy, and opportunistically pick up a newly
// known duration. Returns false when the loop should exit: the tick is
// stale (alignment swapped since it was scheduled) or polling conditions no
// longer hold.
func (s *Synchronizer) pollTick(gen int) bool {
	s.mu.Lock()
	if gen != s.gen || s.pollStop == nil || s.state.Scrubbing || !s.state.Playing || s.transport == nil {
		s.mu.Unlock()
		return false
	}
	tr := s.transport
	s.setTimeLocked(tr.CurrentTime())

	var resolved float64
	if !s.durationKnown {
		if d := tr.Duration(); d > 0 && s.adoptDurationLocked(d) {
			resolved = d
		}
	}
	st := s.state
	s.mu.Unlock()

	s.notify(st)
	if resolved > 0 {
		s.notifyDuration(resolved)
	}
	return true
}

func (s *Synchronizer) notify(st State) {
	if s.onChange != nil {
		s.onChange(st)
	}
}

func (s *Synchronizer) notifyDuration(d float64) {
	if s.onDurationChange != nil {
		s.onDurationChange(d)
	}
}
