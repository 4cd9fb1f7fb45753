package alignment

import "fmt"

// Alignment holds per-character timing data for a transcript: three parallel
// slices with one entry per character. Entries in Characters may span more
// than one rune (the provider emits them as strings).
type Alignment struct {
	Characters []string  `json:"characters"`
	StartTimes []float64 `json:"character_start_times_seconds"`
	EndTimes   []float64 `json:"character_end_times_seconds"`
}

// Len returns the number of characters.
func (a *Alignment) Len() int {
	return len(a.Characters)
}

// Empty reports whether the alignment carries no characters.
func (a *Alignment) Empty() bool {
	return a == nil || len(a.Characters) == 0
}

// Validate checks the parallel-slice invariant and per-character time ordering.
func (a *Alignment) Validate() error {
	if len(a.Characters) != len(a.StartTimes) || len(a.Characters) != len(a.EndTimes) {
		return fmt.Errorf("parallel slice length mismatch: %d characters, %d start times, %d end times",
			len(a.Characters), len(a.StartTimes), len(a.EndTimes))
	}
	for i := range a.Characters {
		if a.StartTimes[i] > a.EndTimes[i] {
			return fmt.Errorf("character %d: start time %.3f after end time %.3f",
				i, a.StartTimes[i], a.EndTimes[i])
		}
	}
	return nil
}

// CharStart returns the start time of character i, or 0 when the start-time
// slice does not cover i.
func (a *Alignment) CharStart(i int) float64 {
	if i >= 0 && i < len(a.StartTimes) {
		return a.StartTimes[i]
	}
	return 0
}

// CharEnd returns the end time of character i, falling back to the
// character's start time when the end-time slice does not cover i.
func (a *Alignment) CharEnd(i int) float64 {
	if i >= 0 && i < len(a.EndTimes) {
		return a.EndTimes[i]
	}
	return a.CharStart(i)
}

// EstimatedDuration returns a best-effort track duration: the last
// character's end time, else its start time, else 0. Used until the
// transport reports a real duration.
func (a *Alignment) EstimatedDuration() float64 {
	if n := len(a.EndTimes); n > 0 {
		return a.EndTimes[n-1]
	}
	if n := len(a.StartTimes); n > 0 {
		return a.StartTimes[n-1]
	}
	return 0
}
