package player

import "scriptsync/internal/segment"

// holdThroughSilence keeps the most recently reached word current when
// forward playback lands in a silent gap, instead of dropping to no word.
// This covers trailing silence too: a large forward jump past the last
// reached word's end keeps that word rather than returning -1. Flip to
// re-locate strictly by time on every forward advance.
const holdThroughSilence = true

// nextWordIndex applies the word-tracking policy: given the tracked index
// cur and a new playback time t, it returns the index to adopt. Unlike a
// plain Locate on every tick, it does not flicker to -1 during inter-word
// silence, and it only corrects on an exact interval hit when time moves
// backward.
func nextWordIndex(words []segment.Word, cur int, t float64) int {
	if len(words) == 0 {
		return -1
	}

	// No tracked word: locate fresh and adopt only an exact hit.
	if cur < 0 || cur >= len(words) {
		if i := segment.Locate(words, t); i >= 0 {
			return i
		}
		return cur
	}

	w := words[cur]
	switch {
	case t >= w.End && cur+1 < len(words):
		// Forward: walk ahead while the next word's start has been reached.
		// A single tick can skip several words after a fast-forward.
		i := cur
		for i+1 < len(words) && words[i+1].Start <= t {
			i++
		}
		if !holdThroughSilence && t >= words[i].End {
			return segment.Locate(words, t)
		}
		return i

	case t < w.Start:
		// Backward seek: adopt only an exact interval hit. An unmatched time
		// may be a scrub through a gap preceding the tracked word.
		if i := segment.Locate(words, t); i >= 0 {
			return i
		}
		return cur

	default:
		// Still within the tracked interval, or ambiguous. Correct only on
		// an exact hit that differs from the tracked index.
		if i := segment.Locate(words, t); i >= 0 && i != cur {
			return i
		}
		return cur
	}
}
