package segment

import (
	"strings"
	"unicode"

	"scriptsync/internal/alignment"
)

// Kind distinguishes word segments from interstitial gaps.
type Kind string

const (
	KindWord Kind = "word"
	KindGap  Kind = "gap"
)

// Segment is one rendered unit of a transcript: a word or a gap. Index is
// dense and assigned in emission order. WordIndex counts word segments only
// and is -1 for gaps; Start/End carry timing for word segments only.
type Segment struct {
	Index     int     `json:"index"`
	Kind      Kind    `json:"kind"`
	Text      string  `json:"text"`
	WordIndex int     `json:"word_index"`
	Start     float64 `json:"start,omitempty"`
	End       float64 `json:"end,omitempty"`
}

// Word is the timing view of a word segment, used for time lookups.
type Word struct {
	SegmentIndex int     `json:"segment_index"`
	WordIndex    int     `json:"word_index"`
	Text         string  `json:"text"`
	Start        float64 `json:"start"`
	End          float64 `json:"end"`
}

// Options configures segment composition.
type Options struct {
	// HideAudioTags drops bracketed inline markers like "[laughs]" from the
	// output entirely, along with any whitespace pending before them.
	HideAudioTags bool
}

// composer holds the scan accumulators: a word buffer, a whitespace buffer
// and the bracketed-tag suppression flag.
type composer struct {
	segments []Segment
	words    []Word

	word      strings.Builder
	wordStart float64
	wordEnd   float64

	gap strings.Builder

	inTag bool
}

// Compose converts a character alignment into an ordered segment list plus
// the word list, in a single left-to-right scan. A word's start time is the
// start of its first character and its end time is the end of its last
// character; consecutive whitespace accumulates into one gap. Output is fully
// determined by input order.
func Compose(a *alignment.Alignment, opts Options) ([]Segment, []Word) {
	var c composer

	for i, ch := range a.Characters {
		if c.inTag {
			if ch == "]" {
				c.inTag = false
			}
			continue
		}

		if opts.HideAudioTags && ch == "[" {
			c.flushWord()
			c.gap.Reset()
			c.inTag = true
			continue
		}

		if isWhitespace(ch) {
			c.flushWord()
			c.gap.WriteString(ch)
			continue
		}

		// Content character. Whitespace never merges across a word boundary.
		if c.gap.Len() > 0 {
			c.flushGap()
		}
		if c.word.Len() == 0 {
			c.wordStart = a.CharStart(i)
		}
		c.wordEnd = a.CharEnd(i)
		c.word.WriteString(ch)
	}

	c.flushWord()
	c.flushGap()

	return c.segments, c.words
}

func (c *composer) flushWord() {
	if c.word.Len() == 0 {
		return
	}
	seg := Segment{
		Index:     len(c.segments),
		Kind:      KindWord,
		Text:      c.word.String(),
		WordIndex: len(c.words),
		Start:     c.wordStart,
		End:       c.wordEnd,
	}
	c.segments = append(c.segments, seg)
	c.words = append(c.words, Word{
		SegmentIndex: seg.Index,
		WordIndex:    seg.WordIndex,
		Text:         seg.Text,
		Start:        seg.Start,
		End:          seg.End,
	})
	c.word.Reset()
}

func (c *composer) flushGap() {
	if c.gap.Len() == 0 {
		return
	}
	c.segments = append(c.segments, Segment{
		Index:     len(c.segments),
		Kind:      KindGap,
		Text:      c.gap.String(),
		WordIndex: -1,
	})
	c.gap.Reset()
}

// isWhitespace reports whether every rune of s is whitespace. Character
// entries may span more than one rune.
func isWhitespace(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
