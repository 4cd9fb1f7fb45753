package render

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/time/rate"

	"scriptsync/internal/player"
	"scriptsync/internal/segment"
)

const defaultWidth = 100

// Renderer writes a one-line, in-place view of the transcript around the
// current word: a time column followed by an excerpt with the current word
// in reverse video. Redraws are rate-limited so a fast polling loop does not
// flood the terminal.
type Renderer struct {
	w       io.Writer
	limiter *rate.Limiter
	width   int

	// Text, when set, overrides how a segment's text is rendered for a given
	// status before layout. The default is the segment text verbatim.
	Text func(seg segment.Segment, status segment.Status) string
}

// New creates a Renderer writing to w, redrawing at most redrawPerSec times
// per second (<= 0 means 30).
func New(w io.Writer, redrawPerSec float64) *Renderer {
	if redrawPerSec <= 0 {
		redrawPerSec = 30
	}
	return &Renderer{
		w:       w,
		limiter: rate.NewLimiter(rate.Limit(redrawPerSec), 1),
		width:   defaultWidth,
	}
}

// Draw renders a frame unless the redraw budget is exhausted, in which case
// the frame is dropped.
func (r *Renderer) Draw(st player.State, v segment.View) {
	if !r.limiter.Allow() {
		return
	}
	r.frame(st, v)
}

// Final renders one last frame unconditionally and terminates the line.
func (r *Renderer) Final(st player.State, v segment.View) {
	r.frame(st, v)
	fmt.Fprintln(r.w)
}

func (r *Renderer) frame(st player.State, v segment.View) {
	clock := FormatTime(st.CurrentTime) + " / " + FormatTime(st.Duration)
	excerptWidth := r.width - len(clock) - 2
	fmt.Fprintf(r.w, "\r\x1b[2K%s  %s", clock, r.excerpt(v, excerptWidth))
}

// excerpt builds a single-line window over the transcript centered on the
// current word: the tail of the spoken text, the highlighted current word,
// and the head of the unspoken text.
func (r *Renderer) excerpt(v segment.View, width int) string {
	if width < 8 {
		width = 8
	}

	spoken := r.flatten(v.Spoken, segment.StatusSpoken)
	unspoken := r.flatten(v.Unspoken, segment.StatusUnspoken)
	current := ""
	if v.Current != nil {
		current = oneLine(r.textOf(*v.Current, segment.StatusCurrent))
	}

	budget := width - len([]rune(current))
	if budget < 0 {
		budget = 0
	}
	before := tail(spoken, budget/2)
	after := head(unspoken, budget-len([]rune(before)))

	if current == "" {
		return before + after
	}
	return before + "\x1b[7m" + current + "\x1b[0m" + after
}

func (r *Renderer) flatten(segs []segment.Segment, status segment.Status) string {
	var b strings.Builder
	for _, seg := range segs {
		b.WriteString(r.textOf(seg, status))
	}
	return oneLine(b.String())
}

func (r *Renderer) textOf(seg segment.Segment, status segment.Status) string {
	if r.Text != nil {
		return r.Text(seg, status)
	}
	return seg.Text
}

func oneLine(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == '\t' {
			return ' '
		}
		return r
	}, s)
}

func tail(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[len(runes)-n:])
}

func head(s string, n int) string {
	if n < 0 {
		n = 0
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
