package segment

// Status tags a segment for rendering.
type Status string

const (
	StatusSpoken   Status = "spoken"
	StatusCurrent  Status = "current"
	StatusUnspoken Status = "unspoken"
)

// View splits the segment list around the current word: everything strictly
// before the current word's segment, the current segment itself, and
// everything strictly after. The current segment appears in neither list, so
// a renderer applying three treatments never double-renders a segment.
type View struct {
	Spoken   []Segment
	Current  *Segment
	Unspoken []Segment
}

// SplitView derives the rendering view for the given current word index.
// With no current word (index out of range, or no words at all) every
// segment is unspoken: nothing has been reached yet.
func SplitView(segments []Segment, words []Word, currentWord int) View {
	if currentWord < 0 || currentWord >= len(words) {
		return View{Unspoken: segments}
	}
	si := words[currentWord].SegmentIndex
	if si < 0 || si >= len(segments) {
		return View{Unspoken: segments}
	}
	cur := segments[si]
	return View{
		Spoken:   segments[:si],
		Current:  &cur,
		Unspoken: segments[si+1:],
	}
}
