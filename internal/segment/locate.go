package segment

// Locate returns the index of the word whose interval contains t, or -1 when
// no interval does (t in a silent gap, or before the first / after the last
// word). Intervals are half-open [Start, End): a time exactly at a word's end
// belongs to the next word. The word list must be ordered by start time; it
// is not re-sorted here. Zero-length intervals simply never match.
func Locate(words []Word, t float64) int {
	lo, hi := 0, len(words)-1
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1)
		w := words[mid]
		switch {
		case t >= w.Start && t < w.End:
			return mid
		case t < w.Start:
			hi = mid - 1
		default:
			lo = mid + 1
		}
	}
	return -1
}
