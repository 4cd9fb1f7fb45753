package segment

import "testing"

func TestLocate(t *testing.T) {
	words := []Word{
		{WordIndex: 0, Start: 0, End: 1},
		{WordIndex: 1, Start: 1.5, End: 2},
		{WordIndex: 2, Start: 2, End: 3.5},
		{WordIndex: 3, Start: 4, End: 5},
	}

	tests := []struct {
		name string
		t    float64
		want int
	}{
		{"before first word", -0.5, -1},
		{"start of first word", 0, 0},
		{"inside first word", 0.5, 0},
		{"end is exclusive", 1, -1},
		{"silent gap", 1.2, -1},
		{"start of second word", 1.5, 1},
		{"shared boundary belongs to the later word", 2, 2},
		{"inside third word", 3.0, 2},
		{"gap before last word", 3.7, -1},
		{"inside last word", 4.9, 3},
		{"end of last word", 5, -1},
		{"after last word", 7, -1},
	}

	for _, tt := range tests {
		if got := Locate(words, tt.t); got != tt.want {
			t.Errorf("%s: Locate(words, %v) = %d, want %d", tt.name, tt.t, got, tt.want)
		}
	}
}

func TestLocate_Empty(t *testing.T) {
	if got := Locate(nil, 1.0); got != -1 {
		t.Errorf("Locate(nil, 1.0) = %d, want -1", got)
	}
}

func TestLocate_SingleWord(t *testing.T) {
	words := []Word{{Start: 2, End: 3}}
	if got := Locate(words, 2.5); got != 0 {
		t.Errorf("Locate = %d, want 0", got)
	}
	if got := Locate(words, 3); got != -1 {
		t.Errorf("Locate at end = %d, want -1", got)
	}
}

func TestLocate_ZeroLengthInterval(t *testing.T) {
	// A zero-length interval can never contain a time; the search must
	// return -1 rather than fault.
	words := []Word{
		{Start: 0, End: 1},
		{Start: 1, End: 1},
		{Start: 1, End: 2},
	}
	if got := Locate(words, 1); got != 2 {
		t.Errorf("Locate(words, 1) = %d, want 2 (zero-length interval skipped)", got)
	}
}
