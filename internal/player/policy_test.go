package player

import (
	"testing"

	"scriptsync/internal/segment"
)

var policyWords = []segment.Word{
	{WordIndex: 0, Start: 0, End: 1},
	{WordIndex: 1, Start: 1.5, End: 2},
	{WordIndex: 2, Start: 2, End: 3},
	{WordIndex: 3, Start: 4, End: 5},
}

func TestNextWordIndex(t *testing.T) {
	tests := []struct {
		name string
		cur  int
		t    float64
		want int
	}{
		{"no tracked word, exact hit", -1, 0.5, 0},
		{"no tracked word, miss stays invalid", -1, 1.2, -1},
		{"forward into silent gap holds the word", 0, 1.2, 0},
		{"forward to next word", 0, 1.6, 1},
		{"forward skips several words in one tick", 0, 4.5, 3},
		{"forward jump into gap adopts last passed word", 0, 3.5, 2},
		{"forward past the last word holds it", 3, 9, 3},
		{"backward seek with exact hit", 2, 0.5, 0},
		{"backward seek into a gap holds the word", 2, 1.2, 2},
		{"still inside tracked interval", 1, 1.7, 1},
		{"forward across shared boundary", 1, 2.5, 2},
	}

	for _, tt := range tests {
		if got := nextWordIndex(policyWords, tt.cur, tt.t); got != tt.want {
			t.Errorf("%s: nextWordIndex(cur=%d, t=%v) = %d, want %d",
				tt.name, tt.cur, tt.t, got, tt.want)
		}
	}
}

func TestNextWordIndex_NoWords(t *testing.T) {
	if got := nextWordIndex(nil, 0, 1.0); got != -1 {
		t.Errorf("nextWordIndex with no words = %d, want -1", got)
	}
}

// The naive locator reports no word during an inter-word silence; the policy
// keeps the previously reached word while time advances through the gap.
func TestPolicyStableAcrossGap(t *testing.T) {
	words := []segment.Word{
		{WordIndex: 0, Start: 0, End: 1},
		{WordIndex: 1, Start: 1.5, End: 2},
	}

	if got := segment.Locate(words, 1.2); got != -1 {
		t.Fatalf("Locate(words, 1.2) = %d, want -1", got)
	}

	cur := nextWordIndex(words, -1, 0.5)
	if cur != 0 {
		t.Fatalf("initial index = %d, want 0", cur)
	}
	if got := nextWordIndex(words, cur, 1.2); got != 0 {
		t.Errorf("index after advancing into the gap = %d, want 0", got)
	}
}
