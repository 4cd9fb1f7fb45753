package alignment

import "testing"

func TestValidate(t *testing.T) {
	good := &Alignment{
		Characters: []string{"h", "i"},
		StartTimes: []float64{0, 0.5},
		EndTimes:   []float64{0.5, 1},
	}
	if err := good.Validate(); err != nil {
		t.Errorf("valid alignment rejected: %v", err)
	}

	short := &Alignment{
		Characters: []string{"h", "i"},
		StartTimes: []float64{0},
		EndTimes:   []float64{0.5, 1},
	}
	if err := short.Validate(); err == nil {
		t.Error("length mismatch accepted")
	}

	reversed := &Alignment{
		Characters: []string{"h"},
		StartTimes: []float64{1},
		EndTimes:   []float64{0.5},
	}
	if err := reversed.Validate(); err == nil {
		t.Error("start after end accepted")
	}
}

func TestCharTimeFallbacks(t *testing.T) {
	a := &Alignment{
		Characters: []string{"a", "b"},
		StartTimes: []float64{1.0},
	}
	if got := a.CharStart(0); got != 1.0 {
		t.Errorf("CharStart(0) = %v, want 1.0", got)
	}
	if got := a.CharStart(1); got != 0 {
		t.Errorf("CharStart(1) = %v, want 0 (out of range)", got)
	}
	if got := a.CharEnd(0); got != 1.0 {
		t.Errorf("CharEnd(0) = %v, want fallback to start 1.0", got)
	}
	if got := a.CharEnd(1); got != 0 {
		t.Errorf("CharEnd(1) = %v, want 0", got)
	}
}

func TestEstimatedDuration(t *testing.T) {
	full := &Alignment{EndTimes: []float64{1, 2, 3.25}}
	if got := full.EstimatedDuration(); got != 3.25 {
		t.Errorf("EstimatedDuration = %v, want 3.25", got)
	}

	noEnds := &Alignment{StartTimes: []float64{1, 2.5}}
	if got := noEnds.EstimatedDuration(); got != 2.5 {
		t.Errorf("EstimatedDuration without ends = %v, want 2.5", got)
	}

	empty := &Alignment{}
	if got := empty.EstimatedDuration(); got != 0 {
		t.Errorf("EstimatedDuration of empty = %v, want 0", got)
	}
}

func TestDecode_RawAlignment(t *testing.T) {
	data := []byte(`{
		"characters": ["h", "i"],
		"character_start_times_seconds": [0, 0.5],
		"character_end_times_seconds": [0.5, 1]
	}`)
	a, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if a.Len() != 2 || a.Characters[1] != "i" || a.EndTimes[1] != 1 {
		t.Errorf("decoded alignment = %+v", a)
	}
}

func TestDecode_Transcript(t *testing.T) {
	data := []byte(`{
		"language_code": "eng",
		"text": "hi there",
		"words": [
			{"text": "hi", "start": 0, "end": 1, "type": "word"},
			{"text": " ", "start": 1, "end": 1, "type": "spacing"},
			{"text": "there", "start": 1, "end": 2, "type": "word"}
		]
	}`)
	a, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if a.Len() != 8 {
		t.Fatalf("decoded %d characters, want 8", a.Len())
	}
	if err := a.Validate(); err != nil {
		t.Errorf("converted alignment invalid: %v", err)
	}
}

func TestDecode_Unrecognized(t *testing.T) {
	if _, err := Decode([]byte(`{}`)); err == nil {
		t.Error("empty payload accepted")
	}
	if _, err := Decode([]byte(`not json`)); err == nil {
		t.Error("malformed JSON accepted")
	}
	mismatched := []byte(`{"characters": ["a"], "character_start_times_seconds": []}`)
	if _, err := Decode(mismatched); err == nil {
		t.Error("mismatched raw alignment accepted")
	}
}

func TestFromTokens(t *testing.T) {
	a := FromTokens([]Token{
		{Text: "hi", Start: 0, End: 1, Type: "word"},
		{Text: " ", Start: 1, End: 1.5, Type: "spacing"},
		{Text: "cough", Start: 1.5, End: 2, Type: "audio_event"},
	})

	// "hi" (2) + " " (1) + "[cough]" (7).
	if a.Len() != 10 {
		t.Fatalf("converted %d characters, want 10", a.Len())
	}

	if a.Characters[0] != "h" || a.StartTimes[0] != 0 {
		t.Errorf("first character = %q at %v", a.Characters[0], a.StartTimes[0])
	}
	if a.EndTimes[1] != 1 {
		t.Errorf("last character of token ends at %v, want the token end 1", a.EndTimes[1])
	}
	if a.Characters[3] != "[" || a.Characters[9] != "]" {
		t.Errorf("audio event not bracketed: %v", a.Characters[3:])
	}
	if a.EndTimes[9] != 2 {
		t.Errorf("event tag ends at %v, want 2", a.EndTimes[9])
	}

	// Per-character times stay monotonically non-decreasing.
	for i := 1; i < a.Len(); i++ {
		if a.StartTimes[i] < a.StartTimes[i-1] {
			t.Fatalf("start times regress at %d: %v < %v", i, a.StartTimes[i], a.StartTimes[i-1])
		}
	}
	if err := a.Validate(); err != nil {
		t.Errorf("converted alignment invalid: %v", err)
	}
}

func TestFromTokens_EmptyToken(t *testing.T) {
	a := FromTokens([]Token{{Text: "", Start: 0, End: 1, Type: "word"}})
	if !a.Empty() {
		t.Errorf("empty token produced characters: %+v", a)
	}
}
