package alignment

import (
	"encoding/json"
	"fmt"
)

// payload is a probe for the two supported JSON shapes: a raw character
// alignment or a word-level transcript.
type payload struct {
	Characters []string  `json:"characters"`
	StartTimes []float64 `json:"character_start_times_seconds"`
	EndTimes   []float64 `json:"character_end_times_seconds"`
	Words      []Token   `json:"words"`
}

// Decode parses alignment JSON, accepting either a raw character alignment
// (characters + character_start_times_seconds + character_end_times_seconds)
// or a word-level transcript (words with text/start/end/type), which is
// converted with FromTokens.
func Decode(data []byte) (*Alignment, error) {
	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse alignment JSON: %w", err)
	}

	if len(p.Characters) > 0 {
		a := &Alignment{
			Characters: p.Characters,
			StartTimes: p.StartTimes,
			EndTimes:   p.EndTimes,
		}
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("invalid alignment: %w", err)
		}
		return a, nil
	}

	if len(p.Words) > 0 {
		return FromTokens(p.Words), nil
	}

	return nil, fmt.Errorf("alignment JSON contains neither characters nor words")
}
