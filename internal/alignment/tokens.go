package alignment

import "strings"

// Token is a single timed token from a word-level transcript.
type Token struct {
	Text  string  `json:"text"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Type  string  `json:"type"` // "word", "spacing", "audio_event"
}

// Transcript is the top-level word-level transcript payload.
type Transcript struct {
	LanguageCode string  `json:"language_code"`
	Text         string  `json:"text"`
	Words        []Token `json:"words"`
}

// FromTokens converts a word-level transcript into a character alignment by
// distributing each token's interval linearly across its characters.
// Audio-event tokens are rendered as bracketed tags so that downstream tag
// suppression treats them the same as inline bracketed markers.
func FromTokens(tokens []Token) *Alignment {
	a := &Alignment{}
	for _, tok := range tokens {
		text := tok.Text
		if tok.Type == "audio_event" && !strings.HasPrefix(text, "[") {
			text = "[" + text + "]"
		}
		runes := []rune(text)
		if len(runes) == 0 {
			continue
		}

		step := (tok.End - tok.Start) / float64(len(runes))
		for i, r := range runes {
			start := tok.Start + float64(i)*step
			end := start + step
			if i == len(runes)-1 {
				end = tok.End
			}
			a.Characters = append(a.Characters, string(r))
			a.StartTimes = append(a.StartTimes, start)
			a.EndTimes = append(a.EndTimes, end)
		}
	}
	return a
}
