package types

import (
	"fmt"
	"strings"
)

// Schema selects which label enumeration a text is classified against.
type Schema string

const (
	SchemaSentiment Schema = "sentiment"
	SchemaEmotion   Schema = "emotion"
)

// Label is one value of a schema's fixed enumeration.
type Label string

// Sentiment labels.
const (
	SentimentPositive Label = "Positive"
	SentimentNegative Label = "Negative"
	SentimentNeutral  Label = "Neutral"
	SentimentMixed    Label = "Mixed"
)

// Emotion labels.
const (
	EmotionJoy      Label = "Joy"
	EmotionSadness  Label = "Sadness"
	EmotionAnger    Label = "Anger"
	EmotionFear     Label = "Fear"
	EmotionDisgust  Label = "Disgust"
	EmotionSurprise Label = "Surprise"
	EmotionNeutral  Label = "Neutral"
)

var sentimentLabels = []Label{SentimentPositive, SentimentNegative, SentimentNeutral, SentimentMixed}

var emotionLabels = []Label{EmotionJoy, EmotionSadness, EmotionAnger, EmotionFear, EmotionDisgust, EmotionSurprise, EmotionNeutral}

// Labels returns the schema's enumeration. Order matters: score ties break
// toward the first-listed label.
func (s Schema) Labels() []Label {
	switch s {
	case SchemaSentiment:
		return sentimentLabels
	case SchemaEmotion:
		return emotionLabels
	}
	return nil
}

// Contains reports whether the label belongs to the schema's enumeration.
func (s Schema) Contains(l Label) bool {
	for _, label := range s.Labels() {
		if label == l {
			return true
		}
	}
	return false
}

// ParseLabel matches raw text against the schema's enumeration,
// case-insensitively, so model outputs like "joy" or "POSITIVE" map onto
// the canonical labels.
func ParseLabel(s Schema, raw string) (Label, error) {
	cleaned := strings.TrimSpace(raw)
	for _, label := range s.Labels() {
		if strings.EqualFold(cleaned, string(label)) {
			return label, nil
		}
	}
	return "", fmt.Errorf("unknown %s label %q", s, raw)
}
