package nlp

import (
	"context"
	"encoding/base64"
	"fmt"
	"math"
	"os"

	language "cloud.google.com/go/language/apiv2"
	"cloud.google.com/go/language/apiv2/languagepb"
	"google.golang.org/api/option"

	"go-reviewpulse/types"
)

// Thresholds for folding the API's score/magnitude pair into labels. A
// near-zero score with high magnitude is the mixed signature: strong
// positive and negative signals cancelling out.
const (
	scoreThreshold     = 0.25
	magnitudeThreshold = 1.0
)

// NewClient creates the Natural Language API client from the base64 encoded
// service account in NATURAL_LANGUAGE_CREDENTIALS.
func NewClient(ctx context.Context) (*language.Client, error) {
	encodedCreds := os.Getenv("NATURAL_LANGUAGE_CREDENTIALS")
	creds, err := base64.StdEncoding.DecodeString(encodedCreds)
	if err != nil {
		return nil, fmt.Errorf("decoding Natural Language credentials: %w", err)
	}

	opt := option.WithCredentialsJSON(creds)
	return language.NewClient(ctx, opt)
}

// SentimentBackend classifies sentiment through the Cloud Natural Language
// API.
type SentimentBackend struct {
	client *language.Client
}

func NewSentimentBackend(client *language.Client) *SentimentBackend {
	return &SentimentBackend{client: client}
}

func (b *SentimentBackend) Name() string {
	return "cloud-natural-language"
}

func (b *SentimentBackend) Scores(ctx context.Context, text string, schema types.Schema) ([]types.LabelScore, error) {
	if schema != types.SchemaSentiment {
		return nil, fmt.Errorf("backend serves %s, not %s", types.SchemaSentiment, schema)
	}

	req := &languagepb.AnalyzeSentimentRequest{
		Document: &languagepb.Document{
			Source: &languagepb.Document_Content{
				Content: text,
			},
			Type: languagepb.Document_PLAIN_TEXT,
		},
		EncodingType: languagepb.EncodingType_UTF8,
	}

	resp, err := b.client.AnalyzeSentiment(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("AnalyzeSentiment error: %w", err)
	}

	label, confidence := MapSentiment(resp.DocumentSentiment.Score, resp.DocumentSentiment.Magnitude)
	return []types.LabelScore{{Label: label, Score: confidence}}, nil
}

// MapSentiment folds the API's score ([-1, 1]) and magnitude ([0, +inf))
// into the four-label schema with a derived confidence in [0, 1].
func MapSentiment(score, magnitude float32) (types.Label, float64) {
	s := float64(score)
	m := float64(magnitude)

	switch {
	case s >= scoreThreshold:
		return types.SentimentPositive, 0.5 + math.Min(math.Abs(s), 1)/2
	case s <= -scoreThreshold:
		return types.SentimentNegative, 0.5 + math.Min(math.Abs(s), 1)/2
	case m > magnitudeThreshold:
		return types.SentimentMixed, m / (m + 1)
	default:
		return types.SentimentNeutral, 1 - math.Abs(s)
	}
}
