package classifier

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"go-reviewpulse/types"
)

// Backend is a classification model serving one or more schemas. Scores
// returns the model's raw score distribution over the schema's labels; it
// may be partial or a single entry.
type Backend interface {
	Name() string
	Scores(ctx context.Context, text string, schema types.Schema) ([]types.LabelScore, error)
}

// Loader builds an optional custom backend. An error means the model is
// unavailable and the schema's fallback serves instead.
type Loader func() (Backend, error)

// Config wires a Resolver: a required fallback backend per schema, plus an
// optional custom-model loader per schema.
type Config struct {
	SentimentFallback Backend
	EmotionFallback   Backend
	SentimentCustom   Loader
	EmotionCustom     Loader
}

// Resolver hides backend selection behind a single Classify operation. The
// selection happens once, in NewResolver, and is read-only afterwards, so a
// Resolver is safe to share across handlers without locking.
type Resolver struct {
	backends map[types.Schema]Backend
}

func NewResolver(cfg Config) (*Resolver, error) {
	if cfg.SentimentFallback == nil || cfg.EmotionFallback == nil {
		return nil, errors.New("classifier: both fallback backends are required")
	}
	return &Resolver{
		backends: map[types.Schema]Backend{
			types.SchemaSentiment: resolve(types.SchemaSentiment, cfg.SentimentFallback, cfg.SentimentCustom),
			types.SchemaEmotion:   resolve(types.SchemaEmotion, cfg.EmotionFallback, cfg.EmotionCustom),
		},
	}, nil
}

// resolve prefers the custom model when it loads; any load failure falls
// back permanently for the life of the process.
func resolve(schema types.Schema, fallback Backend, custom Loader) Backend {
	if custom == nil {
		return fallback
	}
	backend, err := custom()
	if err != nil {
		log.Printf("Custom %s model unavailable, using %s: %v", schema, fallback.Name(), err)
		return fallback
	}
	log.Printf("Using custom %s model: %s", schema, backend.Name())
	return backend
}

// Backend reports which backend serves the given schema.
func (r *Resolver) Backend(schema types.Schema) Backend {
	return r.backends[schema]
}

// Classify runs the chosen backend on text and reduces its distribution to
// exactly one label of the schema's enumeration, with confidence in [0, 1].
func (r *Resolver) Classify(ctx context.Context, text string, schema types.Schema) (types.ClassificationResult, error) {
	var result types.ClassificationResult

	if strings.TrimSpace(text) == "" {
		return result, types.ErrInvalidInput
	}

	backend, ok := r.backends[schema]
	if !ok {
		return result, fmt.Errorf("classifier: unknown schema %q", schema)
	}

	scores, err := backend.Scores(ctx, text, schema)
	if err != nil {
		return result, &types.ClassificationError{Schema: schema, Model: backend.Name(), Err: err}
	}

	label, confidence, err := argmax(schema, scores)
	if err != nil {
		return result, &types.ClassificationError{Schema: schema, Model: backend.Name(), Err: err}
	}

	return types.ClassificationResult{
		Label:      label,
		Confidence: confidence,
		Model:      backend.Name(),
	}, nil
}

// argmax picks the highest-scoring label. Ties break toward the label
// listed first in the schema enumeration.
func argmax(schema types.Schema, scores []types.LabelScore) (types.Label, float64, error) {
	if len(scores) == 0 {
		return "", 0, errors.New("model returned an empty distribution")
	}

	byLabel := make(map[types.Label]float64, len(scores))
	for _, s := range scores {
		if !schema.Contains(s.Label) {
			return "", 0, fmt.Errorf("model returned unknown %s label %q", schema, s.Label)
		}
		if cur, seen := byLabel[s.Label]; !seen || s.Score > cur {
			byLabel[s.Label] = s.Score
		}
	}

	var (
		best  types.Label
		score float64
		found bool
	)
	for _, label := range schema.Labels() {
		s, ok := byLabel[label]
		if ok && (!found || s > score) {
			best, score, found = label, s, true
		}
	}
	return best, clamp(score), nil
}

func clamp(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}
