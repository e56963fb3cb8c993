package classifier

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-reviewpulse/types"
)

func newTestPipeline(t *testing.T, sentiment, emotion Backend) *Pipeline {
	t.Helper()
	r := newTestResolver(t, Config{SentimentFallback: sentiment, EmotionFallback: emotion})
	return NewPipeline(r)
}

func TestClassifySingleVerdict(t *testing.T) {
	backend := positiveJoyBackend("fallback")
	p := newTestPipeline(t, backend, backend)

	verdict, err := p.ClassifySingle(context.Background(), types.Review{ID: "1", Text: "it was a good movie and i liked it"})
	require.NoError(t, err)

	require.False(t, verdict.Sentiment.Failed())
	require.False(t, verdict.Emotion.Failed())

	assert.True(t, types.SchemaSentiment.Contains(verdict.Sentiment.Result.Label))
	assert.True(t, types.SchemaEmotion.Contains(verdict.Emotion.Result.Label))

	for _, result := range []*types.ClassificationResult{verdict.Sentiment.Result, verdict.Emotion.Result} {
		assert.GreaterOrEqual(t, result.Confidence, 0.0)
		assert.LessOrEqual(t, result.Confidence, 1.0)
		assert.NotEmpty(t, result.Model)
	}
}

func TestClassifySingleRejectsEmptyInput(t *testing.T) {
	backend := positiveJoyBackend("fallback")
	p := newTestPipeline(t, backend, backend)

	for _, text := range []string{"", "   "} {
		_, err := p.ClassifySingle(context.Background(), types.Review{Text: text})
		require.ErrorIs(t, err, types.ErrInvalidInput)
	}
}

func TestClassifySinglePartialFailure(t *testing.T) {
	sentiment := positiveJoyBackend("sentiment-ok")
	emotion := &fakeBackend{name: "emotion-broken", err: errors.New("runtime failure")}
	p := newTestPipeline(t, sentiment, emotion)

	verdict, err := p.ClassifySingle(context.Background(), types.Review{Text: "fine product"})
	require.NoError(t, err)

	assert.False(t, verdict.Sentiment.Failed())
	assert.True(t, verdict.Emotion.Failed())
	assert.Contains(t, verdict.Emotion.Error, "runtime failure")
	assert.True(t, verdict.Failed())
}

func TestClassifySingleIdempotent(t *testing.T) {
	backend := positiveJoyBackend("fallback")
	p := newTestPipeline(t, backend, backend)

	first, err := p.ClassifySingle(context.Background(), types.Review{Text: "identical input"})
	require.NoError(t, err)
	second, err := p.ClassifySingle(context.Background(), types.Review{Text: "identical input"})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
