package classifier

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-reviewpulse/types"
)

func TestClassifyBatchOrderAndSummary(t *testing.T) {
	backend := positiveJoyBackend("fallback")
	p := newTestPipeline(t, backend, backend)

	reviews := []types.Review{
		{Text: "first review"},
		{Text: "second review"},
		{Text: "third review"},
		{Text: "fourth review"},
	}

	verdicts, summary := p.ClassifyBatch(context.Background(), reviews)
	require.Len(t, verdicts, len(reviews))

	for i, v := range verdicts {
		assert.Equal(t, reviews[i].Text, v.Review.Text, "input order preserved")
		assert.Equal(t, strconv.Itoa(i+1), v.Review.ID, "positional 1-based id assigned")
	}

	assert.Equal(t, 4, summary.Total)
	assert.Zero(t, summary.FailedRows)
	assert.Equal(t, 4, summary.Sentiment.Counts[types.SentimentPositive])
	assert.Equal(t, 4, summary.Emotion.Counts[types.EmotionJoy])
	assert.InDelta(t, 100.0, summary.Sentiment.Percents[types.SentimentPositive], 1e-9)
}

func TestClassifyBatchKeepsProvidedIDs(t *testing.T) {
	backend := positiveJoyBackend("fallback")
	p := newTestPipeline(t, backend, backend)

	verdicts, _ := p.ClassifyBatch(context.Background(), []types.Review{
		{ID: "a17", Text: "labeled row"},
		{Text: "unlabeled row"},
	})
	require.Len(t, verdicts, 2)
	assert.Equal(t, "a17", verdicts[0].Review.ID)
	assert.Equal(t, "2", verdicts[1].Review.ID)
}

func TestClassifyBatchRowIsolation(t *testing.T) {
	backend := positiveJoyBackend("fallback")
	p := newTestPipeline(t, backend, backend)

	reviews := []types.Review{
		{Text: "row one"},
		{Text: "row two"},
		{Text: "   "}, // row three is blank
		{Text: "row four"},
		{Text: "row five"},
	}

	verdicts, summary := p.ClassifyBatch(context.Background(), reviews)
	require.Len(t, verdicts, 5, "a failed row never aborts the batch")

	failed := verdicts[2]
	assert.True(t, failed.Sentiment.Failed())
	assert.True(t, failed.Emotion.Failed())
	assert.NotEmpty(t, failed.Sentiment.Error)

	assert.Equal(t, 5, summary.Total)
	assert.Equal(t, 1, summary.FailedRows)
	assert.Equal(t, 1, summary.Sentiment.Failed)
	assert.Equal(t, 1, summary.Emotion.Failed)

	sentimentSum := 0
	for _, n := range summary.Sentiment.Counts {
		sentimentSum += n
	}
	assert.Equal(t, 4, sentimentSum, "failed rows are excluded from label counts")
}

func TestSummarizePartialSchemaFailure(t *testing.T) {
	sentiment := positiveJoyBackend("sentiment-ok")
	emotion := &fakeBackend{name: "emotion-broken", err: assert.AnError}
	p := newTestPipeline(t, sentiment, emotion)

	_, summary := p.ClassifyBatch(context.Background(), []types.Review{
		{Text: "one"},
		{Text: "two"},
	})

	assert.Equal(t, 2, summary.Sentiment.Counts[types.SentimentPositive])
	assert.Zero(t, summary.Sentiment.Failed)
	assert.Equal(t, 2, summary.Emotion.Failed)
	assert.Empty(t, summary.Emotion.Counts)
	assert.Equal(t, 2, summary.FailedRows)
}

func TestClassifyBatchExample(t *testing.T) {
	backend := positiveJoyBackend("fallback")
	p := newTestPipeline(t, backend, backend)

	verdicts, summary := p.ClassifyBatch(context.Background(), []types.Review{
		{ID: "1", Text: "it was a good movie and i liked it"},
	})
	require.Len(t, verdicts, 1)

	sentiment := verdicts[0].Sentiment.Result
	emotion := verdicts[0].Emotion.Result
	require.NotNil(t, sentiment)
	require.NotNil(t, emotion)

	assert.Equal(t, types.SentimentPositive, sentiment.Label)
	assert.Greater(t, sentiment.Confidence, 0.5)
	assert.Equal(t, types.EmotionJoy, emotion.Label)
	assert.Greater(t, emotion.Confidence, 0.0)

	assert.Equal(t, map[types.Label]int{types.SentimentPositive: 1}, summary.Sentiment.Counts)
	assert.Equal(t, map[types.Label]int{types.EmotionJoy: 1}, summary.Emotion.Counts)
}

func TestFilterVerdicts(t *testing.T) {
	backend := &fakeBackend{
		name: "fallback",
		scores: map[types.Schema][]types.LabelScore{
			types.SchemaSentiment: {{Label: types.SentimentPositive, Score: 0.8}},
			types.SchemaEmotion:   {{Label: types.EmotionJoy, Score: 0.8}},
		},
	}
	negative := &fakeBackend{
		name: "fallback",
		scores: map[types.Schema][]types.LabelScore{
			types.SchemaSentiment: {{Label: types.SentimentNegative, Score: 0.9}},
			types.SchemaEmotion:   {{Label: types.EmotionAnger, Score: 0.9}},
		},
	}

	p := newTestPipeline(t, backend, backend)
	positives, _ := p.ClassifyBatch(context.Background(), []types.Review{{Text: "great"}, {Text: "lovely"}})

	pn := newTestPipeline(t, negative, negative)
	negatives, _ := pn.ClassifyBatch(context.Background(), []types.Review{{Text: "awful"}})

	verdicts := append(positives, negatives...)
	callsBefore := backend.calls + negative.calls

	filtered := FilterVerdicts(verdicts, types.SchemaSentiment, types.SentimentNegative)
	require.Len(t, filtered, 1)
	assert.Equal(t, types.SentimentNegative, filtered[0].Sentiment.Result.Label)

	assert.Equal(t, verdicts, FilterVerdicts(verdicts, types.SchemaSentiment), "no labels means no filtering")
	assert.Equal(t, callsBefore, backend.calls+negative.calls, "filtering never re-invokes classification")
}

func TestFilterVerdictsSkipsFailedRows(t *testing.T) {
	verdicts := []types.ReviewVerdict{
		{
			Review:    types.Review{ID: "1", Text: "broken"},
			Sentiment: types.SchemaVerdict{Error: "model exploded"},
			Emotion:   types.SchemaVerdict{Error: "model exploded"},
		},
	}
	assert.Empty(t, FilterVerdicts(verdicts, types.SchemaSentiment, types.SentimentPositive))
}
