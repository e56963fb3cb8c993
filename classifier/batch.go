package classifier

import (
	"context"
	"strconv"

	"go-reviewpulse/types"
)

// ClassifyBatch classifies every review in order, sequentially. Rows are
// isolated: a failed row becomes a failed verdict and the batch continues.
// Rows without an ID get their 1-based position.
func (p *Pipeline) ClassifyBatch(ctx context.Context, reviews []types.Review) ([]types.ReviewVerdict, types.DatasetSummary) {
	verdicts := make([]types.ReviewVerdict, 0, len(reviews))

	for i, review := range reviews {
		if review.ID == "" {
			review.ID = strconv.Itoa(i + 1)
		}

		verdict, err := p.ClassifySingle(ctx, review)
		if err != nil {
			verdict = types.ReviewVerdict{
				Review:    review,
				Sentiment: types.SchemaVerdict{Error: err.Error()},
				Emotion:   types.SchemaVerdict{Error: err.Error()},
			}
		}
		verdicts = append(verdicts, verdict)
	}

	return verdicts, Summarize(verdicts)
}

// Summarize tallies labels among successful schema results. Failures are
// counted separately per schema, never folded into the label counts.
func Summarize(verdicts []types.ReviewVerdict) types.DatasetSummary {
	summary := types.DatasetSummary{
		Total:     len(verdicts),
		Sentiment: newSchemaSummary(),
		Emotion:   newSchemaSummary(),
	}

	for _, v := range verdicts {
		tally(&summary.Sentiment, v.Sentiment)
		tally(&summary.Emotion, v.Emotion)
		if v.Failed() {
			summary.FailedRows++
		}
	}

	fillPercents(&summary.Sentiment)
	fillPercents(&summary.Emotion)
	return summary
}

// FilterVerdicts returns the verdicts whose result for the schema carries
// one of the wanted labels. Pure post-processing over already-computed
// verdicts; classification is never re-invoked. No labels means no filter.
func FilterVerdicts(verdicts []types.ReviewVerdict, schema types.Schema, labels ...types.Label) []types.ReviewVerdict {
	if len(labels) == 0 {
		return verdicts
	}

	wanted := make(map[types.Label]bool, len(labels))
	for _, l := range labels {
		wanted[l] = true
	}

	filtered := make([]types.ReviewVerdict, 0, len(verdicts))
	for _, v := range verdicts {
		sv := v.Sentiment
		if schema == types.SchemaEmotion {
			sv = v.Emotion
		}
		if !sv.Failed() && wanted[sv.Result.Label] {
			filtered = append(filtered, v)
		}
	}
	return filtered
}

func newSchemaSummary() types.SchemaSummary {
	return types.SchemaSummary{
		Counts:   make(map[types.Label]int),
		Percents: make(map[types.Label]float64),
	}
}

func tally(s *types.SchemaSummary, v types.SchemaVerdict) {
	if v.Failed() {
		s.Failed++
		return
	}
	s.Counts[v.Result.Label]++
}

func fillPercents(s *types.SchemaSummary) {
	classified := 0
	for _, n := range s.Counts {
		classified += n
	}
	if classified == 0 {
		return
	}
	for label, n := range s.Counts {
		s.Percents[label] = float64(n) / float64(classified) * 100
	}
}
