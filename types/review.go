package types

// Review is one unit of input text. ID is optional; batch classification
// assigns a 1-based positional ID when the input table has none.
type Review struct {
	ID   string `json:"id"`
	Text string `json:"review"`
}

// LabelScore is one entry of a model's raw score distribution.
type LabelScore struct {
	Label Label   `json:"label"`
	Score float64 `json:"score"`
}

// ClassificationResult is a single label with its confidence and the name
// of the backend that produced it.
type ClassificationResult struct {
	Label      Label   `json:"label"`
	Confidence float64 `json:"confidence"`
	Model      string  `json:"model"`
}

// SchemaVerdict carries either a result or an explicit failure marker for
// one schema, never neither.
type SchemaVerdict struct {
	Result *ClassificationResult `json:"result,omitempty"`
	Error  string                `json:"error,omitempty"`
}

// Failed reports whether this schema's classification produced no result.
func (v SchemaVerdict) Failed() bool {
	return v.Result == nil
}

// ReviewVerdict is the combined sentiment and emotion outcome for one review.
type ReviewVerdict struct {
	Review    Review        `json:"review"`
	Sentiment SchemaVerdict `json:"sentiment"`
	Emotion   SchemaVerdict `json:"emotion"`
}

// Failed reports whether either schema's classification failed.
func (v ReviewVerdict) Failed() bool {
	return v.Sentiment.Failed() || v.Emotion.Failed()
}

// SchemaSummary tallies one schema's labels over a batch. Failed rows are
// counted separately and never folded into the label counts, so the counts
// sum to the rows successfully classified against this schema.
type SchemaSummary struct {
	Counts   map[Label]int     `json:"counts"`
	Percents map[Label]float64 `json:"percents"`
	Failed   int               `json:"failed"`
}

// DatasetSummary aggregates a batch: per-schema label distributions plus
// the number of rows that failed at least one schema.
type DatasetSummary struct {
	Total      int           `json:"total"`
	FailedRows int           `json:"failed_rows"`
	Sentiment  SchemaSummary `json:"sentiment"`
	Emotion    SchemaSummary `json:"emotion"`
}
