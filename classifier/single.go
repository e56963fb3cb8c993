package classifier

import (
	"context"
	"log"
	"strings"

	"go-reviewpulse/types"
)

// Pipeline classifies reviews against both schemas through an injected
// Resolver.
type Pipeline struct {
	resolver *Resolver
}

func NewPipeline(resolver *Resolver) *Pipeline {
	return &Pipeline{resolver: resolver}
}

// ClassifySingle produces the verdict for one review. The two schemas are
// classified independently: a failure on one side is recorded as that
// side's failure marker and does not block the other.
func (p *Pipeline) ClassifySingle(ctx context.Context, review types.Review) (types.ReviewVerdict, error) {
	if strings.TrimSpace(review.Text) == "" {
		return types.ReviewVerdict{}, types.ErrInvalidInput
	}

	return types.ReviewVerdict{
		Review:    review,
		Sentiment: p.classifySchema(ctx, review.Text, types.SchemaSentiment),
		Emotion:   p.classifySchema(ctx, review.Text, types.SchemaEmotion),
	}, nil
}

func (p *Pipeline) classifySchema(ctx context.Context, text string, schema types.Schema) types.SchemaVerdict {
	result, err := p.resolver.Classify(ctx, text, schema)
	if err != nil {
		log.Printf("Classification error: %v", err)
		return types.SchemaVerdict{Error: err.Error()}
	}
	return types.SchemaVerdict{Result: &result}
}
