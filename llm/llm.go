package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"go-reviewpulse/types"
)

const maxReviewLength = 4000 // rough character limit for the prompt

// EmotionBackend scores the emotion schema with an OpenAI chat completion
// in JSON mode.
type EmotionBackend struct {
	client *openai.Client
	model  string
}

func NewEmotionBackend(client *openai.Client) *EmotionBackend {
	return &EmotionBackend{client: client, model: openai.GPT4oMini}
}

func (b *EmotionBackend) Name() string {
	return "openai-" + b.model
}

func (b *EmotionBackend) Scores(ctx context.Context, text string, schema types.Schema) ([]types.LabelScore, error) {
	if schema != types.SchemaEmotion {
		return nil, fmt.Errorf("backend serves %s, not %s", types.SchemaEmotion, schema)
	}

	if len(text) > maxReviewLength {
		text = text[:maxReviewLength]
	}

	resp, err := b.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: b.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You are an assistant specializing in detecting the emotions expressed in product reviews.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: buildPrompt(text),
				},
			},
			MaxTokens:   150,
			Temperature: 0.1, // keep results stable for identical input
			ResponseFormat: &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONObject,
			},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("openai chat completion error: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("openai returned empty response or choices")
	}

	return ParseScores(resp.Choices[0].Message.Content)
}

func buildPrompt(text string) string {
	names := make([]string, 0, len(types.SchemaEmotion.Labels()))
	for _, label := range types.SchemaEmotion.Labels() {
		names = append(names, strings.ToLower(string(label)))
	}
	return fmt.Sprintf("Score how strongly each emotion is expressed in the following review. Respond with a JSON object mapping every emotion (%s) to a score between 0 and 1:\n\n---\n%s\n---", strings.Join(names, ", "), text)
}

// ParseScores decodes the model's JSON object into a score distribution
// over the emotion enumeration.
func ParseScores(content string) ([]types.LabelScore, error) {
	var raw map[string]float64
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, fmt.Errorf("parsing emotion scores: %w", err)
	}

	scores := make([]types.LabelScore, 0, len(raw))
	for name, score := range raw {
		label, err := types.ParseLabel(types.SchemaEmotion, name)
		if err != nil {
			return nil, err
		}
		scores = append(scores, types.LabelScore{Label: label, Score: score})
	}
	if len(scores) == 0 {
		return nil, fmt.Errorf("openai returned no emotion scores")
	}
	return scores, nil
}
