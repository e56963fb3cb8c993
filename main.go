package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/sashabaranov/go-openai"

	"go-reviewpulse/classifier"
	"go-reviewpulse/cronjobs"
	"go-reviewpulse/llm"
	"go-reviewpulse/mlmodel"
	"go-reviewpulse/nlp"
	"go-reviewpulse/routes"
	"go-reviewpulse/types"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Fatal("OPENAI_API_KEY is required for the fallback emotion model")
	}

	ctx := context.Background()

	// Fallback backends: these must always be available.
	langClient, err := nlp.NewClient(ctx)
	if err != nil {
		log.Fatalf("Failed to create Natural Language client: %v", err)
	}
	defer langClient.Close()

	openaiClient := openai.NewClient(apiKey)

	cfg := classifier.Config{
		SentimentFallback: nlp.NewSentimentBackend(langClient),
		EmotionFallback:   llm.NewEmotionBackend(openaiClient),
	}

	// Optional custom models: load failure falls back silently.
	customEndpoints := make(map[types.Schema]string)
	if url := os.Getenv("CUSTOM_SENTIMENT_MODEL_URL"); url != "" {
		customEndpoints[types.SchemaSentiment] = url
		cfg.SentimentCustom = func() (classifier.Backend, error) {
			return mlmodel.Load(url, types.SchemaSentiment)
		}
	}
	if url := os.Getenv("CUSTOM_EMOTION_MODEL_URL"); url != "" {
		customEndpoints[types.SchemaEmotion] = url
		cfg.EmotionCustom = func() (classifier.Backend, error) {
			return mlmodel.Load(url, types.SchemaEmotion)
		}
	}

	resolver, err := classifier.NewResolver(cfg)
	if err != nil {
		log.Fatalf("Failed to build model resolver: %v", err)
	}
	pipeline := classifier.NewPipeline(resolver)

	// Initialize cron jobs
	cronjobs.InitCronJobs(customEndpoints)

	r := routes.SetupRouter(pipeline)
	if err := r.Run(":8080"); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
