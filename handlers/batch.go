package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-reviewpulse/classifier"
	"go-reviewpulse/types"
)

// ClassifyBatch accepts a CSV upload (required column "review", optional
// "id"), classifies every row, and returns the verdicts plus the dataset
// summary. Optional sentiment/emotion query params filter the returned
// verdicts by label; the summary always covers the full dataset.
func ClassifyBatch(c *gin.Context, pipeline *classifier.Pipeline) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing CSV upload"})
		return
	}
	defer file.Close()

	reviews, err := classifier.ParseReviews(file)
	if err != nil {
		log.Printf("Error parsing uploaded table: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	verdicts, summary := pipeline.ClassifyBatch(c.Request.Context(), reviews)

	filtered := verdicts
	if raw := c.Query("sentiment"); raw != "" {
		label, err := types.ParseLabel(types.SchemaSentiment, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		filtered = classifier.FilterVerdicts(filtered, types.SchemaSentiment, label)
	}
	if raw := c.Query("emotion"); raw != "" {
		label, err := types.ParseLabel(types.SchemaEmotion, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		filtered = classifier.FilterVerdicts(filtered, types.SchemaEmotion, label)
	}

	c.JSON(http.StatusOK, gin.H{
		"verdicts": filtered,
		"summary":  summary,
	})
}
