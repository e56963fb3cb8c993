package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-reviewpulse/classifier"
	"go-reviewpulse/types"
)

// A small canned dataset so the UI has something to render without an
// upload.
var demoReviews = []types.Review{
	{Text: "it was a good movie and i liked it"},
	{Text: "The delivery took three weeks and the box arrived crushed."},
	{Text: "Honestly not sure how I feel about this one, great screen but terrible battery."},
	{Text: "The manual explains the setup steps."},
	{Text: "I did not expect the sequel to be this good!"},
}

// GetDemoData classifies the built-in demo reviews and returns the same
// payload shape as the batch endpoint.
func GetDemoData(c *gin.Context, pipeline *classifier.Pipeline) {
	verdicts, summary := pipeline.ClassifyBatch(c.Request.Context(), demoReviews)
	c.JSON(http.StatusOK, gin.H{
		"verdicts": verdicts,
		"summary":  summary,
	})
}
