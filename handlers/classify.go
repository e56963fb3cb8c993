package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-reviewpulse/classifier"
	"go-reviewpulse/types"
)

// ClassifyReview classifies one review body against both schemas.
func ClassifyReview(c *gin.Context, pipeline *classifier.Pipeline) {
	var request struct {
		Input string `json:"input"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	verdict, err := pipeline.ClassifySingle(c.Request.Context(), types.Review{Text: request.Input})
	if err != nil {
		if errors.Is(err, types.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter some text"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, verdict)
}
