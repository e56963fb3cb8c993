package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/bluesky-social/indigo/xrpc"
	"github.com/gin-gonic/gin"

	"go-reviewpulse/classifier"
	"go-reviewpulse/types"
)

const feedMethod = "app.bsky.feed.getFeed"

// Bluesky's Discover feed, used as a source of live free-text to classify.
const defaultFeedAtURI = "at://did:plc:z72i7hdynmk6r22z27h6tvur/app.bsky.feed.generator/whats-hot"

// ClassifyLive fetches one post from a public Bluesky feed and runs it
// through the pipeline. Handy for demoing the classifiers against text
// nobody typed in.
func ClassifyLive(c *gin.Context, pipeline *classifier.Pipeline) {
	client := &xrpc.Client{
		Client:    &http.Client{Timeout: 10 * time.Second},
		Host:      "https://public.api.bsky.app",
		UserAgent: nil,
	}

	feedAtURI := c.DefaultQuery("feed", defaultFeedAtURI)

	cursor := c.Query("cursor")
	if cursor != "" {
		cursor = strings.ReplaceAll(cursor, " ", "+")
	}

	params := map[string]interface{}{
		"feed":   feedAtURI,
		"limit":  1, // just fetch 1 post for demonstration
		"cursor": cursor,
	}

	var out types.FeedResponse
	if err := client.Do(c.Request.Context(), xrpc.Query, "json", feedMethod, params, nil, &out); err != nil {
		log.Printf("Error fetching feed via xrpc: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if len(out.Feed) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No feed items returned"})
		return
	}

	first := out.Feed[0]
	if first.Post.Record.Text == "" {
		c.JSON(http.StatusOK, gin.H{"message": "First feed item has no text"})
		return
	}

	verdict, err := pipeline.ClassifySingle(c.Request.Context(), types.Review{
		ID:   first.Post.URI,
		Text: first.Post.Record.Text,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"author":  first.Post.Author.DisplayName,
		"cursor":  out.Cursor,
		"verdict": verdict,
	})
}
