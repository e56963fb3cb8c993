package mlmodel

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go-reviewpulse/types"
)

// Client calls a user-deployed classification model over JSON/HTTP. One
// client serves exactly one schema.
type Client struct {
	baseURL string
	schema  types.Schema
	http    *http.Client
}

type scoreRequest struct {
	Text string `json:"text"`
}

type scoreResponse struct {
	Scores map[string]float64 `json:"scores"`
}

type labelsResponse struct {
	Labels []string `json:"labels"`
}

// Load probes the model service and verifies it advertises every label of
// the schema's enumeration. Any failure here means the model is unavailable
// and the caller should fall back.
func Load(baseURL string, schema types.Schema) (*Client, error) {
	client := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		schema:  schema,
		http:    &http.Client{Timeout: 10 * time.Second},
	}

	resp, err := client.http.Get(client.baseURL + "/labels")
	if err != nil {
		return nil, fmt.Errorf("probing model labels: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("model returned status: " + resp.Status)
	}

	var out labelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding model labels: %w", err)
	}

	advertised := make(map[types.Label]bool, len(out.Labels))
	for _, raw := range out.Labels {
		label, err := types.ParseLabel(schema, raw)
		if err != nil {
			return nil, err
		}
		advertised[label] = true
	}
	for _, label := range schema.Labels() {
		if !advertised[label] {
			return nil, fmt.Errorf("model does not advertise %s label %q", schema, label)
		}
	}

	return client, nil
}

func (c *Client) Name() string {
	return "custom-" + string(c.schema)
}

// Scores sends the text to the model and returns its probability per label.
func (c *Client) Scores(ctx context.Context, text string, schema types.Schema) ([]types.LabelScore, error) {
	if schema != c.schema {
		return nil, fmt.Errorf("model serves %s, not %s", c.schema, schema)
	}

	payloadBytes, err := json.Marshal(scoreRequest{Text: text})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/scores", bytes.NewBuffer(payloadBytes))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("model returned status: " + resp.Status)
	}

	var out scoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}

	scores := make([]types.LabelScore, 0, len(out.Scores))
	for raw, score := range out.Scores {
		label, err := types.ParseLabel(c.schema, raw)
		if err != nil {
			return nil, err
		}
		scores = append(scores, types.LabelScore{Label: label, Score: score})
	}
	return scores, nil
}
