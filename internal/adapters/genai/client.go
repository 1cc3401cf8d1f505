// Package genai implements the prediction proxy: it forwards a prompt
// to the generative-language API and extracts a JSON object from the
// model's free-text answer.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"eventease/internal/domain"
)

type client struct {
	endpoint string
	model    string
	apiKey   string
	http     *http.Client
}

// NewClient returns a PredictionClient for the generateContent API.
// The API key stays server-side; it is never echoed to callers.
func NewClient(endpoint, model, apiKey string, httpClient *http.Client) domain.PredictionClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &client{
		endpoint: endpoint,
		model:    model,
		apiKey:   apiKey,
		http:     httpClient,
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (c *client) Predict(ctx context.Context, promptText string) (json.RawMessage, error) {
	payload := generateRequest{
		Contents: []content{{Parts: []part{{Text: promptText}}}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.endpoint, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: generative-language api returned status %d", domain.ErrUpstream, resp.StatusCode)
	}

	var data generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode model response: %w", err)
	}
	if len(data.Candidates) == 0 || len(data.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: model returned no candidates", domain.ErrUpstream)
	}

	return ExtractJSONObject(data.Candidates[0].Content.Parts[0].Text)
}
