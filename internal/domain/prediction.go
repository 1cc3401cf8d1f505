package domain

import (
	"context"
	"encoding/json"
	"errors"
)

// Sentinel errors for the prediction proxy.
var (
	ErrUpstream    = errors.New("upstream request failed")
	ErrNoJSONFound = errors.New("no JSON object found in model response")
)

// PredictionClient forwards a prompt to a generative-language endpoint
// and returns the first JSON object recovered from its text response.
type PredictionClient interface {
	Predict(ctx context.Context, promptText string) (json.RawMessage, error)
}
