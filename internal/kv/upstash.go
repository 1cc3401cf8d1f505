package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"eventease/internal/domain"
)

type upstashStore struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewUpstashStore returns a Store backed by the Upstash Redis REST API.
// Values are stored as Redis strings; GET of an unset key yields a null
// result, which maps to ErrNotFound.
func NewUpstashStore(baseURL, token string, client *http.Client) Store {
	if client == nil {
		client = http.DefaultClient
	}
	return &upstashStore{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
		client:  client,
	}
}

// upstashResult is the envelope every Upstash REST response uses. Result is
// left as raw JSON because GET returns a string or null while SET
// returns "OK".
type upstashResult struct {
	Result json.RawMessage `json:"result"`
	Error  string          `json:"error"`
}

func (s *upstashStore) Get(ctx context.Context, key string) ([]byte, error) {
	reqURL := fmt.Sprintf("%s/get/%s", s.baseURL, url.PathEscape(key))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.token)

	res, err := s.do(req)
	if err != nil {
		return nil, err
	}
	if string(res.Result) == "null" || len(res.Result) == 0 {
		return nil, ErrNotFound
	}
	var value string
	if err := json.Unmarshal(res.Result, &value); err != nil {
		return nil, fmt.Errorf("unexpected upstash result shape: %w", err)
	}
	return []byte(value), nil
}

func (s *upstashStore) Set(ctx context.Context, key string, value []byte) error {
	reqURL := fmt.Sprintf("%s/set/%s", s.baseURL, url.PathEscape(key))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, strings.NewReader(string(value)))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.token)

	_, err = s.do(req)
	return err
}

func (s *upstashStore) do(req *http.Request) (*upstashResult, error) {
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: upstash returned status %d", domain.ErrUpstream, resp.StatusCode)
	}
	var res upstashResult
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("failed to decode upstash response: %w", err)
	}
	if res.Error != "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrUpstream, res.Error)
	}
	return &res, nil
}
