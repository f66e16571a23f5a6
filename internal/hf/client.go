// Package hf provides a client for the Hugging Face hosted inference API,
// used here for named-entity recognition over article titles.
package hf

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	// DefaultBaseURL is the hosted inference API base URL.
	DefaultBaseURL = "https://api-inference.huggingface.co"
	// DefaultModel is the biomedical NER model the pipeline queries.
	DefaultModel = "d4data/biobert-cased-finetuned-ner"
	// DefaultTimeout bounds a single inference call. There are no retries;
	// a slow model load surfaces as an error the pipeline degrades on.
	DefaultTimeout = 30 * time.Second
)

// Entity is one recognized-entity token in the model's output order.
type Entity struct {
	Word  string  `json:"word"`
	Group string  `json:"entity_group,omitempty"`
	Score float64 `json:"score,omitempty"`
}

// Client calls a token-classification model on the inference API.
type Client struct {
	BaseURL    string
	Model      string
	HTTPClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the inference API base URL.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.BaseURL = u }
}

// WithModel sets the model identifier.
func WithModel(model string) Option {
	return func(c *Client) { c.Model = model }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.HTTPClient = hc }
}

// NewClient creates an inference client with the given options.
func NewClient(opts ...Option) *Client {
	c := &Client{
		BaseURL: DefaultBaseURL,
		Model:   DefaultModel,
		HTTPClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type inferenceRequest struct {
	Inputs string `json:"inputs"`
}

// Recognize runs NER over text and returns the recognized entities in model
// order. Any transport failure, non-200 status, or undecodable body is
// returned as an error; the caller decides whether that is fatal.
func (c *Client) Recognize(ctx context.Context, text, token string) ([]Entity, error) {
	if token == "" {
		return nil, fmt.Errorf("inference token is required")
	}

	reqBody, err := json.Marshal(inferenceRequest{Inputs: text})
	if err != nil {
		return nil, fmt.Errorf("encoding inference request: %w", err)
	}

	endpoint, err := url.JoinPath(c.BaseURL, "models", c.Model)
	if err != nil {
		return nil, fmt.Errorf("building inference URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("creating inference request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing inference request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("inference API returned HTTP %d for model %s", resp.StatusCode, c.Model)
	}

	var entities []Entity
	if err := json.NewDecoder(resp.Body).Decode(&entities); err != nil {
		return nil, fmt.Errorf("parsing inference response: %w", err)
	}

	return entities, nil
}
