package ideas

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/solmint/solmint/internal/logger"
	solerrors "github.com/solmint/solmint/pkg/errors"
)

// DefaultEndpoint is the idea service location used when none is configured.
const DefaultEndpoint = "http://127.0.0.1:8080/api/generate-ideas"

// User-facing messages.
const (
	EmptyPromptMessage = "Please enter a concept for your token."
	FallbackMessage    = "An error occurred while brainstorming."
)

const serviceName = "idea service"

// ErrEmptyPrompt is returned for a blank prompt. No request is made.
var ErrEmptyPrompt = solerrors.NewValidationError("prompt", EmptyPromptMessage, nil)

// Suggestion is a generated name, symbol and description triple.
type Suggestion struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
}

type generateRequest struct {
	Prompt string `json:"prompt"`
}

type errorBody struct {
	Error string `json:"error"`
}

// Service generates suggestions for a prompt.
type Service interface {
	Generate(ctx context.Context, prompt string) (Suggestion, error)
}

// Client calls the remote idea service over HTTP. It never retries and sets
// no timeout of its own; the caller's context bounds the request.
type Client struct {
	endpoint string
	client   *http.Client
	log      *logger.Logger
	newID    func() string
}

// ClientOption configures Client.
type ClientOption func(*Client)

// WithLogger attaches a logger for request tracing.
func WithLogger(log *logger.Logger) ClientOption {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient creates an idea service client for endpoint.
func NewClient(endpoint string, opts ...ClientOption) *Client {
	if strings.TrimSpace(endpoint) == "" {
		endpoint = DefaultEndpoint
	}
	c := &Client{
		endpoint: endpoint,
		client:   &http.Client{},
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the configured service URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Generate implements Service.
func (c *Client) Generate(ctx context.Context, prompt string) (Suggestion, error) {
	if strings.TrimSpace(prompt) == "" {
		return Suggestion{}, ErrEmptyPrompt
	}

	requestID := c.newID()
	log := c.log.WithFields(map[string]any{"request_id": requestID, "endpoint": c.endpoint})

	body, err := json.Marshal(generateRequest{Prompt: prompt})
	if err != nil {
		return Suggestion{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return Suggestion{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	log.Debug("requesting ideas")
	resp, err := c.client.Do(req)
	if err != nil {
		log.Error(err, "idea request failed")
		return Suggestion{}, solerrors.NewRemoteError(serviceName, 0, FallbackMessage, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error(err, "read idea response")
		return Suggestion{}, solerrors.NewRemoteError(serviceName, resp.StatusCode, FallbackMessage, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := extractErrorMessage(respBody)
		err := solerrors.NewRemoteError(serviceName, resp.StatusCode, msg, nil)
		log.Error(err, "idea service rejected request")
		return Suggestion{}, err
	}

	var s Suggestion
	if err := json.Unmarshal(respBody, &s); err != nil {
		log.Error(err, "decode idea response")
		return Suggestion{}, solerrors.NewRemoteError(serviceName, resp.StatusCode, FallbackMessage, err)
	}

	log.WithFields(map[string]any{"name": s.Name, "symbol": s.Symbol}).Info("ideas generated")
	return s, nil
}

// extractErrorMessage prefers the body's "error" field and falls back to the
// generic message.
func extractErrorMessage(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return FallbackMessage
	}
	if strings.TrimSpace(eb.Error) == "" {
		return FallbackMessage
	}
	return eb.Error
}

// Message turns any Generate error into the text shown next to the prompt.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var validationErr *solerrors.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}
	var remoteErr *solerrors.RemoteError
	if errors.As(err, &remoteErr) && remoteErr.Message != "" {
		return remoteErr.Message
	}
	return FallbackMessage
}

var _ Service = (*Client)(nil)
