// Package unipile is the gateway to the Unipile API. Every tool call funnels
// through Client.Request, which issues exactly one HTTP request and folds the
// response into an Outcome.
package unipile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/theapemachine/mcp-server-unipile/pkg/telemetry"
)

const (
	// AccountIDKey is the query and body key carrying the scoping identifier.
	AccountIDKey = "account_id"

	// DefaultTimeout bounds a single call, connection and body read included.
	DefaultTimeout = 60 * time.Second

	defaultContentType = "application/octet-stream"
)

var (
	ErrConfig    = errors.New("unipile: invalid configuration")
	ErrTransport = errors.New("unipile: transport failure")
)

// Config is the connection configuration, fixed for the life of the process.
type Config struct {
	BaseURL           string
	APIKey            string
	LinkedInAccountID string
	EmailAccountID    string
	Timeout           time.Duration
}

/*
Call describes one request. Query and Body are never modified; the client
works on copies when it has to add the scoping identifier.
*/
type Call struct {
	Method    string
	Path      string
	Query     map[string]any
	Body      map[string]any
	AccountID string
	Binary    bool
}

// Client talks to the Unipile API. It is safe for concurrent use.
type Client struct {
	config Config
	http   *http.Client
	logger *log.Logger
}

// NewClient validates cfg and returns a ready client.
func NewClient(cfg Config) (*Client, error) {
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")

	var missing []string

	if cfg.BaseURL == "" {
		missing = append(missing, "base URL")
	}

	if cfg.APIKey == "" {
		missing = append(missing, "API key")
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", ErrConfig, strings.Join(missing, " and "))
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		config: cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: log.WithPrefix("unipile"),
	}, nil
}

// Config returns a copy of the connection configuration.
func (client *Client) Config() Config {
	return client.config
}

/*
Request issues call and normalizes the response. Backend statuses >= 400 come
back as Failure without any decoding attempt. A returned error always wraps
ErrTransport and means no response was obtained.
*/
func (client *Client) Request(ctx context.Context, call Call) (Outcome, error) {
	var (
		req  *http.Request
		resp *http.Response
		body []byte
		err  error
	)

	query := withAccountID(call.Query, call.AccountID)

	var payload io.Reader

	if call.Body != nil {
		encoded, err := json.Marshal(withAccountID(call.Body, call.AccountID))
		if err != nil {
			return nil, fmt.Errorf("encode request body for %s %s: %w", call.Method, call.Path, err)
		}

		payload = bytes.NewReader(encoded)
	}

	endpoint := client.config.BaseURL + call.Path
	if values := encodeQuery(query); len(values) > 0 {
		endpoint += "?" + values.Encode()
	}

	if req, err = http.NewRequestWithContext(ctx, call.Method, endpoint, payload); err != nil {
		return nil, fmt.Errorf("build request %s %s: %w", call.Method, call.Path, err)
	}

	req.Header.Set("X-API-KEY", client.config.APIKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	requestID := uuid.NewString()
	started := time.Now()

	client.logger.Info("request", "id", requestID, "method", call.Method, "url", endpoint)

	if resp, err = client.http.Do(req); err != nil {
		telemetry.ObserveGateway(call.Method, 0, time.Since(started))
		client.logger.Error("request failed", "id", requestID, "method", call.Method, "url", endpoint, "error", err)
		return nil, fmt.Errorf("%w: %s %s: %w", ErrTransport, call.Method, call.Path, err)
	}

	defer resp.Body.Close()

	if body, err = io.ReadAll(resp.Body); err != nil {
		telemetry.ObserveGateway(call.Method, 0, time.Since(started))
		return nil, fmt.Errorf("%w: read response of %s %s: %w", ErrTransport, call.Method, call.Path, err)
	}

	telemetry.ObserveGateway(call.Method, resp.StatusCode, time.Since(started))
	client.logger.Info("response", "id", requestID, "status", resp.StatusCode, "duration", time.Since(started))

	return client.normalize(resp, body, call.Binary, requestID), nil
}

func (client *Client) normalize(resp *http.Response, body []byte, binary bool, requestID string) Outcome {
	if resp.StatusCode >= http.StatusBadRequest {
		client.logger.Error("api error", "id", requestID, "status", resp.StatusCode, "body", string(body))
		return Failure{Error: string(body), StatusCode: resp.StatusCode}
	}

	if binary {
		contentType := resp.Header.Get("Content-Type")
		if contentType == "" {
			contentType = defaultContentType
		}

		return newBinary(contentType, body)
	}

	if !json.Valid(body) {
		return Raw{RawResponse: string(body)}
	}

	return Structured{Value: json.RawMessage(body)}
}

// withAccountID returns m with the scoping identifier added when it is set and m lacks one.
func withAccountID(m map[string]any, accountID string) map[string]any {
	if accountID == "" {
		return m
	}

	if _, ok := m[AccountIDKey]; ok {
		return m
	}

	out := make(map[string]any, len(m)+1)
	for k, v := range m {
		out[k] = v
	}

	out[AccountIDKey] = accountID

	return out
}

// encodeQuery flattens query into url.Values; slices become repeated keys.
func encodeQuery(query map[string]any) url.Values {
	values := url.Values{}

	for key, raw := range query {
		switch v := raw.(type) {
		case nil:
		case []string:
			for _, item := range v {
				values.Add(key, item)
			}
		case []any:
			for _, item := range v {
				values.Add(key, fmt.Sprint(item))
			}
		case []int:
			for _, item := range v {
				values.Add(key, fmt.Sprint(item))
			}
		case bool:
			if v {
				values.Add(key, "true")
			} else {
				values.Add(key, "false")
			}
		default:
			values.Add(key, fmt.Sprint(v))
		}
	}

	return values
}
