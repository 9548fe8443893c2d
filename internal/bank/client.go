package bank

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/skillbank-derive/internal/types"
	"golang.org/x/sync/singleflight"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "SkillBankDerive/1.0"

// maxResponseBytes caps how much of a bank payload is read.
const maxResponseBytes = 10 << 20

// ClientOptions configures the HTTP repository client.
type ClientOptions struct {
	Timeout   time.Duration
	UserAgent string
	Headers   map[string]string
}

// DefaultClientOptions returns sensible defaults for the client.
func DefaultClientOptions() *ClientOptions {
	return &ClientOptions{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// Client fetches skill banks from the external Skill Bank service over
// HTTP. Concurrent fetches for the same user collapse into one request;
// callers may share the decoded bank because every session treats it as
// immutable.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	headers    map[string]string
	group      singleflight.Group
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string, opts *ClientOptions) (*Client, error) {
	if opts == nil {
		opts = DefaultClientOptions()
	}

	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &FetchError{
			Message: fmt.Sprintf("invalid base URL %q", baseURL),
			Cause:   err,
		}
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL:    parsed.String(),
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  opts.UserAgent,
		headers:    opts.Headers,
	}, nil
}

// FetchSkillBank retrieves, normalizes, and validates the bank for userID.
func (c *Client) FetchSkillBank(ctx context.Context, userID uuid.UUID) (*types.SkillBank, error) {
	result, err, _ := c.group.Do(userID.String(), func() (any, error) {
		return c.fetch(ctx, userID)
	})
	if err != nil {
		return nil, err
	}
	return result.(*types.SkillBank), nil
}

func (c *Client) fetch(ctx context.Context, userID uuid.UUID) (*types.SkillBank, error) {
	endpoint := fmt.Sprintf("%s/users/%s/skill-bank", c.baseURL, userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &FetchError{
			UserID:  userID.String(),
			Message: "failed to create request",
			Cause:   err,
		}
	}

	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{
			UserID:  userID.String(),
			Message: "request failed",
			Cause:   err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{
			UserID:  userID.String(),
			Message: fmt.Sprintf("unexpected status %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &FetchError{
			UserID:  userID.String(),
			Message: "failed to read response body",
			Cause:   err,
		}
	}

	var bank types.SkillBank
	if err := json.Unmarshal(body, &bank); err != nil {
		return nil, &FetchError{
			UserID:  userID.String(),
			Message: "failed to decode skill bank",
			Cause:   err,
		}
	}

	Normalize(&bank)
	if err := Validate(&bank); err != nil {
		return nil, err
	}

	return &bank, nil
}
