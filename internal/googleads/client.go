package googleads

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"adpilot/internal/logging"
)

const (
	defaultBaseURL = "https://googleads.googleapis.com/v17"
	defaultTimeout = 60 * time.Second
)

// ClientConfig carries everything needed to reach the Google Ads API.
// There is no ambient global client; every component receives one of these
// through its constructor.
type ClientConfig struct {
	DeveloperToken  string
	AccessToken     string
	LoginCustomerID string // manager account, optional
	BaseURL         string
	Timeout         time.Duration
}

// MutateService executes one batched mutate call for a resource kind.
// *Client is the production implementation; tests substitute their own.
type MutateService interface {
	Mutate(ctx context.Context, customerID string, kind ResourceKind, ops []Operation) (*MutateResponse, error)
}

// Client is the REST transport to the Google Ads API. It holds no per-call
// state and is safe to share across goroutines.
type Client struct {
	developerToken  string
	accessToken     string
	loginCustomerID string
	baseURL         string
	httpClient      *http.Client
}

// NewClient builds a transport from config, filling defaults for anything
// unset.
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.DeveloperToken == "" {
		return nil, fmt.Errorf("googleads: developer token is required")
	}
	if cfg.AccessToken == "" {
		return nil, fmt.Errorf("googleads: access token is required")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &Client{
		developerToken:  cfg.DeveloperToken,
		accessToken:     cfg.AccessToken,
		loginCustomerID: cfg.LoginCustomerID,
		baseURL:         strings.TrimSuffix(baseURL, "/"),
		httpClient:      &http.Client{Timeout: timeout},
	}, nil
}

type mutateRequest struct {
	Operations []Operation `json:"operations"`
}

// wireError is the REST error envelope.
type wireError struct {
	Error struct {
		Code    int               `json:"code"`
		Message string            `json:"message"`
		Status  string            `json:"status"`
		Details []json.RawMessage `json:"details"`
	} `json:"error"`
}

// failureDetail matches the GoogleAdsFailure entry inside error details.
type failureDetail struct {
	Type string `json:"@type"`
	Failure
}

// Mutate posts the operations to customers/{cid}/{service}:mutate. All
// operations must target the same resource kind; the call is atomic, so a
// non-nil error means nothing was applied.
func (c *Client) Mutate(ctx context.Context, customerID string, kind ResourceKind, ops []Operation) (*MutateResponse, error) {
	url := fmt.Sprintf("%s/customers/%s/%s:mutate", c.baseURL, customerID, kind.mutatePath())

	body, err := json.Marshal(mutateRequest{Operations: ops})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal mutate request: %w", err)
	}

	logging.APIDebug("[GoogleAds] mutate %s: customer=%s ops=%d", kind.mutatePath(), customerID, len(ops))

	// Retry only rate limiting; mutate failures are not retried.
	maxRetries := 3
	var lastErr error

	for i := 0; i <= maxRetries; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(1<<uint(i-1)) * time.Second):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
		req.Header.Set("developer-token", c.developerToken)
		if c.loginCustomerID != "" {
			req.Header.Set("login-customer-id", c.loginCustomerID)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("request failed: %w", err)
			continue
		}

		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("failed to read response: %w", err)
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			lastErr = fmt.Errorf("rate limit exceeded (429)")
			continue
		}

		if resp.StatusCode != http.StatusOK {
			apiErr := parseAPIError(resp.StatusCode, respBody)
			apiErr.RequestID = resp.Header.Get("request-id")
			logging.APIError("[GoogleAds] mutate %s failed: status=%d code=%s request_id=%s",
				kind.mutatePath(), resp.StatusCode, apiErr.Status, apiErr.RequestID)
			return nil, apiErr
		}

		var out MutateResponse
		if err := json.Unmarshal(respBody, &out); err != nil {
			return nil, fmt.Errorf("failed to parse mutate response: %w", err)
		}
		logging.APIDebug("[GoogleAds] mutate %s ok: results=%d", kind.mutatePath(), len(out.Results))
		return &out, nil
	}

	return nil, fmt.Errorf("mutate %s failed after %d retries: %w", kind.mutatePath(), maxRetries, lastErr)
}

// parseAPIError decodes the REST error envelope into an APIError, pulling
// the GoogleAdsFailure detail out when one is present. A body that does not
// parse still yields a usable error.
func parseAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode, Status: http.StatusText(statusCode)}

	var we wireError
	if err := json.Unmarshal(body, &we); err != nil {
		apiErr.Message = strings.TrimSpace(string(body))
		return apiErr
	}
	if we.Error.Status != "" {
		apiErr.Status = we.Error.Status
	}
	apiErr.Message = we.Error.Message

	for _, raw := range we.Error.Details {
		var fd failureDetail
		if err := json.Unmarshal(raw, &fd); err != nil {
			continue
		}
		if strings.HasSuffix(fd.Type, "GoogleAdsFailure") {
			f := fd.Failure
			apiErr.Failure = &f
			break
		}
	}
	return apiErr
}
