package relayer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	SubmitPath = "/relayer/v1.0/submit"

	defaultTimeout = 10 * time.Second
)

// SubmitResult is the relayer's acknowledgment. Opaque to the engine beyond
// confirming acceptance.
type SubmitResult struct {
	OrderHash string `json:"orderHash,omitempty"`
	Status    string `json:"status,omitempty"`
	Message   string `json:"message,omitempty"`
}

type errorResponse struct {
	Code   int    `json:"code"`
	Reason string `json:"reason"`
}

type Client struct {
	baseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Submit serializes the envelope and issues one request. Errors are
// classified into TransientError and RejectedError so the caller knows
// whether resubmitting the same quoteId is safe.
func (c *Client) Submit(ctx context.Context, s *Submission) (*SubmitResult, error) {
	body, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode submission: %w", err)
	}

	url := c.baseURL + SubmitPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, &TransientError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransientError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, &TransientError{Err: fmt.Errorf("unexpected status code: %d, %s", resp.StatusCode, url)}
	case resp.StatusCode >= http.StatusBadRequest:
		return nil, &RejectedError{
			Status: resp.StatusCode,
			Reason: rejectionReason(respBody),
		}
	}

	result := new(SubmitResult)
	if len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
		}
	}

	return result, nil
}

func rejectionReason(body []byte) string {
	e := new(errorResponse)
	if err := json.Unmarshal(body, e); err == nil && e.Reason != "" {
		return e.Reason
	}

	return string(body)
}
