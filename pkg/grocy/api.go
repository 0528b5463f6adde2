package grocy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// do performs one request against the API. The endpoint is relative to the
// computed base URL (no leading slash). Query filters become repeated
// query[] parameters, the Grocy convention for server-side filtering.
// A nil dest discards the response body; an empty body decodes to nothing.
// Any status >= 400 returns an *Error built from the body.
func (c *Client) do(ctx context.Context, method, endpoint string, filters []string, body, dest any) error {
	reqURL := c.baseURL + endpoint
	if len(filters) > 0 {
		values := url.Values{}
		for _, f := range filters {
			values.Add("query[]", f)
		}
		reqURL += "?" + values.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
		c.logf("--> %s /%s %s", method, endpoint, encoded)
	} else {
		c.logf("--> %s /%s", method, endpoint)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" && c.apiKey != DemoModeKey {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	c.logf("<-- %d for /%s", resp.StatusCode, endpoint)
	c.logf("    %s", raw)

	if resp.StatusCode >= 400 {
		return newError(resp.StatusCode, raw)
	}
	if dest == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, endpoint string, filters []string, dest any) error {
	return c.do(ctx, http.MethodGet, endpoint, filters, nil, dest)
}

func (c *Client) post(ctx context.Context, endpoint string, body, dest any) error {
	return c.do(ctx, http.MethodPost, endpoint, nil, body, dest)
}

func (c *Client) put(ctx context.Context, endpoint string, body, dest any) error {
	return c.do(ctx, http.MethodPut, endpoint, nil, body, dest)
}

func (c *Client) delete(ctx context.Context, endpoint string) error {
	return c.do(ctx, http.MethodDelete, endpoint, nil, nil, nil)
}

// getText fetches a non-JSON endpoint (e.g. the iCal calendar export) and
// returns the body verbatim.
func (c *Client) getText(ctx context.Context, endpoint string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	if c.apiKey != "" && c.apiKey != DemoModeKey {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}
	c.logf("--> GET /%s", endpoint)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	c.logf("<-- %d for /%s", resp.StatusCode, endpoint)

	if resp.StatusCode >= 400 {
		return "", newError(resp.StatusCode, raw)
	}
	return string(raw), nil
}

// putRaw uploads an opaque payload (e.g. a file body) with an
// octet-stream content type.
func (c *Client) putRaw(ctx context.Context, endpoint string, data []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+endpoint, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	if c.apiKey != "" && c.apiKey != DemoModeKey {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}
	c.logf("--> PUT /%s (%d bytes)", endpoint, len(data))

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	c.logf("<-- %d for /%s", resp.StatusCode, endpoint)

	if resp.StatusCode >= 400 {
		return newError(resp.StatusCode, raw)
	}
	return nil
}
