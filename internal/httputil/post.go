// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the JSON POST primitive used by the Go2UBL client.
package httputil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// MaxBodySize caps how much of a response body is read into memory.
var MaxBodySize int64 = 32 << 20

// Doer is the subset of *http.Client the client needs.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Response is the status and body of a completed request.
type Response struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the status code is in the 2xx range.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// PostJSON encodes payload as JSON and POSTs it to url with the given
// headers. Header keys are written verbatim, without canonicalization, so a
// remote service that matches lowercase names sees them as given.
//
// A single attempt is made. The returned error covers encoding and transport
// failures only; a non-2xx reply is returned as a Response for the caller to
// classify.
func PostJSON(ctx context.Context, client Doer, url string, headers map[string]string, payload any) (*Response, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header[k] = []string{v}
	}

	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}
