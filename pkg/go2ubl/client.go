// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package go2ubl is a client for the Go2UBL document conversion service.
// It manages the companies and sender whitelists registered with Go2UBL,
// uploads purchase documents for conversion to UBL, and queries their
// processing status.
//
// Every operation is one authenticated JSON POST. Responses are returned as
// raw JSON because their shape is defined by the service; Decode gives a
// typed view when the caller knows it.
package go2ubl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/go2ubl/internal/httputil"
	"github.com/pdiddy/go2ubl/pkg/types"
)

// HTTPDoer sends an HTTP request. *http.Client satisfies it.
type HTTPDoer = httputil.Doer

// Client talks to Go2UBL. The zero value is usable once Initialize has been
// called; a nil HTTPClient means http.DefaultClient and a nil Logger
// discards log output.
type Client struct {
	HTTPClient HTTPDoer
	Logger     logrus.FieldLogger
	// UserAgent is sent when non-empty.
	UserAgent string

	cfg atomic.Pointer[types.ClientConfig]
}

// New returns a Client initialized with cfg.
func New(cfg types.ClientConfig) *Client {
	c := &Client{}
	c.Initialize(cfg)
	return c
}

// Initialize sets the base URLs and credentials used by all later
// operations. Empty base URLs fall back to DefaultCompanyAPI and
// DefaultDocumentAPI. It may be called again at any time; the last call
// wins and in-flight operations keep the configuration they started with.
func (c *Client) Initialize(cfg types.ClientConfig) {
	if cfg.CompanyAPI == "" {
		cfg.CompanyAPI = types.DefaultCompanyAPI
	}
	if cfg.DocumentAPI == "" {
		cfg.DocumentAPI = types.DefaultDocumentAPI
	}
	cfg.CompanyAPI = strings.TrimRight(cfg.CompanyAPI, "/")
	cfg.DocumentAPI = strings.TrimRight(cfg.DocumentAPI, "/")
	c.cfg.Store(&cfg)
}

// Config returns the current configuration and whether Initialize has been
// called.
func (c *Client) Config() (types.ClientConfig, bool) {
	cfg := c.cfg.Load()
	if cfg == nil {
		return types.ClientConfig{}, false
	}
	return *cfg, true
}

type api int

const (
	companyAPI api = iota
	documentAPI
)

var discardLogger = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

func (c *Client) logger() logrus.FieldLogger {
	if c.Logger == nil {
		return discardLogger
	}
	return c.Logger
}

// post sends body to path under the selected base URL and returns the
// response body on 2xx.
func (c *Client) post(ctx context.Context, target api, path string, body any) (json.RawMessage, error) {
	cfg := c.cfg.Load()
	if cfg == nil {
		return nil, fmt.Errorf("%w: Initialize has not been called", ErrConfigurationMissing)
	}
	if !cfg.HasCredentials() {
		return nil, fmt.Errorf("%w: identifier, code and token are required", ErrConfigurationMissing)
	}

	base := cfg.CompanyAPI
	if target == documentAPI {
		base = cfg.DocumentAPI
	}
	url := base + "/" + path

	headers := map[string]string{
		"identifier": cfg.Identifier,
		"code":       cfg.Code,
		"token":      cfg.Token,
		"Accept":     "application/json",
	}
	if c.UserAgent != "" {
		headers["User-Agent"] = c.UserAgent
	}

	log := c.logger().WithField("url", url)
	start := time.Now()

	resp, err := httputil.PostJSON(ctx, c.HTTPClient, url, headers, body)
	if err != nil {
		log.WithError(err).Warn("go2ubl request failed")
		return nil, &RequestError{URL: url, Err: err}
	}

	log = log.WithFields(logrus.Fields{
		"status":   resp.StatusCode,
		"duration": time.Since(start),
	})

	if !resp.OK() {
		log.Warn("go2ubl request rejected")
		return nil, &RequestError{URL: url, StatusCode: resp.StatusCode, Body: excerpt(resp.Body)}
	}

	log.Debug("go2ubl request completed")

	if len(bytes.TrimSpace(resp.Body)) == 0 {
		return nil, nil
	}
	if !json.Valid(resp.Body) {
		return nil, &RequestError{URL: url, StatusCode: resp.StatusCode, Body: excerpt(resp.Body), Err: errInvalidJSON}
	}
	return json.RawMessage(resp.Body), nil
}

// Decode unmarshals a raw response into T.
func Decode[T any](raw json.RawMessage) (T, error) {
	var v T
	if len(raw) == 0 {
		return v, nil
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, fmt.Errorf("decoding go2ubl response: %w", err)
	}
	return v, nil
}
