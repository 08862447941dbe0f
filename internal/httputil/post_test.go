// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostJSON_SendsBodyAndHeaders(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "abc", r.Header.Get("identifier"))

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"KvKNumber": "123"}, body)

		w.WriteHeader(http.StatusOK)
		io.WriteString(w, `{"Success":true}`)
	}))
	defer ts.Close()

	resp, err := PostJSON(context.Background(), ts.Client(), ts.URL, map[string]string{"identifier": "abc"}, map[string]string{"KvKNumber": "123"})
	require.NoError(t, err)

	assert.True(t, resp.OK())
	assert.JSONEq(t, `{"Success":true}`, string(resp.Body))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestPostJSON_HeaderKeysVerbatim(t *testing.T) {
	var seen *http.Request
	doer := doerFunc(func(req *http.Request) (*http.Response, error) {
		seen = req
		return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody}, nil
	})

	_, err := PostJSON(context.Background(), doer, "http://example.invalid/x", map[string]string{"token": "t"}, struct{}{})
	require.NoError(t, err)

	require.NotNil(t, seen)
	assert.Equal(t, []string{"t"}, seen.Header["token"])
	_, canonical := seen.Header["Token"]
	assert.False(t, canonical)
}

func TestPostJSON_Non2xxIsNotAnError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, "boom")
	}))
	defer ts.Close()

	resp, err := PostJSON(context.Background(), ts.Client(), ts.URL, nil, map[string]any{})
	require.NoError(t, err)

	assert.False(t, resp.OK())
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "boom", string(resp.Body))
}

func TestPostJSON_SingleAttempt(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	resp, err := PostJSON(context.Background(), ts.Client(), ts.URL, nil, map[string]any{})
	require.NoError(t, err)

	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestPostJSON_TransportError(t *testing.T) {
	wantErr := errors.New("connection refused")
	doer := doerFunc(func(*http.Request) (*http.Response, error) { return nil, wantErr })

	_, err := PostJSON(context.Background(), doer, "http://example.invalid/x", nil, map[string]any{})
	assert.ErrorIs(t, err, wantErr)
}

func TestPostJSON_EncodingError(t *testing.T) {
	_, err := PostJSON(context.Background(), http.DefaultClient, "http://example.invalid/x", nil, make(chan int))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encoding request body")
}

func TestPostJSON_ContextCancelled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := PostJSON(ctx, ts.Client(), ts.URL, nil, map[string]any{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResponseOK(t *testing.T) {
	tests := []struct {
		code int
		want bool
	}{
		{199, false},
		{200, true},
		{201, true},
		{204, true},
		{299, true},
		{300, false},
		{404, false},
		{500, false},
	}
	for _, tt := range tests {
		r := &Response{StatusCode: tt.code}
		assert.Equal(t, tt.want, r.OK(), "status %d", tt.code)
	}
}

type doerFunc func(*http.Request) (*http.Response, error)

func (f doerFunc) Do(req *http.Request) (*http.Response, error) { return f(req) }
