// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package go2ubl

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigurationMissing is returned when an operation runs before
	// Initialize, or with an empty identifier, code or token.
	ErrConfigurationMissing = errors.New("go2ubl: configuration missing")

	// ErrInvalidInput is returned when a required argument is empty. No
	// request is sent.
	ErrInvalidInput = errors.New("go2ubl: invalid input")

	// ErrRequestFailed matches every *RequestError.
	ErrRequestFailed = errors.New("go2ubl: request failed")
)

var errInvalidJSON = errors.New("response body is not valid JSON")

// maxErrorBody bounds the response excerpt kept on a RequestError.
const maxErrorBody = 512

// RequestError describes a request that did not produce a usable response:
// a transport failure, a non-2xx status, or a 2xx reply whose body is not
// JSON.
type RequestError struct {
	URL string
	// StatusCode is zero when no response was received.
	StatusCode int
	// Body holds the start of the response body, if any.
	Body string
	Err  error
}

func (e *RequestError) Error() string {
	switch {
	case e.StatusCode == 0:
		return fmt.Sprintf("go2ubl: POST %s: %v", e.URL, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("go2ubl: POST %s: HTTP %d: %v", e.URL, e.StatusCode, e.Err)
	case e.Body != "":
		return fmt.Sprintf("go2ubl: POST %s returned HTTP %d: %s", e.URL, e.StatusCode, e.Body)
	default:
		return fmt.Sprintf("go2ubl: POST %s returned HTTP %d", e.URL, e.StatusCode)
	}
}

func (e *RequestError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrRequestFailed) hold for any RequestError.
func (e *RequestError) Is(target error) bool { return target == ErrRequestFailed }

func invalidInput(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}

func excerpt(body []byte) string {
	if len(body) > maxErrorBody {
		return string(body[:maxErrorBody]) + "..."
	}
	return string(body)
}
