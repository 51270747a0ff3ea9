package dexscreener

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyParameter is returned when a required path or query parameter
	// is empty. No request is issued.
	ErrEmptyParameter = errors.New("dexscreener: empty parameter")

	// ErrTooManyTokenAddresses is returned when a single call asks for more
	// than MaxTokenAddresses tokens. No request is issued.
	ErrTooManyTokenAddresses = errors.New("dexscreener: too many token addresses, maximum is 30")
)

// APIError is a non-2xx response from the API. StatusCode is always set;
// Code and Message are filled when the body carries the API's error
// document.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	switch {
	case e.Message == "":
		return fmt.Sprintf("dexscreener: api error: status %d", e.StatusCode)
	case e.Code == "":
		return fmt.Sprintf("dexscreener: api error: %s (status %d)", e.Message, e.StatusCode)
	default:
		return fmt.Sprintf("dexscreener: api error: %s (code %s, status %d)", e.Message, e.Code, e.StatusCode)
	}
}

// DecodeError is a 2xx response whose body did not match the expected
// shape. It wraps the underlying JSON error.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return "dexscreener: decode response: " + e.Err.Error() }

func (e *DecodeError) Unwrap() error { return e.Err }
