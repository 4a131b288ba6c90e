package synthesis

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// ErrorKind categorizes a synthesis failure for the caller. The HTTP
// layer maps kinds to status codes and user-facing messages.
type ErrorKind string

const (
	ErrKindRateLimit       ErrorKind = "rate_limit"
	ErrKindAuth            ErrorKind = "auth"
	ErrKindNetwork         ErrorKind = "network"
	ErrKindPolicyViolation ErrorKind = "policy_violation"
	ErrKindInvalidRequest  ErrorKind = "invalid_request"
	ErrKindProvider        ErrorKind = "provider"
)

// Error is a categorized synthesis failure. It wraps the underlying
// provider error, if any.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("synthesis %s: %s: %v", e.Kind, e.Message, e.Err)
	}

	return fmt.Sprintf("synthesis %s: %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying provider error to errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// classifyProviderError folds an OpenAI client failure into the error
// taxonomy. Anything that is not an HTTP-level API error is treated as
// a network failure.
func classifyProviderError(err error) *Error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		kind := ErrKindProvider

		switch {
		case apiErr.HTTPStatusCode == 401 || apiErr.HTTPStatusCode == 403:
			kind = ErrKindAuth
		case apiErr.HTTPStatusCode == 429:
			kind = ErrKindRateLimit
		case strings.Contains(strings.ToLower(apiErr.Message), "policy") ||
			strings.Contains(strings.ToLower(apiErr.Message), "flagged"):
			kind = ErrKindPolicyViolation
		case apiErr.HTTPStatusCode == 400:
			kind = ErrKindInvalidRequest
		}

		return &Error{Kind: kind, Message: apiErr.Message, Err: err}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode >= 500 {
		return &Error{Kind: ErrKindProvider, Message: "speech service is unavailable", Err: err}
	}

	return &Error{Kind: ErrKindNetwork, Message: "failed to reach the speech service", Err: err}
}
