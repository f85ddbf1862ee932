package llm

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Kind classifies provider failures.
type Kind int

const (
	// KindUnavailable covers transport errors and 5xx responses.
	KindUnavailable Kind = iota
	// KindRateLimited is a 429.
	KindRateLimited
	// KindMalformed means the reply was not valid JSON for the schema.
	KindMalformed
	// KindTruncated means the reply hit the token limit.
	KindTruncated
)

func (k Kind) String() string {
	switch k {
	case KindRateLimited:
		return "rate limited"
	case KindMalformed:
		return "malformed reply"
	case KindTruncated:
		return "truncated reply"
	default:
		return "provider unavailable"
	}
}

// Error is returned by every provider.
type Error struct {
	Kind       Kind
	RetryAfter time.Duration
	Raw        json.RawMessage
	Err        error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return "llm: " + e.Kind.String()
	}
	return fmt.Sprintf("llm: %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Temporary reports whether retrying the same prompt may help.
func (e *Error) Temporary() bool {
	return e.Kind == KindUnavailable || e.Kind == KindRateLimited
}

func unavailable(err error) *Error { return &Error{Kind: KindUnavailable, Err: err} }

func malformed(raw json.RawMessage, err error) *Error {
	return &Error{Kind: KindMalformed, Raw: raw, Err: err}
}

// fromStatus maps an HTTP status reported by an SDK error.
func fromStatus(status int, err error) *Error {
	if status == http.StatusTooManyRequests {
		return &Error{Kind: KindRateLimited, Err: err}
	}
	return unavailable(err)
}
