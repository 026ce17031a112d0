package llm

import (
	"errors"
	"fmt"
)

// ErrEmptyResponse is returned when the provider answered without any text.
var ErrEmptyResponse = errors.New("llm returned empty response")

// ErrRateLimit indicates the provider rejected the call with a quota or
// rate limit error (HTTP 429).
type ErrRateLimit struct {
	Err error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("llm rate limited: %v", e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down, unreachable or was
// never configured.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("llm provider unavailable: %v", e.Err)
	}
	return "llm provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }
