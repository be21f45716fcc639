package models

import "encoding/json"

const (
	TokenStatusSuccess = "success"
	TokenStatusError   = "error"
)

// TokenResult is the normalized outcome of a Siyavula API call. On success,
// Tokens carries the provider's response body verbatim; the provider's schema
// is opaque to this service. On a provider-reported error, Message carries the
// provider's message and RemoteStatus the remote HTTP status.
type TokenResult struct {
	Status       string          `json:"status"`
	Message      string          `json:"message,omitempty"`
	Tokens       json.RawMessage `json:"tokens,omitempty"`
	RemoteStatus int             `json:"-"`
}

// Success reports whether the provider call succeeded.
func (r *TokenResult) Success() bool {
	return r != nil && r.Status == TokenStatusSuccess
}
