package siyavula

import "time"

const (
	// DefaultTimeout bounds outbound calls when no timeout is configured.
	DefaultTimeout = 10 * time.Second

	// MsgAuthFailed is used when the provider reports an error without a message field.
	MsgAuthFailed = "Failed to authenticate"
	// MsgVerifyFailed is used when the verify endpoint reports an error without a message field.
	MsgVerifyFailed = "Failed to verify token"
)
