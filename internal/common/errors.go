// Package common defines shared constants and sentinel errors used across
// client and server layers of otpshare. Callers should use errors.Is to
// match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrVersionConflict = errors.New("version conflict")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrValidation     = errors.New("validation error")
	ErrUpstream       = errors.New("upstream failure")

	// Auth errors (invalid, malformed or expired token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Access pipeline outcomes. Each one is recorded verbatim in the audit
	// log; the transport collapses all of them into a single message.
	ErrNotAccessible     = errors.New("file not accessible")
	ErrOtpExpired        = errors.New("otp expired")
	ErrAttemptsExhausted = errors.New("access attempts exhausted")
	ErrInvalidOtp        = errors.New("invalid otp")
	ErrKeyUnwrapFailed   = errors.New("key unwrap failed")
	ErrBlobMissing       = errors.New("blob missing")
	ErrDecryptionFailed  = errors.New("decryption failed")
	ErrIntegrityMismatch = errors.New("integrity check failed")
)

// NotAccessibleError reports a file whose lifecycle status forbids access.
// It matches ErrNotAccessible under errors.Is.
type NotAccessibleError struct {
	Status string
}

func (e *NotAccessibleError) Error() string {
	return fmt.Sprintf("file not accessible: status %s", e.Status)
}

func (e *NotAccessibleError) Is(target error) bool {
	return target == ErrNotAccessible
}
