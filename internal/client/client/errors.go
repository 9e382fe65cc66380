package client

import "errors"

var (
	ErrUnavailable        = errors.New("server unavailable")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("file not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrVerificationFailed = errors.New("verification failed")
	ErrConflict           = errors.New("file state changed, try again")
)
