// Package client talks to the otpshare server on behalf of the CLI.
//
// # Overview
//
// Client is the transport-agnostic contract used by the CLI. GRPCClient
// implements it over the otpshare.v1.FileShare service: it owns the
// connection, attaches the uploader's access token to every call and maps
// gRPC status codes onto the sentinel errors of this package.
//
// # Error Handling
//
// Callers match conditions with errors.Is: ErrUnavailable, ErrUnauthorized,
// ErrForbidden, ErrNotFound, ErrInvalidInput, ErrVerificationFailed and
// ErrConflict. ErrVerificationFailed is all a recipient ever learns about a
// refused download; the server does not say which check failed.
package client
