// Package common contains shared constants and sentinel errors used across
// otpshare components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// ShareLinkPath is the public path prefix of a share link; the file id follows it.
const ShareLinkPath = "/access/"
