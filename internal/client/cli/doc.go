// Package cli provides the interactive otpshare command-line client.
//
// Anyone can describe a share and download it with the id from the share
// link and the OTP from the email. With an access token configured the
// user can also upload files and manage their own shares: list, revoke,
// delete and read the access log.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
