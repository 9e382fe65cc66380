// Package proto holds the generated otpshare.v1 messages and the FileShare
// gRPC stubs. Regenerate after editing proto/otpshare/v1/fileshare.proto.
package proto

//go:generate protoc -I ../../proto --go_out=../.. --go_opt=module=github.com/dmitrijs2005/otpshare --go-grpc_out=../.. --go-grpc_opt=module=github.com/dmitrijs2005/otpshare otpshare/v1/fileshare.proto
