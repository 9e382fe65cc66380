package grpc

import (
	"context"
	"errors"
	"path"
	"time"

	"github.com/dmitrijs2005/otpshare/internal/common"
	pb "github.com/dmitrijs2005/otpshare/internal/proto"
	"github.com/dmitrijs2005/otpshare/internal/server/auth"
	"github.com/dmitrijs2005/otpshare/internal/server/metrics"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// ownerMethods require a valid access token. GetFileInfo and Access are
// public: the OTP is the recipient's only credential.
var ownerMethods = map[string]bool{
	pb.FileShare_Upload_FullMethodName:        true,
	pb.FileShare_ListFiles_FullMethodName:     true,
	pb.FileShare_RevokeFile_FullMethodName:    true,
	pb.FileShare_DeleteFile_FullMethodName:    true,
	pb.FileShare_ListAccessLog_FullMethodName: true,
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if ownerMethods[info.FullMethod] {

		var accessToken string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			values := md.Get(common.AccessTokenHeaderName)
			if len(values) > 0 {
				accessToken = values[0]
			}
		}
		if len(accessToken) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}

		id, err := auth.ParseToken(accessToken, s.jwtSecret)
		if err != nil {
			if errors.Is(err, common.ErrTokenExpired) {
				return nil, status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
			}
			return nil, status.Error(codes.Unauthenticated, common.ErrInvalidToken.Error())
		}

		ctx = auth.WithIdentity(ctx, id)
	}

	return handler(ctx, req)
}

// metricsInterceptor counts requests by method and status code and logs
// each call at debug level.
func (s *GRPCServer) metricsInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	code := status.Code(err)
	method := path.Base(info.FullMethod)
	metrics.GRPCRequests.WithLabelValues(method, code.String()).Inc()
	s.logger.Debug(ctx, "grpc request", "method", method, "code", code.String(), "duration", time.Since(start))

	return resp, err
}
