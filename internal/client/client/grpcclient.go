package client

import (
	"context"
	"fmt"
	"math"

	"github.com/dmitrijs2005/otpshare/internal/common"
	pb "github.com/dmitrijs2005/otpshare/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// messageOverhead leaves room for the message fields around file content.
const messageOverhead = 1 << 20

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.FileShareClient
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// accessTokenInterceptor attaches the configured token. Public calls carry
// it too; the server ignores it there.
func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if s.accessToken != "" {
		ctx = withAccessToken(ctx, s.accessToken)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewFileShareClient connects to endpointURL. maxMessageBytes bounds the
// file size the client is willing to send or receive.
func NewFileShareClient(endpointURL, accessToken string, maxMessageBytes int64) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, accessToken: accessToken}
	if err := c.InitGRPCClient(maxMessageBytes); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(maxMessageBytes int64) error {
	limit := int(maxMessageBytes) + messageOverhead

	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
		grpc.WithDefaultCallOptions(grpc.MaxCallRecvMsgSize(limit), grpc.MaxCallSendMsgSize(limit)),
	)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewFileShareClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) Upload(ctx context.Context, p UploadParams) (*UploadResult, error) {
	if !fitsInt32(p.ValidityMinutes) || !fitsInt32(p.MaxAttempts) {
		return nil, fmt.Errorf("%w: value out of range", ErrInvalidInput)
	}
	req := &pb.UploadRequest{
		FileName:        p.FileName,
		MimeType:        p.MimeType,
		RecipientEmail:  p.RecipientEmail,
		Description:     p.Description,
		ValidityMinutes: int32(p.ValidityMinutes),
		MaxAttempts:     int32(p.MaxAttempts),
		OneTimeAccess:   p.OneTimeAccess,
		Content:         p.Content,
	}

	resp, err := s.client.Upload(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return &UploadResult{
		FileID:       resp.GetFileId(),
		ShareLink:    resp.GetShareLink(),
		OTPExpiresAt: resp.GetOtpExpiresAt().AsTime(),
		OTP:          resp.GetOtp(),
	}, nil
}

func fitsInt32(v int) bool {
	return v >= math.MinInt32 && v <= math.MaxInt32
}

func (s *GRPCClient) Info(ctx context.Context, fileID string) (*FileInfo, error) {
	resp, err := s.client.GetFileInfo(ctx, &pb.FileRequest{FileId: fileID})
	if err != nil {
		return nil, s.mapError(err)
	}
	info := fileInfoFromProto(resp.GetFile())
	return &info, nil
}

func (s *GRPCClient) Download(ctx context.Context, fileID, otp string) (*DownloadedFile, error) {
	resp, err := s.client.Access(ctx, &pb.AccessRequest{FileId: fileID, Otp: otp})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &DownloadedFile{
		FileName: resp.GetFileName(),
		MimeType: resp.GetMimeType(),
		Content:  resp.GetContent(),
	}, nil
}

func (s *GRPCClient) List(ctx context.Context) ([]FileInfo, error) {
	resp, err := s.client.ListFiles(ctx, &pb.ListFilesRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	files := make([]FileInfo, 0, len(resp.GetFiles()))
	for _, f := range resp.GetFiles() {
		files = append(files, fileInfoFromProto(f))
	}
	return files, nil
}

func (s *GRPCClient) Revoke(ctx context.Context, fileID string) error {
	_, err := s.client.RevokeFile(ctx, &pb.FileRequest{FileId: fileID})
	return s.mapError(err)
}

func (s *GRPCClient) Delete(ctx context.Context, fileID string) error {
	_, err := s.client.DeleteFile(ctx, &pb.FileRequest{FileId: fileID})
	return s.mapError(err)
}

func (s *GRPCClient) AccessLog(ctx context.Context, fileID string) ([]AccessLogEntry, error) {
	resp, err := s.client.ListAccessLog(ctx, &pb.FileRequest{FileId: fileID})
	if err != nil {
		return nil, s.mapError(err)
	}
	entries := make([]AccessLogEntry, 0, len(resp.GetEntries()))
	for _, e := range resp.GetEntries() {
		entries = append(entries, accessLogEntryFromProto(e))
	}
	return entries, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.PermissionDenied:
		if st.Message() == ErrVerificationFailed.Error() {
			return ErrVerificationFailed
		}
		return ErrForbidden
	case codes.Unavailable:
		if st.Message() == ErrVerificationFailed.Error() {
			return fmt.Errorf("%w: %w", ErrVerificationFailed, ErrUnavailable)
		}
		return ErrUnavailable
	case codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return ErrNotFound
	case codes.InvalidArgument, codes.FailedPrecondition:
		return fmt.Errorf("%w: %s", ErrInvalidInput, st.Message())
	case codes.Aborted:
		return ErrConflict
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
