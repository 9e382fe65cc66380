package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/otpshare/internal/common"
	"github.com/dmitrijs2005/otpshare/internal/netx"
	pb "github.com/dmitrijs2005/otpshare/internal/proto"
	"github.com/dmitrijs2005/otpshare/internal/server/auth"
	"github.com/dmitrijs2005/otpshare/internal/server/lifecycle"
	"github.com/dmitrijs2005/otpshare/internal/server/models"
	"github.com/dmitrijs2005/otpshare/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// verificationFailed is the only message an access failure carries to the
// caller. The precise reason goes to the audit log.
const verificationFailed = "verification failed"

func (s *GRPCServer) Upload(ctx context.Context, req *pb.UploadRequest) (*pb.UploadResponse, error) {
	id, ok := auth.IdentityFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}

	result, err := s.uploads.Upload(ctx, services.UploadInput{
		OwnerID:         id.UserID,
		OwnerEmail:      id.Email,
		Content:         req.GetContent(),
		FileName:        req.GetFileName(),
		MimeType:        req.GetMimeType(),
		RecipientEmail:  req.GetRecipientEmail(),
		Description:     req.GetDescription(),
		ValidityMinutes: int(req.GetValidityMinutes()),
		MaxAttempts:     int(req.GetMaxAttempts()),
		OneTimeAccess:   req.GetOneTimeAccess(),
		ClientAddr:      netx.ClientAddr(ctx),
	})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrValidation):
			return nil, status.Error(codes.InvalidArgument, err.Error())
		case errors.Is(err, common.ErrorUnauthorized):
			return nil, status.Error(codes.Unauthenticated, "unauthorized")
		default:
			s.logger.Error(ctx, "upload failed", "error", err)
			return nil, status.Error(codes.Internal, err.Error())
		}
	}

	return &pb.UploadResponse{
		FileId:       result.FileID,
		ShareLink:    result.ShareLink,
		OtpExpiresAt: timestamppb.New(result.OTPExpiresAt),
		Otp:          result.OTP,
	}, nil
}

func (s *GRPCServer) ListFiles(ctx context.Context, req *pb.ListFilesRequest) (*pb.ListFilesResponse, error) {
	id, ok := auth.IdentityFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}

	files, err := s.files.ListFiles(ctx, id.UserID)
	if err != nil {
		return nil, s.ownerError(ctx, err)
	}

	out := make([]*pb.FileInfo, 0, len(files))
	for _, f := range files {
		out = append(out, fileInfoToWire(f))
	}
	return &pb.ListFilesResponse{Files: out}, nil
}

func (s *GRPCServer) RevokeFile(ctx context.Context, req *pb.FileRequest) (*emptypb.Empty, error) {
	id, ok := auth.IdentityFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}
	if err := s.files.RevokeFile(ctx, id.UserID, req.GetFileId()); err != nil {
		return nil, s.ownerError(ctx, err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) DeleteFile(ctx context.Context, req *pb.FileRequest) (*emptypb.Empty, error) {
	id, ok := auth.IdentityFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}
	if err := s.files.DeleteFile(ctx, id.UserID, req.GetFileId()); err != nil {
		return nil, s.ownerError(ctx, err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) ListAccessLog(ctx context.Context, req *pb.FileRequest) (*pb.ListAccessLogResponse, error) {
	id, ok := auth.IdentityFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}

	entries, err := s.files.ListAccessLog(ctx, id.UserID, req.GetFileId())
	if err != nil {
		return nil, s.ownerError(ctx, err)
	}

	out := make([]*pb.AccessLogEntry, 0, len(entries))
	for _, e := range entries {
		w := &pb.AccessLogEntry{
			Id:           e.ID,
			AccessType:   string(e.AccessType),
			AccessStatus: string(e.AccessStatus),
			ClientAddr:   e.ClientAddr,
			CreatedAt:    timestamppb.New(e.CreatedAt),
		}
		if e.FailureReason != nil {
			w.FailureReason = *e.FailureReason
		}
		out = append(out, w)
	}
	return &pb.ListAccessLogResponse{Entries: out}, nil
}

func (s *GRPCServer) GetFileInfo(ctx context.Context, req *pb.FileRequest) (*pb.FileInfoResponse, error) {
	info, err := s.access.GetFileInfo(ctx, req.GetFileId())
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, status.Error(codes.NotFound, "file not found")
		}
		s.logger.Error(ctx, "get file info failed", "file_id", req.GetFileId(), "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}
	return &pb.FileInfoResponse{File: fileInfoToWire(*info)}, nil
}

func (s *GRPCServer) Access(ctx context.Context, req *pb.AccessRequest) (*pb.AccessResponse, error) {
	result, err := s.access.Access(ctx, req.GetFileId(), req.GetOtp(), netx.ClientAddr(ctx))
	if err != nil {
		return nil, accessError(err)
	}
	return &pb.AccessResponse{
		FileName: result.FileName,
		MimeType: result.MimeType,
		Content:  result.Content,
	}, nil
}

// accessError hides the failure kind. Only a storage outage is told apart,
// so clients know a retry may help.
func accessError(err error) error {
	if errors.Is(err, common.ErrUpstream) {
		return status.Error(codes.Unavailable, verificationFailed)
	}
	return status.Error(codes.PermissionDenied, verificationFailed)
}

func (s *GRPCServer) ownerError(ctx context.Context, err error) error {
	var te *lifecycle.TransitionError
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "file not found")
	case errors.Is(err, common.ErrForbidden):
		return status.Error(codes.PermissionDenied, "forbidden")
	case errors.As(err, &te):
		return status.Error(codes.FailedPrecondition, te.Error())
	case errors.Is(err, common.ErrVersionConflict):
		return status.Error(codes.Aborted, "concurrent update, retry")
	default:
		s.logger.Error(ctx, "owner operation failed", "error", err)
		return status.Error(codes.Internal, "internal error")
	}
}

func fileInfoToWire(f models.FileInfo) *pb.FileInfo {
	return &pb.FileInfo{
		FileId:            f.ID,
		FileName:          f.OriginalFilename,
		FileSize:          f.FileSize,
		MimeType:          f.MimeType,
		Description:       f.Description,
		UploadedAt:        timestamppb.New(f.UploadTimestamp),
		OtpExpiresAt:      timestamppb.New(f.OTPExpiresAt),
		AccessCount:       int32(f.AccessCount),
		MaxAccessAttempts: int32(f.MaxAccessAttempts),
		OneTimeAccess:     f.OneTimeAccess,
		Status:            string(f.Status),
	}
}
