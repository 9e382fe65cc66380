package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/otpshare/internal/logging"
	pb "github.com/dmitrijs2005/otpshare/internal/proto"
	"github.com/dmitrijs2005/otpshare/internal/server/models"
	"github.com/dmitrijs2005/otpshare/internal/server/services"
	"google.golang.org/grpc"
)

// Service contracts consumed by the transport; implemented by the types in
// internal/server/services.
type (
	Uploader interface {
		Upload(ctx context.Context, in services.UploadInput) (*services.UploadResult, error)
	}

	Accessor interface {
		Access(ctx context.Context, fileID, otp, clientAddr string) (*services.AccessResult, error)
		GetFileInfo(ctx context.Context, fileID string) (*models.FileInfo, error)
	}

	FileManager interface {
		ListFiles(ctx context.Context, ownerID string) ([]models.FileInfo, error)
		RevokeFile(ctx context.Context, ownerID, fileID string) error
		DeleteFile(ctx context.Context, ownerID, fileID string) error
		ListAccessLog(ctx context.Context, ownerID, fileID string) ([]*models.AccessLogEntry, error)
	}
)

// messageOverhead covers the upload fields other than its content.
const messageOverhead = 1 << 20

type GRPCServer struct {
	pb.UnimplementedFileShareServer
	address        string
	uploads        Uploader
	access         Accessor
	files          FileManager
	logger         logging.Logger
	jwtSecret      []byte
	maxRecvMsgSize int
}

// NewGRPCServer builds the FileShare transport. maxUploadBytes sizes the
// receive limit.
func NewGRPCServer(a string, l logging.Logger, up Uploader, acc Accessor, fm FileManager,
	secretKey string, maxUploadBytes int64) *GRPCServer {
	return &GRPCServer{
		address:        a,
		logger:         l.With("module", "grpc_server"),
		uploads:        up,
		access:         acc,
		files:          fm,
		jwtSecret:      []byte(secretKey),
		maxRecvMsgSize: int(maxUploadBytes) + messageOverhead,
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(
		grpc.MaxRecvMsgSize(s.maxRecvMsgSize),
		grpc.ChainUnaryInterceptor(s.metricsInterceptor, s.accessTokenInterceptor),
	)
	pb.RegisterFileShareServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {
	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops
// gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}
	return nil
}
