// Package ops serves the HTTP side of the server: liveness and readiness
// probes, Prometheus metrics and the public landing of share links.
package ops

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/otpshare/internal/common"
	"github.com/dmitrijs2005/otpshare/internal/dbx"
	"github.com/dmitrijs2005/otpshare/internal/server/models"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// FileInfoGetter returns the public view of a share.
type FileInfoGetter interface {
	GetFileInfo(ctx context.Context, fileID string) (*models.FileInfo, error)
}

const shutdownTimeout = 5 * time.Second

type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// New builds the ops server on addr. db backs the readiness probe.
func New(addr string, logger *slog.Logger, db dbx.Pinger, files FileInfoGetter) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(logger, db, files),
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// NewRouter wires the routes and middleware.
func NewRouter(logger *slog.Logger, db dbx.Pinger, files FileInfoGetter) http.Handler {
	h := &handler{db: db, files: files}

	r := chi.NewRouter()
	r.Use(RequestLogger(logger), Metrics())

	r.Get("/health/live", h.live)
	r.Get("/health/ready", h.ready)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Get(common.ShareLinkPath+"{fileID}", h.fileInfo)

	return r
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, lis)
}

func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("ops server started", slog.String("addr", lis.Addr().String()))
		err := s.httpServer.Serve(lis)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info("ops server stopped")
	return nil
}
