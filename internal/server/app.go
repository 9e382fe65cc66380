// Package server wires the file share server together: database, blob
// storage, notification dispatch, the gRPC API and the ops HTTP server.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/otpshare/internal/cryptox"
	"github.com/dmitrijs2005/otpshare/internal/logging"
	"github.com/dmitrijs2005/otpshare/internal/server/blobstore"
	"github.com/dmitrijs2005/otpshare/internal/server/config"
	"github.com/dmitrijs2005/otpshare/internal/server/notify"
	"github.com/dmitrijs2005/otpshare/internal/server/ops"
	"github.com/dmitrijs2005/otpshare/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/otpshare/internal/server/services"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/otpshare/internal/server/grpc"
)

type App struct {
	config     *config.Config
	logger     *logging.SlogLogger
	db         *sql.DB
	dispatcher *notify.Dispatcher
	grpc       *gs.GRPCServer
	ops        *ops.Server
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSON(os.Stdout, c.LogLevel)

	db, rm, err := repomanager.Open(ctx, c.DatabaseDriver, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := rm.RunMigrations(ctx, db, logger); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	blobs, err := newBlobStore(ctx, c)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("blob store init error: %w", err)
	}

	dispatcher := notify.NewDispatcher(newNotifier(c, logger), logger, notify.DispatcherConfig{
		QueueSize:   c.NotifyQueueSize,
		Workers:     c.NotifyWorkers,
		SendTimeout: c.NotifySendTimeout,
	})

	up := services.NewUploadService(db, rm, blobs, dispatcher, cryptox.NewEnvelope(nil), c, logger)
	acc := services.NewAccessService(db, rm, blobs, c, logger)
	files := services.NewFileService(db, rm, c, logger)

	return &App{
		config:     c,
		logger:     logger,
		db:         db,
		dispatcher: dispatcher,
		grpc:       gs.NewGRPCServer(c.EndpointAddrGRPC, logger, up, acc, files, c.SecretKey, c.MaxUploadBytes),
		ops:        ops.New(c.EndpointAddrOps, logger.Slog(), db, acc),
	}, nil
}

func newBlobStore(ctx context.Context, c *config.Config) (blobstore.Store, error) {
	if c.BlobBackend == "disk" {
		return blobstore.NewDiskStore(c.BlobDir)
	}
	return blobstore.NewS3Store(ctx, blobstore.S3Config{
		User:         c.S3RootUser,
		Password:     c.S3RootPassword,
		Bucket:       c.S3Bucket,
		Region:       c.S3Region,
		BaseEndpoint: c.S3BaseEndpoint,
	})
}

func newNotifier(c *config.Config, logger logging.Logger) notify.Notifier {
	if c.Notifier == "smtp" {
		return notify.NewSMTPNotifier(notify.SMTPConfig{
			Host:     c.SMTPHost,
			Port:     c.SMTPPort,
			User:     c.SMTPUser,
			Password: c.SMTPPassword,
			From:     c.SMTPFrom,
			Timeout:  c.NotifySendTimeout,
		})
	}
	return notify.NewLogNotifier(logger, c.ExposeOTP)
}

// Run serves until SIGINT/SIGTERM/SIGQUIT or until a server fails. Queued
// notifications are delivered before Run returns.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()
	defer app.db.Close()

	app.logger.Info(ctx, "Starting app...",
		"grpc_addr", app.config.EndpointAddrGRPC,
		"ops_addr", app.config.EndpointAddrOps,
		"db_driver", app.config.DatabaseDriver,
		"blob_backend", app.config.BlobBackend,
	)
	if app.config.ExposeOTP {
		app.logger.Warn(ctx, "OTP exposure is enabled; do not use in production")
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		app.dispatcher.Run(ctx)
		return nil
	})
	g.Go(func() error { return app.grpc.Run(ctx) })
	g.Go(func() error { return app.ops.Run(ctx) })

	err := g.Wait()
	if err != nil {
		app.logger.Error(ctx, "server stopped", "error", err)
	}
	app.logger.Info(ctx, "app stopped")
	return err
}
