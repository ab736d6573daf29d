// Command librarysync-server starts the document library sync gRPC server.
package main

import (
	"context"
	"flag"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	pb "github.com/paperdock/librarysync/gen/go/librarysync/v1"
	"github.com/paperdock/librarysync/internal/blob"
	"github.com/paperdock/librarysync/internal/migrate"
	"github.com/paperdock/librarysync/internal/repository/sqlite"
	grpcserver "github.com/paperdock/librarysync/internal/server/grpc"
	"github.com/paperdock/librarysync/internal/service"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// main parses configuration, runs migrations, and starts the gRPC server.
func main() {
	// Flags
	addr := flag.String("addr", ":50051", "listen address")
	dbPath := flag.String("db", "library.db", "SQLite database file")
	dataDir := flag.String("data-dir", "files", "directory for stored document binaries")
	token := flag.String("token", "", "shared bearer token (required)")
	maxBatch := flag.Int("max-batch", 5000, "max push batch size")
	blobBackend := flag.String("blob-backend", "fs", "binary storage backend: fs or s3")
	s3Region := flag.String("s3-region", "us-east-1", "S3 region")
	s3Bucket := flag.String("s3-bucket", "", "S3 bucket (required for s3 backend)")
	s3Prefix := flag.String("s3-prefix", "documents", "S3 key prefix")
	s3Endpoint := flag.String("s3-endpoint", "", "custom S3 endpoint (e.g. MinIO)")
	certFile := flag.String("tls-cert", "", "TLS certificate (PEM), plaintext when empty")
	keyFile := flag.String("tls-key", "", "TLS private key (PEM)")
	dev := flag.Bool("dev", false, "enable server reflection (dev only)")
	flag.Parse()

	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()
	logger.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
		zap.String("addr", *addr),
	)

	if *token == "" {
		logger.Fatal("missing shared token (--token)")
	}

	// Context with OS signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Store
	store, err := sqlite.Open(*dbPath)
	if err != nil {
		logger.Fatal("sqlite.Open", zap.Error(err))
	}
	defer func() { _ = store.Close() }()

	if err := migrate.Up(ctx, store.DB()); err != nil {
		logger.Fatal("migrate up", zap.Error(err))
	}

	// Blob storage
	var blobs blob.Store
	switch *blobBackend {
	case "fs":
		blobs, err = blob.NewFSStore(*dataDir)
		if err != nil {
			logger.Fatal("blob dir", zap.Error(err))
		}
	case "s3":
		if *s3Bucket == "" {
			logger.Fatal("missing S3 bucket (--s3-bucket)")
		}
		blobs, err = blob.NewS3Store(ctx, blob.S3Config{
			Region:   *s3Region,
			Bucket:   *s3Bucket,
			Prefix:   *s3Prefix,
			Endpoint: *s3Endpoint,
		})
		if err != nil {
			logger.Fatal("s3 store", zap.Error(err))
		}
	default:
		logger.Fatal("unknown blob backend", zap.String("backend", *blobBackend))
	}

	// Services
	syncSvc := service.NewSyncService(store, version, *maxBatch)
	docSvc := service.NewDocumentService(store, blobs)

	// gRPC server with interceptors
	opts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			grpcserver.RecoverUnary(logger),
			grpcserver.LoggingUnary(logger),
			grpcserver.AuthUnary(*token),
		),
		grpc.ChainStreamInterceptor(
			grpcserver.LoggingStream(logger),
			grpcserver.AuthStream(*token),
		),
	}
	if *certFile != "" {
		creds, err := credentials.NewServerTLSFromFile(*certFile, *keyFile)
		if err != nil {
			logger.Fatal("failed to load TLS cert/key", zap.Error(err))
		}
		opts = append(opts, grpc.Creds(creds))
	}
	s := grpc.NewServer(opts...)

	// App service
	app := grpcserver.New(syncSvc, docSvc)
	pb.RegisterLibrarySyncServer(s, app)

	// Health & reflection (dev)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	if *dev {
		reflection.Register(s)
	}

	// Listen
	lis, err := net.Listen("tcp", *addr)
	if err != nil {
		logger.Fatal("listen", zap.Error(err))
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", *addr))
		errCh <- s.Serve(lis)
	}()

	// Wait for stop
	select {
	case <-ctx.Done():
		// graceful shutdown
		done := make(chan struct{})
		go func() {
			s.GracefulStop()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			s.Stop()
		}
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("shutdown complete")
}
