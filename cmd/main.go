package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/vkazankov/voicebank/internal/api/rest/reqctx"
	"github.com/vkazankov/voicebank/internal/api/rest/router"
	"github.com/vkazankov/voicebank/internal/config"
	"github.com/vkazankov/voicebank/internal/logger"
	"github.com/vkazankov/voicebank/internal/model"
	"github.com/vkazankov/voicebank/internal/repository/postgres"
	"github.com/vkazankov/voicebank/internal/server"
	"github.com/vkazankov/voicebank/internal/service"
	"github.com/vkazankov/voicebank/internal/storage/disk"
	miniostorage "github.com/vkazankov/voicebank/internal/storage/minio"
	"github.com/vkazankov/voicebank/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	datasetRepo := postgres.NewDatasetRepository(db)
	sampleRepo := postgres.NewSampleRepository(db)
	tokenManager := token.NewJWT(cfg.JWT.Secret)
	ctxMgr := reqctx.NewManager()

	blobs, err := newBlobStore(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialize blob store", "error", err)
	}

	authService := service.NewAuth(userRepo, tokenManager, logger)
	datasetService := service.NewDataset(datasetRepo, sampleRepo, blobs, logger)
	sampleService := service.NewSample(sampleRepo, datasetRepo, blobs, logger)

	r := router.New(authService, datasetService, sampleService, sampleService, tokenManager, ctxMgr, logger)
	httpServer := server.NewHTTPServer(r.Handler(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func newBlobStore(ctx context.Context, cfg *config.Config) (model.BlobStore, error) {
	switch cfg.Storage.Backend {
	case "minio":
		minioClient, err := minio.New(cfg.Storage.Minio.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.Storage.Minio.AccessKey, cfg.Storage.Minio.SecretKey, ""),
			Secure: cfg.Storage.Minio.UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create minio client: %w", err)
		}
		return miniostorage.NewClient(ctx, minioClient, cfg.Storage.Minio.Bucket)
	case "disk":
		return disk.New(cfg.Storage.UploadsDir, cfg.Storage.LegacyUploadsDir)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
