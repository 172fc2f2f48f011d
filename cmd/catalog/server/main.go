package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/joeshaw/envdecode"

	"recipecatalog"
	"recipecatalog/catalog"
	"recipecatalog/favorites"
	"recipecatalog/slack"
	"recipecatalog/storage"
	"recipecatalog/tools"
	"recipecatalog/web"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg recipecatalog.CatalogConfig
	if err := envdecode.Decode(&cfg); err != nil {
		log.Fatalf("SETUP: Failed to decode: %s", err)
	}

	var s3cfg recipecatalog.S3Config
	if err := envdecode.Decode(&s3cfg); err != nil {
		log.Fatalf("SETUP: Failed to decode: %s", err)
	}

	tracerProvider, meterProvider, otelShutdown, err := recipecatalog.InitOtel(ctx)
	if err != nil {
		slog.Error("SETUP: Failed to initialize OpenTelemetry", "error", err)
		return
	}
	defer func() {
		if err := otelShutdown(context.Background()); err != nil {
			slog.Error("SETUP: Failed to shutdown OpenTelemetry", "error", err)
		}
	}()

	queryLogger, cleanup, err := newQueryLogger(cfg.QueryLogDir)
	if err != nil {
		slog.Error("SETUP: Failed to create query logger", "error", err)
		return
	}
	defer func() {
		if err := cleanup(); err != nil {
			slog.Error("SETUP: Failed to flush query log", "error", err)
		}
	}()

	recipes, favBlob, source, err := newBackends(ctx, cfg, s3cfg)
	if err != nil {
		slog.Error("SETUP: Failed to configure storage", "error", err)
		return
	}

	var notifier recipecatalog.Notifier
	if cfg.SlackWebhookURL != "" {
		notifier = slack.NewClient(cfg.SlackWebhookURL, cfg.SlackChannel, http.DefaultClient)
	}

	var svc *catalog.Service
	loaded, err := catalog.Load(ctx, recipes, catalog.FormatFromPath(source))
	if err != nil {
		recipecatalog.ReportLoadFailure(ctx, notifier, source, err)
	} else {
		svc = catalog.NewService(loaded, queryLogger,
			tracerProvider.Tracer(recipecatalog.TracerNameCatalog),
			meterProvider.Meter(recipecatalog.TracerNameCatalog))
		slog.Info("SETUP: Recipes loaded", "source", source, "recipes_count", len(loaded))
	}

	registry, err := tools.NewRegistry(svc, favorites.NewStore(favBlob))
	if err != nil {
		slog.Error("SETUP: Failed to create tool registry", "error", err)
		return
	}

	srv := &http.Server{
		Addr: cfg.ListenAddr,
		Handler: web.NewServer(web.Options{
			Catalog:        svc,
			Tools:          registry,
			AllowedOrigins: strings.Split(cfg.AllowedOrigins, ","),
			TracerProvider: tracerProvider,
			MeterProvider:  meterProvider,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("SHUTDOWN: Failed to stop server", "error", err)
		}
	}()

	slog.Info("SETUP: Server starting", "addr", cfg.ListenAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("FAILURE: Server stopped", "error", err)
	}
}

// newBackends picks S3 when a bucket is configured and the local filesystem otherwise.
func newBackends(ctx context.Context, cfg recipecatalog.CatalogConfig, s3cfg recipecatalog.S3Config) (storage.RecipeState, storage.Blob, string, error) {
	if !s3cfg.Enabled() {
		return storage.NewFileRecipeState(cfg.RecipesPath), storage.NewFileBlob(cfg.FavoritesDir), cfg.RecipesPath, nil
	}

	awsCfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, nil, "", fmt.Errorf("failed to load AWS config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg)
	source := fmt.Sprintf("s3://%s/%s", s3cfg.Bucket, s3cfg.RecipesKey)
	return storage.NewS3RecipeState(client, s3cfg.Bucket, s3cfg.RecipesKey),
		storage.NewS3Blob(client, s3cfg.Bucket, s3cfg.FavoritesPrefix),
		source, nil
}

func newQueryLogger(dir string) (recipecatalog.QueryLogger, func() error, error) {
	if dir == "" {
		return recipecatalog.NewNoOpQueryLogger(), func() error { return nil }, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, func() error { return err }, fmt.Errorf("failed to create log dir: %w", err)
	}

	logFilePath := recipecatalog.NewQueryLogFilePath(filepath.Clean(dir), "server")
	logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, func() error { return err }, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := recipecatalog.NewFileQueryLogger(logFile)
	cleanup := func() error {
		return errors.Join(logger.Flush(), logFile.Close())
	}
	return logger, cleanup, nil
}
