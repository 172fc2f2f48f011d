package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/joeshaw/envdecode"

	"recipecatalog"
	"recipecatalog/slack"
	"recipecatalog/storage"
)

func main() {
	ctx := context.Background()

	var cfg recipecatalog.CatalogConfig
	if err := envdecode.Decode(&cfg); err != nil {
		log.Fatalf("Failed to decode: %s", err)
	}

	var s3cfg recipecatalog.S3Config
	if err := envdecode.Decode(&s3cfg); err != nil {
		log.Fatalf("Failed to decode: %s", err)
	}
	if !s3cfg.Enabled() {
		log.Fatalf("missing S3 config: ARTIFACTS_S3_BUCKET must be set")
	}

	awsCfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		log.Fatalf("failed to load AWS config: %s", err)
	}
	s3Client := s3.NewFromConfig(awsCfg)

	tracerProvider, meterProvider, _, err := recipecatalog.InitOtel(ctx)
	if err != nil {
		log.Fatalf("SETUP: Failed to initialize OpenTelemetry: %s", err)
	}

	var notifier recipecatalog.Notifier
	if cfg.SlackWebhookURL != "" {
		notifier = slack.NewClient(cfg.SlackWebhookURL, cfg.SlackChannel, http.DefaultClient)
	}

	h, err := newHandler(ctx, handlerDeps{
		Recipes:        storage.NewS3RecipeState(s3Client, s3cfg.Bucket, s3cfg.RecipesKey),
		Source:         fmt.Sprintf("s3://%s/%s", s3cfg.Bucket, s3cfg.RecipesKey),
		Favorites:      storage.NewS3Blob(s3Client, s3cfg.Bucket, s3cfg.FavoritesPrefix),
		Notifier:       notifier,
		QueryLogger:    recipecatalog.NewStdoutQueryLogger(),
		Tracer:         tracerProvider.Tracer(recipecatalog.TracerNameLambda),
		CatalogTracer:  tracerProvider.Tracer(recipecatalog.TracerNameCatalog),
		CatalogMeter:   meterProvider.Meter(recipecatalog.TracerNameCatalog),
		FlushTelemetry: func(ctx context.Context) error {
			return errors.Join(tracerProvider.ForceFlush(ctx), meterProvider.ForceFlush(ctx))
		},
	})
	if err != nil {
		log.Fatalf("SETUP: Failed to create handler: %s", err)
	}
	slog.Info("SETUP: Lambda handler ready")

	lambda.Start(h.Handle)
}
