// Package blobstore implements the ledger repositories on a gocloud.dev blob bucket.
// The default bucket is a local directory, so the ledger stays a tree of plain files.
package blobstore

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"expo/config"
	"expo/internal/domain/lifecycle"
	"expo/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/memblob"
)

// Ledger bucket drivers.
const (
	LedgerDriverFile = "file"
	LedgerDriverMem  = "mem"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewBucket opens the ledger bucket and closes it on shutdown.
func NewBucket(params Params) (*blob.Bucket, error) {
	bucket, err := OpenBucket(context.Background(), params.Config.Ledger)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if _, err := bucket.IsAccessible(ctx); err != nil {
				return errors.Wrap(err, "ledger bucket is not accessible")
			}

			params.Logger.Info("Ledger bucket opened",
				slog.String("driver", params.Config.Ledger.Driver),
				slog.String("dataDir", params.Config.Ledger.DataDir),
			)

			return nil
		},
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return bucket, nil
}

// OpenBucket opens the bucket described by cfg. BucketURL wins over Driver.
func OpenBucket(ctx context.Context, cfg *config.LedgerConfig) (*blob.Bucket, error) {
	if cfg == nil {
		cfg = &config.LedgerConfig{Driver: LedgerDriverFile, DataDir: "data"}
	}

	if url := strings.TrimSpace(cfg.BucketURL); url != "" {
		bucket, err := blob.OpenBucket(ctx, url)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open ledger bucket %s", url)
		}

		return bucket, nil
	}

	switch cfg.Driver {
	case LedgerDriverMem:
		return memblob.OpenBucket(nil), nil
	case LedgerDriverFile, "":
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return nil, errors.Wrapf(err, "failed to create ledger directory %s", cfg.DataDir)
		}

		bucket, err := fileblob.OpenBucket(cfg.DataDir, nil)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open ledger directory %s", cfg.DataDir)
		}

		return bucket, nil
	default:
		return nil, errors.Errorf("unknown ledger driver: %s", cfg.Driver)
	}
}

// Module provides the ledger bucket and repositories.
var Module = fx.Module("blobstore",
	fx.Provide(
		NewBucket,
		NewProductRepository,
		NewSaleRepository,
		NewMirrorRepository,
	),
)
