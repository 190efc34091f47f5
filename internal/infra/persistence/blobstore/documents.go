package blobstore

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"

	domainerrors "expo/internal/domain/errors"

	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

// Key prefixes of the ledger bucket.
const (
	productsPrefix = "products/"
	salesPrefix    = "sales/"
	jsonExt        = ".json"
)

var jsonWriteOptions = &blob.WriterOptions{ContentType: "application/json"}

func productKey(id string) string {
	return productsPrefix + "product-" + id + jsonExt
}

func saleKey(id string) string {
	return salesPrefix + "sale-" + id + jsonExt
}

func isNotFound(err error) bool {
	return gcerrors.Code(err) == gcerrors.NotFound
}

// readDocument decodes one JSON document. A missing key returns notFound.
func readDocument(ctx context.Context, bucket *blob.Bucket, key string, dst any, notFound error) error {
	data, err := bucket.ReadAll(ctx, key)
	if err != nil {
		if isNotFound(err) {
			return notFound
		}

		return domainerrors.NewStorageError(err, "failed to read "+key)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return domainerrors.ErrCorruptRecord.WithDetails(key + ": " + err.Error())
	}

	return nil
}

// writeDocument encodes src as indented JSON under key.
func writeDocument(ctx context.Context, bucket *blob.Bucket, key string, src any) error {
	data, err := json.MarshalIndent(src, "", "  ")
	if err != nil {
		return domainerrors.ErrInternalError.WithDetails("failed to encode " + key + ": " + err.Error())
	}

	if err := bucket.WriteAll(ctx, key, data, jsonWriteOptions); err != nil {
		return domainerrors.NewStorageError(err, "failed to write "+key)
	}

	return nil
}

// eachDocument calls decode for every JSON object under prefix. Objects that
// fail to decode are logged and skipped.
func eachDocument(ctx context.Context, bucket *blob.Bucket, logger *slog.Logger, prefix string, decode func(key string, data []byte) error) error {
	iter := bucket.List(&blob.ListOptions{Prefix: prefix})
	for {
		obj, err := iter.Next(ctx)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return domainerrors.NewStorageError(err, "failed to list "+prefix)
		}

		if obj.IsDir || !strings.HasSuffix(obj.Key, jsonExt) {
			continue
		}

		data, err := bucket.ReadAll(ctx, obj.Key)
		if err != nil {
			if isNotFound(err) {
				continue
			}

			return domainerrors.NewStorageError(err, "failed to read "+obj.Key)
		}

		if err := decode(obj.Key, data); err != nil {
			logger.WarnContext(ctx, "Skipping unreadable ledger record",
				slog.String("key", obj.Key),
				slog.Any("error", err),
			)
		}
	}
}
