package blobstore

import (
	"context"

	domainerrors "expo/internal/domain/errors"
	"expo/internal/domain/repository"

	"gocloud.dev/blob"
)

var csvWriteOptions = &blob.WriterOptions{ContentType: "text/csv"}

// mirrorRepository implements the repository.MirrorRepository interface.
type mirrorRepository struct {
	bucket *blob.Bucket
}

// NewMirrorRepository is the constructor for mirrorRepository.
func NewMirrorRepository(bucket *blob.Bucket) repository.MirrorRepository {
	return &mirrorRepository{bucket: bucket}
}

func mirrorKey(kind repository.MirrorKind) string {
	return string(kind) + "-csv/" + string(kind) + "_master.csv"
}

// WriteMirror replaces the CSV mirror of a collection.
func (repo *mirrorRepository) WriteMirror(ctx context.Context, kind repository.MirrorKind, data []byte) error {
	if !kind.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown mirror: " + string(kind))
	}

	if err := repo.bucket.WriteAll(ctx, mirrorKey(kind), data, csvWriteOptions); err != nil {
		return domainerrors.NewStorageError(err, "failed to write "+mirrorKey(kind))
	}

	return nil
}

// ReadMirror returns the last written CSV mirror.
func (repo *mirrorRepository) ReadMirror(ctx context.Context, kind repository.MirrorKind) ([]byte, error) {
	if !kind.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown mirror: " + string(kind))
	}

	data, err := repo.bucket.ReadAll(ctx, mirrorKey(kind))
	if err != nil {
		if isNotFound(err) {
			return nil, domainerrors.ErrNotFound.WithDetails(mirrorKey(kind))
		}

		return nil, domainerrors.NewStorageError(err, "failed to read "+mirrorKey(kind))
	}

	return data, nil
}
