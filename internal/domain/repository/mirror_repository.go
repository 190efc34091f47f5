package repository

import (
	"context"
)

// MirrorKind names a collection that has a CSV mirror.
type MirrorKind string

const (
	MirrorProducts MirrorKind = "products"
	MirrorSales    MirrorKind = "sales"
)

// IsValid checks if the MirrorKind is a known collection.
func (k MirrorKind) IsValid() bool {
	return k == MirrorProducts || k == MirrorSales
}

// MirrorRepository holds the derived CSV view of each collection.
// Mirrors are regenerable from the per-record files at any time.
type MirrorRepository interface {
	// WriteMirror replaces the CSV mirror of a collection.
	WriteMirror(ctx context.Context, kind MirrorKind, data []byte) error

	// ReadMirror returns the last written CSV mirror.
	ReadMirror(ctx context.Context, kind MirrorKind) ([]byte, error)
}
