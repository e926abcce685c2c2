// Package blob stores the uploaded documents. A file is addressed by an
// opaque reference that stays stable when the file changes folders.
package blob

import (
	"context"
	"errors"
	"io"
)

var ErrNotFound = errors.New("file not found")

// FileInfo describes a stored file.
type FileInfo struct {
	Ref         string
	Name        string
	ContentType string
	Folder      string
	Size        int64
}

//go:generate mockgen -destination=mock/mock_store.go -package=mock github.com/linskybing/signflow/pkg/blob Store
type Store interface {
	// Create uploads new content into folder and returns its reference.
	Create(ctx context.Context, name, folder, contentType string, r io.Reader, size int64) (string, error)
	// Update replaces the content stored under ref, keeping its folder.
	Update(ctx context.Context, ref, name, contentType string, r io.Reader, size int64) error
	// Move re-parents the file into folder.
	Move(ctx context.Context, ref, folder string) error
	Get(ctx context.Context, ref string) (*FileInfo, error)
	Open(ctx context.Context, ref string) (io.ReadCloser, *FileInfo, error)
}
