package filestore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/vkosyk/course-catalog-api/pkg/apperrors"
)

// Codec serializes a full collection snapshot to and from its flat-file
// representation.
type Codec[T any] interface {
	Encode(w io.Writer, records []T) error
	Decode(r io.Reader) ([]T, error)
}

// Collection is one named set of records persisted together as a single
// file. Every mutation rewrites the whole file; this is O(n) per write
// and acceptable only because collections at this tier stay small.
//
// Reads never take the writer lock: Save replaces the file with a single
// atomic rename, so a concurrent Load sees either the fully-old or the
// fully-new contents, never a mix.
type Collection[T any] struct {
	path  string
	codec Codec[T]

	// mu serializes read-modify-write cycles: at most one Update runs
	// per collection at a time. Waiter wake-up order is the runtime's
	// (fair under sustained contention, not strict FIFO).
	mu sync.Mutex
}

func NewCollection[T any](path string, codec Codec[T]) *Collection[T] {
	return &Collection[T]{path: path, codec: codec}
}

// Load returns the latest committed snapshot. A missing file is an empty
// collection; a file that exists but cannot be decoded is reported as
// apperrors.ErrCorrupted instead of being masked as empty.
func (c *Collection[T]) Load() ([]T, error) {
	f, err := os.Open(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("open %s: %w", filepath.Base(c.path), err)
	}
	defer func() { _ = f.Close() }()

	records, err := c.codec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrCorrupted, filepath.Base(c.path), err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// Save writes the full snapshot to a sibling temp file and renames it
// into place. If any step fails the temp artifact is removed and the
// previous file remains authoritative.
func (c *Collection[T]) Save(records []T) error {
	dir := filepath.Dir(c.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(c.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: create temp: %v", apperrors.ErrStoreWrite, err)
	}
	tmpName := tmp.Name()

	if err := c.codec.Encode(tmp, records); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: encode: %v", apperrors.ErrStoreWrite, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: sync: %v", apperrors.ErrStoreWrite, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: close: %v", apperrors.ErrStoreWrite, err)
	}
	if err := os.Rename(tmpName, c.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: rename: %v", apperrors.ErrStoreWrite, err)
	}
	return nil
}

// Update runs fn inside the collection's exclusive section: load the
// fresh snapshot, apply the delta in memory, save atomically. Two
// concurrent Updates can therefore never both start from the same stale
// snapshot (the lost-update race). fn returning an error aborts the
// cycle without touching the file.
func (c *Collection[T]) Update(fn func(records []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.Load()
	if err != nil {
		return err
	}
	next, err := fn(records)
	if err != nil {
		return err
	}
	return c.Save(next)
}
