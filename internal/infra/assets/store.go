// Package assets manages the on-disk preview images cached for pages.
// Each page owns one directory under the data root, keyed by its id.
package assets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// imageFileName is the fixed name of a page's cached preview. The pipeline
// re-encodes every preview as JPEG, so the extension never varies.
const imageFileName = "image.jpg"

// Store writes and removes per-page asset directories under a single root.
type Store struct {
	root string
}

// NewStore creates a Store rooted at dir. The root directory is created on
// first write, not here, so construction never touches the filesystem.
func NewStore(dir string) *Store {
	return &Store{root: dir}
}

// pageDir returns the directory owned by the given page id.
func (s *Store) pageDir(pageID int64) string {
	return filepath.Join(s.root, strconv.FormatInt(pageID, 10))
}

// SaveImage writes a page's preview image and returns the stored path
// relative to the process working directory, suitable for persisting on the
// page record.
func (s *Store) SaveImage(pageID int64, data []byte) (string, error) {
	dir := s.pageDir(pageID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("SaveImage: %w", err)
	}

	path := filepath.Join(dir, imageFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("SaveImage: %w", err)
	}

	return path, nil
}

// CopyImage duplicates the stored image at srcPath into the directory owned
// by dstPageID and returns the new path. Used when archiving copies a live
// page under a fresh id.
func (s *Store) CopyImage(srcPath string, dstPageID int64) (string, error) {
	src, err := os.Open(srcPath)
	if err != nil {
		return "", fmt.Errorf("CopyImage: %w", err)
	}
	defer func() { _ = src.Close() }()

	dir := s.pageDir(dstPageID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("CopyImage: %w", err)
	}

	dstPath := filepath.Join(dir, filepath.Base(srcPath))
	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("CopyImage: %w", err)
	}
	defer func() { _ = dst.Close() }()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("CopyImage: %w", err)
	}

	return dstPath, nil
}

// RemovePageDir deletes a page's asset directory and everything inside it.
// Removing a directory that was never created is not an error.
func (s *Store) RemovePageDir(pageID int64) error {
	if err := os.RemoveAll(s.pageDir(pageID)); err != nil {
		return fmt.Errorf("RemovePageDir: %w", err)
	}
	return nil
}
