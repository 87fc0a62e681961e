package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Categories map to the upload subdirectories and the URL prefixes the
// images are served back under.
const (
	CategoryUserPFP     = "UserPFPs"
	CategoryShowroomPFP = "ShowroomPFPs"
	CategoryCarImage    = "CarImages"
)

var ErrUnsupportedType = errors.New("unsupported image type")

// ImageStore persists uploaded images on the local filesystem, one
// subdirectory per category, and hands back the public URL path.
type ImageStore struct {
	baseDir     string
	maxFileSize int64
}

func NewImageStore(baseDir string, maxFileSizeMB int64) (*ImageStore, error) {
	for _, category := range []string{CategoryUserPFP, CategoryShowroomPFP, CategoryCarImage} {
		if err := os.MkdirAll(filepath.Join(baseDir, category), 0755); err != nil {
			return nil, fmt.Errorf("failed to create upload directory: %w", err)
		}
	}
	return &ImageStore{
		baseDir:     baseDir,
		maxFileSize: maxFileSizeMB << 20,
	}, nil
}

// Save writes one multipart file under the given category with a uuid
// filename and returns its URL path (e.g. "/CarImages/<uuid>.jpg").
func (s *ImageStore) Save(file multipart.File, header *multipart.FileHeader, category string) (string, error) {
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif":
	default:
		return "", ErrUnsupportedType
	}
	if s.maxFileSize > 0 && header.Size > s.maxFileSize {
		return "", fmt.Errorf("file exceeds maximum size of %d bytes", s.maxFileSize)
	}

	name := uuid.New().String() + ext
	fullPath := filepath.Join(s.baseDir, category, name)

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return "/" + category + "/" + name, nil
}

// Delete removes a stored image given its URL path. Missing files are not
// an error.
func (s *ImageStore) Delete(urlPath string) error {
	rel := strings.TrimPrefix(urlPath, "/")
	if rel == "" || strings.Contains(rel, "..") {
		return nil
	}
	err := os.Remove(filepath.Join(s.baseDir, filepath.FromSlash(rel)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// Dir returns the filesystem directory for a category, for static serving.
func (s *ImageStore) Dir(category string) string {
	return filepath.Join(s.baseDir, category)
}
