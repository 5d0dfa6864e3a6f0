package filestorage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/yigit/injurydesk/internal/pkg/logger"
)

// ErrInvalidKey is returned for keys that would escape the storage root
var ErrInvalidKey = errors.New("invalid object key")

// LocalStorage stores objects on the local filesystem.
type LocalStorage struct {
	basePath string // Root directory of the store
	baseURL  string // URL prefix the root is served under
}

// NewLocalStorage creates a new LocalStorage rooted at basePath.
// baseURL is prepended to keys when building public URLs.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Debug().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

// Root returns the directory objects are stored in
func (ls *LocalStorage) Root() string {
	return ls.basePath
}

// cleanKey normalizes key and rejects empty or parent-relative keys
func cleanKey(key string) (string, error) {
	key = strings.Trim(strings.ReplaceAll(key, "\\", "/"), "/")
	for _, segment := range strings.Split(key, "/") {
		if segment == ".." {
			return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
		}
	}
	cleaned := path.Clean(key)
	if cleaned == "." || cleaned == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return cleaned, nil
}

// Put writes r under key
func (ls *LocalStorage) Put(ctx context.Context, key string, r io.Reader) (int64, error) {
	key, err := cleanKey(key)
	if err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	dstPath := filepath.Join(ls.basePath, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dstPath), os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create subdirectory")
		return 0, fmt.Errorf("failed to create subdirectory: %w", err)
	}

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return 0, fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	n, err := io.Copy(dst, r)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy object content")
		_ = os.Remove(dstPath)
		return 0, fmt.Errorf("failed to save object content: %w", err)
	}

	return n, nil
}

// SaveUpload stores a multipart upload as <prefix>/<uuid><ext>
func (ls *LocalStorage) SaveUpload(ctx context.Context, fileHeader *multipart.FileHeader, prefix string) (*Object, error) {
	if fileHeader == nil {
		return nil, fmt.Errorf("no file uploaded")
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	key := uuid.New().String() + ext
	if prefix = strings.Trim(prefix, "/"); prefix != "" {
		key = prefix + "/" + key
	}

	size, err := ls.Put(ctx, key, file)
	if err != nil {
		return nil, err
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = mime.TypeByExtension(ext)
	}
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	obj := &Object{
		Key:      key,
		URL:      ls.URL(key),
		Filename: filepath.Base(fileHeader.Filename),
		Size:     size,
		MimeType: mimeType,
	}

	logger.Info().Str("filename", obj.Filename).Str("key", key).Int64("size", size).Msg("File saved successfully")
	return obj, nil
}

// Delete removes the object at key. Missing objects are ignored.
func (ls *LocalStorage) Delete(_ context.Context, key string) error {
	key, err := cleanKey(key)
	if err != nil {
		return err
	}

	physicalPath := filepath.Join(ls.basePath, filepath.FromSlash(key))
	if err := os.Remove(physicalPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
			return nil
		}
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("path", physicalPath).Msg("File deleted successfully")
	return nil
}

// URL returns the public URL of key
func (ls *LocalStorage) URL(key string) string {
	return ls.baseURL + "/" + strings.TrimLeft(key, "/")
}

var _ Uploader = (*LocalStorage)(nil)
