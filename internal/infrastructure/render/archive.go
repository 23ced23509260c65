package render

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/innovation-consortium/billing-backend/internal/domain/billing"
)

// DocumentArchive keeps copies of issued PDFs for audit and re-download
type DocumentArchive interface {
	// Store saves a rendered document and returns its relative path
	Store(ctx context.Context, kind billing.DocumentKind, recordID string, data []byte) (string, error)
	// Get retrieves an archived document by its relative path
	Get(ctx context.Context, path string) (io.ReadCloser, error)
	// CleanupOlderThan removes archived files older than the given age
	CleanupOlderThan(ctx context.Context, age time.Duration) (int, error)
}

// FileSystemArchiveConfig contains configuration for the filesystem archive
type FileSystemArchiveConfig struct {
	// BasePath is the root directory for archived PDFs
	// Default: /data/documents
	BasePath string
	// RetentionDays is how long to keep PDFs (0 = forever)
	RetentionDays int
	// Logger for operations
	Logger *zap.Logger
}

// FileSystemArchive stores rendered PDFs on the local file system
type FileSystemArchive struct {
	config *FileSystemArchiveConfig
	logger *zap.Logger
}

// safeIDPattern limits record ids usable as file names. Anything else gets
// a generated name instead.
var safeIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// NewFileSystemArchive creates a filesystem-backed document archive
func NewFileSystemArchive(config *FileSystemArchiveConfig) (*FileSystemArchive, error) {
	if config == nil {
		config = &FileSystemArchiveConfig{}
	}
	if config.BasePath == "" {
		config.BasePath = "/data/documents"
	}

	if err := os.MkdirAll(config.BasePath, 0755); err != nil {
		return nil, NewRenderError(ErrCodeArchiveFailed,
			fmt.Sprintf("failed to create archive directory: %s", config.BasePath), err)
	}

	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &FileSystemArchive{config: config, logger: logger}, nil
}

// Store saves a PDF to the archive
// Path structure: {base}/{kind}/{year}/{month}/{record_id}.pdf
func (a *FileSystemArchive) Store(ctx context.Context, kind billing.DocumentKind, recordID string, data []byte) (string, error) {
	select {
	case <-ctx.Done():
		return "", NewRenderError(ErrCodeArchiveFailed, "operation cancelled", ctx.Err())
	default:
	}

	if !kind.IsValid() {
		return "", NewRenderError(ErrCodeArchiveFailed, "invalid document kind", nil)
	}
	if len(data) == 0 {
		return "", NewRenderError(ErrCodeArchiveFailed, "PDF data is empty", nil)
	}

	fileName := recordID + ".pdf"
	if !safeIDPattern.MatchString(recordID) {
		fileName = uuid.New().String() + ".pdf"
		a.logger.Warn("record id not filesystem-safe, using generated name",
			zap.String("record_id", recordID),
			zap.String("file", fileName))
	}

	now := time.Now()
	dirPath := filepath.Join(
		a.config.BasePath,
		strings.ToLower(kind.String()),
		fmt.Sprintf("%d", now.Year()),
		fmt.Sprintf("%02d", now.Month()),
	)
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return "", NewRenderError(ErrCodeArchiveFailed, "failed to create directory", err)
	}

	filePath := filepath.Join(dirPath, fileName)
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", NewRenderError(ErrCodeArchiveFailed, "failed to write PDF file", err)
	}

	relativePath := filepath.Join(
		strings.ToLower(kind.String()),
		fmt.Sprintf("%d", now.Year()),
		fmt.Sprintf("%02d", now.Month()),
		fileName,
	)

	a.logger.Info("document archived",
		zap.String("path", filePath),
		zap.Int("size", len(data)))

	return relativePath, nil
}

// Get retrieves an archived PDF by its relative path
func (a *FileSystemArchive) Get(ctx context.Context, path string) (io.ReadCloser, error) {
	select {
	case <-ctx.Done():
		return nil, NewRenderError(ErrCodeArchiveFailed, "operation cancelled", ctx.Err())
	default:
	}

	// Sanitize path to prevent directory traversal
	cleanPath := filepath.Clean(path)
	if filepath.IsAbs(cleanPath) || containsDotDot(path) {
		a.logger.Warn("blocked potentially malicious path",
			zap.String("path", path),
			zap.String("cleanPath", cleanPath))
		return nil, NewRenderError(ErrCodeArchiveFailed, "invalid path", nil)
	}

	fullPath := filepath.Join(a.config.BasePath, cleanPath)

	// Verify the resolved path is still under BasePath
	absBase, err := filepath.Abs(a.config.BasePath)
	if err != nil {
		return nil, NewRenderError(ErrCodeArchiveFailed, "failed to resolve base path", err)
	}
	absPath, err := filepath.Abs(fullPath)
	if err != nil {
		return nil, NewRenderError(ErrCodeArchiveFailed, "failed to resolve file path", err)
	}
	if !strings.HasPrefix(absPath, absBase+string(filepath.Separator)) && absPath != absBase {
		a.logger.Warn("path escape attempt blocked",
			zap.String("path", path),
			zap.String("absPath", absPath))
		return nil, NewRenderError(ErrCodeArchiveFailed, "invalid path", nil)
	}

	file, err := os.Open(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewRenderError(ErrCodeArchiveFailed, "document not found", err)
		}
		return nil, NewRenderError(ErrCodeArchiveFailed, "failed to open document", err)
	}
	return file, nil
}

// CleanupOlderThan removes archived files older than the specified duration
func (a *FileSystemArchive) CleanupOlderThan(ctx context.Context, age time.Duration) (int, error) {
	cutoff := time.Now().Add(-age)
	deletedCount := 0

	err := filepath.Walk(a.config.BasePath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // Skip errors
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if info.IsDir() || filepath.Ext(path) != ".pdf" {
			return nil
		}

		if info.ModTime().Before(cutoff) {
			if err := os.Remove(path); err == nil {
				deletedCount++
				a.logger.Debug("deleted old document", zap.String("path", path))
			}
		}
		return nil
	})

	if err != nil && err != context.Canceled && err != context.DeadlineExceeded {
		return deletedCount, NewRenderError(ErrCodeArchiveFailed, "cleanup walk failed", err)
	}

	a.logger.Info("archive cleanup completed",
		zap.Int("deleted", deletedCount),
		zap.Duration("age", age))

	return deletedCount, nil
}

// containsDotDot checks if a path contains ".." components
func containsDotDot(path string) bool {
	parts := strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == filepath.Separator
	})
	return slices.Contains(parts, "..")
}

// Ensure FileSystemArchive implements DocumentArchive
var _ DocumentArchive = (*FileSystemArchive)(nil)
