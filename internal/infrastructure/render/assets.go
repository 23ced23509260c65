package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Asset is a resolvable image file (logo, signature)
type Asset struct {
	Name   string
	Path   string
	Format string // gofpdf image type: "PNG", "JPG", "GIF"
}

// AssetStore resolves named assets to files on disk
type AssetStore interface {
	// Resolve locates the asset by file name. It returns an error when the
	// file does not exist or has an unsupported format.
	Resolve(name string) (Asset, error)
}

// DirAssetStore resolves assets from a single directory
type DirAssetStore struct {
	dir string
}

// NewDirAssetStore creates an AssetStore rooted at dir
func NewDirAssetStore(dir string) *DirAssetStore {
	return &DirAssetStore{dir: dir}
}

// Resolve implements AssetStore
func (s *DirAssetStore) Resolve(name string) (Asset, error) {
	if name == "" || strings.Contains(name, "..") {
		return Asset{}, fmt.Errorf("invalid asset name: %q", name)
	}

	format, err := imageFormat(name)
	if err != nil {
		return Asset{}, err
	}

	path := filepath.Join(s.dir, name)
	if _, err := os.Stat(path); err != nil {
		return Asset{}, fmt.Errorf("resolve asset %s: %w", name, err)
	}
	return Asset{Name: name, Path: path, Format: format}, nil
}

// imageFormat maps a file extension to the encoder's image type
func imageFormat(name string) (string, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		return "PNG", nil
	case ".jpg", ".jpeg":
		return "JPG", nil
	case ".gif":
		return "GIF", nil
	default:
		return "", fmt.Errorf("unsupported asset format: %s", name)
	}
}
