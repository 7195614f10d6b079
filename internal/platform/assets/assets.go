// Package assets stores uploaded profile images on the local filesystem and
// serves them under a public URL prefix.
package assets

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/natur-festival/natur.eco/internal/platform/id"
	"github.com/natur-festival/natur.eco/internal/profile"
)

// DefaultURLPrefix is the public path images are served under.
const DefaultURLPrefix = "/assets"

// Store persists uploaded images under a root directory.
type Store struct {
	dir       string
	urlPrefix string
}

// NewStore returns a filesystem asset store rooted at dir.
func NewStore(dir string) (*Store, error) {
	trimmed := strings.TrimSpace(dir)
	if trimmed == "" {
		return nil, fmt.Errorf("asset directory is required")
	}
	if err := os.MkdirAll(trimmed, 0o755); err != nil {
		return nil, fmt.Errorf("create asset directory: %w", err)
	}
	return &Store{dir: trimmed, urlPrefix: DefaultURLPrefix}, nil
}

// SaveImage writes validated image bytes and returns their public URL.
func (s *Store) SaveImage(ctx context.Context, userID string, kind profile.ImageKind, contentType string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if strings.TrimSpace(userID) == "" {
		return "", fmt.Errorf("user id is required")
	}
	ext, ok := profile.ImageExtension(contentType)
	if !ok {
		return "", fmt.Errorf("unsupported image content type %q", contentType)
	}
	assetID, err := id.NewID()
	if err != nil {
		return "", fmt.Errorf("generate asset id: %w", err)
	}

	userDir := filepath.Join(s.dir, userID)
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		return "", fmt.Errorf("create user asset directory: %w", err)
	}
	name := fmt.Sprintf("%s-%s%s", kind, assetID, ext)
	if err := os.WriteFile(filepath.Join(userDir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}
	return path.Join(s.urlPrefix, userID, name), nil
}

// Handler serves stored images under the public URL prefix.
func (s *Store) Handler() http.Handler {
	return http.StripPrefix(s.urlPrefix+"/", http.FileServer(http.Dir(s.dir)))
}
