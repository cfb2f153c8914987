package archive

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// FSStore archives documents into a local directory. The viewable link is
// built from baseURL when configured (a reverse proxy or object-storage
// gateway serving the directory), otherwise a file:// URL.
type FSStore struct {
	dir     string
	baseURL string
}

// NewFSStore ensures dir exists and returns the store.
func NewFSStore(dir, baseURL string) (*FSStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create archive dir: %w", err)
	}
	return &FSStore{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

func (s *FSStore) Store(_ context.Context, name string, data []byte) (Handle, error) {
	name = sanitize(name)
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return Handle{}, fmt.Errorf("archive %s: %w", name, err)
	}

	link := "file://" + path
	if s.baseURL != "" {
		link = s.baseURL + "/" + url.PathEscape(name)
	}
	return Handle{Name: name, Link: link}, nil
}

// sanitize keeps archived names flat: no separators, no parent traversal.
func sanitize(name string) string {
	name = filepath.Base(name)
	return strings.ReplaceAll(name, " ", "_")
}
