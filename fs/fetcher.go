// Package fs provides file-based corpus retrieval.
package fs

import (
	"context"
	"errors"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/hellodict"
)

// Ensure Fetcher implements hellodict.Fetcher at compile time.
var _ hellodict.Fetcher = (*Fetcher)(nil)

// Fetcher reads corpus files from the local filesystem. Sources are plain
// paths or file:// URLs. Relative paths resolve against the base directory.
type Fetcher struct {
	baseDir string
}

// NewFetcher creates a new Fetcher resolving relative paths against baseDir.
// An empty baseDir means the working directory.
func NewFetcher(baseDir string) *Fetcher {
	return &Fetcher{baseDir: baseDir}
}

// Fetch reads the file named by src.URL and verifies it against
// src.Integrity when one is set.
func (f *Fetcher) Fetch(ctx context.Context, src hellodict.Source) ([]byte, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := f.Path(src.URL)
	if err != nil {
		return nil, err
	}

	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, hellodict.Errorf(hellodict.ENOTFOUND, "corpus file %s not found", path)
	} else if err != nil {
		return nil, hellodict.Errorf(hellodict.EUNAVAILABLE, "read %s: %v", path, err)
	}

	if strings.TrimSpace(src.Integrity) != "" {
		if err := hellodict.VerifyIntegrity(b, src.Integrity); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// Path converts a source URL to a filesystem path.
// Example: file:///srv/gcide.json.zst → /srv/gcide.json.zst
func (f *Fetcher) Path(rawURL string) (string, error) {
	path := rawURL
	if strings.HasPrefix(rawURL, "file:") {
		u, err := url.Parse(rawURL)
		if err != nil {
			return "", hellodict.Errorf(hellodict.EINVALID, "invalid corpus URL: %v", err)
		}
		path = u.Path
		if path == "" {
			path = u.Opaque
		}
	}
	if path == "" {
		return "", hellodict.Errorf(hellodict.EINVALID, "corpus path required")
	}

	path = filepath.FromSlash(path)
	if !filepath.IsAbs(path) && f.baseDir != "" {
		path = filepath.Join(f.baseDir, path)
	}
	return path, nil
}

// IsLocal reports whether rawURL names a local file rather than a remote
// resource.
func IsLocal(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	// Single-letter schemes are Windows drive letters.
	return u.Scheme == "" || u.Scheme == "file" || len(u.Scheme) == 1
}
