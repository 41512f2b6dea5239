// Package fs provides file system adapters for discovery and indexing.
package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/helmvals/internal/core/ports"
)

var (
	_ ports.FileSystem = (*OSFS)(nil)
	_ ports.FileSystem = (*MapFSAdapter)(nil)
)

// OSFS implements ports.FileSystem using the standard library.
type OSFS struct{}

// NewOSFS creates a new OSFS instance.
func NewOSFS() *OSFS {
	return &OSFS{}
}

// Stat returns file info for the given path.
func (o *OSFS) Stat(path string) (iofs.FileInfo, error) {
	return os.Stat(path)
}

// ReadFile reads the entire file at path.
func (o *OSFS) ReadFile(path string) ([]byte, error) {
	// #nosec G304 -- path comes from discovery inside the caller's own tree
	return os.ReadFile(path)
}

// Glob returns entries of dir whose names match pattern.
func (o *OSFS) Glob(dir, pattern string) ([]string, error) {
	if err := validatePattern(pattern); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		// Unreadable or missing directories contribute nothing.
		return nil, nil //nolint:nilerr // skipping unreadable directories is the contract
	}
	return matchEntries(dir, pattern, entries), nil
}

// MapFSAdapter adapts an fs.FS such as fstest.MapFS to ports.FileSystem for testing.
type MapFSAdapter struct {
	FS   iofs.FS
	Root string // simulated root path
}

// NewMapFSAdapter creates a new MapFSAdapter with the given root path and filesystem.
func NewMapFSAdapter(root string, fsys iofs.FS) *MapFSAdapter {
	return &MapFSAdapter{
		FS:   fsys,
		Root: filepath.Clean(root),
	}
}

// Stat returns file info for the given path.
func (m *MapFSAdapter) Stat(path string) (iofs.FileInfo, error) {
	return iofs.Stat(m.FS, m.toRelPath(path))
}

// ReadFile reads the entire file at path.
func (m *MapFSAdapter) ReadFile(path string) ([]byte, error) {
	return iofs.ReadFile(m.FS, m.toRelPath(path))
}

// Glob returns entries of dir whose names match pattern.
func (m *MapFSAdapter) Glob(dir, pattern string) ([]string, error) {
	if err := validatePattern(pattern); err != nil {
		return nil, err
	}
	entries, err := iofs.ReadDir(m.FS, m.toRelPath(dir))
	if err != nil {
		return nil, nil //nolint:nilerr // skipping unreadable directories is the contract
	}
	return matchEntries(dir, pattern, entries), nil
}

// toRelPath converts an absolute path to a path within the filesystem.
// Paths outside the root are returned unchanged, which makes downstream fs
// operations fail with "invalid argument" or "file not found".
func (m *MapFSAdapter) toRelPath(absPath string) string {
	if !filepath.IsAbs(absPath) {
		return absPath
	}
	absPath = filepath.Clean(absPath)
	if absPath == m.Root {
		return "."
	}

	prefix := m.Root + string(filepath.Separator)
	if m.Root == string(filepath.Separator) {
		prefix = m.Root
	}
	if !strings.HasPrefix(absPath, prefix) {
		return absPath
	}
	return filepath.ToSlash(strings.TrimPrefix(absPath, prefix))
}

// validatePattern rejects malformed patterns before any directory is read.
func validatePattern(pattern string) error {
	if strings.ContainsRune(pattern, filepath.Separator) {
		return filepath.ErrBadPattern
	}
	if _, err := filepath.Match(pattern, ""); errors.Is(err, filepath.ErrBadPattern) {
		return err
	}
	return nil
}

// matchEntries filters directory entries by pattern. Entries arrive sorted by
// name, so the result is in lexical order. Dotfiles are matched like any other name.
func matchEntries(dir, pattern string, entries []iofs.DirEntry) []string {
	var matches []string
	for _, entry := range entries {
		if ok, _ := filepath.Match(pattern, entry.Name()); ok {
			matches = append(matches, filepath.Join(dir, entry.Name()))
		}
	}
	return matches
}
