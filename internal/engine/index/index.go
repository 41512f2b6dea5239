// Package index caches the flattened content of definitions files and keeps
// it coherent with the files on disk.
package index

import (
	"fmt"
	"path/filepath"
	"sync"

	"go.trai.ch/helmvals/internal/core/domain"
	"go.trai.ch/helmvals/internal/core/ports"
	"go.trai.ch/helmvals/internal/engine/flatten"
	"go.trai.ch/zerr"
)

var _ ports.DefinitionIndex = (*Index)(nil)

// record pairs a cached file with the modification time it was parsed at.
type record struct {
	meta domain.CacheRecord
	file *domain.FileIndex
}

// Index implements ports.DefinitionIndex.
//
// Entries are validated against the on-disk modification time on every
// query and re-parsed wholesale when it differs. A single mutex guards the
// entries, so ResolveAll and Invalidate interleave only at file granularity.
type Index struct {
	mu      sync.Mutex
	entries map[string]*record
	fs      ports.FileSystem
	codec   ports.ValuesCodec
	finder  ports.ValuesFinder
	watcher ports.Watcher
	logger  ports.Logger
}

// New creates an Index. watcher may be nil, in which case no watches are requested.
func New(
	fsys ports.FileSystem,
	codec ports.ValuesCodec,
	finder ports.ValuesFinder,
	watcher ports.Watcher,
	logger ports.Logger,
) *Index {
	return &Index{
		entries: make(map[string]*record),
		fs:      fsys,
		codec:   codec,
		finder:  finder,
		watcher: watcher,
		logger:  logger,
	}
}

// ResolveAll returns the current content of every definitions file
// discovered for documentPath. Files that cannot be read or parsed are
// left out; nothing is reported to the caller.
func (ix *Index) ResolveAll(documentPath string) *domain.PathIndex {
	result := domain.NewPathIndex()

	for _, path := range ix.finder.Discover(filepath.Dir(documentPath)) {
		if file := ix.resolve(path); file != nil {
			result.Add(file)
		}
	}

	return result
}

// Invalidate evicts the cached content of the given files.
func (ix *Index) Invalidate(paths ...string) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	for _, path := range paths {
		delete(ix.entries, filepath.Clean(path))
	}
}

// Len returns the number of cached files.
func (ix *Index) Len() int {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	return len(ix.entries)
}

// resolve returns the cached content of path, re-parsing it when stale.
func (ix *Index) resolve(path string) *domain.FileIndex {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	info, err := ix.fs.Stat(path)
	if err != nil {
		delete(ix.entries, path)
		ix.logger.Debug(fmt.Sprintf("skipping %s: %v", path, err))
		return nil
	}
	modTime := info.ModTime().UnixNano()

	if cached, ok := ix.entries[path]; ok && cached.meta.ModTime == modTime {
		return cached.file
	}

	file, err := ix.load(path)
	if err != nil {
		// A stale entry must not outlive a failed refresh.
		delete(ix.entries, path)
		ix.logger.Debug(fmt.Sprintf("skipping %s: %v", path, err))
		return nil
	}

	ix.entries[path] = &record{
		meta: domain.CacheRecord{ModTime: modTime},
		file: file,
	}
	ix.watch(path)

	return file
}

func (ix *Index) load(path string) (*domain.FileIndex, error) {
	data, err := ix.fs.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrValuesReadFailed.Error()), "path", path)
	}

	root, err := ix.codec.Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	return flatten.Build(root, path), nil
}

func (ix *Index) watch(path string) {
	if ix.watcher == nil {
		return
	}
	if err := ix.watcher.Watch(path); err != nil {
		ix.logger.Warn(fmt.Sprintf("not watching %s for changes: %v", path, err))
	}
}
