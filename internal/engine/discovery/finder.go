// Package discovery finds definitions files in a directory and its ancestors.
package discovery

import (
	"fmt"
	"path/filepath"

	"go.trai.ch/helmvals/internal/core/domain"
	"go.trai.ch/helmvals/internal/core/ports"
)

var _ ports.ValuesFinder = (*Finder)(nil)

// Finder implements ports.ValuesFinder by walking directory ancestry.
type Finder struct {
	fs          ports.FileSystem
	logger      ports.Logger
	patterns    []string
	rootMarkers []string
}

// NewFinder creates a Finder applying the patterns and stop markers of settings.
func NewFinder(fsys ports.FileSystem, logger ports.Logger, settings domain.Settings) *Finder {
	patterns := settings.ValueFiles
	if len(patterns) == 0 {
		patterns = domain.DefaultValueFiles()
	}
	return &Finder{
		fs:          fsys,
		logger:      logger,
		patterns:    patterns,
		rootMarkers: settings.RootMarkers,
	}
}

// Discover returns the regular files matching the configured patterns in
// startDir and each of its ancestors, closest directory first. Within one
// directory files follow pattern order, then lexical order; a file matched
// by several patterns is listed once.
func (f *Finder) Discover(startDir string) []string {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		f.logger.Debug(fmt.Sprintf("cannot resolve %s: %v", startDir, err))
		return nil
	}

	var found []string
	seen := make(map[string]struct{})
	badPatterns := make(map[string]struct{})

	for {
		for _, pattern := range f.patterns {
			matches, err := f.fs.Glob(dir, pattern)
			if err != nil {
				if _, reported := badPatterns[pattern]; !reported {
					badPatterns[pattern] = struct{}{}
					f.logger.Warn(fmt.Sprintf("ignoring value file pattern %q: %v", pattern, err))
				}
				continue
			}
			for _, match := range matches {
				if _, dup := seen[match]; dup || !f.isRegular(match) {
					continue
				}
				seen[match] = struct{}{}
				found = append(found, match)
			}
		}

		if f.isRoot(dir) {
			break
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached the file-system root
			break
		}
		dir = parent
	}

	return found
}

func (f *Finder) isRegular(path string) bool {
	info, err := f.fs.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// isRoot reports whether dir contains one of the configured root markers.
func (f *Finder) isRoot(dir string) bool {
	for _, marker := range f.rootMarkers {
		if _, err := f.fs.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}
