package ports

import "go.trai.ch/helmvals/internal/core/domain"

// ValuesFinder discovers the definitions files relevant to a directory.
//
//go:generate mockgen -source=engine.go -destination=mocks/mock_engine.go -package=mocks
type ValuesFinder interface {
	// Discover returns candidate files, closest directory first.
	Discover(startDir string) []string
}

// DefinitionIndex caches the flattened content of definitions files.
type DefinitionIndex interface {
	// ResolveAll returns the up-to-date content of every file discovered for the document.
	ResolveAll(documentPath string) *domain.PathIndex
	// Invalidate evicts the cached content of the given files.
	Invalidate(paths ...string)
}

// KeyLocator finds where a dotted path is defined inside a file.
type KeyLocator interface {
	// Locate returns the location of the terminal key of path in file.
	Locate(file, path string) (domain.Location, bool)
}
