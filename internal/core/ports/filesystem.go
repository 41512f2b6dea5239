package ports

import "io/fs"

// FileSystem abstracts the file system operations used by discovery,
// indexing and location lookups.
//
//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// Stat returns file info for the given absolute path.
	Stat(path string) (fs.FileInfo, error)
	// ReadFile reads the entire file at the given absolute path.
	ReadFile(path string) ([]byte, error)
	// Glob returns the absolute paths of entries directly inside dir whose
	// names match pattern, in lexical order. Unreadable directories yield no matches.
	Glob(dir, pattern string) ([]string, error)
}
