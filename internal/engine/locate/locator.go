// Package locate finds the line and column at which a dotted path is
// defined inside a definitions file.
package locate

import (
	"fmt"
	"unicode/utf8"

	"go.trai.ch/helmvals/internal/core/domain"
	"go.trai.ch/helmvals/internal/core/ports"
)

var _ ports.KeyLocator = (*Locator)(nil)

// Locator implements ports.KeyLocator.
//
// The file is parsed into a position-annotated tree and walked segment by
// segment. Files that do not parse are scanned line by line with an
// indentation heuristic instead.
type Locator struct {
	fs     ports.FileSystem
	codec  ports.ValuesCodec
	logger ports.Logger
}

// New creates a Locator.
func New(fsys ports.FileSystem, codec ports.ValuesCodec, logger ports.Logger) *Locator {
	return &Locator{fs: fsys, codec: codec, logger: logger}
}

// Locate returns the position of the terminal key of path in file.
func (l *Locator) Locate(file, path string) (domain.Location, bool) {
	segments := domain.SplitPath(path)
	if len(segments) == 0 {
		return domain.Location{}, false
	}

	data, err := l.fs.ReadFile(file)
	if err != nil {
		l.logger.Debug(fmt.Sprintf("cannot locate %s in %s: %v", path, file, err))
		return domain.Location{}, false
	}

	var pos domain.Position
	var ok bool

	root, err := l.codec.Parse(data)
	if err != nil {
		pos, ok = scan(string(data), segments)
	} else {
		pos, ok = structural(root, segments)
	}
	if !ok {
		return domain.Location{}, false
	}

	key := segments[len(segments)-1]
	return domain.Location{
		File:      file,
		Line:      pos.Line,
		Column:    pos.Column,
		EndColumn: pos.Column + utf8.RuneCountInString(key),
	}, true
}

func structural(root domain.Value, segments []string) (domain.Position, bool) {
	entry, ok := domain.Lookup(root, segments)
	if !ok {
		return domain.Position{}, false
	}
	return entry.Pos, true
}
