package app

import (
	"strings"

	"go.trai.ch/helmvals/internal/core/domain"
	"go.trai.ch/zerr"
)

// documentLine returns the text of the 0-based line n of document. A
// non-nil override is returned as is without touching the file system.
func (a *App) documentLine(document string, n int, override *string) (string, error) {
	if override != nil {
		return *override, nil
	}

	data, err := a.fs.ReadFile(document)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrDocumentReadFailed.Error()), "path", document)
	}

	lines := strings.Split(string(data), "\n")
	if n < 0 || n >= len(lines) {
		err := zerr.With(domain.ErrLineOutOfRange, "line", n)
		return "", zerr.With(err, "lines", len(lines))
	}
	return strings.TrimSuffix(lines[n], "\r"), nil
}
