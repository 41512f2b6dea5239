package render

import (
	"go.trai.ch/helmvals/internal/core/domain"
	"go.trai.ch/zerr"
)

// Format selects how query results are written.
type Format string

const (
	// FormatMarkdown renders hover content as markdown.
	FormatMarkdown Format = "markdown"
	// FormatPlain renders results as human-readable text.
	FormatPlain Format = "plain"
	// FormatJSON renders results as JSON.
	FormatJSON Format = "json"
)

// ParseFormat validates a format name. The empty name selects def.
func ParseFormat(name string, def Format, allowed ...Format) (Format, error) {
	if name == "" {
		return def, nil
	}
	for _, f := range allowed {
		if string(f) == name {
			return f, nil
		}
	}
	return "", zerr.With(domain.ErrUnknownFormat, "format", name)
}
