package locate

import (
	"strings"

	"go.trai.ch/helmvals/internal/core/domain"
)

// scan finds the line declaring the last of segments using indentation
// alone. Each segment after the first must be declared at or below the depth
// of the previous one. A key at or above the depth of the current match that
// does not continue it ends the match unless it restarts it with the first
// segment.
func scan(text string, segments []string) (domain.Position, bool) {
	matched := 0
	lastIndent := -1

	for lineNo, line := range strings.Split(text, "\n") {
		key, indent, ok := declaredKey(line)
		if !ok {
			continue
		}

		if key == segments[matched] && indent >= lastIndent {
			matched++
			lastIndent = indent
			if matched == len(segments) {
				return domain.Position{Line: lineNo, Column: indent}, true
			}
			continue
		}

		if matched == 0 || indent > lastIndent {
			continue
		}
		if key != segments[0] {
			matched, lastIndent = 0, -1
			continue
		}
		matched, lastIndent = 1, indent
		if len(segments) == 1 {
			return domain.Position{Line: lineNo, Column: indent}, true
		}
	}

	return domain.Position{}, false
}

// declaredKey returns the key declared on line and its indentation. Blank
// lines, comments and lines without a colon declare nothing.
func declaredKey(line string) (string, int, bool) {
	line = strings.TrimRight(line, "\r")
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", 0, false
	}

	colon := strings.Index(trimmed, ":")
	if colon < 0 {
		return "", 0, false
	}

	key := strings.TrimSpace(trimmed[:colon])
	key = strings.Trim(key, `"'`)
	if key == "" {
		return "", 0, false
	}

	return key, len(line) - len(trimmed), true
}
