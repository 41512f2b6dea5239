// Package expr finds template reference expressions in lines of text.
package expr

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"go.trai.ch/helmvals/internal/core/domain"
)

var (
	// expressionPattern matches "{{", an optional trim marker, the values
	// root reference, a dotted path, an optional pipeline which is ignored,
	// an optional trim marker and the first "}}" after the path. A lone "}"
	// inside the pipeline does not close the action.
	expressionPattern = regexp.MustCompile(`\{\{-?\s*\$?\.Values\.([A-Za-z0-9_.]+)(.*?)\s*-?\}\}`)

	// prefixPattern matches a partially typed reference at the end of a line.
	prefixPattern = regexp.MustCompile(`\$?\.Values\.([A-Za-z0-9_.]*)$`)
)

const (
	openDelim  = "{{"
	closeDelim = "}}"
)

// FindExpressions returns every expression in line, left to right.
func FindExpressions(line string) []domain.Match {
	locs := expressionPattern.FindAllStringSubmatchIndex(line, -1)
	if len(locs) == 0 {
		return nil
	}

	matches := make([]domain.Match, 0, len(locs))
	for _, loc := range locs {
		path := strings.TrimRight(line[loc[2]:loc[3]], ".")
		if path == "" {
			continue
		}
		matches = append(matches, domain.Match{
			Path:  path,
			Text:  line[loc[0]:loc[1]],
			Start: utf8.RuneCountInString(line[:loc[0]]),
			End:   utf8.RuneCountInString(line[:loc[1]]),
		})
	}
	return matches
}

// ExpressionAt returns the first expression whose range contains offset.
func ExpressionAt(line string, offset int) (domain.Match, bool) {
	for _, match := range FindExpressions(line) {
		if match.Contains(offset) {
			return match, true
		}
	}
	return domain.Match{}, false
}

// CompletionPrefix returns the partial dotted path typed after the values
// root reference immediately before offset. It reports false when the
// cursor is not inside an open template action or no reference precedes it.
func CompletionPrefix(line string, offset int) (string, bool) {
	before := runePrefix(line, offset)

	open := strings.LastIndex(before, openDelim)
	if open < 0 || strings.LastIndex(before, closeDelim) > open {
		return "", false
	}

	sub := prefixPattern.FindStringSubmatch(before[open:])
	if sub == nil {
		return "", false
	}
	return sub[1], true
}

// runePrefix returns the first n characters of s.
func runePrefix(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
