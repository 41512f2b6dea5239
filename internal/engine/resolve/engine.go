// Package resolve answers hover, definition and completion queries for
// template reference expressions.
package resolve

import (
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/helmvals/internal/core/domain"
	"go.trai.ch/helmvals/internal/core/ports"
	"go.trai.ch/helmvals/internal/engine/expr"
)

// ObjectDetail is the detail label of completions that lead to nested keys.
const ObjectDetail = "object"

// Engine orchestrates discovery, the definition index and key location.
// It holds no state of its own; all caching lives in the index.
type Engine struct {
	finder  ports.ValuesFinder
	index   ports.DefinitionIndex
	locator ports.KeyLocator
}

// New creates an Engine.
func New(finder ports.ValuesFinder, index ports.DefinitionIndex, locator ports.KeyLocator) *Engine {
	return &Engine{
		finder:  finder,
		index:   index,
		locator: locator,
	}
}

// Hover returns the definitions of the expression containing offset in line.
func (e *Engine) Hover(documentPath, line string, offset int) domain.HoverResult {
	match, ok := expr.ExpressionAt(line, offset)
	if !ok {
		return domain.HoverResult{Status: domain.HoverNone}
	}

	resolved := e.index.ResolveAll(documentPath)
	if resolved.Empty() {
		return domain.HoverResult{Status: domain.HoverNoFiles, Match: match}
	}

	values := resolved.Lookup(match.Path)
	if len(values) == 0 {
		return domain.HoverResult{Status: domain.HoverNotFound, Match: match}
	}

	return domain.HoverResult{Status: domain.HoverFound, Match: match, Values: values}
}

// Definitions returns where the expression containing offset is defined,
// one location per discovered file that declares it.
func (e *Engine) Definitions(documentPath, line string, offset int) []domain.Location {
	match, ok := expr.ExpressionAt(line, offset)
	if !ok {
		return nil
	}

	var locations []domain.Location
	for _, file := range e.finder.Discover(filepath.Dir(documentPath)) {
		if loc, found := e.locator.Locate(file, match.Path); found {
			locations = append(locations, loc)
		}
	}
	return locations
}

// Completions suggests the next path segment for the partial reference
// typed before offset. Suggestions are unique by label and sorted.
func (e *Engine) Completions(documentPath, line string, offset int) []domain.CompletionItem {
	prefix, ok := expr.CompletionPrefix(line, offset)
	if !ok {
		return nil
	}
	parent, partial := splitPrefix(prefix)

	resolved := e.index.ResolveAll(documentPath)
	docDir := filepath.Dir(documentPath)

	seen := make(map[string]bool)
	var items []domain.CompletionItem

	for _, name := range resolved.Files {
		file := resolved.ByFile[name]
		for _, path := range slices.Sorted(maps.Keys(file.Entries)) {
			segment, leaf, ok := nextSegment(path, parent)
			if !ok || !strings.HasPrefix(segment, partial) || seen[segment] {
				continue
			}
			seen[segment] = true

			item := domain.CompletionItem{
				Label:  segment,
				Path:   domain.JoinPath(parent, segment),
				Detail: ObjectDetail,
				Leaf:   leaf,
			}
			if leaf {
				entry := file.Entries[path]
				item.Detail = domain.DisplayName(docDir, entry.SourceFile)
				item.Entry = &entry
			}
			items = append(items, item)
		}
	}

	slices.SortFunc(items, func(a, b domain.CompletionItem) int {
		return strings.Compare(a.Label, b.Label)
	})
	return items
}

// splitPrefix splits a typed path into the complete parent path and the
// partially typed last segment: "a.b.c" yields "a.b" and "c".
func splitPrefix(prefix string) (string, string) {
	i := strings.LastIndex(prefix, ".")
	if i < 0 {
		return "", prefix
	}
	return strings.Trim(prefix[:i], "."), prefix[i+1:]
}

// nextSegment returns the segment of path directly below parent and whether
// it ends the path.
func nextSegment(path, parent string) (string, bool, bool) {
	rest := path
	if parent != "" {
		var ok bool
		rest, ok = strings.CutPrefix(path, parent+".")
		if !ok {
			return "", false, false
		}
	}
	segment, _, nested := strings.Cut(rest, ".")
	if segment == "" {
		return "", false, false
	}
	return segment, !nested, true
}
