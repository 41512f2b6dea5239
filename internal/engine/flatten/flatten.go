// Package flatten turns a parsed definitions document into a table of dotted
// leaf paths.
package flatten

import (
	"strings"

	"go.trai.ch/helmvals/internal/core/domain"
)

// Flatten returns every leaf of root keyed by its dotted path, tagged with
// source. Non-empty mappings are descended into; scalars, nulls, sequences
// and empty mappings are leaves. A nil or non-mapping root yields an empty
// table. Duplicate keys resolve to the last occurrence.
func Flatten(root domain.Value, source string) map[string]domain.DefinitionEntry {
	entries := make(map[string]domain.DefinitionEntry)
	if mapping, ok := root.(domain.Mapping); ok {
		walk(mapping, "", source, entries)
	}
	return entries
}

func walk(mapping domain.Mapping, parent, source string, entries map[string]domain.DefinitionEntry) {
	seen := make(map[string]struct{}, len(mapping.Entries))

	for _, entry := range mapping.Entries {
		path := domain.JoinPath(parent, entry.Key)

		// A repeated key replaces everything recorded for its first occurrence.
		if _, dup := seen[entry.Key]; dup {
			delete(entries, path)
			removeDescendants(entries, path)
		}
		seen[entry.Key] = struct{}{}

		switch value := entry.Value.(type) {
		case domain.Mapping:
			if len(value.Entries) > 0 {
				walk(value, path, source, entries)
				continue
			}
			entries[path] = domain.DefinitionEntry{Value: value, SourceFile: source}
		case domain.Scalar, domain.Sequence:
			entries[path] = domain.DefinitionEntry{Value: value, SourceFile: source}
		case nil:
			entries[path] = domain.DefinitionEntry{Value: domain.Scalar{}, SourceFile: source}
		}
	}
}

func removeDescendants(entries map[string]domain.DefinitionEntry, path string) {
	prefix := path + "."
	for existing := range entries {
		if strings.HasPrefix(existing, prefix) {
			delete(entries, existing)
		}
	}
}

// Build flattens a parsed document into a FileIndex for source.
func Build(root domain.Value, source string) *domain.FileIndex {
	return &domain.FileIndex{
		Source:  source,
		Entries: Flatten(root, source),
		Root:    root,
	}
}
