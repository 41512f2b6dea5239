// Package domain contains the core types of the value resolution engine.
package domain

import (
	"path/filepath"
	"strings"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	// KindScalar is a string, number, boolean or null.
	KindScalar Kind = iota
	// KindSequence is an ordered list of values.
	KindSequence
	// KindMapping is an ordered list of key/value entries.
	KindMapping
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Value is a node of a parsed definitions document.
// The set of implementations is closed: Scalar, Sequence and Mapping.
type Value interface {
	Kind() Kind
	sealed()
}

// Position is a 0-based line and column inside a source file.
type Position struct {
	Line   int
	Column int
}

// Scalar holds a string, int, float64, bool or nil.
type Scalar struct {
	Data any
}

// Sequence is an ordered list of values.
type Sequence struct {
	Items []Value
}

// MappingEntry is a single key of a mapping together with its value and
// the position of the key in the source file.
type MappingEntry struct {
	Key   string
	Value Value
	Pos   Position
}

// Mapping is an ordered list of entries.
type Mapping struct {
	Entries []MappingEntry
}

// Kind implements Value.
func (Scalar) Kind() Kind { return KindScalar }

// Kind implements Value.
func (Sequence) Kind() Kind { return KindSequence }

// Kind implements Value.
func (Mapping) Kind() Kind { return KindMapping }

func (Scalar) sealed()   {}
func (Sequence) sealed() {}
func (Mapping) sealed()  {}

// IsNull reports whether the scalar holds a null value.
func (s Scalar) IsNull() bool {
	return s.Data == nil
}

// Get returns the last entry with the given key. Later duplicates win,
// matching the behavior of the flattener.
func (m Mapping) Get(key string) (MappingEntry, bool) {
	for i := len(m.Entries) - 1; i >= 0; i-- {
		if m.Entries[i].Key == key {
			return m.Entries[i], true
		}
	}
	return MappingEntry{}, false
}

// Lookup walks the value along the given path segments. Only mappings can be
// descended into; sequences are leaves.
func Lookup(root Value, segments []string) (MappingEntry, bool) {
	current := root
	var entry MappingEntry
	for _, segment := range segments {
		mapping, ok := current.(Mapping)
		if !ok {
			return MappingEntry{}, false
		}
		entry, ok = mapping.Get(segment)
		if !ok {
			return MappingEntry{}, false
		}
		current = entry.Value
	}
	if len(segments) == 0 {
		return MappingEntry{}, false
	}
	return entry, true
}

// SplitPath splits a dotted path into its segments. Empty segments produced
// by leading, trailing or doubled dots are dropped.
func SplitPath(path string) []string {
	parts := strings.Split(path, ".")
	segments := parts[:0]
	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

// JoinPath appends a segment to a dotted path.
func JoinPath(parent, segment string) string {
	if parent == "" {
		return segment
	}
	return parent + "." + segment
}

// DisplayName returns file relative to dir, or file itself when no relative
// path exists.
func DisplayName(dir, file string) string {
	rel, err := filepath.Rel(dir, file)
	if err != nil {
		return file
	}
	return rel
}
