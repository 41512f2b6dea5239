package domain

// DefinitionEntry is a leaf value together with the file it came from.
type DefinitionEntry struct {
	Value      Value
	SourceFile string
}

// FileIndex is the flattened content of one definitions file.
type FileIndex struct {
	// Source is the absolute path of the file.
	Source string
	// Entries maps dotted leaf paths to their definitions.
	Entries map[string]DefinitionEntry
	// Root is the parsed document, kept for lookups of non-leaf paths.
	Root Value
}

// Lookup returns the definition at path. Leaf paths are answered from the
// flattened entries; mapping paths fall back to the document tree.
func (f *FileIndex) Lookup(path string) (DefinitionEntry, bool) {
	if f == nil {
		return DefinitionEntry{}, false
	}
	if entry, ok := f.Entries[path]; ok {
		return entry, true
	}
	if f.Root == nil {
		return DefinitionEntry{}, false
	}
	found, ok := Lookup(f.Root, SplitPath(path))
	if !ok {
		return DefinitionEntry{}, false
	}
	return DefinitionEntry{Value: found.Value, SourceFile: f.Source}, true
}

// PathIndex is the resolved content of every discovered definitions file
// for a document.
type PathIndex struct {
	// Files lists file names in discovery order, closest directory first.
	Files []string
	// ByFile maps a file name to its flattened content.
	ByFile map[string]*FileIndex
}

// NewPathIndex creates an empty PathIndex.
func NewPathIndex() *PathIndex {
	return &PathIndex{ByFile: make(map[string]*FileIndex)}
}

// Add appends a file to the index. Adding the same file twice keeps the
// original position.
func (p *PathIndex) Add(file *FileIndex) {
	if _, exists := p.ByFile[file.Source]; !exists {
		p.Files = append(p.Files, file.Source)
	}
	p.ByFile[file.Source] = file
}

// Empty reports whether no file contributed to the index.
func (p *PathIndex) Empty() bool {
	return len(p.Files) == 0
}

// Lookup returns the definitions of path across all files, in discovery order.
func (p *PathIndex) Lookup(path string) []DefinitionEntry {
	var found []DefinitionEntry
	for _, name := range p.Files {
		if entry, ok := p.ByFile[name].Lookup(path); ok {
			found = append(found, entry)
		}
	}
	return found
}

// CacheRecord is the validation metadata of a cached file.
type CacheRecord struct {
	// ModTime is the last seen modification time in UnixNano.
	ModTime int64
}
