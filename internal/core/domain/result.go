package domain

// Location is a position inside a definitions file. Lines and columns are 0-based.
type Location struct {
	File      string `json:"file"`
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	EndColumn int    `json:"endColumn"`
}

// HoverStatus classifies the outcome of a hover query.
type HoverStatus uint8

const (
	// HoverNone means the offset is not inside any expression.
	HoverNone HoverStatus = iota
	// HoverNoFiles means no definitions file was found for the document.
	HoverNoFiles
	// HoverNotFound means definitions files exist but none defines the path.
	HoverNotFound
	// HoverFound means at least one file defines the path.
	HoverFound
)

// String returns the lower-case name of the status.
func (s HoverStatus) String() string {
	switch s {
	case HoverNone:
		return "none"
	case HoverNoFiles:
		return "no-files"
	case HoverNotFound:
		return "not-found"
	case HoverFound:
		return "found"
	default:
		return "unknown"
	}
}

// HoverResult is the answer to a hover query.
type HoverResult struct {
	Status HoverStatus
	// Match is the expression under the cursor. Zero when Status is HoverNone.
	Match Match
	// Values are the definitions found, in discovery order.
	Values []DefinitionEntry
}

// CompletionItem is a single next-segment suggestion.
type CompletionItem struct {
	// Label is the suggested path segment.
	Label string `json:"label"`
	// Path is the full dotted path the suggestion completes to.
	Path string `json:"path"`
	// Detail names the file providing the value, or "object" for intermediate keys.
	Detail string `json:"detail"`
	// Leaf reports whether Path is a leaf definition.
	Leaf bool `json:"leaf"`
	// Entry is the provenance of a leaf suggestion.
	Entry *DefinitionEntry `json:"-"`
}
