package domain

// Match is a template reference expression found in a line of text.
// Offsets are character offsets; End is exclusive.
type Match struct {
	// Path is the dotted path following the .Values. prefix.
	Path string
	// Text is the whole matched expression, delimiters included.
	Text string
	// Start is the offset of the opening delimiter.
	Start int
	// End is the offset just past the closing delimiter.
	End int
}

// Contains reports whether offset falls within the match, both ends inclusive.
func (m Match) Contains(offset int) bool {
	return offset >= m.Start && offset <= m.End
}
