package locate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/helmvals/internal/core/domain"
)

func TestScan(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		path   string
		want   domain.Position
		wantOK bool
	}{
		{
			name:   "second sibling",
			text:   "a:\n  b: 1\nc:\n  b: 2\n",
			path:   "c.b",
			want:   domain.Position{Line: 3, Column: 2},
			wantOK: true,
		},
		{
			name:   "first segment has no depth constraint",
			text:   "root:\n    a:\n        b: 1\n",
			path:   "a.b",
			want:   domain.Position{Line: 2, Column: 8},
			wantOK: true,
		},
		{
			name:   "dedent resets the match",
			text:   "a:\n  x: 1\nb: 2\n  c: 3\n",
			path:   "a.c",
			wantOK: false,
		},
		{
			name:   "dedent restarts on the first segment",
			text:   "a:\n  x: 1\na:\n  c: 3\n",
			path:   "a.c",
			want:   domain.Position{Line: 3, Column: 2},
			wantOK: true,
		},
		{
			name:   "same depth continues the match",
			text:   "a:\nb: 1\n",
			path:   "a.b",
			want:   domain.Position{Line: 1, Column: 0},
			wantOK: true,
		},
		{
			name:   "shallower key does not continue the match",
			text:   "  a:\nb: 1\n",
			path:   "a.b",
			wantOK: false,
		},
		{
			name:   "comments and blank lines are skipped",
			text:   "a:\n\n  # b: 0\n  b: 1\n",
			path:   "a.b",
			want:   domain.Position{Line: 3, Column: 2},
			wantOK: true,
		},
		{
			name:   "quoted keys",
			text:   "\"a\":\n  'b': 1\n",
			path:   "a.b",
			want:   domain.Position{Line: 1, Column: 2},
			wantOK: true,
		},
		{
			name:   "carriage returns",
			text:   "a:\r\n  b: 1\r\n",
			path:   "a.b",
			want:   domain.Position{Line: 1, Column: 2},
			wantOK: true,
		},
		{
			name:   "not found",
			text:   "a:\n  b: 1\n",
			path:   "a.c",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, ok := scan(tt.text, domain.SplitPath(tt.path))
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, pos)
		})
	}
}

func TestDeclaredKey(t *testing.T) {
	tests := []struct {
		line       string
		wantKey    string
		wantIndent int
		wantOK     bool
	}{
		{line: "a: 1", wantKey: "a", wantIndent: 0, wantOK: true},
		{line: "    name:", wantKey: "name", wantIndent: 4, wantOK: true},
		{line: `  "quoted" : x`, wantKey: "quoted", wantIndent: 2, wantOK: true},
		{line: "# a: 1", wantOK: false},
		{line: "   ", wantOK: false},
		{line: "- item", wantOK: false},
		{line: ": value", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			key, indent, ok := declaredKey(tt.line)
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantKey, key)
			assert.Equal(t, tt.wantIndent, indent)
		})
	}
}
