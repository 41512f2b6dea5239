// Package render turns query results into text for terminals, editors and
// scripts.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"go.trai.ch/helmvals/internal/core/domain"
	"go.trai.ch/helmvals/internal/core/ports"
	"go.trai.ch/helmvals/internal/ui/style"
)

const (
	// maxInlineWidth is the longest value rendered inline.
	maxInlineWidth = 80

	// NoFilesMessage is shown when no definitions file exists for a document.
	NoFilesMessage = "No values files found in the current or parent directories."

	notFoundFormat = "Value '%s' not found in values files."

	highlightLanguage  = "yaml"
	highlightFormatter = "terminal256"
	highlightStyle     = "monokai"
)

// NotFoundMessage is shown when no definitions file declares path.
func NotFoundMessage(path string) string {
	return fmt.Sprintf(notFoundFormat, path)
}

// Options configures a Renderer.
type Options struct {
	// ShowFileNames prefixes every value with the file it came from.
	ShowFileNames bool
	// Color enables terminal styling of plain output.
	Color bool
}

// Renderer formats hover results, locations and completions.
type Renderer struct {
	codec ports.ValuesCodec
	opts  Options
}

// New creates a Renderer serializing values with codec.
func New(codec ports.ValuesCodec, opts Options) *Renderer {
	return &Renderer{codec: codec, opts: opts}
}

// Value returns the text of v and whether it is short enough to be shown
// inline. Values that are not inline are serialized as a YAML document.
func (r *Renderer) Value(v domain.Value) (string, bool) {
	if text, ok := inline(v); ok {
		return text, true
	}

	out, err := r.codec.Format(v)
	if err != nil {
		return fmt.Sprintf("%v", v), true
	}
	return strings.TrimRight(string(out), "\n"), false
}

// HoverMarkdown renders a hover result as markdown. Names of files are made
// relative to docDir. A result without an expression renders as "".
func (r *Renderer) HoverMarkdown(docDir string, result domain.HoverResult) string {
	switch result.Status {
	case domain.HoverNone:
		return ""
	case domain.HoverNoFiles:
		return NoFilesMessage
	case domain.HoverNotFound:
		return NotFoundMessage(result.Match.Path)
	}

	parts := make([]string, 0, len(result.Values))
	for _, entry := range result.Values {
		parts = append(parts, r.entryMarkdown(docDir, entry))
	}
	return strings.Join(parts, "\n\n")
}

// Documentation renders the value behind a completion item as markdown.
func (r *Renderer) Documentation(docDir string, item domain.CompletionItem) string {
	if item.Entry == nil {
		return ""
	}
	return r.entryMarkdown(docDir, *item.Entry)
}

func (r *Renderer) entryMarkdown(docDir string, entry domain.DefinitionEntry) string {
	text, isInline := r.Value(entry.Value)

	var body string
	if isInline {
		body = "`" + text + "`"
	} else {
		body = "```yaml\n" + text + "\n```"
	}

	if !r.opts.ShowFileNames {
		return body
	}

	name := "**" + domain.DisplayName(docDir, entry.SourceFile) + "**"
	if isInline {
		return name + ": " + body
	}
	return name + "\n" + body
}

// HoverPlain renders a hover result as terminal text.
func (r *Renderer) HoverPlain(docDir string, result domain.HoverResult) string {
	switch result.Status {
	case domain.HoverNone:
		return ""
	case domain.HoverNoFiles:
		return r.notice(NoFilesMessage)
	case domain.HoverNotFound:
		return r.notice(NotFoundMessage(result.Match.Path))
	}

	var lines []string
	for _, entry := range result.Values {
		text, isInline := r.Value(entry.Value)
		if isInline {
			text = r.code(text)
		} else {
			text = r.block(text)
		}

		if !r.opts.ShowFileNames {
			lines = append(lines, text)
			continue
		}

		name := r.fileName(domain.DisplayName(docDir, entry.SourceFile))
		if isInline {
			lines = append(lines, name+": "+text)
		} else {
			lines = append(lines, name+":", indent(text))
		}
	}
	return strings.Join(lines, "\n")
}

// Locations renders one "file:line:column" line per location, 0-based.
func (r *Renderer) Locations(docDir string, locations []domain.Location) string {
	lines := make([]string, 0, len(locations))
	for _, loc := range locations {
		name := r.fileName(domain.DisplayName(docDir, loc.File))
		lines = append(lines, name+":"+strconv.Itoa(loc.Line)+":"+strconv.Itoa(loc.Column))
	}
	return strings.Join(lines, "\n")
}

// Completions renders one "label detail" line per item.
func (r *Renderer) Completions(items []domain.CompletionItem) string {
	width := 0
	for _, item := range items {
		width = max(width, len(item.Label))
	}

	lines := make([]string, 0, len(items))
	for _, item := range items {
		padding := strings.Repeat(" ", width-len(item.Label)+2)
		lines = append(lines, item.Label+padding+r.muted(item.Detail))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) fileName(name string) string {
	if !r.opts.Color {
		return name
	}
	return style.FileName.Render(name)
}

func (r *Renderer) code(text string) string {
	if !r.opts.Color {
		return text
	}
	return style.Code.Render(text)
}

func (r *Renderer) muted(text string) string {
	if !r.opts.Color {
		return text
	}
	return style.Muted.Render(text)
}

func (r *Renderer) notice(text string) string {
	if !r.opts.Color {
		return text
	}
	return style.Notice.Render(text)
}

// block highlights a YAML document. Highlighting failures leave it plain.
func (r *Renderer) block(text string) string {
	if !r.opts.Color {
		return text
	}
	var b strings.Builder
	if err := quick.Highlight(&b, text, highlightLanguage, highlightFormatter, highlightStyle); err != nil {
		return text
	}
	return strings.TrimRight(b.String(), "\n")
}

// inline returns the single-line form of short scalars, short sequences of
// scalars and empty mappings.
func inline(v domain.Value) (string, bool) {
	var text string

	switch value := v.(type) {
	case nil:
		text = "null"
	case domain.Scalar:
		text = scalarText(value)
	case domain.Sequence:
		items := make([]string, 0, len(value.Items))
		for _, item := range value.Items {
			scalar, ok := item.(domain.Scalar)
			if !ok {
				return "", false
			}
			items = append(items, scalarText(scalar))
		}
		text = "[" + strings.Join(items, ", ") + "]"
	case domain.Mapping:
		if len(value.Entries) > 0 {
			return "", false
		}
		text = "{}"
	default:
		return "", false
	}

	if strings.Contains(text, "\n") || len([]rune(text)) > maxInlineWidth {
		return "", false
	}
	return text, true
}

func scalarText(s domain.Scalar) string {
	switch data := s.Data.(type) {
	case nil:
		return "null"
	case string:
		return data
	case float64:
		return strconv.FormatFloat(data, 'g', -1, 64)
	default:
		return fmt.Sprint(data)
	}
}

func indent(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = "  " + line
	}
	return strings.Join(lines, "\n")
}
