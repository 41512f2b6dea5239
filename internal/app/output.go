package app

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"path/filepath"

	"github.com/muesli/termenv"
	"go.trai.ch/helmvals/internal/core/domain"
	"go.trai.ch/helmvals/internal/ui/output"
	"go.trai.ch/zerr"
)

// hoverResponse is the machine-readable form of a hover result.
type hoverResponse struct {
	Status   string          `json:"status"`
	Path     string          `json:"path,omitempty"`
	Range    *rangeResponse  `json:"range,omitempty"`
	Values   []valueResponse `json:"values"`
	Contents string          `json:"contents"`
}

type rangeResponse struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type valueResponse struct {
	File  string `json:"file"`
	Value any    `json:"value"`
}

// completionResponse is a completion item with its rendered documentation.
type completionResponse struct {
	domain.CompletionItem
	Documentation string `json:"documentation,omitempty"`
}

func (s *session) hoverJSON(document string, result domain.HoverResult) hoverResponse {
	resp := hoverResponse{
		Status:   result.Status.String(),
		Values:   make([]valueResponse, 0, len(result.Values)),
		Contents: s.renderer.HoverMarkdown(filepath.Dir(document), result),
	}
	if result.Status == domain.HoverNone {
		return resp
	}

	resp.Path = result.Match.Path
	resp.Range = &rangeResponse{Start: result.Match.Start, End: result.Match.End}
	for _, entry := range result.Values {
		resp.Values = append(resp.Values, valueResponse{
			File:  entry.SourceFile,
			Value: plain(entry.Value),
		})
	}
	return resp
}

func (s *session) completionsJSON(document string, items []domain.CompletionItem) []completionResponse {
	docDir := filepath.Dir(document)
	out := make([]completionResponse, 0, len(items))
	for _, item := range items {
		out = append(out, completionResponse{
			CompletionItem: item,
			Documentation:  s.renderer.Documentation(docDir, item),
		})
	}
	return out
}

// plain converts a value into the generic form understood by encoding/json.
func plain(v domain.Value) any {
	switch value := v.(type) {
	case domain.Scalar:
		return plainScalar(value.Data)
	case domain.Sequence:
		items := make([]any, 0, len(value.Items))
		for _, item := range value.Items {
			items = append(items, plain(item))
		}
		return items
	case domain.Mapping:
		entries := make(map[string]any, len(value.Entries))
		for _, entry := range value.Entries {
			entries[entry.Key] = plain(entry.Value)
		}
		return entries
	default:
		return nil
	}
}

// plainScalar spells out floats that JSON cannot represent the way YAML
// writes them.
func plainScalar(data any) any {
	f, ok := data.(float64)
	switch {
	case !ok:
		return data
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	default:
		return f
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return zerr.Wrap(err, "failed to write result")
	}
	return nil
}

func writeText(w io.Writer, text string) error {
	if text == "" {
		return nil
	}
	if _, err := fmt.Fprintln(w, text); err != nil {
		return zerr.Wrap(err, "failed to write result")
	}
	return nil
}

// colorEnabled reports whether plain output written to w is styled.
func colorEnabled(w io.Writer) bool {
	return output.IsTerminal(w) && output.ColorProfile() != termenv.Ascii
}
