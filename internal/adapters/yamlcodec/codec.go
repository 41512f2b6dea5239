// Package yamlcodec parses and serializes definitions documents using YAML.
package yamlcodec

import (
	"bytes"

	"go.trai.ch/helmvals/internal/core/domain"
	"go.trai.ch/helmvals/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ValuesCodec = (*Codec)(nil)

const (
	mergeTag     = "!!merge"
	formatIndent = 2

	// maxAliasDepth bounds alias expansion so that self-referencing anchors terminate.
	maxAliasDepth = 64

	// maxExpandedNodes bounds the size of the document once every alias is
	// expanded, so that nested anchors cannot grow it exponentially.
	maxExpandedNodes = 1 << 18
)

// Codec implements ports.ValuesCodec on top of gopkg.in/yaml.v3.
type Codec struct{}

// New creates a new Codec.
func New() *Codec {
	return &Codec{}
}

// Parse decodes a YAML document into a position-annotated value tree.
func (c *Codec) Parse(data []byte) (domain.Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.Wrap(err, domain.ErrValuesParseFailed.Error())
	}
	if doc.Kind == 0 {
		return nil, nil
	}
	value, err := newConverter().convert(&doc, 0)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrValuesParseFailed.Error())
	}
	return value, nil
}

// Format encodes a value as YAML with two-space indentation.
func (c *Codec) Format(value domain.Value) ([]byte, error) {
	node, err := toNode(value)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrValuesFormatFailed.Error())
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(formatIndent)
	if err := enc.Encode(node); err != nil {
		return nil, zerr.Wrap(err, domain.ErrValuesFormatFailed.Error())
	}
	if err := enc.Close(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrValuesFormatFailed.Error())
	}
	return buf.Bytes(), nil
}

// converter maps yaml.Node trees onto domain values. Alias targets are
// converted once and shared, and the expanded size of the document is
// counted against maxExpandedNodes.
type converter struct {
	aliases  map[*yaml.Node]expansion
	expanded int
}

// expansion is a converted alias target and the number of nodes it expands to.
type expansion struct {
	value domain.Value
	size  int
}

func newConverter() *converter {
	return &converter{aliases: make(map[*yaml.Node]expansion)}
}

// grow accounts for n more expanded nodes.
func (c *converter) grow(n int, node *yaml.Node) error {
	c.expanded += n
	if c.expanded > maxExpandedNodes {
		return zerr.With(zerr.New("document expands to too many nodes"), "line", node.Line)
	}
	return nil
}

// convert maps a yaml.Node onto the closed domain.Value variant.
func (c *converter) convert(node *yaml.Node, depth int) (domain.Value, error) {
	if depth > maxAliasDepth {
		return nil, zerr.With(zerr.New("alias nesting too deep"), "line", node.Line)
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return c.convert(node.Content[0], depth)
	case yaml.AliasNode:
		return c.convertAlias(node, depth)
	case yaml.SequenceNode:
		if err := c.grow(1, node); err != nil {
			return nil, err
		}
		items := make([]domain.Value, 0, len(node.Content))
		for _, child := range node.Content {
			item, err := c.convert(child, depth)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return domain.Sequence{Items: items}, nil
	case yaml.MappingNode:
		if err := c.grow(1, node); err != nil {
			return nil, err
		}
		return c.convertMapping(node, depth)
	case yaml.ScalarNode:
		if err := c.grow(1, node); err != nil {
			return nil, err
		}
		return convertScalar(node), nil
	default:
		return nil, zerr.With(zerr.New("unsupported node kind"), "kind", node.Kind)
	}
}

// convertAlias returns the shared value of the alias target. Every use still
// counts the full expanded size of the target.
func (c *converter) convertAlias(node *yaml.Node, depth int) (domain.Value, error) {
	if seen, ok := c.aliases[node.Alias]; ok {
		if err := c.grow(seen.size, node); err != nil {
			return nil, err
		}
		return seen.value, nil
	}

	before := c.expanded
	value, err := c.convert(node.Alias, depth+1)
	if err != nil {
		return nil, err
	}
	c.aliases[node.Alias] = expansion{value: value, size: c.expanded - before}
	return value, nil
}

// convertMapping converts a mapping node. Entries pulled in through merge
// keys come first so that explicit keys override them.
func (c *converter) convertMapping(node *yaml.Node, depth int) (domain.Value, error) {
	var merged, explicit []domain.MappingEntry

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]

		if keyNode.Tag == mergeTag {
			entries, err := c.mergeEntries(valueNode, depth)
			if err != nil {
				return nil, err
			}
			merged = append(merged, entries...)
			continue
		}

		value, err := c.convert(valueNode, depth)
		if err != nil {
			return nil, err
		}
		explicit = append(explicit, domain.MappingEntry{
			Key:   keyNode.Value,
			Value: value,
			Pos:   position(keyNode),
		})
	}

	return domain.Mapping{Entries: append(merged, explicit...)}, nil
}

// mergeEntries expands the value of a "<<" key, which is either a single
// mapping alias or a sequence of them.
func (c *converter) mergeEntries(node *yaml.Node, depth int) ([]domain.MappingEntry, error) {
	sources := []*yaml.Node{node}
	if node.Kind == yaml.SequenceNode {
		sources = node.Content
	}

	var entries []domain.MappingEntry
	for _, source := range sources {
		value, err := c.convert(source, depth+1)
		if err != nil {
			return nil, err
		}
		mapping, ok := value.(domain.Mapping)
		if !ok {
			return nil, zerr.With(zerr.New("merge value is not a mapping"), "line", source.Line)
		}
		entries = append(entries, mapping.Entries...)
	}
	return entries, nil
}

// convertScalar decodes a scalar to its natural Go type.
func convertScalar(node *yaml.Node) domain.Value {
	var data any
	if err := node.Decode(&data); err != nil {
		return domain.Scalar{Data: node.Value}
	}

	switch v := data.(type) {
	case nil, string, int, float64, bool:
		return domain.Scalar{Data: v}
	default:
		// Timestamps, binary and out-of-range integers keep their source text.
		return domain.Scalar{Data: node.Value}
	}
}

func position(node *yaml.Node) domain.Position {
	return domain.Position{Line: max(node.Line-1, 0), Column: max(node.Column-1, 0)}
}

// toNode converts a value back into a yaml.Node, keeping mapping order.
func toNode(value domain.Value) (*yaml.Node, error) {
	switch v := value.(type) {
	case nil:
		node := &yaml.Node{}
		if err := node.Encode(nil); err != nil {
			return nil, err
		}
		return node, nil
	case domain.Scalar:
		node := &yaml.Node{}
		if err := node.Encode(v.Data); err != nil {
			return nil, err
		}
		return node, nil
	case domain.Sequence:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range v.Items {
			child, err := toNode(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	case domain.Mapping:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, entry := range v.Entries {
			child, err := toNode(entry.Value)
			if err != nil {
				return nil, err
			}
			key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: entry.Key}
			node.Content = append(node.Content, key, child)
		}
		return node, nil
	default:
		return nil, zerr.New("unsupported value type")
	}
}
