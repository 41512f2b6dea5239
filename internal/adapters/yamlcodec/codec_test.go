package yamlcodec_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/helmvals/internal/adapters/yamlcodec"
	"go.trai.ch/helmvals/internal/core/domain"
)

func TestCodec_Parse(t *testing.T) {
	codec := yamlcodec.New()

	value, err := codec.Parse([]byte(`image:
  repository: nginx
  tag: "1.25"
replicas: 3
ratio: 0.5
enabled: true
empty: null
ports:
  - 80
  - 443
`))
	require.NoError(t, err)

	root, ok := value.(domain.Mapping)
	require.True(t, ok)
	require.Len(t, root.Entries, 6)

	image := root.Entries[0]
	assert.Equal(t, "image", image.Key)
	assert.Equal(t, domain.Position{Line: 0, Column: 0}, image.Pos)

	imageMap, ok := image.Value.(domain.Mapping)
	require.True(t, ok)
	tag, ok := imageMap.Get("tag")
	require.True(t, ok)
	assert.Equal(t, domain.Scalar{Data: "1.25"}, tag.Value)
	assert.Equal(t, domain.Position{Line: 2, Column: 2}, tag.Pos)

	assert.Equal(t, domain.Scalar{Data: 3}, root.Entries[1].Value)
	assert.Equal(t, domain.Scalar{Data: 0.5}, root.Entries[2].Value)
	assert.Equal(t, domain.Scalar{Data: true}, root.Entries[3].Value)
	assert.Equal(t, domain.Scalar{Data: nil}, root.Entries[4].Value)
	assert.Equal(t, domain.Sequence{Items: []domain.Value{
		domain.Scalar{Data: 80},
		domain.Scalar{Data: 443},
	}}, root.Entries[5].Value)
}

func TestCodec_Parse_Empty(t *testing.T) {
	value, err := yamlcodec.New().Parse(nil)
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestCodec_Parse_Malformed(t *testing.T) {
	_, err := yamlcodec.New().Parse([]byte("a: [1, 2\nb: 3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrValuesParseFailed.Error())
}

func TestCodec_Parse_AnchorsAndMerge(t *testing.T) {
	value, err := yamlcodec.New().Parse([]byte(`defaults: &defaults
  cpu: 100m
  memory: 128Mi
worker:
  <<: *defaults
  memory: 256Mi
copy: *defaults
`))
	require.NoError(t, err)

	worker, ok := domain.Lookup(value, []string{"worker", "memory"})
	require.True(t, ok)
	assert.Equal(t, domain.Scalar{Data: "256Mi"}, worker.Value)

	cpu, ok := domain.Lookup(value, []string{"worker", "cpu"})
	require.True(t, ok)
	assert.Equal(t, domain.Scalar{Data: "100m"}, cpu.Value)

	copied, ok := domain.Lookup(value, []string{"copy", "memory"})
	require.True(t, ok)
	assert.Equal(t, domain.Scalar{Data: "128Mi"}, copied.Value)
}

// nestedAnchors builds a document where every level is a list of width
// aliases to the level above, expanding to width^levels scalars.
func nestedAnchors(levels, width int) string {
	var b strings.Builder
	b.WriteString("l0: &l0 [x, x, x, x, x, x, x, x, x, x]\n")
	for i := 1; i <= levels; i++ {
		refs := make([]string, width)
		for j := range refs {
			refs[j] = fmt.Sprintf("*l%d", i-1)
		}
		fmt.Fprintf(&b, "l%d: &l%d [%s]\n", i, i, strings.Join(refs, ", "))
	}
	return b.String()
}

func TestCodec_Parse_NestedAliasesBounded(t *testing.T) {
	_, err := yamlcodec.New().Parse([]byte(nestedAnchors(8, 10)))

	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrValuesParseFailed.Error())
}

func TestCodec_Parse_SharedAliases(t *testing.T) {
	value, err := yamlcodec.New().Parse([]byte(nestedAnchors(2, 10)))
	require.NoError(t, err)

	top, ok := domain.Lookup(value, []string{"l2"})
	require.True(t, ok)
	outer, ok := top.Value.(domain.Sequence)
	require.True(t, ok)
	require.Len(t, outer.Items, 10)

	inner, ok := outer.Items[9].(domain.Sequence)
	require.True(t, ok)
	require.Len(t, inner.Items, 10)
	assert.Equal(t, domain.Sequence{Items: []domain.Value{
		domain.Scalar{Data: "x"}, domain.Scalar{Data: "x"}, domain.Scalar{Data: "x"}, domain.Scalar{Data: "x"},
		domain.Scalar{Data: "x"}, domain.Scalar{Data: "x"}, domain.Scalar{Data: "x"}, domain.Scalar{Data: "x"},
		domain.Scalar{Data: "x"}, domain.Scalar{Data: "x"},
	}}, inner.Items[0])
}

func TestCodec_Format(t *testing.T) {
	codec := yamlcodec.New()

	tests := []struct {
		name  string
		value domain.Value
		want  string
	}{
		{
			name:  "scalar",
			value: domain.Scalar{Data: "nginx"},
			want:  "nginx\n",
		},
		{
			name:  "null",
			value: domain.Scalar{Data: nil},
			want:  "null\n",
		},
		{
			name: "sequence",
			value: domain.Sequence{Items: []domain.Value{
				domain.Scalar{Data: 80},
				domain.Scalar{Data: 443},
			}},
			want: "- 80\n- 443\n",
		},
		{
			name: "mapping keeps order",
			value: domain.Mapping{Entries: []domain.MappingEntry{
				{Key: "tag", Value: domain.Scalar{Data: "1.25"}},
				{Key: "repository", Value: domain.Scalar{Data: "nginx"}},
				{Key: "ports", Value: domain.Sequence{Items: []domain.Value{domain.Scalar{Data: 80}}}},
			}},
			want: "tag: \"1.25\"\nrepository: nginx\nports:\n  - 80\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := codec.Format(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))
		})
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	codec := yamlcodec.New()
	source := []byte("name: web\nlabels:\n  app: web\n  tier: frontend\n")

	value, err := codec.Parse(source)
	require.NoError(t, err)

	out, err := codec.Format(value)
	require.NoError(t, err)
	assert.Equal(t, string(source), string(out))
}
