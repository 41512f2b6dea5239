package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/helmvals/internal/adapters/config"
	"go.trai.ch/helmvals/internal/adapters/fs"
	"go.trai.ch/helmvals/internal/adapters/yamlcodec"
	"go.trai.ch/helmvals/internal/app"
	"go.trai.ch/helmvals/internal/core/domain"
	"go.trai.ch/helmvals/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const (
	chartDir = "/chart"
	document = "/chart/templates/deployment.yaml"
)

var chartFiles = map[string]string{
	"chart/values.yaml": "image:\n  repository: nginx\n  tag: \"1.25\"\nreplicas: 3\n",
	"chart/templates/deployment.yaml": "spec:\n" +
		"  replicas: {{ .Values.replicas }}\n" +
		"  image: {{ .Values.image.repository }}\n",
}

// newTestApp wires real adapters over an in-memory file system.
func newTestApp(t *testing.T, files map[string]string) (*app.App, *mocks.MockWatcher) {
	t.Helper()

	mapFS := fstest.MapFS{}
	for name, content := range files {
		mapFS[name] = &fstest.MapFile{Data: []byte(content)}
	}
	fsys := fs.NewMapFSAdapter("/", mapFS)

	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	watcher := mocks.NewMockWatcher(ctrl)

	a := app.New(fsys, yamlcodec.New(), config.NewLoader(fsys, logger), watcher, logger).WithColor(false)
	return a, watcher
}

func query(line, column int) app.QueryOptions {
	return app.QueryOptions{Cwd: chartDir, File: document, Line: line, Column: column}
}

func TestApp_Hover_Markdown(t *testing.T) {
	a, _ := newTestApp(t, chartFiles)

	var out bytes.Buffer
	require.NoError(t, a.Hover(context.Background(), &out, query(1, 15)))

	assert.Equal(t, "**../values.yaml**: `3`\n", out.String())
}

func TestApp_Hover_PlainWithoutFileNames(t *testing.T) {
	a, _ := newTestApp(t, chartFiles)

	hide := false
	opts := query(2, 12)
	opts.Format = "plain"
	opts.Settings.ShowFileNames = &hide

	var out bytes.Buffer
	require.NoError(t, a.Hover(context.Background(), &out, opts))

	assert.Equal(t, "nginx\n", out.String())
}

func TestApp_Hover_JSON(t *testing.T) {
	a, _ := newTestApp(t, chartFiles)

	opts := query(1, 15)
	opts.Format = "json"

	var out bytes.Buffer
	require.NoError(t, a.Hover(context.Background(), &out, opts))

	var got struct {
		Status string `json:"status"`
		Path   string `json:"path"`
		Range  struct {
			Start int `json:"start"`
			End   int `json:"end"`
		} `json:"range"`
		Values []struct {
			File  string `json:"file"`
			Value any    `json:"value"`
		} `json:"values"`
		Contents string `json:"contents"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))

	assert.Equal(t, "found", got.Status)
	assert.Equal(t, "replicas", got.Path)
	assert.Equal(t, 12, got.Range.Start)
	assert.Equal(t, 34, got.Range.End)
	require.Len(t, got.Values, 1)
	assert.Equal(t, "/chart/values.yaml", got.Values[0].File)
	assert.InDelta(t, 3, got.Values[0].Value, 0)
	assert.Equal(t, "**../values.yaml**: `3`", got.Contents)
}

func TestApp_Hover_JSONNonFiniteFloats(t *testing.T) {
	a, _ := newTestApp(t, map[string]string{
		"chart/values.yaml": "limits:\n  max: .inf\n  min: -.inf\n  ratio: .nan\n",
		"chart/templates/deployment.yaml": "{{ .Values.limits }}\n",
	})

	opts := query(0, 3)
	opts.Format = "json"

	var out bytes.Buffer
	require.NoError(t, a.Hover(context.Background(), &out, opts))

	var got struct {
		Values []struct {
			Value map[string]any `json:"value"`
		} `json:"values"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Len(t, got.Values, 1)
	assert.Equal(t, map[string]any{"max": ".inf", "min": "-.inf", "ratio": ".nan"}, got.Values[0].Value)
}

func TestApp_Hover_TextOverride(t *testing.T) {
	a, _ := newTestApp(t, chartFiles)

	text := "{{ .Values.missing }}"
	opts := query(0, 3)
	opts.Text = &text

	var out bytes.Buffer
	require.NoError(t, a.Hover(context.Background(), &out, opts))

	assert.Equal(t, "Value 'missing' not found in values files.\n", out.String())
}

func TestApp_Hover_NoExpression(t *testing.T) {
	a, _ := newTestApp(t, chartFiles)

	var out bytes.Buffer
	require.NoError(t, a.Hover(context.Background(), &out, query(0, 1)))

	assert.Empty(t, out.String())
}

func TestApp_Definition(t *testing.T) {
	a, _ := newTestApp(t, chartFiles)

	var out bytes.Buffer
	require.NoError(t, a.Definition(context.Background(), &out, query(2, 12)))

	assert.Equal(t, "../values.yaml:1:2\n", out.String())
}

func TestApp_Definition_JSONEmpty(t *testing.T) {
	a, _ := newTestApp(t, chartFiles)

	opts := query(0, 0)
	opts.Format = "json"

	var out bytes.Buffer
	require.NoError(t, a.Definition(context.Background(), &out, opts))

	assert.JSONEq(t, "[]", out.String())
}

func TestApp_Complete_JSON(t *testing.T) {
	a, _ := newTestApp(t, chartFiles)

	text := "{{ .Values.image."
	opts := query(0, len(text))
	opts.Text = &text
	opts.Format = "json"

	var out bytes.Buffer
	require.NoError(t, a.Complete(context.Background(), &out, opts))

	var items []struct {
		Label         string `json:"label"`
		Path          string `json:"path"`
		Detail        string `json:"detail"`
		Leaf          bool   `json:"leaf"`
		Documentation string `json:"documentation"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &items))

	require.Len(t, items, 2)
	assert.Equal(t, "repository", items[0].Label)
	assert.Equal(t, "image.repository", items[0].Path)
	assert.Equal(t, "../values.yaml", items[0].Detail)
	assert.True(t, items[0].Leaf)
	assert.Equal(t, "**../values.yaml**: `nginx`", items[0].Documentation)
	assert.Equal(t, "tag", items[1].Label)
}

func TestApp_Complete_Plain(t *testing.T) {
	a, _ := newTestApp(t, chartFiles)

	text := "{{ .Values."
	opts := query(0, len(text))
	opts.Text = &text

	var out bytes.Buffer
	require.NoError(t, a.Complete(context.Background(), &out, opts))

	assert.Equal(t, "image     object\nreplicas  ../values.yaml\n", out.String())
}

func TestApp_ValueFilesOverride(t *testing.T) {
	a, _ := newTestApp(t, map[string]string{
		"chart/values.yaml":      "replicas: 3\n",
		"chart/values.prod.yaml": "replicas: 5\n",
	})

	text := "{{ .Values.replicas }}"
	opts := query(0, 3)
	opts.Text = &text
	opts.Settings.ValueFiles = []string{"values.prod.yaml"}

	var out bytes.Buffer
	require.NoError(t, a.Hover(context.Background(), &out, opts))

	assert.Equal(t, "**../values.prod.yaml**: `5`\n", out.String())
}

func TestApp_SettingsFile(t *testing.T) {
	files := map[string]string{
		"chart/.helmvals.yaml": "showFileNames: false\n",
	}
	for name, content := range chartFiles {
		files[name] = content
	}
	a, _ := newTestApp(t, files)

	var out bytes.Buffer
	require.NoError(t, a.Hover(context.Background(), &out, query(1, 15)))

	assert.Equal(t, "`3`\n", out.String())
}

func TestApp_Errors(t *testing.T) {
	tests := []struct {
		name    string
		files   map[string]string
		opts    app.QueryOptions
		wantErr error
	}{
		{
			name:    "MissingDocument",
			files:   chartFiles,
			opts:    app.QueryOptions{Cwd: chartDir},
			wantErr: domain.ErrMissingDocument,
		},
		{
			name:    "UnreadableDocument",
			files:   chartFiles,
			opts:    app.QueryOptions{Cwd: chartDir, File: "templates/missing.yaml"},
			wantErr: domain.ErrDocumentReadFailed,
		},
		{
			name:    "LineOutOfRange",
			files:   chartFiles,
			opts:    query(42, 0),
			wantErr: domain.ErrLineOutOfRange,
		},
		{
			name:    "UnknownFormat",
			files:   chartFiles,
			opts:    app.QueryOptions{Cwd: chartDir, File: document, Format: "xml"},
			wantErr: domain.ErrUnknownFormat,
		},
		{
			name: "MalformedSettings",
			files: map[string]string{
				"chart/.helmvals.yaml": "unknownKey: true\n",
			},
			opts:    query(0, 0),
			wantErr: domain.ErrSettingsParseFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := newTestApp(t, tt.files)

			var out bytes.Buffer
			err := a.Hover(context.Background(), &out, tt.opts)

			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr.Error())
			assert.Empty(t, out.String())
		})
	}
}
