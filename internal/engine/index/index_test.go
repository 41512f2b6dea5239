package index_test

import (
	"errors"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/helmvals/internal/adapters/fs"
	"go.trai.ch/helmvals/internal/adapters/yamlcodec"
	"go.trai.ch/helmvals/internal/core/domain"
	"go.trai.ch/helmvals/internal/core/ports"
	"go.trai.ch/helmvals/internal/core/ports/mocks"
	"go.trai.ch/helmvals/internal/engine/discovery"
	"go.trai.ch/helmvals/internal/engine/index"
	"go.uber.org/mock/gomock"
)

const (
	document   = "/chart/templates/deployment.yaml"
	chartFile  = "/chart/values.yaml"
	parentFile = "/values.yaml"
)

// countingFS records how often each file is read.
type countingFS struct {
	ports.FileSystem
	reads map[string]int
}

func (c *countingFS) ReadFile(path string) ([]byte, error) {
	c.reads[path]++
	return c.FileSystem.ReadFile(path)
}

type fixture struct {
	mapFS fstest.MapFS
	fs    *countingFS
	index *index.Index
}

func newFixture(t *testing.T, mapFS fstest.MapFS, watcher ports.Watcher) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()

	counting := &countingFS{FileSystem: fs.NewMapFSAdapter("/", mapFS), reads: make(map[string]int)}
	finder := discovery.NewFinder(counting, mockLogger, domain.DefaultSettings())

	return &fixture{
		mapFS: mapFS,
		fs:    counting,
		index: index.New(counting, yamlcodec.New(), finder, watcher, mockLogger),
	}
}

func chartFS() fstest.MapFS {
	modTime := time.Unix(1700000000, 0)
	return fstest.MapFS{
		"chart/templates/deployment.yaml": {Data: []byte("image: {{ .Values.image.tag }}\n")},
		"chart/values.yaml": {
			Data:    []byte("image:\n  tag: \"1.25\"\n  ports: [80, 443]\n"),
			ModTime: modTime,
		},
		"values.yaml": {
			Data:    []byte("image:\n  tag: latest\nglobal:\n  env: prod\n"),
			ModTime: modTime,
		},
	}
}

func TestIndex_ResolveAll(t *testing.T) {
	f := newFixture(t, chartFS(), nil)

	result := f.index.ResolveAll(document)

	assert.Equal(t, []string{chartFile, parentFile}, result.Files)
	assert.Equal(t, domain.Scalar{Data: "1.25"}, result.ByFile[chartFile].Entries["image.tag"].Value)
	assert.Equal(t, domain.Scalar{Data: "latest"}, result.ByFile[parentFile].Entries["image.tag"].Value)

	found := result.Lookup("image.tag")
	require.Len(t, found, 2)
	assert.Equal(t, chartFile, found[0].SourceFile)
	assert.Equal(t, parentFile, found[1].SourceFile)
}

func TestIndex_RoundTrip(t *testing.T) {
	f := newFixture(t, chartFS(), nil)

	result := f.index.ResolveAll(document)

	found := result.Lookup("image.ports")
	require.Len(t, found, 1)
	assert.Equal(t, domain.Sequence{Items: []domain.Value{
		domain.Scalar{Data: 80},
		domain.Scalar{Data: 443},
	}}, found[0].Value)
}

func TestIndex_CacheHitDoesNotReread(t *testing.T) {
	f := newFixture(t, chartFS(), nil)

	first := f.index.ResolveAll(document)
	second := f.index.ResolveAll(document)

	assert.Equal(t, 1, f.fs.reads[chartFile])
	assert.Equal(t, 1, f.fs.reads[parentFile])
	assert.Same(t, first.ByFile[chartFile], second.ByFile[chartFile])
	assert.Same(t, first.ByFile[parentFile], second.ByFile[parentFile])
	assert.Equal(t, 2, f.index.Len())
}

func TestIndex_ModTimeChangeForcesReparse(t *testing.T) {
	f := newFixture(t, chartFS(), nil)

	first := f.index.ResolveAll(document)

	// Same content, newer timestamp.
	f.mapFS["chart/values.yaml"].ModTime = time.Unix(1700000100, 0)
	second := f.index.ResolveAll(document)

	assert.Equal(t, 2, f.fs.reads[chartFile])
	assert.Equal(t, 1, f.fs.reads[parentFile])
	assert.NotSame(t, first.ByFile[chartFile], second.ByFile[chartFile])
	assert.Equal(t, first.ByFile[chartFile].Entries, second.ByFile[chartFile].Entries)
}

func TestIndex_Invalidate(t *testing.T) {
	f := newFixture(t, chartFS(), nil)
	f.index.ResolveAll(document)

	f.mapFS["chart/values.yaml"].Data = []byte("image:\n  tag: \"2.0\"\n")
	f.index.Invalidate(chartFile)
	assert.Equal(t, 1, f.index.Len())

	result := f.index.ResolveAll(document)

	assert.Equal(t, 2, f.fs.reads[chartFile])
	assert.Equal(t, domain.Scalar{Data: "2.0"}, result.ByFile[chartFile].Entries["image.tag"].Value)
}

func TestIndex_DeletedFileIsOmitted(t *testing.T) {
	f := newFixture(t, chartFS(), nil)
	f.index.ResolveAll(document)

	delete(f.mapFS, "chart/values.yaml")
	f.index.Invalidate(chartFile)

	result := f.index.ResolveAll(document)
	assert.Equal(t, []string{parentFile}, result.Files)
	assert.Equal(t, 1, f.index.Len())
}

func TestIndex_MalformedFileDoesNotPoisonOthers(t *testing.T) {
	mapFS := chartFS()
	mapFS["chart/values.yaml"].Data = []byte("image: [unterminated\n")
	f := newFixture(t, mapFS, nil)

	result := f.index.ResolveAll(document)

	assert.Equal(t, []string{parentFile}, result.Files)
	assert.Equal(t, 1, f.index.Len())
	assert.Len(t, result.Lookup("global.env"), 1)
}

func TestIndex_StaleEntryEvictedWhenFileBecomesMalformed(t *testing.T) {
	f := newFixture(t, chartFS(), nil)
	f.index.ResolveAll(document)

	f.mapFS["chart/values.yaml"].Data = []byte("image: [unterminated\n")
	f.mapFS["chart/values.yaml"].ModTime = time.Unix(1700000200, 0)

	result := f.index.ResolveAll(document)

	assert.Equal(t, []string{parentFile}, result.Files)
	assert.Equal(t, 1, f.index.Len())
}

func TestIndex_NoFiles(t *testing.T) {
	f := newFixture(t, fstest.MapFS{"chart/templates/deployment.yaml": {}}, nil)

	result := f.index.ResolveAll(document)

	assert.True(t, result.Empty())
}

func TestIndex_RequestsWatchOncePerParse(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockWatcher := mocks.NewMockWatcher(ctrl)
	mockWatcher.EXPECT().Watch(chartFile).Return(nil).Times(1)
	mockWatcher.EXPECT().Watch(parentFile).Return(errors.New("too many open files")).Times(1)

	f := newFixture(t, chartFS(), mockWatcher)

	f.index.ResolveAll(document)
	result := f.index.ResolveAll(document)

	// A failed watch does not prevent the file from being indexed.
	assert.Equal(t, []string{chartFile, parentFile}, result.Files)
}
