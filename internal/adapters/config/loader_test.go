package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/helmvals/internal/adapters/config"
	"go.trai.ch/helmvals/internal/adapters/fs"
	"go.trai.ch/helmvals/internal/core/domain"
	"go.trai.ch/helmvals/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T, files map[string]string) *config.Loader {
	t.Helper()

	mapFS := fstest.MapFS{}
	for name, content := range files {
		mapFS[name] = &fstest.MapFile{Data: []byte(content)}
	}

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	return config.NewLoader(fs.NewMapFSAdapter("/", mapFS), mockLogger)
}

func TestLoader_Load_Defaults(t *testing.T) {
	loader := newLoader(t, map[string]string{
		"charts/app/values.yaml": "a: 1\n",
	})

	settings, err := loader.Load("/charts/app")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)
}

func TestLoader_Load_NearestFileWins(t *testing.T) {
	loader := newLoader(t, map[string]string{
		".helmvals.yaml": "showFileNames: true\n",
		"charts/.helmvals.yaml": `
valueFiles:
  - values.yaml
  - "values-*.yaml"
showFileNames: false
rootMarkers: [Chart.lock, .git]
`,
	})

	settings, err := loader.Load("/charts/app/templates")
	require.NoError(t, err)
	assert.Equal(t, domain.Settings{
		ValueFiles:    []string{"values.yaml", "values-*.yaml"},
		ShowFileNames: false,
		RootMarkers:   []string{"Chart.lock", ".git"},
	}, settings)
}

func TestLoader_Load_PartialFileKeepsDefaults(t *testing.T) {
	loader := newLoader(t, map[string]string{
		".helmvals.yaml": "rootMarkers: [.git]\n",
	})

	settings, err := loader.Load("/")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultValueFiles(), settings.ValueFiles)
	assert.True(t, settings.ShowFileNames)
	assert.Equal(t, []string{".git"}, settings.RootMarkers)
}

func TestLoader_Load_EmptyFile(t *testing.T) {
	loader := newLoader(t, map[string]string{
		".helmvals.yaml": "",
	})

	settings, err := loader.Load("/")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "malformed yaml", content: "valueFiles: [", wantErr: domain.ErrSettingsParseFailed},
		{name: "unknown key", content: "valueFile: values.yaml\n", wantErr: domain.ErrSettingsParseFailed},
		{name: "wrong type", content: "showFileNames: [true]\n", wantErr: domain.ErrSettingsParseFailed},
		{name: "bad pattern", content: "valueFiles: [\"[\"]\n", wantErr: domain.ErrSettingsParseFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := newLoader(t, map[string]string{".helmvals.yaml": tt.content})

			_, err := loader.Load("/")
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr.Error())
		})
	}
}

func TestLoader_DiscoverSettingsPath(t *testing.T) {
	rootDir := t.TempDir()
	nested := filepath.Join(rootDir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, domain.DirPerm))

	ctrl := gomock.NewController(t)
	loader := config.NewLoader(fs.NewOSFS(), mocks.NewMockLogger(ctrl))

	assert.Empty(t, loader.DiscoverSettingsPath(nested))

	settingsPath := filepath.Join(rootDir, "a", domain.SettingsFileName)
	require.NoError(t, os.WriteFile(settingsPath, []byte("showFileNames: false\n"), domain.FilePerm))
	assert.Equal(t, settingsPath, loader.DiscoverSettingsPath(nested))

	// A directory with the settings name is not a settings file.
	require.NoError(t, os.Mkdir(filepath.Join(nested, domain.SettingsFileName), domain.DirPerm))
	assert.Equal(t, settingsPath, loader.DiscoverSettingsPath(nested))
}
