// Package config provides the settings loader for helmvals.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"go.trai.ch/helmvals/internal/core/domain"
	"go.trai.ch/helmvals/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.SettingsLoader = (*Loader)(nil)

// Loader implements ports.SettingsLoader using a YAML file.
type Loader struct {
	FS     ports.FileSystem
	Logger ports.Logger
}

// NewLoader creates a new Loader reading through fsys.
func NewLoader(fsys ports.FileSystem, logger ports.Logger) *Loader {
	return &Loader{FS: fsys, Logger: logger}
}

// Load returns the default settings overlaid with the nearest settings file.
func (l *Loader) Load(cwd string) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	path := l.DiscoverSettingsPath(cwd)
	if path == "" {
		return settings, nil
	}

	file, err := l.readSettingsfile(path)
	if err != nil {
		return domain.Settings{}, err
	}
	l.Logger.Debug(fmt.Sprintf("using settings from %s", path))

	return apply(settings, file), nil
}

// DiscoverSettingsPath walks up from cwd to find the settings file.
func (l *Loader) DiscoverSettingsPath(cwd string) string {
	currentDir, err := filepath.Abs(cwd)
	if err != nil {
		return ""
	}

	for {
		candidate := filepath.Join(currentDir, domain.SettingsFileName)
		if info, err := l.FS.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return ""
		}
		currentDir = parentDir
	}
}

func (l *Loader) readSettingsfile(path string) (*Settingsfile, error) {
	data, err := l.FS.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSettingsReadFailed.Error()), "path", path)
	}

	var file Settingsfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSettingsParseFailed.Error()), "path", path)
	}

	for _, pattern := range file.ValueFiles {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return nil, zerr.With(zerr.With(domain.ErrSettingsParseFailed, "path", path), "pattern", pattern)
		}
	}

	return &file, nil
}

// apply overlays the keys present in file onto settings.
func apply(settings domain.Settings, file *Settingsfile) domain.Settings {
	if len(file.ValueFiles) > 0 {
		settings.ValueFiles = file.ValueFiles
	}
	if file.ShowFileNames != nil {
		settings.ShowFileNames = *file.ShowFileNames
	}
	if file.RootMarkers != nil {
		settings.RootMarkers = file.RootMarkers
	}
	return settings
}
