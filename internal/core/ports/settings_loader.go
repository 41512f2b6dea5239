package ports

import "go.trai.ch/helmvals/internal/core/domain"

// SettingsLoader defines the interface for loading engine settings.
//
//go:generate mockgen -source=settings_loader.go -destination=mocks/mock_settings_loader.go -package=mocks
type SettingsLoader interface {
	// Load returns the settings in effect for cwd, starting from the defaults
	// and applying the nearest settings file found in cwd or its ancestors.
	Load(cwd string) (domain.Settings, error)

	// DiscoverSettingsPath walks up from cwd to find the settings file.
	// It returns an empty string when none exists.
	DiscoverSettingsPath(cwd string) string
}
