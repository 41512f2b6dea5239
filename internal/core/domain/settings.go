package domain

// Settings configures discovery and rendering.
type Settings struct {
	// ValueFiles are the glob patterns applied in every visited directory.
	ValueFiles []string
	// ShowFileNames controls whether provenance is rendered.
	ShowFileNames bool
	// RootMarkers stop the ancestor walk at the first directory containing one of them.
	RootMarkers []string
}

// DefaultValueFiles returns the default discovery patterns.
func DefaultValueFiles() []string {
	return []string{
		ValuesFileName,
		"*" + ValuesFileName,
		ValuesFileStem + ".*" + ValuesFileExt,
	}
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		ValueFiles:    DefaultValueFiles(),
		ShowFileNames: true,
	}
}
