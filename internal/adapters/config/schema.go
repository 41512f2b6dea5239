package config

// Settingsfile represents the structure of the .helmvals.yaml settings file.
// Pointer fields distinguish an explicit false or empty value from an
// omitted key.
type Settingsfile struct {
	ValueFiles    []string `yaml:"valueFiles"`
	ShowFileNames *bool    `yaml:"showFileNames"`
	RootMarkers   []string `yaml:"rootMarkers"`
}
