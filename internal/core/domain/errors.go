package domain

import "go.trai.ch/zerr"

var (
	// ErrValuesReadFailed is returned when a definitions file cannot be read.
	ErrValuesReadFailed = zerr.New("failed to read values file")

	// ErrValuesParseFailed is returned when a definitions file is not valid YAML.
	ErrValuesParseFailed = zerr.New("failed to parse values file")

	// ErrValuesFormatFailed is returned when a value cannot be serialized.
	ErrValuesFormatFailed = zerr.New("failed to format value")

	// ErrSettingsReadFailed is returned when the settings file cannot be read.
	ErrSettingsReadFailed = zerr.New("failed to read settings file")

	// ErrSettingsParseFailed is returned when the settings file cannot be parsed.
	ErrSettingsParseFailed = zerr.New("failed to parse settings file")

	// ErrDocumentReadFailed is returned when the inspected document cannot be read.
	ErrDocumentReadFailed = zerr.New("failed to read document")

	// ErrLineOutOfRange is returned when the requested line does not exist in the document.
	ErrLineOutOfRange = zerr.New("line out of range")

	// ErrMissingDocument is returned when a query does not name a document.
	ErrMissingDocument = zerr.New("no document specified")

	// ErrUnknownMethod is returned by the serve loop for unsupported methods.
	ErrUnknownMethod = zerr.New("unknown method")

	// ErrMalformedRequest is returned by the serve loop when a request cannot be decoded.
	ErrMalformedRequest = zerr.New("malformed request")

	// ErrUnknownFormat is returned when an output format is not supported.
	ErrUnknownFormat = zerr.New("unknown output format")

	// ErrWatchFailed is returned when a file cannot be watched.
	ErrWatchFailed = zerr.New("failed to watch file")
)
