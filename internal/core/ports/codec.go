package ports

import "go.trai.ch/helmvals/internal/core/domain"

// ValuesCodec parses definitions documents into value trees and serializes
// values back into human-readable text.
//
//go:generate mockgen -source=codec.go -destination=mocks/mock_codec.go -package=mocks
type ValuesCodec interface {
	// Parse decodes a document. An empty document yields a nil value.
	Parse(data []byte) (domain.Value, error)
	// Format encodes a value as a document.
	Format(value domain.Value) ([]byte, error)
}
