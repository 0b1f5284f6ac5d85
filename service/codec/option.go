package codec

import (
	"github.com/flowmeta/flowmeta/model/schema"
	"github.com/flowmeta/flowmeta/service/meta"
)

// Option customizes the codec service.
type Option func(s *Service)

// WithSchema sets the schema table driving normalization.
func WithSchema(table *schema.Table) Option {
	return func(s *Service) { s.table = table }
}

// WithMetaService sets the I/O shim used by Load and Save.
func WithMetaService(service *meta.Service) Option {
	return func(s *Service) { s.metaService = service }
}

// WithIndent sets the indentation unit of serialized documents.
func WithIndent(indent string) Option {
	return func(s *Service) { s.indent = indent }
}
