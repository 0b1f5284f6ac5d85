package flowmeta

import (
	"github.com/viant/afs/storage"

	"github.com/flowmeta/flowmeta/model/schema"
	"github.com/flowmeta/flowmeta/service/meta"
)

// Option customizes the service facade.
type Option func(s *Service)

// WithSchema sets the schema table driving normalization; the built-in table
// is used when unset.
func WithSchema(table *schema.Table) Option {
	return func(s *Service) { s.table = table }
}

// WithMetaService sets the document I/O shim.
func WithMetaService(service *meta.Service) Option {
	return func(s *Service) { s.metaService = service }
}

// WithMetaBaseURL sets the base location documents are resolved against.
func WithMetaBaseURL(url string) Option {
	return func(s *Service) { s.metaBaseURL = url }
}

// WithMetaFsOptions sets file system options forwarded to the I/O shim.
func WithMetaFsOptions(options ...storage.Option) Option {
	return func(s *Service) { s.metaFsOptions = options }
}

// WithIndent sets the indentation unit of serialized documents.
func WithIndent(indent string) Option {
	return func(s *Service) { s.indent = indent }
}
