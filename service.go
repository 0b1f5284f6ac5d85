package flowmeta

import (
	"context"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"

	"github.com/flowmeta/flowmeta/model"
	"github.com/flowmeta/flowmeta/model/schema"
	"github.com/flowmeta/flowmeta/service/codec"
	"github.com/flowmeta/flowmeta/service/meta"
)

// Service is the facade embedders interact with; it wires the schema table,
// the I/O shim and the document codec together.
type Service struct {
	table         *schema.Table
	metaService   *meta.Service
	metaBaseURL   string
	metaFsOptions []storage.Option
	indent        string
	codec         *codec.Service
}

// New creates a service with the built-in schema and a local file system
// shim unless options say otherwise.
func New(options ...Option) *Service {
	ret := &Service{}
	ret.init(options)
	return ret
}

func (s *Service) init(options []Option) {
	for _, option := range options {
		option(s)
	}
	if s.table == nil {
		s.table = schema.Default()
	}
	if s.metaService == nil {
		s.metaService = meta.New(afs.New(), s.metaBaseURL, s.metaFsOptions...)
	}
	codecOptions := []codec.Option{
		codec.WithSchema(s.table),
		codec.WithMetaService(s.metaService),
	}
	if s.indent != "" {
		codecOptions = append(codecOptions, codec.WithIndent(s.indent))
	}
	s.codec = codec.New(codecOptions...)
}

// Schema returns the schema table the service normalizes against.
func (s *Service) Schema() *schema.Table {
	return s.table
}

// Parse decodes flow document text into the normalized model.
func (s *Service) Parse(data []byte) (*model.Flow, error) {
	return s.codec.Parse(data)
}

// Stringify serializes a canonically ordered copy of the flow.
func (s *Service) Stringify(flow *model.Flow) ([]byte, error) {
	return s.codec.Stringify(flow)
}

// Load reads and parses the flow at the given URL or path.
func (s *Service) Load(ctx context.Context, URL string) (*model.Flow, error) {
	return s.codec.Load(ctx, URL)
}

// Save serializes the flow and writes it to the given URL or path.
func (s *Service) Save(ctx context.Context, URL string, flow *model.Flow) error {
	return s.codec.Save(ctx, URL, flow)
}
