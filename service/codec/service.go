// Package codec turns Flow document text into the typed model and back.
// Parsing runs text through the XML codec into a generic tree, normalizes it
// against the schema table and decodes the result; stringifying serializes a
// canonically ordered copy under a fixed configuration: XML declaration
// header, namespace attribute on the root, four-space indentation, no
// self-closing tags and a single trailing newline.
package codec

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/clbanning/mxj/v2"
	"github.com/mitchellh/mapstructure"
	"github.com/viant/afs"

	"github.com/flowmeta/flowmeta/internal/tree"
	"github.com/flowmeta/flowmeta/model"
	"github.com/flowmeta/flowmeta/model/schema"
	"github.com/flowmeta/flowmeta/service/canonical"
	"github.com/flowmeta/flowmeta/service/meta"
	"github.com/flowmeta/flowmeta/service/normalizer"
)

const (
	rootElement   = "Flow"
	namespace     = "http://soap.sforce.com/2006/04/metadata"
	xmlHeader     = `<?xml version="1.0" encoding="UTF-8"?>`
	attrPrefix    = "-"
	defaultIndent = "    "
	fileSuffix    = ".flow-meta.xml"
)

// emptyTag matches a self-closing element so it can be expanded into an
// explicit open/close pair; downstream consumers of the format reject the
// collapsed form.
var emptyTag = regexp.MustCompile(`<([^\s<>/!?]+)((?:\s[^<>]*?)?)\s*/>`)

func init() {
	// mxj writes element text verbatim unless told to escape markup
	// characters; without this a value containing & or < is not well-formed.
	mxj.XMLEscapeChars(true)
}

// Service is the document codec.
type Service struct {
	table       *schema.Table
	normalizer  *normalizer.Service
	canonical   *canonical.Service
	metaService *meta.Service
	indent      string
}

// New creates a codec service with the built-in schema table, a local file
// system shim and four-space indentation unless options say otherwise.
func New(options ...Option) *Service {
	ret := &Service{indent: defaultIndent}
	for _, option := range options {
		option(ret)
	}
	if ret.table == nil {
		ret.table = schema.Default()
	}
	if ret.metaService == nil {
		ret.metaService = meta.New(afs.New(), "")
	}
	ret.normalizer = normalizer.New(ret.table)
	ret.canonical = canonical.New()
	return ret
}

// Parse decodes document text into a normalized flow.  It returns
// ErrNoRootElement when the text has no Flow root and wraps any failure of
// the underlying XML codec.
func (s *Service) Parse(data []byte) (*model.Flow, error) {
	parsed, err := mxj.NewMapXml(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse flow document: %w", err)
	}
	value, ok := parsed[rootElement]
	if !ok {
		return nil, ErrNoRootElement
	}
	root := tree.Object(value)
	if root == nil {
		// <Flow/> parses to an empty scalar; treat it as a document with no
		// fields so normalization still yields every declared sequence.
		root = map[string]interface{}{}
	}
	s.normalizer.Normalize(root)

	flow := &model.Flow{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Squash:           true,
		WeaklyTypedInput: true,
		Result:           flow,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(root); err != nil {
		return nil, fmt.Errorf("failed to decode flow document: %w", err)
	}
	name := flow.FullName
	if name == "" {
		name = anonymousName()
	}
	flow.Source = &model.Source{Name: name}
	return flow, nil
}

// Stringify serializes a canonically ordered copy of the flow; the given
// document is never mutated.
func (s *Service) Stringify(flow *model.Flow) ([]byte, error) {
	sorted := s.canonical.Apply(flow)

	encoded, err := json.Marshal(sorted)
	if err != nil {
		return nil, fmt.Errorf("failed to encode flow document: %w", err)
	}
	var root map[string]interface{}
	if err := json.Unmarshal(encoded, &root); err != nil {
		return nil, fmt.Errorf("failed to encode flow document: %w", err)
	}
	root[attrPrefix+"xmlns"] = namespace

	document := mxj.Map(map[string]interface{}{rootElement: root})
	body, err := document.XmlIndent("", s.indent)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize flow document: %w", err)
	}
	text := emptyTag.ReplaceAllString(string(body), "<$1$2></$1>")

	var out strings.Builder
	out.WriteString(xmlHeader)
	out.WriteString("\n")
	out.WriteString(text)
	out.WriteString("\n")
	return []byte(out.String()), nil
}

// Load reads, parses and normalizes the flow at the given URL or path.  A
// location without an extension gets the conventional flow file suffix.
func (s *Service) Load(ctx context.Context, URL string) (*model.Flow, error) {
	if filepath.Ext(URL) == "" {
		URL += fileSuffix
	}
	data, err := s.metaService.Load(ctx, URL)
	if err != nil {
		return nil, err
	}
	flow, err := s.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load flow from %s: %w", URL, err)
	}
	flow.Source = &model.Source{URL: URL, Name: flowNameFromURL(URL)}
	return flow, nil
}

// Save serializes the flow and writes it to the given URL or path.
func (s *Service) Save(ctx context.Context, URL string, flow *model.Flow) error {
	if filepath.Ext(URL) == "" {
		URL += fileSuffix
	}
	data, err := s.Stringify(flow)
	if err != nil {
		return fmt.Errorf("failed to save flow to %s: %w", URL, err)
	}
	return s.metaService.Save(ctx, URL, data)
}

// flowNameFromURL extracts the flow name from a location: the base name
// without the conventional suffix or extension.
func flowNameFromURL(URL string) string {
	base := filepath.Base(URL)
	if strings.HasSuffix(base, fileSuffix) {
		return strings.TrimSuffix(base, fileSuffix)
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}
