// Package meta is the thin I/O shim between the document codec and the file
// system.  It reads and writes raw document text by URL or path through the
// afs abstraction and translates not-found and permission failures into
// sentinel errors carrying the offending location; every other failure
// propagates unchanged.
package meta

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
)

var (
	// ErrNotFound is returned when the requested document does not exist.
	ErrNotFound = errors.New("meta: not found")

	// ErrPermission is returned when the document exists but cannot be
	// accessed.
	ErrPermission = errors.New("meta: permission denied")
)

// Service loads and stores document text.
type Service struct {
	fs      afs.Service
	baseURL string
	options []storage.Option
}

// New creates a meta service rooted at baseURL; an empty baseURL leaves
// locations untouched.
func New(fs afs.Service, baseURL string, options ...storage.Option) *Service {
	return &Service{fs: fs, baseURL: baseURL, options: options}
}

// Load reads the document text at the given URL or path.
func (s *Service) Load(ctx context.Context, URL string) ([]byte, error) {
	location := s.resolve(URL)
	data, err := s.fs.DownloadWithURL(ctx, location, s.options...)
	if err != nil {
		return nil, translate(err, location)
	}
	return data, nil
}

// Save writes the document text to the given URL or path, creating parent
// directories as needed.
func (s *Service) Save(ctx context.Context, URL string, data []byte) error {
	location := s.resolve(URL)
	if err := s.fs.Upload(ctx, location, file.DefaultFileOsMode, bytes.NewReader(data), s.options...); err != nil {
		return translate(err, location)
	}
	return nil
}

// Exists reports whether a document is present at the given URL or path.
func (s *Service) Exists(ctx context.Context, URL string) (bool, error) {
	return s.fs.Exists(ctx, s.resolve(URL), s.options...)
}

func (s *Service) resolve(URL string) string {
	if s.baseURL == "" {
		return URL
	}
	return url.Join(s.baseURL, URL)
}

// translate maps not-found and permission failures onto the package
// sentinels, keeping the original error as cause; anything else passes
// through.
func translate(err error, location string) error {
	switch {
	case errors.Is(err, os.ErrNotExist) || os.IsNotExist(err):
		return fmt.Errorf("%w: %v: %v", ErrNotFound, location, err)
	case errors.Is(err, os.ErrPermission) || os.IsPermission(err):
		return fmt.Errorf("%w: %v: %v", ErrPermission, location, err)
	}
	return err
}
