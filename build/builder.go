package build

import (
	"io"
	"io/ioutil"

	"github.com/nickng/loopdep/loop"
	"github.com/pkg/errors"
)

// Builder builds the loop from source.
type Builder interface {
	Build() (*loop.Nest, error)
}

// FileSrc is a source file.
type FileSrc struct {
	File string
}

// FromFile returns a non-nil Builder for a source file.
func FromFile(file string) Configurer {
	c := newConfig(&FileSrc{File: file})
	c.filename = file
	return c
}

// Bytes returns the content of the file.
func (s *FileSrc) Bytes() ([]byte, error) {
	b, err := ioutil.ReadFile(s.File)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read from file: %s", s.File)
	}
	return b, nil
}

// CachedSrc is source code from a reader.
type CachedSrc struct {
	cached []byte
	err    error
}

// FromReader returns a non-nil Builder for a reader.
// This is typically used for testing or analysing standard input.
func FromReader(r io.Reader) Configurer {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		err = errors.Wrap(err, "failed to read from reader")
	}
	return newConfig(&CachedSrc{cached: b, err: err})
}

// FromString returns a non-nil Builder for source code src.
func FromString(src string) Configurer {
	return newConfig(&CachedSrc{cached: []byte(src)})
}

// Bytes returns the cached content.
func (s *CachedSrc) Bytes() ([]byte, error) {
	return s.cached, s.err
}
