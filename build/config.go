package build

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"log"

	"github.com/nickng/loopdep/loop"
	"github.com/pkg/errors"
	"go.starlark.net/syntax"
)

// defaultFilename names sources that are not read from a file.
const defaultFilename = "<input>"

// ParseError is the error returned if the source is not a syntactically
// valid single loop.
type ParseError struct {
	Filename string
	Err      error
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%s: parse failed: %v", e.Filename, e.Err)
}

// IsParseError returns true if the cause of err is a ParseError.
func IsParseError(err error) bool {
	_, ok := errors.Cause(err).(ParseError)
	return ok
}

// srcReader is a wrapper for source code which can be read through Bytes.
type srcReader interface {
	Bytes() ([]byte, error)
}

type Configurer interface {
	Builder
	WithBuildLog(l io.Writer, flags int) Configurer
	WithFilename(name string) Configurer
}

// Config represents a build configuration.
type Config struct {
	bldLog    io.Writer // Build log.
	bldLFlags int       // Build log flags.
	filename  string    // Name of source in positions.

	src srcReader // src points to the program source.
}

func newConfig(src srcReader) *Config {
	return &Config{
		bldLog:    ioutil.Discard,
		bldLFlags: log.LstdFlags,
		filename:  defaultFilename,
		src:       src,
	}
}

// WithBuildLog adds build log to config.
func (c *Config) WithBuildLog(l io.Writer, flags int) Configurer {
	c.bldLog = l
	c.bldLFlags = flags
	return c
}

// WithFilename sets the name of the source used in positions.
func (c *Config) WithFilename(name string) Configurer {
	c.filename = name
	return c
}

// Build parses the source and extracts its loop.
func (c *Config) Build() (*loop.Nest, error) {
	bldLog := log.New(c.bldLog, "build: ", c.bldLFlags)

	src, err := c.src.Bytes()
	if err != nil {
		return nil, err
	}
	f, err := syntax.Parse(c.filename, src, 0)
	if err != nil {
		bldLog.Printf("Parse failed: %v", err)
		isLoop, perr := pythonLoop(context.Background(), src)
		if perr != nil {
			bldLog.Printf("Python check failed: %v", perr)
		}
		if isLoop {
			bldLog.Printf("Source is a Python loop outside the supported syntax")
			return nil, unsupportedSyntax(err)
		}
		return nil, ParseError{Filename: c.filename, Err: err}
	}
	bldLog.Printf("Source parsed: %d top-level statements", len(f.Stmts))

	detector := loop.NewDetector()
	detector.SetLog(c.bldLog)
	nest, err := detector.Detect(f)
	if err != nil {
		bldLog.Printf("Loop not detected: %v", err)
		if errors.Cause(err) == loop.ErrNotLoop {
			return nil, ParseError{Filename: c.filename, Err: err}
		}
		return nil, err
	}
	bldLog.Printf("Loop detected: %s", nest)
	return nest, nil
}
