// Package build is a helper package for building the loop representation
// analysed by package dependence from source code.
//
// Usage
//
// There are three ways of building a loop from source code:
//
// Build from a file
//
// This is the normal usage, where a single file containing one loop is
// supplied (usually as a command line argument).
//
// Build from a Reader or string
//
// This is mostly used for testing or demo, where the input source code is read
// from a given io.Reader or string and is named "<input>" in positions unless
// WithFilename is used.
//
// The source must be exactly one top-level loop of the form
//
//	for <var> in range(<args>):
//	    <body>
//
// Source that does not parse, or parses but is not a single loop, is
// reported as a ParseError. A loop outside the supported shape is reported
// as a loop.UnsupportedError.
package build
