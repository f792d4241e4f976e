// Package depcheck is the source-level entry point to loop dependence
// analysis.
//
// The analyser takes source text of a single `for <var> in range(<args>):`
// loop and returns its dependence.Result. Failures are reported in the
// result rather than as errors:
//
//	empty or blank source   Analyzable, FailReason "Empty code"
//	invalid syntax          not Analyzable, FailReason "AST parsing failed"
//	unsupported construct   not Analyzable, FailReason "Unsupported construct: ..."
//
// A valid Python loop using syntax outside the Starlark-like subset accepted
// by package build, e.g. `**` or chained assignment, is an unsupported
// construct rather than a parse failure.
package depcheck

import (
	"io"
	"io/ioutil"
	"log"
	"strings"

	"github.com/fatih/color"
	"github.com/nickng/loopdep/build"
	"github.com/nickng/loopdep/dependence"
	"github.com/nickng/loopdep/loop"
	"github.com/pkg/errors"
)

// Analyser analyses loop source code for dependences.
type Analyser struct {
	Engine *dependence.Engine // Dependence analysis engine.

	bldLog io.Writer // Build log.
	*dependence.Logger
}

// New returns a new Analyser with the default logger.
func New() *Analyser {
	a := &Analyser{
		Engine: dependence.NewEngine(),
		bldLog: ioutil.Discard,
	}
	a.SetLogger(newLogger())
	return a
}

var _ dependence.LogSetter = (*Analyser)(nil)

// SetLogger sets logger for the Analyser and its Engine.
func (a *Analyser) SetLogger(l *dependence.Logger) {
	a.Logger = l.WithModule(color.BlueString("depcheck"))
	for _, s := range a.logSetters() {
		s.SetLogger(l)
	}
}

// logSetters returns the components logging through the Analyser's Logger.
func (a *Analyser) logSetters() []dependence.LogSetter {
	return []dependence.LogSetter{a.Engine}
}

// AddLogFiles extends current Logger to log the analysis trace to stderr
// and to files. With no files the trace is only written to stderr.
func (a *Analyser) AddLogFiles(file ...string) {
	a.SetLogger(newFileLogger(file...))
}

// SetBuildLog writes the parser and loop detection log to w.
func (a *Analyser) SetBuildLog(w io.Writer) {
	if w != nil {
		a.bldLog = w
	}
}

// AnalyseSource analyses the loop in src.
func (a *Analyser) AnalyseSource(src string) dependence.Result {
	return a.AnalyseNamed("", src)
}

// AnalyseNamed analyses the loop in src, using name as the file name in
// positions.
func (a *Analyser) AnalyseNamed(name, src string) dependence.Result {
	if strings.TrimSpace(src) == "" {
		a.Debugf("%s %s: empty source", a.Module(), name)
		return dependence.EmptyResult()
	}
	conf := build.FromString(src)
	if name != "" {
		conf = conf.WithFilename(name)
	}
	return a.analyse(conf)
}

// AnalyseFile reads and analyses the loop in file. Only a failure to read
// the file is returned as an error.
func (a *Analyser) AnalyseFile(file string) (dependence.Result, error) {
	b, err := ioutil.ReadFile(file)
	if err != nil {
		return dependence.Result{}, errors.Wrapf(err, "cannot analyse %s", file)
	}
	return a.AnalyseNamed(file, string(b)), nil
}

func (a *Analyser) analyse(conf build.Configurer) dependence.Result {
	// Sync error ignored. See https://github.com/uber-go/zap/issues/328
	defer a.Logger.Sync()

	nest, err := conf.WithBuildLog(a.bldLog, log.LstdFlags).Build()
	switch {
	case err == nil:
	case loop.IsUnsupported(err):
		a.Debugf("%s unsupported loop: %v", a.Module(), err)
		return dependence.UnsupportedResult(err)
	default:
		a.Debugf("%s parse failed: %v", a.Module(), err)
		return dependence.ParseFailureResult(err)
	}
	a.Debugf("%s loop: %s", a.Module(), nest)
	return a.Engine.Analyse(nest)
}

var std = New()

// AnalyseSource analyses the loop in src with a default Analyser.
func AnalyseSource(src string) dependence.Result {
	return std.AnalyseSource(src)
}
