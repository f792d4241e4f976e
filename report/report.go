// Package report writes dependence analysis results for people and tools.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/nickng/loopdep/dependence"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Format is an output format of a report.
type Format int

const (
	Text Format = iota
	YAML
	JSON
)

// ErrUnknownFormat is returned by ParseFormat for an unrecognised name.
var ErrUnknownFormat = errors.New("unknown report format")

func (f Format) String() string {
	switch f {
	case Text:
		return "text"
	case YAML:
		return "yaml"
	case JSON:
		return "json"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat returns the Format named s (text, yaml or json).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "text", "":
		return Text, nil
	case "yaml", "yml":
		return YAML, nil
	case "json":
		return JSON, nil
	}
	return Text, errors.Wrap(ErrUnknownFormat, s)
}

// document is the encoded form of one result.
type document struct {
	Name              string `json:"name,omitempty" yaml:"name,omitempty"`
	dependence.Result `yaml:",inline"`
}

// Write writes res of the loop in name to w in format f.
func Write(w io.Writer, name string, res dependence.Result, f Format) error {
	switch f {
	case Text:
		return writeText(w, name, res)
	case YAML:
		// Reports are written one after another, each as its own document.
		if _, err := io.WriteString(w, "---\n"); err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(document{Name: name, Result: res}); err != nil {
			return errors.Wrap(err, "cannot write YAML report")
		}
		return enc.Close()
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(document{Name: name, Result: res}); err != nil {
			return errors.Wrap(err, "cannot write JSON report")
		}
		return nil
	}
	return errors.Wrap(ErrUnknownFormat, f.String())
}

func writeText(w io.Writer, name string, res dependence.Result) error {
	if name == "" {
		name = "<input>"
	}
	var b strings.Builder
	switch {
	case !res.Analyzable:
		fmt.Fprintf(&b, "%s: %s\n", name, color.RedString("not analyzable: %s", res.FailReason))
	case res.Failure == dependence.EmptyInput:
		fmt.Fprintf(&b, "%s: %s\n", name, color.GreenString("%s", res.FailReason))
	case len(res.Dependences) == 0:
		fmt.Fprintf(&b, "%s: %s\n", name, color.GreenString("no loop-carried dependences"))
	default:
		fmt.Fprintf(&b, "%s: %d loop-carried dependences\n", name, len(res.Dependences))
	}
	for _, d := range res.Dependences {
		line := fmt.Sprintf("  %-6s %s: %s %s -> %s %s",
			d.Kind, d.Var, d.Source, d.SourceStmt, d.Sink, d.SinkStmt)
		if d.Conservative() {
			line = color.YellowString("%s (assumed, cannot analyse %s)",
				line, strings.Join(d.Unanalyzable, ", "))
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
