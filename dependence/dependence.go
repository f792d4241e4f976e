// Package dependence provides loop-carried dependence analysis of a loop.
//
// For every ordered pair of assignment statements (s1, s2) in the loop body,
// including s1 == s2, three kinds of dependences are checked on accesses to
// the same array:
//
//	True    s1 writes, s2 reads
//	Anti    s1 reads, s2 writes
//	Output  s1 writes, s2 writes
//
// A pair of accesses with constant or unit-stride subscripts is tested
// numerically (see package deptest). If either subscript cannot be analysed
// the dependence is reported conservatively, with the offending subscripts
// listed in Dependence.Unanalyzable.
package dependence

import (
	"fmt"
	"strings"

	"go.starlark.net/syntax"
)

// Kind is the kind of a dependence.
type Kind int

const (
	True Kind = iota
	Anti
	Output
)

// Kinds lists all kinds in the order they are checked.
var Kinds = [...]Kind{True, Anti, Output}

func (k Kind) String() string {
	switch k {
	case True:
		return "true"
	case Anti:
		return "anti"
	case Output:
		return "output"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Stmt refers to an assignment statement of the analysed loop.
type Stmt struct {
	Index int    `json:"index" yaml:"index"` // Position in traversal order.
	Line  int32  `json:"line" yaml:"line"`   // Source line, 0 if unknown.
	Text  string `json:"text" yaml:"text"`

	Node *syntax.AssignStmt `json:"-" yaml:"-"` // Normalised statement.
}

func (s Stmt) String() string {
	if s.Line > 0 {
		return fmt.Sprintf("S%d (line %d)", s.Index, s.Line)
	}
	return fmt.Sprintf("S%d", s.Index)
}

// Dependence is a dependence between a source and a sink access of the same
// array.
type Dependence struct {
	Kind       Kind   `json:"kind" yaml:"kind"`
	Var        string `json:"var" yaml:"var"`       // Array name.
	Source     string `json:"source" yaml:"source"` // Source access, e.g. a[i+1].
	Sink       string `json:"sink" yaml:"sink"`     // Sink access.
	SourceStmt Stmt   `json:"sourceStmt" yaml:"sourceStmt"`
	SinkStmt   Stmt   `json:"sinkStmt" yaml:"sinkStmt"`

	// Unanalyzable is non-empty iff the dependence is reported
	// conservatively, and lists the subscripts that could not be analysed.
	Unanalyzable []string `json:"unanalyzable,omitempty" yaml:"unanalyzable,omitempty"`
}

// Conservative returns true if the dependence was assumed, not proven.
func (d Dependence) Conservative() bool {
	return len(d.Unanalyzable) > 0
}

func (d Dependence) String() string {
	s := fmt.Sprintf("%s dependence on %s: %s %s → %s %s",
		d.Kind, d.Var, d.Source, d.SourceStmt, d.Sink, d.SinkStmt)
	if d.Conservative() {
		s += fmt.Sprintf(" (unanalyzable: %s)", strings.Join(d.Unanalyzable, ", "))
	}
	return s
}
