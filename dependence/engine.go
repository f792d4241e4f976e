package dependence

import (
	"github.com/fatih/color"
	"github.com/nickng/loopdep/access"
	"github.com/nickng/loopdep/block"
	"github.com/nickng/loopdep/deptest"
	"github.com/nickng/loopdep/expr"
	"github.com/nickng/loopdep/loop"
	"github.com/nickng/loopdep/normalise"
	"github.com/nickng/loopdep/subscript"
	"github.com/pkg/errors"
)

// Engine analyses loops for loop-carried dependences.
//
// An Engine holds no state between calls to Analyse and can be shared.
type Engine struct {
	*Logger
}

// NewEngine returns a new Engine which discards its log.
func NewEngine() *Engine {
	e := new(Engine)
	e.SetLogger(NopLogger())
	return e
}

var _ LogSetter = (*Engine)(nil)

// SetLogger sets logger for Engine.
func (e *Engine) SetLogger(l *Logger) {
	e.Logger = l.WithModule(color.MagentaString("engine"))
}

// assign is an assignment statement with its accesses.
type assign struct {
	Stmt
	reads, writes *access.Set
}

// Analyse returns the dependences of loop n.
//
// The loop is normalised first; n itself is not modified. An unsupported
// construct anywhere in the loop fails the whole analysis.
func (e *Engine) Analyse(n *loop.Nest) Result {
	if len(n.Body) == 0 {
		e.Debugf("%s Analyse: empty loop body", e.Module())
		return Analysed(nil)
	}
	norm, err := normalise.Nest(n)
	if err != nil {
		e.Debugf("%s Analyse: cannot normalise loop: %v", e.Module(), err)
		return UnsupportedResult(err)
	}
	lower, upper, _ := norm.Bounds()
	e.Debugf("%s Analyse: %s", e.Module(), norm)

	var stmts []assign
	for i, stmt := range block.Assigns(norm.Body) {
		reads, writes := access.Extract(stmt)
		start, _ := stmt.Span()
		stmts = append(stmts, assign{
			Stmt:   Stmt{Index: i, Line: start.Line, Text: expr.Stmt(stmt), Node: stmt},
			reads:  reads,
			writes: writes,
		})
		e.Debugf("%s S%d: %s reads=%v writes=%v", e.Module(), i, expr.Stmt(stmt), reads.Elems(), writes.Elems())
	}

	deps := []Dependence{}
	for _, s1 := range stmts {
		for _, s2 := range stmts {
			for _, kind := range Kinds {
				found, err := e.check(kind, s1, s2, norm.Var, lower, upper)
				if err != nil {
					e.Debugf("%s Analyse: %s %s → %s: %v", e.Module(), kind, s1.Stmt, s2.Stmt, err)
					return UnsupportedResult(err)
				}
				deps = append(deps, found...)
			}
		}
	}
	e.Debugf("%s Analyse: %d dependences", e.Module(), len(deps))
	return Analysed(deps)
}

// sets returns the source and sink access sets of kind k from s1 to s2.
func sets(k Kind, s1, s2 assign) (src, sink *access.Set) {
	switch k {
	case True:
		return s1.writes, s2.reads
	case Anti:
		return s1.reads, s2.writes
	default:
		return s1.writes, s2.writes
	}
}

// check returns the dependences of kind k from s1 to s2.
func (e *Engine) check(k Kind, s1, s2 assign, index, lower, upper string) ([]Dependence, error) {
	var deps []Dependence
	src, sink := sets(k, s1, s2)
	for _, a := range src.Elems() {
		for _, b := range sink.Array(a.Array) {
			d := Dependence{
				Kind:       k,
				Var:        a.Array,
				Source:     a.String(),
				Sink:       b.String(),
				SourceStmt: s1.Stmt,
				SinkStmt:   s2.Stmt,
			}
			srcClass := subscript.Classify(a.Subscript, index)
			sinkClass := subscript.Classify(b.Subscript, index)
			if !srcClass.Analyzable() || !sinkClass.Analyzable() {
				d.Unanalyzable = unanalyzable(a, srcClass, b, sinkClass)
				e.Debugf("%s %s %s → %s: assumed (%v)", e.Module(), k, d.Source, d.Sink, d.Unanalyzable)
				deps = append(deps, d)
				continue
			}
			dep, err := deptest.HasDependence(srcClass, sinkClass, lower, upper)
			if err != nil {
				return nil, errors.Wrapf(err, "%s → %s", d.Source, d.Sink)
			}
			e.Debugf("%s %s %s → %s: %s/%s in [%s, %s): %t", e.Module(),
				k, d.Source, d.Sink, srcClass, sinkClass, lower, upper, dep)
			if dep {
				deps = append(deps, d)
			}
		}
	}
	return deps, nil
}

// unanalyzable lists the subscripts of a and b that cannot be analysed.
func unanalyzable(a access.Access, ac subscript.Class, b access.Access, bc subscript.Class) []string {
	var subs []string
	if !ac.Analyzable() {
		subs = append(subs, a.Subscript)
	}
	if !bc.Analyzable() && (ac.Analyzable() || b.Subscript != a.Subscript) {
		subs = append(subs, b.Subscript)
	}
	return subs
}
