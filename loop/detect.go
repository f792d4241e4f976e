package loop

import (
	"fmt"
	"io"
	"io/ioutil"
	"log"

	"github.com/nickng/loopdep/expr"
	"github.com/pkg/errors"
	"go.starlark.net/syntax"
)

// ErrNotLoop is returned if the file is not exactly one top-level loop.
var ErrNotLoop = errors.New("not a single for loop")

// UnsupportedError is the error returned for a construct outside the
// analysable loop shape, e.g. a range with a stride.
type UnsupportedError struct {
	Pos       syntax.Position
	Construct string
}

func (e UnsupportedError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: unsupported %s", e.Pos.String(), e.Construct)
	}
	return fmt.Sprintf("unsupported %s", e.Construct)
}

// IsUnsupported returns true if the cause of err is an UnsupportedError.
func IsUnsupported(err error) bool {
	_, ok := errors.Cause(err).(UnsupportedError)
	return ok
}

// Detector extracts the loop from a parsed file.
type Detector struct {
	logger *log.Logger
}

func NewDetector() *Detector {
	return &Detector{
		logger: log.New(ioutil.Discard, "loopdetect: ", 0),
	}
}

func (d *Detector) SetLog(w io.Writer) {
	d.logger.SetOutput(w)
}

// Detect returns the loop of f, which must consist of exactly one top-level
// for statement.
func (d *Detector) Detect(f *syntax.File) (*Nest, error) {
	if len(f.Stmts) != 1 {
		d.logger.Printf("Detect: %d top-level statements", len(f.Stmts))
		return nil, errors.Wrapf(ErrNotLoop, "found %d top-level statements", len(f.Stmts))
	}
	stmt, ok := f.Stmts[0].(*syntax.ForStmt)
	if !ok {
		d.logger.Printf("Detect: top-level statement is %T", f.Stmts[0])
		return nil, errors.Wrapf(ErrNotLoop, "top-level statement is %q", expr.Stmt(f.Stmts[0]))
	}
	return d.FromStmt(stmt)
}

// FromStmt extracts index variable, range arguments and body of a for
// statement of the form `for <ident> in range(<args>)`.
func (d *Detector) FromStmt(stmt *syntax.ForStmt) (*Nest, error) {
	index, ok := stmt.Vars.(*syntax.Ident)
	if !ok {
		d.logger.Printf("FromStmt: index is %T", stmt.Vars)
		return nil, UnsupportedError{Pos: stmt.For, Construct: fmt.Sprintf("loop variable %q", expr.String(stmt.Vars))}
	}
	call, ok := stmt.X.(*syntax.CallExpr)
	if !ok || !isRange(call.Fn) {
		d.logger.Printf("FromStmt: iterator is %T", stmt.X)
		return nil, UnsupportedError{Pos: stmt.For, Construct: fmt.Sprintf("iterator %q", expr.String(stmt.X))}
	}
	for _, arg := range call.Args {
		if !isPositional(arg) {
			return nil, UnsupportedError{Pos: call.Lparen, Construct: fmt.Sprintf("range argument %q", expr.String(arg))}
		}
	}
	d.logger.Printf("FromStmt: index %s, range(%d args), %d statements", index.Name, len(call.Args), len(stmt.Body))
	n := New(index.Name, call.Args, stmt.Body)
	n.Pos = stmt.For
	return n, nil
}

// isRange checks if fn is the range builtin.
func isRange(fn syntax.Expr) bool {
	id, ok := fn.(*syntax.Ident)
	return ok && id.Name == "range"
}

// isPositional checks arg is neither a keyword nor an unpacked argument.
func isPositional(arg syntax.Expr) bool {
	switch arg := arg.(type) {
	case *syntax.BinaryExpr:
		return arg.Op != syntax.EQ
	case *syntax.UnaryExpr:
		return arg.Op != syntax.STAR && arg.Op != syntax.STARSTAR
	}
	return true
}
