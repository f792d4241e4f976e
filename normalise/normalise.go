// Package normalise rewrites loops to the regular form expected by the
// dependence analysis.
//
// Two rewrites are provided:
//
//   - range() is rewritten to an explicit (lower, upper) pair, e.g.
//     range(10) -> range(0, 10) and range(N) -> range(0, N).
//     A range with a stride, e.g. range(10, 20, 2), is unsupported.
//   - Augmented assignment is expanded, e.g. x[i] += e -> x[i] = x[i] + e
//     so the target is visible as both read and written.
//
// Rewrites are pure: they return new nodes and never modify their input.
package normalise

import (
	"github.com/nickng/loopdep/loop"
	"go.starlark.net/syntax"
)

// Nest returns a copy of n with a canonical range and a normalised body.
func Nest(n *loop.Nest) (*loop.Nest, error) {
	args, err := Range(n.Range)
	if err != nil {
		return nil, withPos(err, n.Pos)
	}
	body, err := Stmts(n.Body)
	if err != nil {
		return nil, err
	}
	norm := loop.New(n.Var, args, body)
	norm.Pos = n.Pos
	return norm, nil
}

// Stmts normalises every statement in body, at any nesting depth.
func Stmts(body []syntax.Stmt) ([]syntax.Stmt, error) {
	if body == nil {
		return nil, nil
	}
	out := make([]syntax.Stmt, len(body))
	for i, stmt := range body {
		s, err := stmtOf(stmt)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

func stmtOf(stmt syntax.Stmt) (syntax.Stmt, error) {
	switch stmt := stmt.(type) {
	case *syntax.AssignStmt:
		return AugAssign(stmt), nil

	case *syntax.ForStmt:
		body, err := Stmts(stmt.Body)
		if err != nil {
			return nil, err
		}
		s := *stmt
		s.Body = body
		if call, ok := stmt.X.(*syntax.CallExpr); ok && isRangeCall(call) {
			args, err := Range(call.Args)
			if err != nil {
				return nil, withPos(err, stmt.For)
			}
			c := *call
			c.Args = args
			s.X = &c
		}
		return &s, nil

	case *syntax.WhileStmt:
		body, err := Stmts(stmt.Body)
		if err != nil {
			return nil, err
		}
		s := *stmt
		s.Body = body
		return &s, nil

	case *syntax.IfStmt:
		t, err := Stmts(stmt.True)
		if err != nil {
			return nil, err
		}
		f, err := Stmts(stmt.False)
		if err != nil {
			return nil, err
		}
		s := *stmt
		s.True, s.False = t, f
		return &s, nil
	}
	return stmt, nil
}

func isRangeCall(call *syntax.CallExpr) bool {
	id, ok := call.Fn.(*syntax.Ident)
	return ok && id.Name == "range"
}

// withPos locates an UnsupportedError at pos.
func withPos(err error, pos syntax.Position) error {
	if u, ok := err.(loop.UnsupportedError); ok {
		u.Pos = pos
		return u
	}
	return err
}
