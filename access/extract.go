package access

import (
	"github.com/nickng/loopdep/expr"
	"go.starlark.net/syntax"
)

// Reads returns the accesses loaded by stmt.
func Reads(stmt syntax.Node) *Set {
	reads, _ := Extract(stmt)
	return reads
}

// Writes returns the accesses stored to by stmt.
func Writes(stmt syntax.Node) *Set {
	_, writes := Extract(stmt)
	return writes
}

// Extract returns the read set and write set of stmt.
//
// Only accesses whose base is an identifier are collected, so b[i] in
// f(x)[b[i]] is collected but the outer access is not. Subscripts and
// bases of an assignment target are loads.
func Extract(stmt syntax.Node) (reads, writes *Set) {
	x := extractor{reads: NewSet(), writes: NewSet()}
	x.load(stmt)
	return x.reads, x.writes
}

type extractor struct {
	reads, writes *Set
}

// load records every access under n in a load position.
func (x *extractor) load(n syntax.Node) {
	if n == nil {
		return
	}
	syntax.Walk(n, func(n syntax.Node) bool {
		switch n := n.(type) {
		case *syntax.AssignStmt:
			x.store(n.LHS)
			x.load(n.RHS)
			return false
		case *syntax.ForStmt:
			x.store(n.Vars)
			x.load(n.X)
			for _, stmt := range n.Body {
				x.load(stmt)
			}
			return false
		case *syntax.IndexExpr, *syntax.SliceExpr:
			x.record(n.(syntax.Expr), x.reads)
		}
		return true
	})
}

// store records the accesses assigned to by target.
func (x *extractor) store(target syntax.Expr) {
	switch target := target.(type) {
	case *syntax.IndexExpr:
		x.record(target, x.writes)
		x.load(target.X)
		x.load(target.Y)
	case *syntax.SliceExpr:
		x.record(target, x.writes)
		x.load(target.X)
		x.load(target.Lo)
		x.load(target.Hi)
		x.load(target.Step)
	case *syntax.TupleExpr:
		for _, e := range target.List {
			x.store(e)
		}
	case *syntax.ListExpr:
		for _, e := range target.List {
			x.store(e)
		}
	case *syntax.ParenExpr:
		x.store(target.X)
	case *syntax.DotExpr:
		x.load(target.X)
	}
}

// record adds e to set if it is an access of a named array.
func (x *extractor) record(e syntax.Expr, set *Set) {
	var base syntax.Expr
	switch e := e.(type) {
	case *syntax.IndexExpr:
		base = e.X
	case *syntax.SliceExpr:
		base = e.X
	}
	if id, ok := base.(*syntax.Ident); ok {
		set.Add(Access{Array: id.Name, Subscript: expr.Subscript(e)})
	}
}
