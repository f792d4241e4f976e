package expr

import "go.starlark.net/syntax"

// Clone returns a deep copy of e. Source positions are kept so the copy
// renders and reports identically to the original.
func Clone(e syntax.Expr) syntax.Expr {
	switch e := e.(type) {
	case nil:
		return nil
	case *syntax.Ident:
		c := *e
		return &c
	case *syntax.Literal:
		c := *e
		return &c
	case *syntax.ParenExpr:
		c := *e
		c.X = Clone(e.X)
		return &c
	case *syntax.BinaryExpr:
		c := *e
		c.X, c.Y = Clone(e.X), Clone(e.Y)
		return &c
	case *syntax.UnaryExpr:
		c := *e
		c.X = Clone(e.X)
		return &c
	case *syntax.IndexExpr:
		c := *e
		c.X, c.Y = Clone(e.X), Clone(e.Y)
		return &c
	case *syntax.SliceExpr:
		c := *e
		c.X, c.Lo, c.Hi, c.Step = Clone(e.X), Clone(e.Lo), Clone(e.Hi), Clone(e.Step)
		return &c
	case *syntax.DotExpr:
		c := *e
		c.X = Clone(e.X)
		name := *e.Name
		c.Name = &name
		return &c
	case *syntax.CallExpr:
		c := *e
		c.Fn = Clone(e.Fn)
		c.Args = cloneList(e.Args)
		return &c
	case *syntax.TupleExpr:
		c := *e
		c.List = cloneList(e.List)
		return &c
	case *syntax.ListExpr:
		c := *e
		c.List = cloneList(e.List)
		return &c
	case *syntax.CondExpr:
		c := *e
		c.Cond, c.True, c.False = Clone(e.Cond), Clone(e.True), Clone(e.False)
		return &c
	}
	// Remaining expressions (dicts, comprehensions, lambdas) cannot appear
	// in an assignment target and are shared as they are never modified.
	return e
}

func cloneList(list []syntax.Expr) []syntax.Expr {
	if list == nil {
		return nil
	}
	c := make([]syntax.Expr, len(list))
	for i, e := range list {
		c[i] = Clone(e)
	}
	return c
}
