package normalise

import (
	"fmt"

	"github.com/nickng/loopdep/expr"
	"github.com/nickng/loopdep/loop"
	"go.starlark.net/syntax"
)

// Range rewrites the arguments of range() to the (lower, upper) form.
func Range(args []syntax.Expr) ([]syntax.Expr, error) {
	switch len(args) {
	case 1:
		return []syntax.Expr{expr.Int(0), args[0]}, nil
	case 2:
		return []syntax.Expr{args[0], args[1]}, nil
	case 3:
		return nil, loop.UnsupportedError{Construct: "range with stride"}
	}
	return nil, loop.UnsupportedError{Construct: fmt.Sprintf("range with %d arguments", len(args))}
}
