package loop

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/nickng/loopdep/expr"
	"go.starlark.net/syntax"
)

// Nest is a data structure to hold a single loop,
// its index variable, range and body.
type Nest struct {
	Var   string          // Name of the index variable.
	Range []syntax.Expr   // Arguments of range(...) as written.
	Body  []syntax.Stmt   // Loop body.
	Pos   syntax.Position // Position of the for keyword.
}

// New returns a loop over index variable v with range arguments args.
func New(v string, args []syntax.Expr, body []syntax.Stmt) *Nest {
	return &Nest{Var: v, Range: args, Body: body}
}

// Bounds returns the lower and (exclusive) upper bound of the loop as text.
// It returns ok=false if the range is not in the canonical two-argument form.
func (n *Nest) Bounds() (lower, upper string, ok bool) {
	if !n.Canonical() {
		return "", "", false
	}
	return expr.String(n.Range[0]), expr.String(n.Range[1]), true
}

// Canonical returns true iff the range has an explicit lower and upper bound.
func (n *Nest) Canonical() bool {
	return len(n.Range) == 2
}

func (n *Nest) String() string {
	var buf bytes.Buffer
	if lower, upper, ok := n.Bounds(); ok {
		buf.WriteString(fmt.Sprintf("%s = %s; (%s<%s); %s = %s + 1", n.Var, lower, n.Var, upper, n.Var, n.Var))
	} else {
		args := make([]string, len(n.Range))
		for i, arg := range n.Range {
			args[i] = expr.String(arg)
		}
		buf.WriteString(fmt.Sprintf("for %s in range(%s)", n.Var, strings.Join(args, ", ")))
	}
	return buf.String()
}
