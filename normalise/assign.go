package normalise

import (
	"github.com/nickng/loopdep/expr"
	"go.starlark.net/syntax"
)

// binOps maps augmented assignment tokens to their binary operator.
var binOps = map[syntax.Token]syntax.Token{
	syntax.PLUS_EQ:       syntax.PLUS,
	syntax.MINUS_EQ:      syntax.MINUS,
	syntax.STAR_EQ:       syntax.STAR,
	syntax.SLASH_EQ:      syntax.SLASH,
	syntax.SLASHSLASH_EQ: syntax.SLASHSLASH,
	syntax.PERCENT_EQ:    syntax.PERCENT,
	syntax.AMP_EQ:        syntax.AMP,
	syntax.PIPE_EQ:       syntax.PIPE,
	syntax.CIRCUMFLEX_EQ: syntax.CIRCUMFLEX,
	syntax.LTLT_EQ:       syntax.LTLT,
	syntax.GTGT_EQ:       syntax.GTGT,
}

// AugAssign expands `target op= value` to `target = target op value`.
// Plain assignments are returned as is.
func AugAssign(stmt *syntax.AssignStmt) *syntax.AssignStmt {
	op, ok := binOps[stmt.Op]
	if !ok {
		return stmt
	}
	value := stmt.RHS
	switch value.(type) {
	case *syntax.BinaryExpr, *syntax.CondExpr, *syntax.LambdaExpr:
		// Keep value grouped: a *= b + 1 is a = a * (b + 1).
		start, end := value.Span()
		value = &syntax.ParenExpr{Lparen: start, X: value, Rparen: end}
	}
	return &syntax.AssignStmt{
		OpPos: stmt.OpPos,
		Op:    syntax.EQ,
		LHS:   stmt.LHS,
		RHS: &syntax.BinaryExpr{
			OpPos: stmt.OpPos,
			Op:    op,
			X:     expr.Clone(stmt.LHS),
			Y:     value,
		},
	}
}
