// Package expr renders, copies and builds expressions of the starlark syntax
// tree used to represent loop bodies.
//
// Rendering is compact: arithmetic and comparison operators are written
// without surrounding whitespace, so `i + 1` and `i+1` in the source give the
// same text. Integer literals are written in decimal regardless of how they
// were spelt in the source.
package expr

import (
	"bytes"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"go.starlark.net/syntax"
)

// String converts an expression to its compact text form.
func String(e syntax.Expr) string {
	var buf bytes.Buffer
	writeExpr(&buf, e)
	return buf.String()
}

// Stmt converts a statement to a single line of text. Compound statements
// are written as their header only, e.g. "if c:".
func Stmt(s syntax.Stmt) string {
	switch s := s.(type) {
	case *syntax.AssignStmt:
		return fmt.Sprintf("%s %s %s", String(s.LHS), s.Op, String(s.RHS))
	case *syntax.ExprStmt:
		return String(s.X)
	case *syntax.ForStmt:
		return fmt.Sprintf("for %s in %s:", String(s.Vars), String(s.X))
	case *syntax.WhileStmt:
		return fmt.Sprintf("while %s:", String(s.Cond))
	case *syntax.IfStmt:
		return fmt.Sprintf("if %s:", String(s.Cond))
	case *syntax.ReturnStmt:
		if s.Result == nil {
			return "return"
		}
		return "return " + String(s.Result)
	case *syntax.BranchStmt:
		return s.Token.String()
	case *syntax.DefStmt:
		return fmt.Sprintf("def %s(%s):", s.Name.Name, joinExprs(s.Params, ", "))
	default:
		return fmt.Sprintf("<%T>", s)
	}
}

// Int returns a synthetic integer literal for v.
func Int(v int64) *syntax.Literal {
	return &syntax.Literal{
		Token: syntax.INT,
		Raw:   strconv.FormatInt(v, 10),
		Value: v,
	}
}

func joinExprs(list []syntax.Expr, sep string) string {
	strs := make([]string, len(list))
	for i, e := range list {
		strs[i] = String(e)
	}
	return strings.Join(strs, sep)
}

func writeExpr(buf *bytes.Buffer, e syntax.Expr) {
	switch e := e.(type) {
	case nil:
		// Omitted operand, e.g. the bounds of a[:].

	case *syntax.Ident:
		buf.WriteString(e.Name)

	case *syntax.Literal:
		buf.WriteString(literalString(e))

	case *syntax.ParenExpr:
		buf.WriteByte('(')
		writeExpr(buf, e.X)
		buf.WriteByte(')')

	case *syntax.BinaryExpr:
		writeExpr(buf, e.X)
		buf.WriteString(opString(e.Op))
		writeExpr(buf, e.Y)

	case *syntax.UnaryExpr:
		buf.WriteString(e.Op.String())
		if e.Op == syntax.NOT {
			buf.WriteByte(' ')
		}
		writeExpr(buf, e.X)

	case *syntax.IndexExpr:
		writeExpr(buf, e.X)
		buf.WriteByte('[')
		writeExpr(buf, e.Y)
		buf.WriteByte(']')

	case *syntax.SliceExpr:
		writeExpr(buf, e.X)
		buf.WriteByte('[')
		buf.WriteString(Subscript(e))
		buf.WriteByte(']')

	case *syntax.DotExpr:
		writeExpr(buf, e.X)
		buf.WriteByte('.')
		buf.WriteString(e.Name.Name)

	case *syntax.CallExpr:
		writeExpr(buf, e.Fn)
		buf.WriteByte('(')
		buf.WriteString(joinExprs(e.Args, ","))
		buf.WriteByte(')')

	case *syntax.TupleExpr:
		parens := e.Lparen.IsValid()
		if parens {
			buf.WriteByte('(')
		}
		buf.WriteString(joinExprs(e.List, ","))
		if len(e.List) == 1 {
			buf.WriteByte(',')
		}
		if parens {
			buf.WriteByte(')')
		}

	case *syntax.ListExpr:
		buf.WriteByte('[')
		buf.WriteString(joinExprs(e.List, ","))
		buf.WriteByte(']')

	case *syntax.DictExpr:
		buf.WriteByte('{')
		buf.WriteString(joinExprs(e.List, ","))
		buf.WriteByte('}')

	case *syntax.DictEntry:
		writeExpr(buf, e.Key)
		buf.WriteByte(':')
		writeExpr(buf, e.Value)

	case *syntax.CondExpr:
		writeExpr(buf, e.True)
		buf.WriteString(" if ")
		writeExpr(buf, e.Cond)
		buf.WriteString(" else ")
		writeExpr(buf, e.False)

	case *syntax.Comprehension:
		lb, rb := byte('['), byte(']')
		if e.Curly {
			lb, rb = '{', '}'
		}
		buf.WriteByte(lb)
		writeExpr(buf, e.Body)
		for _, clause := range e.Clauses {
			switch clause := clause.(type) {
			case *syntax.ForClause:
				buf.WriteString(" for ")
				writeExpr(buf, clause.Vars)
				buf.WriteString(" in ")
				writeExpr(buf, clause.X)
			case *syntax.IfClause:
				buf.WriteString(" if ")
				writeExpr(buf, clause.Cond)
			}
		}
		buf.WriteByte(rb)

	case *syntax.LambdaExpr:
		buf.WriteString("lambda")
		if len(e.Params) > 0 {
			buf.WriteByte(' ')
			buf.WriteString(joinExprs(e.Params, ","))
		}
		buf.WriteString(": ")
		writeExpr(buf, e.Body)

	default:
		fmt.Fprintf(buf, "<%T>", e) // not supported
	}
}

// Subscript returns the text between the brackets of an index or slice
// expression, e.g. "i+1" for a[i+1] and "1:n" for a[1:n].
func Subscript(e syntax.Expr) string {
	switch e := e.(type) {
	case *syntax.IndexExpr:
		return String(e.Y)
	case *syntax.SliceExpr:
		var buf bytes.Buffer
		writeExpr(&buf, e.Lo)
		buf.WriteByte(':')
		writeExpr(&buf, e.Hi)
		if e.Step != nil {
			buf.WriteByte(':')
			writeExpr(&buf, e.Step)
		}
		return buf.String()
	}
	return ""
}

// literalString normalises integer literals to decimal.
func literalString(lit *syntax.Literal) string {
	if lit.Token == syntax.INT {
		switch v := lit.Value.(type) {
		case int64:
			return strconv.FormatInt(v, 10)
		case *big.Int:
			return v.String()
		}
	}
	return lit.Raw
}

// opString spells binary operators; keyword operators keep their spaces.
func opString(op syntax.Token) string {
	switch op {
	case syntax.AND, syntax.OR, syntax.IN, syntax.NOT_IN:
		return " " + op.String() + " "
	}
	return op.String()
}
