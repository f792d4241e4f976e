// Package block provides traversal of statement blocks of a loop body.
package block

import (
	"go.starlark.net/syntax"
)

// Traverse takes a statement block and applies visit to each statement at any
// nesting depth, breadth-first. parent is nil for statements of the block
// itself.
func Traverse(body []syntax.Stmt, visit func(parent, stmt syntax.Stmt)) {
	type Edge struct {
		Parent, Stmt syntax.Stmt
	}
	var queue []Edge
	for _, stmt := range body {
		queue = append(queue, Edge{Stmt: stmt})
	}
	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]
		visit(e.Parent, e.Stmt)
		for _, child := range Children(e.Stmt) {
			queue = append(queue, Edge{Parent: e.Stmt, Stmt: child})
		}
	}
}

// Children returns the statements directly nested in stmt.
func Children(stmt syntax.Stmt) []syntax.Stmt {
	switch stmt := stmt.(type) {
	case *syntax.ForStmt:
		return stmt.Body
	case *syntax.WhileStmt:
		return stmt.Body
	case *syntax.IfStmt:
		children := make([]syntax.Stmt, 0, len(stmt.True)+len(stmt.False))
		children = append(children, stmt.True...)
		return append(children, stmt.False...)
	case *syntax.DefStmt:
		return stmt.Body
	}
	return nil
}

// Assigns returns the assignment statements in body in traversal order.
func Assigns(body []syntax.Stmt) []*syntax.AssignStmt {
	var assigns []*syntax.AssignStmt
	Traverse(body, func(_, stmt syntax.Stmt) {
		if assign, ok := stmt.(*syntax.AssignStmt); ok {
			assigns = append(assigns, assign)
		}
	})
	return assigns
}
