package build

import (
	"context"
	"fmt"

	"github.com/nickng/loopdep/loop"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
	"go.starlark.net/syntax"
)

// pythonLoop returns true if src is syntactically valid Python made of a
// single top-level for statement.
func pythonLoop(ctx context.Context, src []byte) (bool, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return false, err
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil || root.HasError() {
		return false, nil
	}
	if hasEmptyBlock(root) {
		return false, nil
	}
	var stmts []*sitter.Node
	for i := 0; i < int(root.NamedChildCount()); i++ {
		if n := root.NamedChild(i); n.Type() != "comment" {
			stmts = append(stmts, n)
		}
	}
	return len(stmts) == 1 && stmts[0].Type() == "for_statement", nil
}

// hasEmptyBlock reports a block without statements. The grammar accepts a
// bare newline as a suite but Python does not.
func hasEmptyBlock(n *sitter.Node) bool {
	if n.Type() == "block" && n.NamedChildCount() == 0 {
		return true
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if hasEmptyBlock(n.NamedChild(i)) {
			return true
		}
	}
	return false
}

// unsupportedSyntax converts a parse error of a valid Python loop to an
// UnsupportedError at the same position.
func unsupportedSyntax(err error) loop.UnsupportedError {
	if e, ok := err.(syntax.Error); ok {
		return loop.UnsupportedError{Pos: e.Pos, Construct: fmt.Sprintf("Python syntax (%s)", e.Msg)}
	}
	return loop.UnsupportedError{Construct: fmt.Sprintf("Python syntax (%v)", err)}
}
