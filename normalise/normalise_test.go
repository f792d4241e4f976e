package normalise

import (
	"testing"

	"github.com/nickng/loopdep/expr"
	"github.com/nickng/loopdep/loop"
	"go.starlark.net/syntax"
)

func nestOf(t *testing.T, src string) *loop.Nest {
	t.Helper()
	f, err := syntax.Parse("normalise_test.py", src, 0)
	if err != nil {
		t.Fatalf("cannot parse source: %v", err)
	}
	n, err := loop.NewDetector().Detect(f)
	if err != nil {
		t.Fatalf("cannot detect loop: %v", err)
	}
	return n
}

func TestRange(t *testing.T) {
	tests := []struct {
		src   string
		lower string
		upper string
	}{
		{"for i in range(10):\n    a[i] = 0\n", "0", "10"},
		{"for i in range(N):\n    a[i] = 0\n", "0", "N"},
		{"for i in range(10, 20):\n    a[i] = 0\n", "10", "20"},
		{"for i in range(lo, hi + 1):\n    a[i] = 0\n", "lo", "hi+1"},
	}
	for _, test := range tests {
		n, err := Nest(nestOf(t, test.src))
		if err != nil {
			t.Errorf("Cannot normalise %q: %v", test.src, err)
			continue
		}
		lower, upper, ok := n.Bounds()
		if !ok {
			t.Errorf("Range of %q is not canonical after rewrite", test.src)
			continue
		}
		if lower != test.lower || upper != test.upper {
			t.Errorf("Range of %q: want (%s, %s), got (%s, %s)",
				test.src, test.lower, test.upper, lower, upper)
		}
	}
}

func TestRangeStride(t *testing.T) {
	orig := nestOf(t, "for i in range(10, 20, 2):\n    a[i] = 0\n")
	_, err := Nest(orig)
	if !loop.IsUnsupported(err) {
		t.Fatalf("Expects unsupported stride but got: %v", err)
	}
	if u := err.(loop.UnsupportedError); u.Pos.Line != 1 {
		t.Errorf("Expects error at line 1 but got %s", u.Pos)
	}
}

func TestRangeNoArgs(t *testing.T) {
	if _, err := Range(nil); !loop.IsUnsupported(err) {
		t.Errorf("Expects range() to be unsupported, got: %v", err)
	}
}

func TestNestedRangeStride(t *testing.T) {
	src := `for i in range(4):
    for j in range(0, 8, 2):
        a[j] = 0
`
	if _, err := Nest(nestOf(t, src)); !loop.IsUnsupported(err) {
		t.Errorf("Expects nested stride to be unsupported, got: %v", err)
	}
}

func TestAugAssign(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"y[i % 4] += x[i]", "y[i%4] = y[i%4]+x[i]"},
		{"a[i] -= 1", "a[i] = a[i]-1"},
		{"a[i] *= b[i] + 1", "a[i] = a[i]*(b[i]+1)"},
		{"a[i] //= 2", "a[i] = a[i]//2"},
		{"s |= m[i]", "s = s|m[i]"},
		{"a[i] = a[i] + 1", "a[i] = a[i]+1"},
	}
	for _, test := range tests {
		f, err := syntax.Parse("normalise_test.py", test.src+"\n", 0)
		if err != nil {
			t.Fatalf("cannot parse %q: %v", test.src, err)
		}
		stmt := f.Stmts[0].(*syntax.AssignStmt)
		if got := expr.Stmt(AugAssign(stmt)); got != test.want {
			t.Errorf("AugAssign(%q): want %q, got %q", test.src, test.want, got)
		}
	}
}

func TestAugAssignPure(t *testing.T) {
	src := `for i in range(10):
    if c:
        y[i] += 1
`
	orig := nestOf(t, src)
	n, err := Nest(orig)
	if err != nil {
		t.Fatalf("cannot normalise: %v", err)
	}
	before := orig.Body[0].(*syntax.IfStmt).True[0].(*syntax.AssignStmt)
	after := n.Body[0].(*syntax.IfStmt).True[0].(*syntax.AssignStmt)
	if before.Op != syntax.PLUS_EQ {
		t.Errorf("Input statement was modified: %s", expr.Stmt(before))
	}
	if after.Op != syntax.EQ {
		t.Errorf("Nested augmented assignment not expanded: %s", expr.Stmt(after))
	}
	if after.OpPos != before.OpPos {
		t.Errorf("Expanded statement lost position: want %s, got %s", before.OpPos, after.OpPos)
	}
	if orig.Canonical() {
		t.Errorf("Input range was modified")
	}
}
