package access

import (
	"reflect"
	"testing"

	"go.starlark.net/syntax"
)

func stmtOf(t *testing.T, src string) syntax.Stmt {
	t.Helper()
	f, err := syntax.Parse("access_test.py", src+"\n", 0)
	if err != nil {
		t.Fatalf("cannot parse %q: %v", src, err)
	}
	return f.Stmts[0]
}

func TestExtract(t *testing.T) {
	tests := []struct {
		src    string
		reads  []Access
		writes []Access
	}{
		{
			src:    "a[i] = a[i-1] + 1",
			reads:  []Access{{"a", "i-1"}},
			writes: []Access{{"a", "i"}},
		},
		{
			src:    "y[i%4] = y[i%4] + x[i]",
			reads:  []Access{{"y", "i%4"}, {"x", "i"}},
			writes: []Access{{"y", "i%4"}},
		},
		{
			src:    "a[b[i]] = c[i] * c[i]",
			reads:  []Access{{"b", "i"}, {"c", "i"}},
			writes: []Access{{"a", "b[i]"}},
		},
		{
			src:    "a[i][j] = 0",
			reads:  []Access{{"a", "i"}},
			writes: nil,
		},
		{
			src:    "f(x)[i] = g(y[i])",
			reads:  []Access{{"y", "i"}},
			writes: nil,
		},
		{
			src:    "a[i], b[i] = b[i], a[i]",
			reads:  []Access{{"b", "i"}, {"a", "i"}},
			writes: []Access{{"a", "i"}, {"b", "i"}},
		},
		{
			src:    "a[i] = b[1:n]",
			reads:  []Access{{"b", "1:n"}},
			writes: []Access{{"a", "i"}},
		},
		{
			src:    "s = s + a[i]",
			reads:  []Access{{"a", "i"}},
			writes: nil,
		},
		{
			src:    "p.q[i] = 1",
			reads:  nil,
			writes: nil,
		},
	}
	for _, test := range tests {
		reads, writes := Extract(stmtOf(t, test.src))
		if got := reads.Elems(); !equalAccesses(test.reads, got) {
			t.Errorf("Reads of %q: want %v, got %v", test.src, test.reads, got)
		}
		if got := writes.Elems(); !equalAccesses(test.writes, got) {
			t.Errorf("Writes of %q: want %v, got %v", test.src, test.writes, got)
		}
	}
}

func TestExtractNested(t *testing.T) {
	src := `if a[i] > 0:
    b[i] = a[i]
else:
    c[i] = 0`
	reads, writes := Extract(stmtOf(t, src))
	if want, got := []Access{{"a", "i"}}, reads.Elems(); !equalAccesses(want, got) {
		t.Errorf("Reads: want %v, got %v", want, got)
	}
	if want, got := []Access{{"b", "i"}, {"c", "i"}}, writes.Elems(); !equalAccesses(want, got) {
		t.Errorf("Writes: want %v, got %v", want, got)
	}
}

func TestReadsWrites(t *testing.T) {
	stmt := stmtOf(t, "a[i+1] = a[i] + 1")
	if !Reads(stmt).Contains(Access{"a", "i"}) {
		t.Error("Reads does not contain a[i]")
	}
	if !Writes(stmt).Contains(Access{"a", "i+1"}) {
		t.Error("Writes does not contain a[i+1]")
	}
}

func TestSet(t *testing.T) {
	s := NewSet(Access{"a", "i"}, Access{"b", "i"}, Access{"a", "i"})
	if want, got := 2, s.Len(); want != got {
		t.Errorf("Duplicates not collapsed: want %d elements, got %d", want, got)
	}
	if s.Add(Access{"b", "i"}) {
		t.Error("Add of existing member returned true")
	}
	if !s.Add(Access{"a", "i+1"}) {
		t.Error("Add of new member returned false")
	}
	if want, got := []Access{{"a", "i"}, {"a", "i+1"}}, s.Array("a"); !equalAccesses(want, got) {
		t.Errorf("Array: want %v, got %v", want, got)
	}
	if want, got := "a[i+1]", (Access{"a", "i+1"}).String(); want != got {
		t.Errorf("String: want %q, got %q", want, got)
	}
}

func equalAccesses(want, got []Access) bool {
	if len(want) == 0 && len(got) == 0 {
		return true
	}
	return reflect.DeepEqual(want, got)
}
