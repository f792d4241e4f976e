package depcheck

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/nickng/loopdep/dependence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAnalyser() *Analyser {
	a := New()
	a.SetLogger(dependence.NopLogger())
	return a
}

func TestEmptySource(t *testing.T) {
	for _, src := range []string{"", "   \n\t\n"} {
		res := newTestAnalyser().AnalyseSource(src)
		assert.True(t, res.Analyzable, "%q", src)
		assert.Equal(t, dependence.ReasonEmpty, res.FailReason)
		assert.Equal(t, dependence.EmptyInput, res.Failure)
		assert.NotNil(t, res.Dependences)
		assert.Empty(t, res.Dependences)
	}
}

func TestParseFailure(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"Missing colon", "for i in range(10)\n    a[i] = a[i-1]\n"},
		{"Unbalanced bracket", "for i in range(10):\n    a[i = 0\n"},
		{"Not a loop", "a[0] = 1\n"},
		{"Two loops", "for i in range(3):\n    a[i] = 0\nfor j in range(3):\n    b[j] = 0\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			res := newTestAnalyser().AnalyseSource(test.src)
			assert.False(t, res.Analyzable)
			assert.Equal(t, dependence.ReasonParse, res.FailReason)
			assert.Equal(t, dependence.ParseFailure, res.Failure)
			assert.Error(t, res.Err)
			assert.Empty(t, res.Dependences)
		})
	}
}

func TestUnsupported(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"Stride", "for i in range(0, 10, 2):\n    a[i] = a[i-1]\n"},
		{"Iterator", "for x in items:\n    a[x] = 0\n"},
		{"Tuple", "for i, j in range(10):\n    a[i] = 0\n"},
		{"Python power", "for i in range(10):\n    a[i] = a[i-1] ** 2\n"},
		{"Python chained assignment", "for i in range(10):\n    a[i] = b[i] = 0\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			res := newTestAnalyser().AnalyseSource(test.src)
			assert.False(t, res.Analyzable)
			assert.Equal(t, dependence.Unsupported, res.Failure)
			assert.Contains(t, res.FailReason, dependence.ReasonUnsupported)
			assert.Empty(t, res.Dependences)
		})
	}
}

func TestAnalyseSource(t *testing.T) {
	src := `
for i in range(1, 10):
    a[i] = a[i-1] + b[i]
    b[i + 1] = a[i]
`
	res := newTestAnalyser().AnalyseSource(src)
	require.True(t, res.Analyzable)
	assert.Equal(t, dependence.NoFailure, res.Failure)
	assert.Empty(t, res.FailReason)

	trueDeps := res.Of(dependence.True)
	require.Len(t, trueDeps, 2)
	assert.Equal(t, "a[i]", trueDeps[0].Source)
	assert.Equal(t, "a[i-1]", trueDeps[0].Sink)
	assert.Equal(t, "b[i+1]", trueDeps[1].Source)
	assert.Equal(t, "b[i]", trueDeps[1].Sink)
	assert.False(t, res.Has(dependence.Output))
}

func TestAnalyseFile(t *testing.T) {
	res, err := newTestAnalyser().AnalyseFile("testdata/shift.py")
	require.NoError(t, err)
	require.True(t, res.Analyzable)
	require.Len(t, res.Dependences, 1)
	assert.Equal(t, dependence.True, res.Dependences[0].Kind)
	assert.Equal(t, int32(2), res.Dependences[0].SourceStmt.Line)

	_, err = newTestAnalyser().AnalyseFile("testdata/missing.py")
	assert.Error(t, err)
}

func TestBuildLog(t *testing.T) {
	buf := new(bytes.Buffer)
	a := newTestAnalyser()
	a.SetBuildLog(buf)
	a.AnalyseNamed("shift.py", "for i in range(10):\n    a[i] = a[i-1]\n")
	assert.Contains(t, buf.String(), "Loop detected")

	a.SetBuildLog(nil)
	assert.Equal(t, buf, a.bldLog, "nil build log is ignored")
}

func TestPackageAnalyseSource(t *testing.T) {
	res := AnalyseSource("for i in range(10):\n    a[i+1] = a[i]\n")
	require.True(t, res.Analyzable)
	assert.True(t, res.Has(dependence.True))
}

func TestSetLogger(t *testing.T) {
	a := New()
	l := dependence.NopLogger()
	a.SetLogger(l)
	assert.Same(t, l.SugaredLogger, a.Logger.SugaredLogger)
	assert.Same(t, l.SugaredLogger, a.Engine.Logger.SugaredLogger)
	assert.NotEqual(t, a.Module(), a.Engine.Module())
}

func TestAddLogFiles(t *testing.T) {
	file := filepath.Join(t.TempDir(), "depcheck.log")
	a := New()
	a.AddLogFiles(file)
	res := a.AnalyseSource("for i in range(10):\n    a[i+1] = a[i]\n")
	require.True(t, res.Analyzable)

	b, err := ioutil.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(b), "Analyse:", "engine trace is written to the log file")
}
