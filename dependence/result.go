package dependence

import "fmt"

// Failure reasons reported in Result.FailReason.
const (
	ReasonEmpty       = "Empty code"
	ReasonParse       = "AST parsing failed"
	ReasonUnsupported = "Unsupported construct"
)

// Failure is the failure state of an analysis.
type Failure int

const (
	NoFailure    Failure = iota
	EmptyInput           // Nothing to analyse; still analyzable.
	ParseFailure         // Source is not a single syntactically valid loop.
	Unsupported          // Loop uses a construct the analysis cannot handle.
)

func (f Failure) String() string {
	switch f {
	case NoFailure:
		return "none"
	case EmptyInput:
		return "empty input"
	case ParseFailure:
		return "parse failure"
	case Unsupported:
		return "unsupported construct"
	}
	return fmt.Sprintf("Failure(%d)", int(f))
}

// MarshalText encodes the failure by name.
func (f Failure) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// Result is the outcome of an analysis.
//
// Dependences is never nil. FailReason is empty unless Failure is set; note
// an EmptyInput result is analyzable but still carries ReasonEmpty.
type Result struct {
	Analyzable  bool         `json:"analyzable" yaml:"analyzable"`
	FailReason  string       `json:"failReason,omitempty" yaml:"failReason,omitempty"`
	Failure     Failure      `json:"failure" yaml:"failure"`
	Err         error        `json:"-" yaml:"-"`
	Dependences []Dependence `json:"dependences" yaml:"dependences"`
}

// Analysed returns a successful Result holding deps.
func Analysed(deps []Dependence) Result {
	if deps == nil {
		deps = []Dependence{}
	}
	return Result{Analyzable: true, Dependences: deps}
}

// EmptyResult returns the Result for empty source.
func EmptyResult() Result {
	return Result{
		Analyzable:  true,
		FailReason:  ReasonEmpty,
		Failure:     EmptyInput,
		Dependences: []Dependence{},
	}
}

// ParseFailureResult returns the Result for source that cannot be parsed.
func ParseFailureResult(err error) Result {
	return Result{
		Analyzable:  false,
		FailReason:  ReasonParse,
		Failure:     ParseFailure,
		Err:         err,
		Dependences: []Dependence{},
	}
}

// UnsupportedResult returns the Result for a loop with an unsupported
// construct described by err.
func UnsupportedResult(err error) Result {
	reason := ReasonUnsupported
	if err != nil {
		reason = fmt.Sprintf("%s: %v", ReasonUnsupported, err)
	}
	return Result{
		Analyzable:  false,
		FailReason:  reason,
		Failure:     Unsupported,
		Err:         err,
		Dependences: []Dependence{},
	}
}

// Of returns the dependences of kind k.
func (r Result) Of(k Kind) []Dependence {
	var deps []Dependence
	for _, d := range r.Dependences {
		if d.Kind == k {
			deps = append(deps, d)
		}
	}
	return deps
}

// Has returns true if r holds at least one dependence of kind k.
func (r Result) Has(k Kind) bool {
	return len(r.Of(k)) > 0
}
