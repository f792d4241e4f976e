// Package deptest decides whether two classified subscripts of the same array
// carry a dependence across iterations of a loop over [lower, upper).
//
// The test is a distance test restricted to unit-stride and constant
// subscripts. With a unit step the iteration space is the contiguous interval
// [lower, upper), so two unit-stride subscripts i+a and i+b touch the same
// element in iterations d = a-b apart, and a constant subscript k meets a
// unit-stride subscript i+c only in iteration k-c.
//
// A loop with bounds that are not integer literals is assumed to carry a
// dependence, and so is a pair whose distance or span does not fit in an
// int64.
package deptest

import (
	"github.com/nickng/loopdep/subscript"
	"github.com/pkg/errors"
)

// ErrUnsupportedCombination is returned for a pair of subscript classes the
// test does not cover, e.g. an unanalyzable subscript.
var ErrUnsupportedCombination = errors.New("unsupported subscript combination")

// HasDependence returns true if src and sink, subscripts of the source and
// sink access, may refer to the same element in different iterations of a
// loop from lower to upper.
func HasDependence(src, sink subscript.Class, lower, upper string) (bool, error) {
	lo, okLo := subscript.IntLiteral(lower)
	hi, okHi := subscript.IntLiteral(upper)
	if !okLo || !okHi {
		return true, nil
	}

	switch {
	case src.Kind == subscript.UnitStride && sink.Kind == subscript.UnitStride:
		distance, ok := sub(src.Value, sink.Value)
		if !ok {
			return true, nil
		}
		switch {
		case distance == 0: // Same iteration only.
			return false, nil
		case distance > 0:
			span, ok := sub(hi, lo)
			if !ok {
				return true, nil
			}
			return distance < span, nil
		default:
			return false, nil
		}

	case src.Kind == subscript.Constant && sink.Kind == subscript.Constant:
		return src.Value == sink.Value, nil

	case src.Kind == subscript.Constant && sink.Kind == subscript.UnitStride:
		idx, ok := sub(src.Value, sink.Value)
		if !ok {
			return true, nil
		}
		return lo <= idx && idx < hi && idx > lo, nil

	case src.Kind == subscript.UnitStride && sink.Kind == subscript.Constant:
		idx, ok := sub(sink.Value, src.Value)
		if !ok {
			return true, nil
		}
		// idx < hi-1, written so that hi-1 cannot wrap.
		return lo <= idx && idx < hi && idx+1 < hi, nil
	}
	return false, errors.Wrapf(ErrUnsupportedCombination, "%s and %s", src.Kind, sink.Kind)
}

// sub returns a-b, and ok=false if the difference does not fit in an int64.
func sub(a, b int64) (d int64, ok bool) {
	d = a - b
	if (b > 0 && d > a) || (b < 0 && d < a) {
		return 0, false
	}
	return d, true
}
