package ingest

import (
	"fmt"
	"math"
)

// boundPair is the uniform output of the bounds resolver.
type boundPair struct {
	lower []float64
	upper []float64
}

// resolveConstraintBounds reconciles the two constraint-bound encodings into
// (lower, upper) pairs of length n. The explicit form takes precedence; the
// relational form is attempted second. A constraint_bounds section that is
// absent, or present with neither form, yields free constraints (-Inf, +Inf).
// A section carrying only half of either pair is an ErrMissingField naming
// the absent array rather than a silent fall-through to free constraints.
func (p *Parser) resolveConstraintBounds(sec *boundsSection, n int) (*boundPair, error) {
	if sec == nil {
		return freeBounds(n), nil
	}
	if sec.LowerBounds != nil && sec.UpperBounds != nil {
		return p.explicitBounds("constraint_bounds", sec, n)
	}
	if sec.Bounds != nil && sec.Types != nil {
		return p.relationalBounds(sec, n)
	}
	switch {
	case sec.LowerBounds != nil:
		return nil, fmt.Errorf("constraint_bounds.upper_bounds: %w", ErrMissingField)
	case sec.UpperBounds != nil:
		return nil, fmt.Errorf("constraint_bounds.lower_bounds: %w", ErrMissingField)
	case sec.Bounds != nil:
		return nil, fmt.Errorf("constraint_bounds.types: %w", ErrMissingField)
	case sec.Types != nil:
		return nil, fmt.Errorf("constraint_bounds.bounds: %w", ErrMissingField)
	}
	return freeBounds(n), nil
}

// resolveVariableBounds resolves variable bounds from the explicit form.
// Absent bounds default every variable to [0, +Inf); a section with only
// one of the two arrays is rejected.
func (p *Parser) resolveVariableBounds(sec *boundsSection, n int) (*boundPair, error) {
	if sec != nil {
		if sec.LowerBounds != nil && sec.UpperBounds != nil {
			return p.explicitBounds("variable_bounds", sec, n)
		}
		if sec.LowerBounds != nil {
			return nil, fmt.Errorf("variable_bounds.upper_bounds: %w", ErrMissingField)
		}
		if sec.UpperBounds != nil {
			return nil, fmt.Errorf("variable_bounds.lower_bounds: %w", ErrMissingField)
		}
	}
	out := &boundPair{
		lower: make([]float64, n),
		upper: make([]float64, n),
	}
	for i := range out.upper {
		out.upper[i] = math.Inf(1)
	}
	return out, nil
}

// explicitBounds coerces lower_bounds/upper_bounds element-for-element.
// Both arrays must match the expected dimension exactly.
func (p *Parser) explicitBounds(field string, sec *boundsSection, n int) (*boundPair, error) {
	if len(sec.LowerBounds) != n {
		return nil, fmt.Errorf("%s.lower_bounds: have %d, want %d: %w",
			field, len(sec.LowerBounds), n, ErrDimensionMismatch)
	}
	if len(sec.UpperBounds) != n {
		return nil, fmt.Errorf("%s.upper_bounds: have %d, want %d: %w",
			field, len(sec.UpperBounds), n, ErrDimensionMismatch)
	}

	lower, err := p.coerceBoundArray(field+".lower_bounds", sec.LowerBounds)
	if err != nil {
		return nil, err
	}
	upper, err := p.coerceBoundArray(field+".upper_bounds", sec.UpperBounds)
	if err != nil {
		return nil, err
	}
	return &boundPair{lower: lower, upper: upper}, nil
}

// relationalBounds resolves the bounds/types encoding: for constraint i,
// "L" yields (-Inf, b), "G" yields (b, +Inf), and "E" yields (b, b). Any
// other code is rejected; both arrays must pair up with the constraint
// count exactly rather than being truncated to the shorter length.
func (p *Parser) relationalBounds(sec *boundsSection, n int) (*boundPair, error) {
	if len(sec.Bounds) != n {
		return nil, fmt.Errorf("constraint_bounds.bounds: have %d, want %d: %w",
			len(sec.Bounds), n, ErrDimensionMismatch)
	}
	if len(sec.Types) != n {
		return nil, fmt.Errorf("constraint_bounds.types: have %d, want %d: %w",
			len(sec.Types), n, ErrDimensionMismatch)
	}

	out := &boundPair{
		lower: make([]float64, n),
		upper: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		b, err := coerceNumeric(sec.Bounds[i])
		if err != nil {
			if ferr := p.fallback(fmt.Sprintf("constraint_bounds.bounds[%d]", i), i, err); ferr != nil {
				return nil, ferr
			}
		}
		switch sec.Types[i] {
		case "L":
			out.lower[i] = math.Inf(-1)
			out.upper[i] = b
		case "G":
			out.lower[i] = b
			out.upper[i] = math.Inf(1)
		case "E":
			out.lower[i] = b
			out.upper[i] = b
		default:
			return nil, fmt.Errorf("constraint_bounds.types[%d] = %q: %w",
				i, sec.Types[i], ErrInvalidBoundType)
		}
	}
	return out, nil
}

func freeBounds(n int) *boundPair {
	out := &boundPair{
		lower: make([]float64, n),
		upper: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		out.lower[i] = math.Inf(-1)
		out.upper[i] = math.Inf(1)
	}
	return out
}
