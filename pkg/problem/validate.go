package problem

import "fmt"

// Validate enforces the descriptor's structural invariants. It is called by
// the ingestion assembler before a descriptor is allowed to escape, and may
// be re-run by callers that construct descriptors programmatically.
//
// Checks, in order: CSR shape (offset count, monotonicity, terminal offset,
// parallel index/value lengths, index domain), objective length, bound vector
// lengths, type vector length, optional name vector length, and bound
// ordering (lower <= upper, equality permitted).
func (p *Problem) Validate() error {
	if p.NumConstraints < 0 || p.NumVariables < 0 || p.NonZeros < 0 {
		return fmt.Errorf("negative dimension: %w", ErrDimensionMismatch)
	}

	if len(p.RowOffsets) != p.NumConstraints+1 {
		return fmt.Errorf("row offsets: have %d, want %d: %w",
			len(p.RowOffsets), p.NumConstraints+1, ErrDimensionMismatch)
	}
	if p.RowOffsets[0] != 0 {
		return fmt.Errorf("row offsets must start at 0, got %d: %w",
			p.RowOffsets[0], ErrIndexOutOfRange)
	}
	for i := 1; i < len(p.RowOffsets); i++ {
		if p.RowOffsets[i] < p.RowOffsets[i-1] {
			return fmt.Errorf("row offsets decrease at %d (%d < %d): %w",
				i, p.RowOffsets[i], p.RowOffsets[i-1], ErrIndexOutOfRange)
		}
	}
	if last := p.RowOffsets[len(p.RowOffsets)-1]; last != p.NonZeros {
		return fmt.Errorf("terminal row offset %d does not match %d non-zeros: %w",
			last, p.NonZeros, ErrDimensionMismatch)
	}

	if len(p.ColumnIndices) != p.NonZeros {
		return fmt.Errorf("column indices: have %d, want %d: %w",
			len(p.ColumnIndices), p.NonZeros, ErrDimensionMismatch)
	}
	if len(p.Values) != p.NonZeros {
		return fmt.Errorf("matrix values: have %d, want %d: %w",
			len(p.Values), p.NonZeros, ErrDimensionMismatch)
	}
	for i, col := range p.ColumnIndices {
		if col < 0 || col >= p.NumVariables {
			return fmt.Errorf("column index %d at position %d outside [0,%d): %w",
				col, i, p.NumVariables, ErrIndexOutOfRange)
		}
	}

	if len(p.ObjCoefficients) != p.NumVariables {
		return fmt.Errorf("objective coefficients: have %d, want %d: %w",
			len(p.ObjCoefficients), p.NumVariables, ErrDimensionMismatch)
	}

	if err := checkBoundPair("constraint", p.ConstraintLower, p.ConstraintUpper, p.NumConstraints); err != nil {
		return err
	}
	if err := checkBoundPair("variable", p.VariableLower, p.VariableUpper, p.NumVariables); err != nil {
		return err
	}

	if len(p.VarTypes) != p.NumVariables {
		return fmt.Errorf("variable types: have %d, want %d: %w",
			len(p.VarTypes), p.NumVariables, ErrDimensionMismatch)
	}
	if p.VarNames != nil && len(p.VarNames) != p.NumVariables {
		return fmt.Errorf("variable names: have %d, want %d: %w",
			len(p.VarNames), p.NumVariables, ErrDimensionMismatch)
	}

	return nil
}

func checkBoundPair(kind string, lower, upper []float64, n int) error {
	if len(lower) != n {
		return fmt.Errorf("%s lower bounds: have %d, want %d: %w",
			kind, len(lower), n, ErrDimensionMismatch)
	}
	if len(upper) != n {
		return fmt.Errorf("%s upper bounds: have %d, want %d: %w",
			kind, len(upper), n, ErrDimensionMismatch)
	}
	for i := range lower {
		if lower[i] > upper[i] {
			return fmt.Errorf("%s %d: [%g, %g]: %w", kind, i, lower[i], upper[i], ErrBoundOrder)
		}
	}
	return nil
}
