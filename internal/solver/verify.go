package solver

import "github.com/lpforge/lpforge/pkg/problem"

// Violation records a primal feasibility breach found by VerifyPrimal.
type Violation struct {
	// Kind is "constraint" or "variable".
	Kind string
	// Index is the constraint or variable index.
	Index int
	// Amount is how far outside [lower, upper] the activity lies.
	Amount float64
}

// VerifyPrimal checks a primal point against the descriptor's constraint
// activities and variable bounds within the given tolerance. It returns the
// violations found, empty for a feasible point. A point with the wrong
// dimension is reported as a single whole-vector violation at index -1.
func VerifyPrimal(p *problem.Problem, primal []float64, tol float64) []Violation {
	if tol <= 0 {
		tol = DefaultTolerance
	}
	if len(primal) != p.NumVariables {
		return []Violation{{Kind: "variable", Index: -1, Amount: float64(len(primal) - p.NumVariables)}}
	}

	var out []Violation
	for i, x := range primal {
		if d := p.VariableLower[i] - x; d > tol {
			out = append(out, Violation{Kind: "variable", Index: i, Amount: d})
		} else if d := x - p.VariableUpper[i]; d > tol {
			out = append(out, Violation{Kind: "variable", Index: i, Amount: d})
		}
	}

	for row := 0; row < p.NumConstraints; row++ {
		activity := 0.0
		for k := p.RowOffsets[row]; k < p.RowOffsets[row+1]; k++ {
			activity += p.Values[k] * primal[p.ColumnIndices[k]]
		}
		if d := p.ConstraintLower[row] - activity; d > tol {
			out = append(out, Violation{Kind: "constraint", Index: row, Amount: d})
		} else if d := activity - p.ConstraintUpper[row]; d > tol {
			out = append(out, Violation{Kind: "constraint", Index: row, Amount: d})
		}
	}
	return out
}
