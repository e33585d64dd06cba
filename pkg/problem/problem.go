// Package problem defines the canonical in-memory representation of a
// linear or mixed-integer optimization problem: a sparse constraint matrix
// in compressed-row form, dense bound vectors, an objective vector, and
// per-variable type tags. It is the unit handed to the solver adapter and
// is never mutated after assembly.
package problem

import "fmt"

// Sense indicates whether the objective is minimized or maximized.
type Sense int

const (
	Minimize Sense = iota
	Maximize
)

// String returns the lower-case name of the sense.
func (s Sense) String() string {
	if s == Maximize {
		return "maximize"
	}
	return "minimize"
}

// VarType classifies a decision variable.
type VarType int

const (
	Continuous VarType = iota
	Integer
)

// String returns the single-letter tag used in input documents.
func (v VarType) String() string {
	if v == Integer {
		return "I"
	}
	return "C"
}

// Problem is the fully-populated problem descriptor. All slices are owned
// exclusively by the descriptor; nothing aliases the source document.
type Problem struct {
	NumConstraints int
	NumVariables   int
	NonZeros       int

	// Constraint matrix in compressed sparse row form.
	RowOffsets    []int
	ColumnIndices []int
	Values        []float64

	// Objective.
	ObjCoefficients []float64
	ObjOffset       float64
	// ObjScale is the document's scalability_factor. It is carried through
	// for completeness but not folded into the coefficients.
	ObjScale float64
	Sense    Sense

	// Ranged constraint bounds, one pair per constraint.
	ConstraintLower []float64
	ConstraintUpper []float64

	// Variable bounds, one pair per variable.
	VariableLower []float64
	VariableUpper []float64

	VarTypes []VarType

	// VarNames is optional and used only for reporting.
	VarNames []string
}

// IsMIP reports whether any variable carries an integrality constraint.
func (p *Problem) IsMIP() bool {
	for _, t := range p.VarTypes {
		if t == Integer {
			return true
		}
	}
	return false
}

// NumIntegers returns the count of integer variables.
func (p *Problem) NumIntegers() int {
	n := 0
	for _, t := range p.VarTypes {
		if t == Integer {
			n++
		}
	}
	return n
}

// Density returns the fraction of matrix entries that are non-zero.
func (p *Problem) Density() float64 {
	cells := p.NumConstraints * p.NumVariables
	if cells == 0 {
		return 0
	}
	return float64(p.NonZeros) / float64(cells)
}

// VarName returns the reporting name for variable i, falling back to a
// generated x<i> name when the document carried none.
func (p *Problem) VarName(i int) string {
	if i >= 0 && i < len(p.VarNames) && p.VarNames[i] != "" {
		return p.VarNames[i]
	}
	return fmt.Sprintf("x%d", i)
}
