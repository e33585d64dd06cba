package problem

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wellFormed returns the 2-constraint, 2-variable descriptor used across
// the package tests:
//
//	3.0*x0 + 4.0*x1  <= 5.4
//	2.7*x0 + 10.1*x1 <= 4.9
func wellFormed() *Problem {
	inf := math.Inf(1)
	return &Problem{
		NumConstraints:  2,
		NumVariables:    2,
		NonZeros:        4,
		RowOffsets:      []int{0, 2, 4},
		ColumnIndices:   []int{0, 1, 0, 1},
		Values:          []float64{3.0, 4.0, 2.7, 10.1},
		ObjCoefficients: []float64{-0.2, 0.1},
		ObjScale:        1.0,
		Sense:           Minimize,
		ConstraintLower: []float64{math.Inf(-1), math.Inf(-1)},
		ConstraintUpper: []float64{5.4, 4.9},
		VariableLower:   []float64{0, 0},
		VariableUpper:   []float64{inf, inf},
		VarTypes:        []VarType{Continuous, Continuous},
	}
}

func TestValidate_WellFormed(t *testing.T) {
	require.NoError(t, wellFormed().Validate())
}

func TestValidate_Violations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Problem)
		want   error
	}{
		{
			name:   "offset count",
			mutate: func(p *Problem) { p.RowOffsets = []int{0, 4} },
			want:   ErrDimensionMismatch,
		},
		{
			name:   "offsets start nonzero",
			mutate: func(p *Problem) { p.RowOffsets = []int{1, 2, 4} },
			want:   ErrIndexOutOfRange,
		},
		{
			name:   "offsets decrease",
			mutate: func(p *Problem) { p.RowOffsets = []int{0, 3, 2} },
			want:   ErrIndexOutOfRange,
		},
		{
			name:   "terminal offset disagrees with nnz",
			mutate: func(p *Problem) { p.RowOffsets = []int{0, 2, 3} },
			want:   ErrDimensionMismatch,
		},
		{
			name:   "values shorter than indices",
			mutate: func(p *Problem) { p.Values = p.Values[:3] },
			want:   ErrDimensionMismatch,
		},
		{
			name:   "column index beyond variable count",
			mutate: func(p *Problem) { p.ColumnIndices[3] = 2 },
			want:   ErrIndexOutOfRange,
		},
		{
			name:   "negative column index",
			mutate: func(p *Problem) { p.ColumnIndices[0] = -1 },
			want:   ErrIndexOutOfRange,
		},
		{
			name:   "objective length",
			mutate: func(p *Problem) { p.ObjCoefficients = []float64{1} },
			want:   ErrDimensionMismatch,
		},
		{
			name:   "constraint bound length",
			mutate: func(p *Problem) { p.ConstraintUpper = []float64{5.4} },
			want:   ErrDimensionMismatch,
		},
		{
			name:   "variable bound length",
			mutate: func(p *Problem) { p.VariableLower = []float64{0} },
			want:   ErrDimensionMismatch,
		},
		{
			name:   "crossed constraint bounds",
			mutate: func(p *Problem) { p.ConstraintLower[0] = 6.0; p.ConstraintUpper[0] = 5.4 },
			want:   ErrBoundOrder,
		},
		{
			name:   "crossed variable bounds",
			mutate: func(p *Problem) { p.VariableUpper[1] = -1 },
			want:   ErrBoundOrder,
		},
		{
			name:   "type vector length",
			mutate: func(p *Problem) { p.VarTypes = []VarType{Continuous} },
			want:   ErrDimensionMismatch,
		},
		{
			name:   "name vector length",
			mutate: func(p *Problem) { p.VarNames = []string{"only_one"} },
			want:   ErrDimensionMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := wellFormed()
			tt.mutate(p)
			err := p.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidate_EqualityBoundsPermitted(t *testing.T) {
	p := wellFormed()
	p.ConstraintLower[0] = 5.4
	p.ConstraintUpper[0] = 5.4
	require.NoError(t, p.Validate())
}

func TestValidate_EmptyProblem(t *testing.T) {
	p := &Problem{
		RowOffsets:      []int{0},
		ColumnIndices:   []int{},
		Values:          []float64{},
		ObjCoefficients: []float64{},
		ConstraintLower: []float64{},
		ConstraintUpper: []float64{},
		VariableLower:   []float64{},
		VariableUpper:   []float64{},
		VarTypes:        []VarType{},
	}
	require.NoError(t, p.Validate())
}
