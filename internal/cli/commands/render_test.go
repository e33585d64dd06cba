package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/lpforge/lpforge/internal/solver"
	"github.com/lpforge/lpforge/pkg/problem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoByTwo builds a small validated problem for rendering tests.
func twoByTwo() *problem.Problem {
	return &problem.Problem{
		NumConstraints:  2,
		NumVariables:    2,
		NonZeros:        4,
		RowOffsets:      []int{0, 2, 4},
		ColumnIndices:   []int{0, 1, 0, 1},
		Values:          []float64{3, 4, 2.7, 10.1},
		ObjCoefficients: []float64{0.2, 0.1},
		ObjScale:        1,
		ConstraintLower: []float64{math.Inf(-1), math.Inf(-1)},
		ConstraintUpper: []float64{5.4, 4.9},
		VariableLower:   []float64{0, 0},
		VariableUpper:   []float64{math.Inf(1), math.Inf(1)},
		VarTypes:        []problem.VarType{problem.Continuous, problem.Continuous},
		VarNames:        []string{"steel", "coal"},
	}
}

func TestRenderProblem_Table(t *testing.T) {
	buf := new(bytes.Buffer)
	require.NoError(t, renderProblem(buf, "table", twoByTwo()))

	out := buf.String()
	assert.Contains(t, out, "Constraints")
	assert.Contains(t, out, "Non-zeros")
	assert.Contains(t, out, "LP")
	assert.NotContains(t, out, "Objective offset", "zero offset should be omitted")
}

func TestRenderProblem_TableMIPWithOffset(t *testing.T) {
	p := twoByTwo()
	p.VarTypes[1] = problem.Integer
	p.ObjOffset = 1.5

	buf := new(bytes.Buffer)
	require.NoError(t, renderProblem(buf, "table", p))

	out := buf.String()
	assert.Contains(t, out, "MIP (1 integer)")
	assert.Contains(t, out, "Objective offset")
	assert.Contains(t, out, "1.5")
}

func TestRenderProblem_Markdown(t *testing.T) {
	buf := new(bytes.Buffer)
	require.NoError(t, renderProblem(buf, "markdown", twoByTwo()))

	out := buf.String()
	assert.Contains(t, out, "| Property | Value |")
	assert.Contains(t, out, "| Constraints | 2 |")
}

func TestRenderProblem_JSON(t *testing.T) {
	buf := new(bytes.Buffer)
	require.NoError(t, renderProblem(buf, "json", twoByTwo()))

	var got problemSummary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 2, got.Constraints)
	assert.Equal(t, 2, got.Variables)
	assert.Equal(t, 4, got.NonZeros)
	assert.Equal(t, "minimize", got.Sense)
	assert.False(t, got.MIP)
}

func TestRenderSolution_Table(t *testing.T) {
	res := &solver.Result{
		Status:    "Optimal",
		Optimal:   true,
		Objective: 12.25,
		Primal:    []float64{1.5, 0},
		Duration:  3 * time.Millisecond,
	}

	buf := new(bytes.Buffer)
	require.NoError(t, renderSolution(buf, "table", twoByTwo(), res, "run-1"))

	out := buf.String()
	assert.Contains(t, out, "Status:     Optimal")
	assert.Contains(t, out, "Objective:  12.25")
	assert.Contains(t, out, "steel")
	assert.Contains(t, out, "coal")
}

func TestRenderSolution_TableTruncatesPrimal(t *testing.T) {
	p := &problem.Problem{NumVariables: maxPrimalRows + 5}
	res := &solver.Result{
		Status: "Optimal",
		Primal: make([]float64, maxPrimalRows+5),
	}

	buf := new(bytes.Buffer)
	require.NoError(t, renderSolution(buf, "table", p, res, "run-1"))

	out := buf.String()
	assert.Contains(t, out, "(5 more)")
	assert.Contains(t, out, fmt.Sprintf("x%d", maxPrimalRows-1))
	assert.NotContains(t, out, fmt.Sprintf("x%d ", maxPrimalRows))
}

func TestRenderSolution_JSONCarriesFullPrimal(t *testing.T) {
	res := &solver.Result{
		Status:    "Optimal",
		Optimal:   true,
		Objective: 7,
		Primal:    make([]float64, maxPrimalRows+10),
		Duration:  time.Second,
	}

	buf := new(bytes.Buffer)
	require.NoError(t, renderSolution(buf, "json", twoByTwo(), res, "run-xyz"))

	var got solutionOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "run-xyz", got.RunID)
	assert.True(t, got.Optimal)
	assert.Len(t, got.Primal, maxPrimalRows+10)
}

func TestRenderSolution_Markdown(t *testing.T) {
	res := &solver.Result{
		Status:    "Infeasible",
		Objective: 0,
		Duration:  time.Millisecond,
	}

	buf := new(bytes.Buffer)
	require.NoError(t, renderSolution(buf, "md", twoByTwo(), res, "run-1"))

	out := buf.String()
	assert.Contains(t, out, "**Status:** Infeasible")
	assert.NotContains(t, out, "| Variable |", "no primal table without values")
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{math.Inf(1), "+inf"},
		{math.Inf(-1), "-inf"},
		{1.5, "1.5"},
		{0, "0"},
		{-230, "-230"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatNumber(tt.in), "formatNumber(%v)", tt.in)
	}
}
