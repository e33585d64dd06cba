package problem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestIsMIP(t *testing.T) {
	p := wellFormed()
	assert.False(t, p.IsMIP())
	assert.Equal(t, 0, p.NumIntegers())

	p.VarTypes[1] = Integer
	assert.True(t, p.IsMIP())
	assert.Equal(t, 1, p.NumIntegers())
}

func TestDensity(t *testing.T) {
	p := wellFormed()
	assert.InDelta(t, 1.0, p.Density(), 1e-12) // 4 non-zeros in a 2x2

	empty := &Problem{}
	assert.Zero(t, empty.Density())
}

func TestVarName(t *testing.T) {
	p := wellFormed()
	assert.Equal(t, "x0", p.VarName(0))

	p.VarNames = []string{"steel", "coal"}
	assert.Equal(t, "steel", p.VarName(0))
	assert.Equal(t, "coal", p.VarName(1))
	assert.Equal(t, "x7", p.VarName(7))
}

func TestDense(t *testing.T) {
	p := wellFormed()
	want := mat.NewDense(2, 2, []float64{3.0, 4.0, 2.7, 10.1})
	assert.True(t, mat.Equal(want, p.Dense()))
}

func TestDense_SparseRows(t *testing.T) {
	p := &Problem{
		NumConstraints: 3,
		NumVariables:   3,
		NonZeros:       2,
		RowOffsets:     []int{0, 1, 1, 2},
		ColumnIndices:  []int{2, 0},
		Values:         []float64{7, -1},
	}
	want := mat.NewDense(3, 3, []float64{
		0, 0, 7,
		0, 0, 0,
		-1, 0, 0,
	})
	assert.True(t, mat.Equal(want, p.Dense()))

	assert.Equal(t, []float64{0, 0, 7}, p.Row(0))
	assert.Equal(t, []float64{0, 0, 0}, p.Row(1))
	assert.Equal(t, []float64{-1, 0, 0}, p.Row(2))
}

func TestSenseAndVarTypeStrings(t *testing.T) {
	assert.Equal(t, "minimize", Minimize.String())
	assert.Equal(t, "maximize", Maximize.String())
	assert.Equal(t, "C", Continuous.String())
	assert.Equal(t, "I", Integer.String())
}
