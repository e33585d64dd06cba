package problem

import "gonum.org/v1/gonum/mat"

// Dense expands the CSR constraint matrix into a gonum dense matrix.
// Intended for small-problem display and tests; the expansion is
// O(NumConstraints * NumVariables) memory.
func (p *Problem) Dense() *mat.Dense {
	if p.NumConstraints == 0 || p.NumVariables == 0 {
		return mat.NewDense(max(p.NumConstraints, 1), max(p.NumVariables, 1), nil)
	}
	d := mat.NewDense(p.NumConstraints, p.NumVariables, nil)
	for row := 0; row < p.NumConstraints; row++ {
		for k := p.RowOffsets[row]; k < p.RowOffsets[row+1]; k++ {
			d.Set(row, p.ColumnIndices[k], p.Values[k])
		}
	}
	return d
}

// Row returns the dense expansion of a single constraint row.
func (p *Problem) Row(i int) []float64 {
	row := make([]float64, p.NumVariables)
	for k := p.RowOffsets[i]; k < p.RowOffsets[i+1]; k++ {
		row[p.ColumnIndices[k]] = p.Values[k]
	}
	return row
}
