// Package mps writes problem descriptors as MPS files, the fixed-section
// interchange format understood by LP/MIP solvers. Ranged constraints are
// emitted as a row type plus RHS and RANGES entries; variables outside the
// default [0, +Inf) domain get BOUNDS entries; integer variables are fenced
// with INTORG/INTEND markers in the COLUMNS section.
package mps

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/lpforge/lpforge/pkg/problem"
)

// rowKind classifies a ranged constraint for MPS emission.
type rowKind byte

const (
	rowLE    rowKind = 'L' // upper bound only
	rowGE    rowKind = 'G' // lower bound only
	rowEQ    rowKind = 'E' // lower == upper
	rowRange rowKind = 'R' // both finite, emitted as L + RANGES
	rowFree  rowKind = 'N' // both infinite
)

func classifyRow(lower, upper float64) rowKind {
	lowInf := math.IsInf(lower, -1)
	upInf := math.IsInf(upper, 1)
	switch {
	case lowInf && upInf:
		return rowFree
	case lowInf:
		return rowLE
	case upInf:
		return rowGE
	case lower == upper:
		return rowEQ
	default:
		return rowRange
	}
}

// WriteFile writes the descriptor to path in MPS format.
func WriteFile(path, name string, p *problem.Problem) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("mps: %w", err)
	}
	if err := Write(f, name, p); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Write emits the descriptor to w in MPS format. name becomes the NAME
// record; constraint rows are named c<i>, variables use the descriptor's
// reporting names.
func Write(w io.Writer, name string, p *problem.Problem) error {
	var b strings.Builder

	fmt.Fprintf(&b, "NAME          %s\n", name)

	// ROWS: the objective plus one record per constraint. Ranged rows are
	// declared L; their lower bound follows in RANGES.
	b.WriteString("ROWS\n")
	b.WriteString(" N  OBJ\n")
	kinds := make([]rowKind, p.NumConstraints)
	for i := 0; i < p.NumConstraints; i++ {
		kinds[i] = classifyRow(p.ConstraintLower[i], p.ConstraintUpper[i])
		code := byte(kinds[i])
		if kinds[i] == rowRange {
			code = 'L'
		}
		fmt.Fprintf(&b, " %c  c%d\n", code, i)
	}

	// COLUMNS requires column-major order; invert the CSR layout once.
	type entry struct {
		row int
		val float64
	}
	columns := make([][]entry, p.NumVariables)
	for row := 0; row < p.NumConstraints; row++ {
		for k := p.RowOffsets[row]; k < p.RowOffsets[row+1]; k++ {
			col := p.ColumnIndices[k]
			columns[col] = append(columns[col], entry{row: row, val: p.Values[k]})
		}
	}

	b.WriteString("COLUMNS\n")
	inInteger := false
	markerCount := 0
	for col := 0; col < p.NumVariables; col++ {
		isInt := p.VarTypes[col] == problem.Integer
		if isInt && !inInteger {
			fmt.Fprintf(&b, "    MARKER%d   'MARKER'                 'INTORG'\n", markerCount)
			markerCount++
			inInteger = true
		} else if !isInt && inInteger {
			fmt.Fprintf(&b, "    MARKER%d   'MARKER'                 'INTEND'\n", markerCount)
			markerCount++
			inInteger = false
		}

		vn := p.VarName(col)
		if c := p.ObjCoefficients[col]; c != 0 {
			fmt.Fprintf(&b, "    %-10s%-10s%.12g\n", vn, "OBJ", c)
		}
		for _, e := range columns[col] {
			fmt.Fprintf(&b, "    %-10s%-10s%.12g\n", vn, fmt.Sprintf("c%d", e.row), e.val)
		}
	}
	if inInteger {
		fmt.Fprintf(&b, "    MARKER%d   'MARKER'                 'INTEND'\n", markerCount)
	}

	b.WriteString("RHS\n")
	if p.ObjOffset != 0 {
		// MPS encodes a constant objective term as a negated OBJ RHS entry.
		fmt.Fprintf(&b, "    RHS       %-10s%.12g\n", "OBJ", -p.ObjOffset)
	}
	for i := 0; i < p.NumConstraints; i++ {
		var rhs float64
		switch kinds[i] {
		case rowLE, rowRange:
			rhs = p.ConstraintUpper[i]
		case rowGE, rowEQ:
			rhs = p.ConstraintLower[i]
		case rowFree:
			continue
		}
		if rhs != 0 {
			fmt.Fprintf(&b, "    RHS       %-10s%.12g\n", fmt.Sprintf("c%d", i), rhs)
		}
	}

	hasRanges := false
	for i := 0; i < p.NumConstraints; i++ {
		if kinds[i] == rowRange {
			if !hasRanges {
				b.WriteString("RANGES\n")
				hasRanges = true
			}
			fmt.Fprintf(&b, "    RNG       %-10s%.12g\n",
				fmt.Sprintf("c%d", i), p.ConstraintUpper[i]-p.ConstraintLower[i])
		}
	}

	b.WriteString("BOUNDS\n")
	for col := 0; col < p.NumVariables; col++ {
		writeBound(&b, p.VarName(col), p.VariableLower[col], p.VariableUpper[col])
	}

	b.WriteString("ENDATA\n")

	_, err := io.WriteString(w, b.String())
	if err != nil {
		return fmt.Errorf("mps: %w", err)
	}
	return nil
}

// writeBound emits BOUNDS records for one variable, skipping the MPS
// default domain [0, +Inf).
func writeBound(b *strings.Builder, name string, lower, upper float64) {
	lowInf := math.IsInf(lower, -1)
	upInf := math.IsInf(upper, 1)

	switch {
	case lower == upper:
		fmt.Fprintf(b, " FX BND       %-10s%.12g\n", name, lower)
	case lowInf && upInf:
		fmt.Fprintf(b, " FR BND       %s\n", name)
	default:
		if lowInf {
			fmt.Fprintf(b, " MI BND       %s\n", name)
		} else if lower != 0 {
			fmt.Fprintf(b, " LO BND       %-10s%.12g\n", name, lower)
		}
		if !upInf {
			fmt.Fprintf(b, " UP BND       %-10s%.12g\n", name, upper)
		}
	}
}
