package ingest

import "fmt"

// csrData is the intermediate result of the CSR extractor.
type csrData struct {
	numConstraints int
	nonZeros       int
	rowOffsets     []int
	columnIndices  []int
	values         []float64
}

// extractCSR reads the csr_constraint_matrix section. All three arrays are
// required. A values array shorter or longer than the indices array is
// rejected rather than silently truncated.
func (p *Parser) extractCSR(doc *document) (*csrData, error) {
	sec := doc.CSR
	if sec == nil {
		return nil, fmt.Errorf("csr_constraint_matrix: %w", ErrMissingField)
	}
	if sec.Offsets == nil {
		return nil, fmt.Errorf("csr_constraint_matrix.offsets: %w", ErrMissingField)
	}
	if sec.Indices == nil {
		return nil, fmt.Errorf("csr_constraint_matrix.indices: %w", ErrMissingField)
	}
	if sec.Values == nil {
		return nil, fmt.Errorf("csr_constraint_matrix.values: %w", ErrMissingField)
	}

	if len(sec.Offsets) == 0 {
		return nil, fmt.Errorf("csr_constraint_matrix.offsets is empty: %w", ErrDimensionMismatch)
	}
	if len(sec.Values) != len(sec.Indices) {
		return nil, fmt.Errorf("csr_constraint_matrix: %d values vs %d indices: %w",
			len(sec.Values), len(sec.Indices), ErrDimensionMismatch)
	}

	values, err := p.coerceBoundArray("csr_constraint_matrix.values", sec.Values)
	if err != nil {
		return nil, err
	}

	out := &csrData{
		numConstraints: len(sec.Offsets) - 1,
		nonZeros:       len(sec.Indices),
		rowOffsets:     make([]int, len(sec.Offsets)),
		columnIndices:  make([]int, len(sec.Indices)),
		values:         values,
	}
	copy(out.rowOffsets, sec.Offsets)
	copy(out.columnIndices, sec.Indices)
	return out, nil
}
