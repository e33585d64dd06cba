package ingest

import (
	"encoding/json"
	"fmt"
)

// document mirrors the input JSON schema. Numeric positions that admit
// infinity sentinels are held as raw leaves and coerced later; purely
// integral arrays decode directly. A nil section pointer distinguishes an
// absent object from an empty one.
type document struct {
	CSR              *csrSection       `json:"csr_constraint_matrix"`
	Objective        *objectiveSection `json:"objective_data"`
	ConstraintBounds *boundsSection    `json:"constraint_bounds"`
	VariableBounds   *boundsSection    `json:"variable_bounds"`
	Maximize         bool              `json:"maximize"`
	VariableTypes    []string          `json:"variable_types"`
	VariableNames    []string          `json:"variable_names"`
}

type csrSection struct {
	Offsets []int             `json:"offsets"`
	Indices []int             `json:"indices"`
	Values  []json.RawMessage `json:"values"`
}

type objectiveSection struct {
	Coefficients []json.RawMessage `json:"coefficients"`
	Offset       *json.RawMessage  `json:"offset"`
	Scale        *json.RawMessage  `json:"scalability_factor"`
}

// boundsSection covers both bound encodings. The explicit form populates
// LowerBounds/UpperBounds; the relational form (constraints only) populates
// Bounds/Types. Which one applies is decided by the bounds resolver.
type boundsSection struct {
	LowerBounds []json.RawMessage `json:"lower_bounds"`
	UpperBounds []json.RawMessage `json:"upper_bounds"`
	Bounds      []json.RawMessage `json:"bounds"`
	Types       []string          `json:"types"`
}

// decodeDocument parses raw JSON bytes into the document tree.
func decodeDocument(data []byte) (*document, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrMalformedDocument)
	}
	return &doc, nil
}
