package ingest

import (
	"fmt"

	"github.com/lpforge/lpforge/pkg/problem"
)

// objectiveData is the intermediate result of the objective extractor. The
// variable count of the whole problem is derived from the coefficient array.
type objectiveData struct {
	numVariables int
	coefficients []float64
	offset       float64
	scale        float64
	sense        problem.Sense
}

// extractObjective reads objective_data plus the top-level maximize flag.
// coefficients is required; offset defaults to 0 and scalability_factor to 1.
func (p *Parser) extractObjective(doc *document) (*objectiveData, error) {
	sec := doc.Objective
	if sec == nil {
		return nil, fmt.Errorf("objective_data: %w", ErrMissingField)
	}
	if sec.Coefficients == nil {
		return nil, fmt.Errorf("objective_data.coefficients: %w", ErrMissingField)
	}

	coeffs, err := p.coerceBoundArray("objective_data.coefficients", sec.Coefficients)
	if err != nil {
		return nil, err
	}

	out := &objectiveData{
		numVariables: len(coeffs),
		coefficients: coeffs,
		offset:       0,
		scale:        1,
		sense:        problem.Minimize,
	}
	if doc.Maximize {
		out.sense = problem.Maximize
	}

	if sec.Offset != nil {
		v, err := coerceNumeric(*sec.Offset)
		if err != nil {
			if ferr := p.fallback("objective_data.offset", 0, err); ferr != nil {
				return nil, ferr
			}
		}
		out.offset = v
	}
	if sec.Scale != nil {
		v, err := coerceNumeric(*sec.Scale)
		if err != nil {
			if ferr := p.fallback("objective_data.scalability_factor", 0, err); ferr != nil {
				return nil, ferr
			}
		}
		out.scale = v
	}

	return out, nil
}
