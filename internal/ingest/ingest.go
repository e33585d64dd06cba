// Package ingest converts cuOpt-style JSON optimization documents into the
// canonical problem descriptor. The pipeline runs four extractors (CSR
// matrix, objective, bounds, variable types) over a decoded document tree
// and assembles a validated problem.Problem. All ingestion errors abort the
// whole parse; no partially-built descriptor escapes.
package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lpforge/lpforge/pkg/problem"
)

// Options configures a Parser. The zero value is strict: a malformed
// numeric string literal fails the parse instead of silently becoming 0.0.
type Options struct {
	// LenientNumbers substitutes 0.0 for unparseable numeric strings,
	// downgrading the error to a logged warning.
	LenientNumbers bool
}

// Parser ingests optimization documents. It is stateless apart from its
// options and logger; a single Parser may be used from multiple goroutines.
type Parser struct {
	opts   Options
	logger *slog.Logger
}

// NewParser creates a Parser. A nil logger defaults to slog.Default().
func NewParser(opts Options, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{opts: opts, logger: logger}
}

// ParseFile reads and ingests a JSON document from disk.
func (p *Parser) ParseFile(ctx context.Context, path string) (*problem.Problem, error) {
	start := time.Now()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", path, err, ErrFileUnreadable)
	}
	p.logger.DebugContext(ctx, "read input file",
		slog.String("path", path),
		slog.Int("bytes", len(data)),
		slog.Duration("elapsed", time.Since(start)))

	return p.Parse(ctx, data)
}

// Parse ingests a JSON document from memory and returns a fully validated
// problem descriptor. All descriptor slices are freshly allocated; nothing
// references the input bytes after Parse returns.
func (p *Parser) Parse(ctx context.Context, data []byte) (*problem.Problem, error) {
	total := time.Now()

	doc, err := timed(p, ctx, "decode", func() (*document, error) {
		return decodeDocument(data)
	})
	if err != nil {
		return nil, err
	}

	csr, err := timed(p, ctx, "csr_matrix", func() (*csrData, error) {
		return p.extractCSR(doc)
	})
	if err != nil {
		return nil, err
	}

	obj, err := timed(p, ctx, "objective", func() (*objectiveData, error) {
		return p.extractObjective(doc)
	})
	if err != nil {
		return nil, err
	}

	conBounds, err := timed(p, ctx, "constraint_bounds", func() (*boundPair, error) {
		return p.resolveConstraintBounds(doc.ConstraintBounds, csr.numConstraints)
	})
	if err != nil {
		return nil, err
	}

	varBounds, err := timed(p, ctx, "variable_bounds", func() (*boundPair, error) {
		return p.resolveVariableBounds(doc.VariableBounds, obj.numVariables)
	})
	if err != nil {
		return nil, err
	}

	prob := &problem.Problem{
		NumConstraints:  csr.numConstraints,
		NumVariables:    obj.numVariables,
		NonZeros:        csr.nonZeros,
		RowOffsets:      csr.rowOffsets,
		ColumnIndices:   csr.columnIndices,
		Values:          csr.values,
		ObjCoefficients: obj.coefficients,
		ObjOffset:       obj.offset,
		ObjScale:        obj.scale,
		Sense:           obj.sense,
		ConstraintLower: conBounds.lower,
		ConstraintUpper: conBounds.upper,
		VariableLower:   varBounds.lower,
		VariableUpper:   varBounds.upper,
		VarTypes:        resolveVarTypes(doc.VariableTypes, obj.numVariables),
	}
	if doc.VariableNames != nil {
		prob.VarNames = make([]string, len(doc.VariableNames))
		copy(prob.VarNames, doc.VariableNames)
	}

	if err := prob.Validate(); err != nil {
		return nil, err
	}

	p.logger.DebugContext(ctx, "ingestion complete",
		slog.Int("constraints", prob.NumConstraints),
		slog.Int("variables", prob.NumVariables),
		slog.Int("nonzeros", prob.NonZeros),
		slog.String("sense", prob.Sense.String()),
		slog.Duration("elapsed", time.Since(total)))

	return prob, nil
}

// timed runs one extractor phase and logs its duration at debug level.
func timed[T any](p *Parser, ctx context.Context, phase string, fn func() (T, error)) (T, error) {
	start := time.Now()
	out, err := fn()
	p.logger.DebugContext(ctx, "ingest phase",
		slog.String("phase", phase),
		slog.Duration("elapsed", time.Since(start)))
	return out, err
}

// fallback handles an ErrNumericParse from coercion. In strict mode the
// error (annotated with the field) is returned and the parse aborts; in
// lenient mode a warning is logged and the 0.0 substitute stands.
func (p *Parser) fallback(field string, index int, err error) error {
	if !p.opts.LenientNumbers {
		return fmt.Errorf("%s: %w", field, err)
	}
	p.logger.Warn("substituting 0.0 for unparseable numeric literal",
		slog.String("field", field),
		slog.Int("index", index),
		slog.String("cause", err.Error()))
	return nil
}

// coerceBoundArray converts an array of raw leaves, routing parse fallbacks
// through the parser's strictness policy.
func (p *Parser) coerceBoundArray(field string, leaves []json.RawMessage) ([]float64, error) {
	return coerceSlice(leaves, func(i int, err error) error {
		return p.fallback(fmt.Sprintf("%s[%d]", field, i), i, err)
	})
}
