// Package solver is the boundary to the external HiGHS optimization engine.
// It maps the canonical problem descriptor onto the highs model structure,
// runs the solve, and repackages the outcome. The numerical algorithm itself
// lives entirely behind the github.com/lanl/highs binding.
package solver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/lanl/highs"

	"github.com/lpforge/lpforge/pkg/problem"
)

// ErrTimeLimit is returned when the watchdog deadline expires before the
// engine finishes. The in-flight native solve cannot be interrupted; its
// goroutine is abandoned and its eventual result discarded.
var ErrTimeLimit = errors.New("solver: time limit exceeded")

// Settings carries the per-solve configuration threaded in from the CLI.
type Settings struct {
	// TimeLimit bounds the wall-clock time of a solve. Zero means no limit.
	TimeLimit time.Duration
	// Tolerance is the feasibility tolerance used when verifying the primal
	// solution against the constraint and variable bounds.
	Tolerance float64
}

// DefaultTolerance matches the engine's customary primal feasibility tolerance.
const DefaultTolerance = 1e-6

// Result is the outcome of a solve.
type Result struct {
	// Status is the engine's termination status ("Optimal", "Infeasible", ...).
	Status string
	// Optimal is true when the engine proved optimality.
	Optimal bool
	// Objective is the objective value at the returned point, including the
	// descriptor's constant offset.
	Objective float64
	// Primal holds the variable values, one per descriptor variable.
	Primal []float64
	// Duration is the measured wall-clock solve time.
	Duration time.Duration
}

// Solver runs problem descriptors through the HiGHS engine.
type Solver struct {
	logger *slog.Logger
}

// New creates a Solver. A nil logger defaults to slog.Default().
func New(logger *slog.Logger) *Solver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Solver{logger: logger}
}

// BuildModel maps a validated descriptor onto a highs.Model. The CSR matrix
// is expanded into coordinate triplets; bounds and costs are copied so the
// engine never aliases descriptor memory.
func BuildModel(p *problem.Problem) *highs.Model {
	m := new(highs.Model)
	m.Maximize = p.Sense == problem.Maximize
	m.Offset = p.ObjOffset

	m.ColCosts = append([]float64(nil), p.ObjCoefficients...)
	m.ColLower = append([]float64(nil), p.VariableLower...)
	m.ColUpper = append([]float64(nil), p.VariableUpper...)
	m.RowLower = append([]float64(nil), p.ConstraintLower...)
	m.RowUpper = append([]float64(nil), p.ConstraintUpper...)

	m.VarTypes = make([]highs.VariableType, p.NumVariables)
	for i, t := range p.VarTypes {
		if t == problem.Integer {
			m.VarTypes[i] = highs.IntegerType
		} else {
			m.VarTypes[i] = highs.ContinuousType
		}
	}

	m.ConstMatrix = make([]highs.Nonzero, 0, p.NonZeros)
	for row := 0; row < p.NumConstraints; row++ {
		for k := p.RowOffsets[row]; k < p.RowOffsets[row+1]; k++ {
			m.ConstMatrix = append(m.ConstMatrix, highs.Nonzero{
				Row: row,
				Col: p.ColumnIndices[k],
				Val: p.Values[k],
			})
		}
	}
	return m
}

// interruptionError classifies a context error observed during a solve. An
// expired deadline is reported as ErrTimeLimit; a plain cancellation (for
// example Ctrl-C) is passed through so the caller sees context.Canceled
// rather than a fictitious time limit.
func interruptionError(cause error, elapsed time.Duration) error {
	if errors.Is(cause, context.DeadlineExceeded) {
		return fmt.Errorf("after %s: %w", elapsed.Round(time.Millisecond), ErrTimeLimit)
	}
	return fmt.Errorf("solver: %w", cause)
}

// Solve runs the descriptor through the engine under the given settings.
// Engine API failures are returned as errors; non-optimal termination
// statuses are reported in the Result instead, so the caller can present
// infeasible/unbounded outcomes rather than treating them as faults.
func (s *Solver) Solve(ctx context.Context, p *problem.Problem, settings Settings) (*Result, error) {
	if settings.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, settings.TimeLimit)
		defer cancel()
	}

	s.logger.DebugContext(ctx, "starting solve",
		slog.Int("constraints", p.NumConstraints),
		slog.Int("variables", p.NumVariables),
		slog.Int("nonzeros", p.NonZeros),
		slog.Bool("mip", p.IsMIP()))

	if err := ctx.Err(); err != nil {
		return nil, interruptionError(err, 0)
	}

	model := BuildModel(p)
	start := time.Now()

	type outcome struct {
		sol highs.Solution
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		sol, err := model.Solve()
		done <- outcome{sol: sol, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, interruptionError(ctx.Err(), time.Since(start))
	case out := <-done:
		if out.err != nil {
			return nil, fmt.Errorf("solver: %w", out.err)
		}
		res := &Result{
			Status:    out.sol.Status.String(),
			Optimal:   out.sol.Status == highs.Optimal,
			Objective: out.sol.Objective,
			Primal:    out.sol.ColumnPrimal,
			Duration:  time.Since(start),
		}
		s.logger.DebugContext(ctx, "solve finished",
			slog.String("status", res.Status),
			slog.Float64("objective", res.Objective),
			slog.Duration("elapsed", res.Duration))
		return res, nil
	}
}
