package commands

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lpforge/lpforge/internal/mps"
	"github.com/lpforge/lpforge/internal/solver"
	"github.com/lpforge/lpforge/internal/state"
	"github.com/spf13/cobra"
)

// SolveOptions holds options for the solve command.
type SolveOptions struct {
	MPSOutput string
	NoHistory bool
}

// NewSolveCommand creates the solve command.
func NewSolveCommand() *cobra.Command {
	opts := &SolveOptions{}

	cmd := &cobra.Command{
		Use:   "solve <file.json>",
		Short: "Solve an optimization problem from a JSON file",
		Long: `Read a problem from a JSON file, validate it, and solve it with HiGHS.

The solution is rendered in the configured output format and the run
is recorded in the history database unless --no-history is given.`,
		Example: `  # Solve a problem
  lpforge solve problem.json

  # Solve with a 30 second limit and JSON output
  lpforge solve problem.json --time-limit 30 -o json

  # Also write the problem as an MPS file before solving
  lpforge solve problem.json --mps problem.mps`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.MPSOutput, "mps", "", "Write the problem to this MPS file before solving")
	cmd.Flags().BoolVar(&opts.NoHistory, "no-history", false, "Do not record the run in the history database")

	return cmd
}

func runSolve(cmd *cobra.Command, opts *SolveOptions, path string) error {
	cctx := NewCommandContext(cmd)
	ctx := cmd.Context()

	prob, err := cctx.Parser().ParseFile(ctx, path)
	if err != nil {
		return err
	}

	if opts.MPSOutput != "" {
		if err := mps.WriteFile(opts.MPSOutput, problemName(path), prob); err != nil {
			return fmt.Errorf("failed to write MPS file: %w", err)
		}
		cctx.Logger.Info("wrote MPS file", "path", opts.MPSOutput)
	}

	runID := uuid.NewString()

	var store state.Store
	if !opts.NoHistory {
		var cleanup func()
		store, cleanup, err = cctx.OpenStore()
		if err != nil {
			return fmt.Errorf("failed to open run history: %w", err)
		}
		defer cleanup()

		run := &state.Run{
			ID:          runID,
			InputFile:   path,
			Status:      state.RunStatusRunning,
			Constraints: prob.NumConstraints,
			Variables:   prob.NumVariables,
			NonZeros:    prob.NonZeros,
			MIP:         prob.IsMIP(),
			StartedAt:   time.Now().UTC(),
		}
		if err := store.CreateRun(run); err != nil {
			return fmt.Errorf("failed to record run: %w", err)
		}
	}

	settings := solver.Settings{
		TimeLimit: cctx.Cfg.SolveTimeLimit(),
		Tolerance: cctx.Cfg.Tolerance,
	}
	res, err := solver.New(cctx.Logger).Solve(ctx, prob, settings)
	if err != nil {
		if store != nil {
			_ = store.CompleteRun(runID, state.RunStatusFailed, 0, 0, err.Error())
		}
		return err
	}

	if res.Optimal {
		for _, v := range solver.VerifyPrimal(prob, res.Primal, settings.Tolerance) {
			cctx.Logger.Warn("solution violates bound",
				"kind", v.Kind, "index", v.Index, "amount", v.Amount)
		}
	}

	if store != nil {
		status := state.RunStatusSuccess
		errMsg := ""
		if !res.Optimal {
			status = state.RunStatusFailed
			errMsg = fmt.Sprintf("solver status: %s", res.Status)
		}
		if err := store.CompleteRun(runID, status, res.Objective, res.Duration, errMsg); err != nil {
			cctx.Logger.Warn("failed to record run outcome", "error", err)
		}
	}

	if err := renderSolution(cmd.OutOrStdout(), cctx.Cfg.Output, prob, res, runID); err != nil {
		return err
	}

	if !res.Optimal {
		return fmt.Errorf("solve finished with status %s", res.Status)
	}
	return nil
}
