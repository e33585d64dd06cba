package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/lpforge/lpforge/internal/state"
	"github.com/spf13/cobra"
)

// NewRunsCommand creates the runs command.
func NewRunsCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded solve runs",
		Long: `List past solve runs from the history database, newest first.

Each row shows the problem dimensions captured at ingestion time and
the solve outcome.`,
		Example: `  # Show the 20 most recent runs
  lpforge runs

  # Show the last 5 runs as JSON
  lpforge runs --limit 5 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRuns(cmd, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to show")

	return cmd
}

func runRuns(cmd *cobra.Command, limit int) error {
	cctx := NewCommandContext(cmd)

	store, cleanup, err := cctx.OpenStore()
	if err != nil {
		return fmt.Errorf("failed to open run history: %w", err)
	}
	defer cleanup()

	runs, err := store.ListRuns(limit)
	if err != nil {
		return err
	}

	return renderRuns(cmd.OutOrStdout(), cctx.Cfg.Output, runs)
}

// runRow is the JSON shape of one listed run.
type runRow struct {
	ID          string  `json:"id"`
	InputFile   string  `json:"input_file"`
	Status      string  `json:"status"`
	Constraints int     `json:"constraints"`
	Variables   int     `json:"variables"`
	MIP         bool    `json:"mip"`
	Objective   float64 `json:"objective"`
	SolveTime   string  `json:"solve_time"`
	StartedAt   string  `json:"started_at"`
	Error       string  `json:"error,omitempty"`
}

func renderRuns(w io.Writer, format string, runs []*state.Run) error {
	rows := make([]runRow, len(runs))
	for i, r := range runs {
		rows[i] = runRow{
			ID:          r.ID,
			InputFile:   r.InputFile,
			Status:      string(r.Status),
			Constraints: r.Constraints,
			Variables:   r.Variables,
			MIP:         r.MIP,
			Objective:   r.Objective,
			SolveTime:   r.SolveTime.Round(time.Microsecond).String(),
			StartedAt:   r.StartedAt.Format(time.RFC3339),
			Error:       r.Error,
		}
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "md", "markdown":
		_, _ = fmt.Fprintln(w, "| ID | File | Status | Size | Objective | Time | Started |")
		_, _ = fmt.Fprintln(w, "| --- | --- | --- | --- | --- | --- | --- |")
		for _, r := range rows {
			_, _ = fmt.Fprintf(w, "| %s | %s | %s | %s | %s | %s | %s |\n",
				shortID(r.ID), r.InputFile, r.Status, sizeCell(r), formatNumber(r.Objective), r.SolveTime, r.StartedAt)
		}
		return nil
	default:
		if len(rows) == 0 {
			_, _ = fmt.Fprintln(w, "No runs recorded.")
			return nil
		}
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"ID", "File", "Status", "Size", "Objective", "Time", "Started"})
		for _, r := range rows {
			t.AppendRow(table.Row{
				shortID(r.ID), r.InputFile, r.Status, sizeCell(r),
				formatNumber(r.Objective), r.SolveTime, r.StartedAt,
			})
		}
		t.Render()
		_, _ = fmt.Fprintf(w, "(%d runs)\n", len(rows))
		return nil
	}
}

// shortID truncates a UUID to its first group for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// sizeCell formats problem dimensions as "rows x cols", tagged for MIPs.
func sizeCell(r runRow) string {
	s := fmt.Sprintf("%dx%d", r.Constraints, r.Variables)
	if r.MIP {
		s += " (MIP)"
	}
	return s
}
