package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/lpforge/lpforge/internal/solver"
	"github.com/lpforge/lpforge/pkg/problem"
)

// maxPrimalRows caps how many variable values the table and markdown
// renderers print. JSON output always carries the full vector.
const maxPrimalRows = 20

// problemSummary is the JSON shape of a rendered problem overview.
type problemSummary struct {
	Constraints int     `json:"constraints"`
	Variables   int     `json:"variables"`
	NonZeros    int     `json:"non_zeros"`
	Density     float64 `json:"density"`
	Integers    int     `json:"integers"`
	MIP         bool    `json:"mip"`
	Sense       string  `json:"sense"`
	Offset      float64 `json:"objective_offset,omitempty"`
}

func summarize(p *problem.Problem) problemSummary {
	return problemSummary{
		Constraints: p.NumConstraints,
		Variables:   p.NumVariables,
		NonZeros:    p.NonZeros,
		Density:     p.Density(),
		Integers:    p.NumIntegers(),
		MIP:         p.IsMIP(),
		Sense:       p.Sense.String(),
		Offset:      p.ObjOffset,
	}
}

// renderProblem writes a problem overview in the requested format.
func renderProblem(w io.Writer, format string, p *problem.Problem) error {
	s := summarize(p)

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	case "md", "markdown":
		_, _ = fmt.Fprintln(w, "| Property | Value |")
		_, _ = fmt.Fprintln(w, "| --- | --- |")
		for _, row := range summaryRows(s) {
			_, _ = fmt.Fprintf(w, "| %s | %v |\n", row[0], row[1])
		}
		return nil
	default:
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Property", "Value"})
		for _, row := range summaryRows(s) {
			t.AppendRow(table.Row{row[0], row[1]})
		}
		t.Render()
		return nil
	}
}

func summaryRows(s problemSummary) [][2]any {
	kind := "LP"
	if s.MIP {
		kind = fmt.Sprintf("MIP (%d integer)", s.Integers)
	}
	rows := [][2]any{
		{"Kind", kind},
		{"Sense", s.Sense},
		{"Constraints", s.Constraints},
		{"Variables", s.Variables},
		{"Non-zeros", s.NonZeros},
		{"Density", fmt.Sprintf("%.4f", s.Density)},
	}
	if s.Offset != 0 {
		rows = append(rows, [2]any{"Objective offset", formatNumber(s.Offset)})
	}
	return rows
}

// solutionOutput is the JSON shape of a rendered solve result.
type solutionOutput struct {
	RunID     string    `json:"run_id"`
	Status    string    `json:"status"`
	Optimal   bool      `json:"optimal"`
	Objective float64   `json:"objective"`
	SolveTime string    `json:"solve_time"`
	Primal    []float64 `json:"primal,omitempty"`
}

// renderSolution writes a solve result in the requested format.
func renderSolution(w io.Writer, format string, p *problem.Problem, res *solver.Result, runID string) error {
	switch format {
	case "json":
		out := solutionOutput{
			RunID:     runID,
			Status:    res.Status,
			Optimal:   res.Optimal,
			Objective: res.Objective,
			SolveTime: res.Duration.Round(time.Microsecond).String(),
			Primal:    res.Primal,
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "md", "markdown":
		_, _ = fmt.Fprintf(w, "**Status:** %s\n\n", res.Status)
		_, _ = fmt.Fprintf(w, "**Objective:** %s\n\n", formatNumber(res.Objective))
		_, _ = fmt.Fprintf(w, "**Solve time:** %s\n\n", res.Duration.Round(time.Microsecond))
		if len(res.Primal) > 0 {
			_, _ = fmt.Fprintln(w, "| Variable | Value |")
			_, _ = fmt.Fprintln(w, "| --- | --- |")
			for i, v := range res.Primal {
				if i == maxPrimalRows {
					_, _ = fmt.Fprintf(w, "| ... | (%d more) |\n", len(res.Primal)-maxPrimalRows)
					break
				}
				_, _ = fmt.Fprintf(w, "| %s | %s |\n", p.VarName(i), formatNumber(v))
			}
		}
		return nil
	default:
		_, _ = fmt.Fprintf(w, "Status:     %s\n", res.Status)
		_, _ = fmt.Fprintf(w, "Objective:  %s\n", formatNumber(res.Objective))
		_, _ = fmt.Fprintf(w, "Solve time: %s\n", res.Duration.Round(time.Microsecond))
		if len(res.Primal) == 0 {
			return nil
		}
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Variable", "Value"})
		for i, v := range res.Primal {
			if i == maxPrimalRows {
				t.AppendFooter(table.Row{"", fmt.Sprintf("(%d more)", len(res.Primal)-maxPrimalRows)})
				break
			}
			t.AppendRow(table.Row{p.VarName(i), formatNumber(v)})
		}
		t.Render()
		return nil
	}
}

// formatNumber renders a float compactly, with infinities spelled out.
func formatNumber(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "+inf"
	case math.IsInf(v, -1):
		return "-inf"
	default:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
}
