package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lpforge/lpforge/internal/mps"
	"github.com/spf13/cobra"
)

// NewExportCommand creates the export command.
func NewExportCommand() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export <file.json>",
		Short: "Export a problem to MPS format",
		Long: `Read a problem from a JSON file, validate it, and write it as a
fixed-format MPS file for use with other solvers.

Without --out, the MPS file is written next to the input with the
extension replaced. Use --out - to write to stdout.`,
		Example: `  # Export problem.json to problem.mps
  lpforge export problem.json

  # Export to a specific path
  lpforge export problem.json --out /tmp/model.mps

  # Export to stdout
  lpforge export problem.json --out -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args[0], outPath)
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "Output path for the MPS file (- for stdout)")

	return cmd
}

func runExport(cmd *cobra.Command, path, outPath string) error {
	cctx := NewCommandContext(cmd)

	prob, err := cctx.Parser().ParseFile(cmd.Context(), path)
	if err != nil {
		return err
	}

	name := problemName(path)

	if outPath == "-" {
		return mps.Write(cmd.OutOrStdout(), name, prob)
	}

	if outPath == "" {
		outPath = strings.TrimSuffix(path, filepath.Ext(path)) + ".mps"
	}
	if err := mps.WriteFile(outPath, name, prob); err != nil {
		return fmt.Errorf("failed to write MPS file: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d constraints, %d variables)\n",
		outPath, prob.NumConstraints, prob.NumVariables)
	return nil
}

// problemName derives an MPS problem name from the input file path.
func problemName(path string) string {
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if name == "" {
		return "PROBLEM"
	}
	return strings.ToUpper(name)
}
