package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
)

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	var dense bool

	cmd := &cobra.Command{
		Use:   "check <file.json>",
		Short: "Validate a problem file without solving it",
		Long: `Read a problem from a JSON file and run full validation: CSR shape,
index ranges, bound ordering, and array length consistency.

On success, a summary of the problem dimensions is printed. A non-zero
exit status means the file was rejected.`,
		Example: `  # Validate a problem file
  lpforge check problem.json

  # Validate and print the dense constraint matrix
  lpforge check problem.json --dense`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args[0], dense)
		},
	}

	cmd.Flags().BoolVar(&dense, "dense", false, "Print the constraint matrix in dense form")

	return cmd
}

func runCheck(cmd *cobra.Command, path string, dense bool) error {
	cctx := NewCommandContext(cmd)

	prob, err := cctx.Parser().ParseFile(cmd.Context(), path)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if err := renderProblem(w, cctx.Cfg.Output, prob); err != nil {
		return err
	}

	if dense {
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintf(w, "%v\n", mat.Formatted(prob.Dense(), mat.Prefix(""), mat.Squeeze()))
	}

	return nil
}
