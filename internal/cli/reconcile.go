package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pivotgrid/pkg/document"
	"github.com/matzehuels/pivotgrid/pkg/pivot"
)

// reconcileCommand creates the reconcile command.
func (c *CLI) reconcileCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "reconcile [request.json]",
		Short: "Update a pivot setting for the current result columns",
		Long: `Update a pivot setting for the current result columns.

The request holds the stored setting, the current result columns, and
optionally the query's breakouts:

  {
    "setting": {"rows": [["field", 1, null]], "columns": [], "values": []},
    "columns": [{"name": "CATEGORY", "field_ref": ["field", 1, null], "source": "breakout"}],
    "query": {"breakouts": [["field", 1, null]]}
  }

Refs whose column disappeared are removed and new columns are placed in the
first partition that accepts them. Omit "columns" to apply only the
breakouts. Use "-" to read the request from standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runReconcile(cmd.Context(), args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return cmd
}

func (c *CLI) runReconcile(ctx context.Context, input, output string) error {
	var req document.ReconcileRequest
	if err := document.ReadFile(input, &req); err != nil {
		return fmt.Errorf("load request %s: %w", input, err)
	}

	runner, err := c.newRunner(ctx, true)
	if err != nil {
		return err
	}
	defer runner.Close()

	setting, err := runner.Reconcile(ctx, req)
	if err != nil {
		return fmt.Errorf("reconcile: %w", err)
	}
	if err := document.WriteFile(output, setting); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	printSuccess("Setting reconciled")
	printFile(output)
	for _, name := range pivot.Partitions {
		before, after := len(req.Setting.Get(name)), len(setting.Get(name))
		printKeyValue(string(name), partitionChange(before, after))
	}
	return nil
}

// partitionChange formats a partition size, noting the change if any.
func partitionChange(before, after int) string {
	if before == after {
		return strconv.Itoa(after)
	}
	return fmt.Sprintf("%d (was %d)", after, before)
}
