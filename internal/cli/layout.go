package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pivotgrid/pkg/document"
)

// layoutCommand creates the layout command for computing header geometry.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		family  string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "layout [request.json]",
		Short: "Compute pivot table header geometry",
		Long: `Compute pivot table header geometry.

The request describes the flattened row and column header trees:

  {
    "row_indexes": [0],
    "column_titles": ["Category", "Count"],
    "left_items": [{"value": "Gizmo", "depth": 0, "offset": 0, "span": 1}],
    "top_items": [{"value": "Count", "depth": 0, "offset": 0, "span": 1}],
    "column_count": 1,
    "value_count": 1
  }

The output holds the width of every row level and a rectangle for every
header cell. Results are cached; sizes come from the [layout] section of the
config file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], output, family, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json, - for stdout)")
	cmd.Flags().StringVar(&family, "font", "", "font family used to measure labels (overrides the request)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runLayout loads the request, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, input, output, family string, noCache bool) error {
	var req document.LayoutRequest
	if err := document.ReadFile(input, &req); err != nil {
		return fmt.Errorf("load request %s: %w", input, err)
	}
	if family != "" {
		req.FontFamily = family
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	header, cached, err := runner.LayoutWithCacheInfo(ctx, req)
	if err != nil {
		return fmt.Errorf("compute layout: %w", err)
	}
	prog.done(fmt.Sprintf("Laid out %d cells", len(header.Left)+len(header.Top)))

	outputPath := output
	if outputPath == "" && input != "-" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".layout.json"
	}

	resp := document.LayoutResponse{Header: header, Cached: cached}
	if err := document.WriteFile(outputPath, resp); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats([]string{
		fmt.Sprintf("%d row levels", len(header.Widths.Widths)),
		fmt.Sprintf("%d row cells", len(header.Left)),
		fmt.Sprintf("%d column cells", len(header.Top)),
		fmt.Sprintf("%gx%g px", header.LeftWidth, header.TopHeight),
	}, cached)
	return nil
}
