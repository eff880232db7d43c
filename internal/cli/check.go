package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/matzehuels/pivotgrid/pkg/document"
	"github.com/matzehuels/pivotgrid/pkg/errors"
)

// checkCommand creates the check command.
func (c *CLI) checkCommand() *cobra.Command {
	var (
		output string
		lang   string
	)

	cmd := &cobra.Command{
		Use:   "check [request.json]",
		Short: "Check whether a result can be shown as a pivot table",
		Long: `Check whether a result can be shown as a pivot table.

The result must consist of breakouts and aggregations only, and its database
must support pivot queries. The outcome is written as JSON; the command exits
non-zero when the result cannot be rendered. The message is localized using
--lang, or $LANG when the flag is not set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(cmd.Context(), args[0], output, resolveLang(lang))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&lang, "lang", "", "message language, e.g. de or fr-CA")
	return cmd
}

func (c *CLI) runCheck(ctx context.Context, input, output string, lang language.Tag) error {
	var req document.CheckRequest
	if err := document.ReadFile(input, &req); err != nil {
		return fmt.Errorf("load request %s: %w", input, err)
	}

	runner, err := c.newRunner(ctx, true)
	if err != nil {
		return err
	}
	defer runner.Close()

	checkErr := runner.Check(ctx, req)
	if checkErr != nil && !errors.IsRenderCheck(checkErr) {
		return fmt.Errorf("check: %w", checkErr)
	}

	resp := document.CheckResponse{Renderable: checkErr == nil}
	if checkErr != nil {
		resp.Code = errors.GetCode(checkErr)
		resp.Message = errors.Localize(checkErr, lang)
	}
	if err := document.WriteFile(output, resp); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if checkErr != nil {
		printError("%s", resp.Message)
		printDetail("%s", resp.Code)
		return errNotRenderable
	}
	printSuccess("Result can be shown as a pivot table")
	printFile(output)
	return nil
}

// errNotRenderable is returned by check after the failure was reported.
var errNotRenderable = errors.New(errors.ErrCodeInvalidInput, "result cannot be shown as a pivot table")

// resolveLang picks the message language from flag, falling back to $LANG
// (e.g. "de_DE.UTF-8") and then English.
func resolveLang(flag string) language.Tag {
	value := flag
	if value == "" {
		value = os.Getenv("LANG")
		if i := strings.IndexAny(value, ".@"); i >= 0 {
			value = value[:i]
		}
		value = strings.ReplaceAll(value, "_", "-")
	}
	if value == "" || value == "C" || value == "POSIX" {
		return language.English
	}
	return errors.ParseAcceptLanguage(value)
}
