package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"

	"github.com/fivemoreminix/ameliaview/syntax"
)

// ErrCheckFailed is returned by the check command when any check fails.
var ErrCheckFailed = errors.New("check failed")

// Check verifies the pattern table and prints a report.
type Check struct {
	Verbose bool `help:"List passing checks too." short:"v"`
}

// Run executes the check command.
func (c *Check) Run(cli *CLI, out io.Writer) error {
	g, err := cli.grammar()
	if err != nil {
		return err
	}
	report := syntax.Check(g.Table, g.Library())

	// Styles follow the capabilities of out, not of the process's stdout.
	r := lipgloss.NewRenderer(out)
	var (
		titleStyle = r.NewStyle().Bold(true)
		passStyle  = r.NewStyle().Foreground(lipgloss.Color("2"))
		failStyle  = r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
		hintStyle  = r.NewStyle().Foreground(lipgloss.Color("8"))
	)

	fmt.Fprintln(out, titleStyle.Render(report.Table))
	for _, res := range report.Results {
		subject := fmt.Sprintf("%s %s", res.Kind, res.Subject)
		if res.Passed() {
			if c.Verbose {
				fmt.Fprintf(out, "  %s %s\n", passStyle.Render("ok  "), subject)
			}
			continue
		}
		fmt.Fprintf(out, "  %s %s %s\n", failStyle.Render("FAIL"), subject,
			hintStyle.Render(fmt.Sprintf("(pattern %d: %v)", res.Index, res.Err)))
	}

	failed := len(report.Failed())
	summary := fmt.Sprintf("%d checks, %d failed", len(report.Results), failed)
	if failed > 0 {
		fmt.Fprintln(out, failStyle.Render(summary))
		return errors.Wrapf(ErrCheckFailed, "%s: %d of %d", report.Table, failed, len(report.Results))
	}
	fmt.Fprintln(out, passStyle.Render(summary))
	return nil
}
