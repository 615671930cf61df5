package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/krmcbride/git-workflow-guidance/pkg/guidance"
	"github.com/krmcbride/git-workflow-guidance/pkg/shellparse"
)

var errNoCommand = errors.New("no command given: pass it as arguments or pipe it on stdin")

// reportStyles are bound to the output writer so color is only emitted to terminals.
type reportStyles struct {
	label    lipgloss.Style
	ok       lipgloss.Style
	advise   lipgloss.Style
	muted    lipgloss.Style
	advisory lipgloss.Style
}

func newReportStyles(w io.Writer) reportStyles {
	r := lipgloss.NewRenderer(w)
	return reportStyles{
		label:    r.NewStyle().Bold(true),
		ok:       r.NewStyle().Foreground(lipgloss.Color("2")),
		advise:   r.NewStyle().Foreground(lipgloss.Color("3")),
		muted:    r.NewStyle().Foreground(lipgloss.Color("8")),
		advisory: r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("3")).Padding(0, 1),
	}
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [command...]",
		Short: "Show how the hook sees a shell command",
		Long: `Classify a shell command, run the add/commit check and list the simple
commands a shell would run. Arguments are joined with spaces; with no
arguments the command is read from stdin.`,
		Example: `  git-workflow-guidance check 'git add . && git commit -m wip'
  echo 'cd repo && git add .' | git-workflow-guidance check --json`,
		RunE: runCheck,
	}
	cmd.Flags().Bool("json", false, "Output the report as JSON")
	// Flags after the first argument belong to the checked command
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	command, err := checkInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	report := guidance.Explain(command)

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetEscapeHTML(false)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(report); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		return nil
	}

	out := cmd.OutOrStdout()
	_, err = io.WriteString(out, renderReport(newReportStyles(out), report))
	return err
}

// checkInput returns the command from args, or from stdin when it is piped.
func checkInput(stdin io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if isTerminal(stdin) {
		return "", errNoCommand
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read command: %w", err)
	}
	command := strings.TrimRight(string(data), "\r\n")
	if strings.TrimSpace(command) == "" {
		return "", errNoCommand
	}
	return command, nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func renderReport(styles reportStyles, report guidance.Report) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s %s\n", styles.label.Render("Command:"), report.Command)

	if report.GitCommand {
		fmt.Fprintf(&sb, "%s %s\n", styles.label.Render("Git command:"), "yes")
	} else {
		fmt.Fprintf(&sb, "%s %s\n", styles.label.Render("Git command:"), styles.muted.Render("no"))
	}

	if report.Advisory != "" {
		fmt.Fprintf(&sb, "%s %s\n", styles.label.Render("Decision:"), styles.advise.Render("advise"))
	} else {
		fmt.Fprintf(&sb, "%s %s\n", styles.label.Render("Decision:"), styles.ok.Render("proceed"))
	}

	if report.ParseError != "" {
		fmt.Fprintf(&sb, "%s %s\n", styles.label.Render("Parse error:"), report.ParseError)
	}

	if len(report.Commands) > 0 {
		fmt.Fprintf(&sb, "%s\n", styles.label.Render("Commands:"))
		for _, c := range report.Commands {
			line := strings.Repeat("  ", c.Depth+1) + c.String()
			if shellparse.IsGitExecutable(c.Name) {
				line += " " + styles.muted.Render("(git)")
			}
			sb.WriteString(line + "\n")
		}
	}

	for _, note := range report.Notes {
		fmt.Fprintf(&sb, "%s %s\n", styles.label.Render("Note:"), note)
	}

	if report.Advisory != "" {
		sb.WriteString(styles.advisory.Render(report.Advisory) + "\n")
	}

	return sb.String()
}
