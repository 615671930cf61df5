package guidance

import (
	"slices"

	"github.com/krmcbride/git-workflow-guidance/pkg/shellparse"
)

// Notes attached to a Report when the heuristics cannot see a git command the
// shell would still run.
const (
	NoteGitAfterOtherCommand = "git runs after a non-git command; only commands that start with git are inspected"
	NoteAddCommitNoOperator  = "git add and git commit run in one command without && or ; between them"
)

// Report describes how the guard sees a single command.
type Report struct {
	Command    string                     `json:"command"`
	GitCommand bool                       `json:"git_command"`
	Advisory   string                     `json:"advisory,omitempty"`
	Commands   []shellparse.SimpleCommand `json:"commands,omitempty"`
	ParseError string                     `json:"parse_error,omitempty"`
	Notes      []string                   `json:"notes,omitempty"`
}

// Explain classifies and checks command exactly as the guard does, and adds
// the simple commands a shell would run for context. The shell parse never
// changes the decision.
func Explain(command string) Report {
	report := Report{
		Command:    command,
		GitCommand: IsGitCommand(command),
	}
	report.Advisory, _ = CheckCombinedAddCommit(command)

	commands, err := shellparse.Commands(command)
	if err != nil {
		report.ParseError = err.Error()
		return report
	}
	report.Commands = commands

	hasGit := slices.ContainsFunc(commands, func(c shellparse.SimpleCommand) bool {
		return shellparse.IsGitExecutable(c.Name)
	})
	if !report.GitCommand && hasGit {
		report.Notes = append(report.Notes, NoteGitAfterOtherCommand)
	}
	if report.GitCommand && report.Advisory == "" &&
		hasGitSubcommand(commands, "add") && hasGitSubcommand(commands, "commit") {
		report.Notes = append(report.Notes, NoteAddCommitNoOperator)
	}

	return report
}

func hasGitSubcommand(commands []shellparse.SimpleCommand, sub string) bool {
	for _, c := range commands {
		if shellparse.IsGitExecutable(c.Name) && len(c.Args) > 0 && c.Args[0] == sub {
			return true
		}
	}
	return false
}
