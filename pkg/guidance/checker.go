package guidance

import "regexp"

// combinedAddCommitPattern spans newlines so multi-line commands are covered.
var combinedAddCommitPattern = regexp.MustCompile(`(?s)git\s+add\s+.*(?:&&|;).*git\s+commit`)

// CombinedAddCommitAdvisory is returned when git add and git commit are chained.
const CombinedAddCommitAdvisory = "⚠️  Workflow guidance: Separate git add from git commit\n\n" +
	"Recommended workflow:\n" +
	"1. git status          # See what changed\n" +
	"2. git diff            # Review changes\n" +
	"3. git add <files>     # Stage specific files\n" +
	"4. git diff --staged   # Verify staged changes\n" +
	"5. git commit -S -s -m \"message\"  # Commit\n\n" +
	"This allows reviewing changes before committing.\n" +
	"Run git add first, then git commit separately."

// CheckCombinedAddCommit returns the advisory and true when a git command
// stages and commits in one compound statement joined by && or ;.
func CheckCombinedAddCommit(command string) (string, bool) {
	if !IsGitCommand(command) {
		return "", false
	}
	if !combinedAddCommitPattern.MatchString(command) {
		return "", false
	}
	return CombinedAddCommitAdvisory, true
}
