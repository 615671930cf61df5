// Package guidance detects git workflow anti-patterns in proposed shell
// commands and turns them into advisory hook decisions.
package guidance

import "regexp"

var (
	// git status, sudo git push
	directGitPattern = regexp.MustCompile(`^\s*(?:sudo\s+)?git\s+`)

	// bash -c "git ...", /bin/zsh -c 'sudo git ...'
	shellWrappedGitPattern = regexp.MustCompile(`^\s*(?:sudo\s+)?(?:/[\w/]*)?(?:ba|z)?sh\s+-c\s+["'](?:sudo\s+)?git\s+`)
)

// IsGitCommand reports whether command is a git invocation we should inspect.
//
// Only the start of the string is examined. Commands that mention git later,
// such as gh issue create --body "git workflow" or cd repo && git add ., are
// not git commands here.
func IsGitCommand(command string) bool {
	return directGitPattern.MatchString(command) || shellWrappedGitPattern.MatchString(command)
}
