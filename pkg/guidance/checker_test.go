package guidance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckCombinedAddCommit(t *testing.T) {
	tests := []struct {
		name      string
		command   string
		wantFound bool
	}{
		{
			name:      "And separator",
			command:   "git add file.txt && git commit -m 'msg'",
			wantFound: true,
		},
		{
			name:      "Semicolon separator",
			command:   "git add file.txt ; git commit -m 'msg'",
			wantFound: true,
		},
		{
			name:      "Add all",
			command:   "git add . && git commit -m 'wip'",
			wantFound: true,
		},
		{
			name:      "Chain with status first",
			command:   "git status && git add -A && git commit -m x",
			wantFound: true,
		},
		{
			name:      "No space around operator",
			command:   "git add -A&&git commit -m x",
			wantFound: true,
		},
		{
			name:      "Spans newlines",
			command:   "git add file.txt &&\ngit commit -m 'msg'",
			wantFound: true,
		},
		{
			name:      "Shell wrapped",
			command:   `bash -c "git add . && git commit -m wip"`,
			wantFound: true,
		},
		{
			name:      "Sudo",
			command:   "sudo git add . ; sudo git commit -m wip",
			wantFound: true,
		},
		{
			name:    "Status",
			command: "git status",
		},
		{
			name:    "Commit only",
			command: "git commit -m 'x'",
		},
		{
			name:    "Add only",
			command: "git add file.txt",
		},
		{
			name:    "Commit before add",
			command: "git commit -m x && git add .",
		},
		{
			name:    "Newline without operator",
			command: "git add .\ngit commit -m x",
		},
		{
			name:    "Pipe is not a separator",
			command: "git add . | git commit -m x",
		},
		{
			name:    "Not a git command",
			command: "cd repo && git add . && git commit -m x",
		},
		{
			name:    "Mentions only",
			command: `echo "git add . && git commit"`,
		},
		{
			name:    "Empty",
			command: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			advisory, found := CheckCombinedAddCommit(tt.command)
			assert.Equal(t, tt.wantFound, found)
			if tt.wantFound {
				assert.Equal(t, CombinedAddCommitAdvisory, advisory)
			} else {
				assert.Empty(t, advisory)
			}
		})
	}
}

func TestCombinedAddCommitAdvisory_Workflow(t *testing.T) {
	steps := []string{
		"1. git status",
		"2. git diff",
		"3. git add <files>",
		"4. git diff --staged",
		"5. git commit",
	}
	for _, step := range steps {
		assert.Contains(t, CombinedAddCommitAdvisory, step)
	}
	assert.Contains(t, CombinedAddCommitAdvisory, "reviewing changes before committing")
}
