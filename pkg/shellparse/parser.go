// Package shellparse provides shell command parsing utilities.
package shellparse

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// maxUnwrapDepth limits how many nested sh -c scripts Commands will unwrap.
const maxUnwrapDepth = 5

// SimpleCommand is a single command invocation found in a shell expression.
type SimpleCommand struct {
	Name  string   `json:"name"`
	Args  []string `json:"args,omitempty"`
	Depth int      `json:"depth"` // 0 at top level, +1 per unwrapped sh -c script
}

// String renders the command the way a user would type it.
func (c SimpleCommand) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// ParseCommand parses a shell command and extracts command calls
func ParseCommand(command string) ([]*syntax.CallExpr, error) {
	parser := syntax.NewParser()
	node, err := parser.Parse(strings.NewReader(command), "")
	if err != nil {
		return nil, fmt.Errorf("failed to parse command: %w", err)
	}

	var calls []*syntax.CallExpr
	syntax.Walk(node, func(node syntax.Node) bool {
		if call, ok := node.(*syntax.CallExpr); ok {
			calls = append(calls, call)
		}
		return true
	})

	return calls, nil
}

// Commands lists every simple command in a shell expression in source order.
// Scripts passed to shell interpreters with -c are parsed and their commands
// follow the interpreter call with a greater Depth. Wrapped scripts that fail
// to parse are skipped; only a parse failure of command itself is an error.
func Commands(command string) ([]SimpleCommand, error) {
	return collectCommands(command, 0)
}

func collectCommands(command string, depth int) ([]SimpleCommand, error) {
	calls, err := ParseCommand(command)
	if err != nil {
		return nil, err
	}

	var commands []SimpleCommand
	for _, call := range calls {
		// Bare assignments like FOO=1 have no words
		if len(call.Args) == 0 {
			continue
		}
		commands = append(commands, SimpleCommand{
			Name:  GetCommandName(call),
			Args:  GetCommandArgs(call),
			Depth: depth,
		})

		if depth >= maxUnwrapDepth {
			continue
		}
		scripts, _ := ExtractShellCommands(call)
		for _, script := range scripts {
			nested, err := collectCommands(script, depth+1)
			if err != nil {
				continue
			}
			commands = append(commands, nested...)
		}
	}

	return commands, nil
}

// GetCommandName extracts the command name from a CallExpr
func GetCommandName(call *syntax.CallExpr) string {
	if len(call.Args) == 0 {
		return ""
	}
	return wordText(call.Args[0])
}

// GetCommandArgs extracts command arguments from a CallExpr
func GetCommandArgs(call *syntax.CallExpr) []string {
	if len(call.Args) <= 1 {
		return nil
	}

	args := make([]string, 0, len(call.Args)-1)
	for _, arg := range call.Args[1:] {
		args = append(args, wordText(arg))
	}
	return args
}

// wordText returns the unquoted value of a static word, or its source text
// when it contains expansions.
func wordText(word *syntax.Word) string {
	if val, isStatic := ResolveStaticWord(word); isStatic {
		return val
	}

	var sb strings.Builder
	if err := syntax.NewPrinter().Print(&sb, word); err != nil {
		return ""
	}
	return sb.String()
}

// ResolveStaticWord attempts to resolve a word into a static string.
// It returns the resolved string and a boolean indicating if the resolution is complete
// (i.e., the word contained no dynamic parts like variables or command substitutions).
func ResolveStaticWord(word *syntax.Word) (val string, isStatic bool) {
	if word == nil {
		return "", true
	}

	var sb strings.Builder
	isStatic = true

	for _, part := range word.Parts {
		switch p := part.(type) {
		case *syntax.Lit:
			sb.WriteString(p.Value)
		case *syntax.SglQuoted:
			sb.WriteString(p.Value)
		case *syntax.DblQuoted:
			for _, subPart := range p.Parts {
				if lit, ok := subPart.(*syntax.Lit); ok {
					sb.WriteString(lit.Value)
				} else {
					isStatic = false
				}
			}
		default:
			// Parameter, arithmetic, command and process substitution
			isStatic = false
		}
	}

	return sb.String(), isStatic
}

// IsGitExecutable checks if a command name refers to git, handling various forms
func IsGitExecutable(cmd string) bool {
	return NormalizeCommandPath(cmd) == "git"
}

// NormalizeCommandPath normalizes a command path for comparison
func NormalizeCommandPath(cmd string) string {
	if cmd == "" {
		return ""
	}
	base := filepath.Base(filepath.Clean(cmd))
	return strings.TrimSuffix(base, ".exe")
}

// ExtractShellCommands extracts shell commands from common shell interpreter patterns
// Returns commands found and a boolean indicating if dynamic content was detected
func ExtractShellCommands(call *syntax.CallExpr) ([]string, bool) {
	if len(call.Args) < 2 {
		return nil, false
	}

	cmd, cmdIsStatic := ResolveStaticWord(call.Args[0])
	if !cmdIsStatic {
		return nil, true
	}
	if !isShellInterpreter(NormalizeCommandPath(cmd)) {
		return nil, false
	}

	var commands []string
	hasDynamicContent := false

	for i := 1; i < len(call.Args); i++ {
		arg, argIsStatic := ResolveStaticWord(call.Args[i])
		if !argIsStatic {
			hasDynamicContent = true
			continue
		}

		// If we find -c, the next argument should be the command
		if arg == "-c" && i+1 < len(call.Args) {
			script, scriptIsStatic := ResolveStaticWord(call.Args[i+1])
			if !scriptIsStatic {
				hasDynamicContent = true
			} else if script != "" {
				commands = append(commands, script)
			}
			break
		}
	}

	return commands, hasDynamicContent
}

// isShellInterpreter checks if a command is a shell interpreter
func isShellInterpreter(cmd string) bool {
	shellCommands := []string{
		"sh", "bash", "zsh", "dash", "ksh", "csh", "tcsh", "fish",
	}

	return slices.Contains(shellCommands, cmd)
}
