package guidance

import (
	"io"
	"log/slog"
	"slices"

	"github.com/krmcbride/git-workflow-guidance/pkg/hook"
)

// Guard decides PreToolUse requests for shell commands. It fails open: any
// request it cannot read or does not recognize is allowed.
type Guard struct {
	tools  []string
	logger *slog.Logger
}

// NewGuard creates a Guard that inspects the given tool names. With no tools
// it inspects only the Bash tool. A nil logger discards output.
func NewGuard(tools []string, logger *slog.Logger) *Guard {
	if len(tools) == 0 {
		tools = []string{hook.BashTool}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Guard{
		tools:  tools,
		logger: logger,
	}
}

// Decide returns the response for a single request.
func (g *Guard) Decide(req *hook.Request) hook.Response {
	if req == nil || !slices.Contains(g.tools, req.ToolName) {
		return hook.Allow()
	}

	command := req.Command()
	if !IsGitCommand(command) {
		return hook.Allow()
	}

	advisory, found := CheckCombinedAddCommit(command)
	if !found {
		g.logger.Debug("git command follows workflow", "command", command)
		return hook.Allow()
	}

	g.logger.Info("advising against combined git add and commit", "tool", req.ToolName, "command", command)
	return hook.Advise(advisory)
}

// Run reads one request from r and writes exactly one response to w. The
// only error it returns is a failure to write the response.
func (g *Guard) Run(r io.Reader, w io.Writer) error {
	resp := hook.Allow()

	req, err := hook.ReadRequest(r)
	if err != nil {
		// If we can't parse input, allow the command
		g.logger.Warn("allowing command with unreadable hook input", "error", err)
	} else {
		g.logger.Debug("hook request", "tool", req.ToolName, "command", req.Command())
		resp = g.Decide(req)
	}

	return hook.WriteResponse(w, resp)
}
