// Package hook provides types and functions for Claude Code hooks.
package hook

import (
	"encoding/json"
	"fmt"
	"io"
)

// BashTool is the tool name Claude Code uses for shell command execution.
const BashTool = "Bash"

// Request represents the JSON input from Claude Code PreToolUse hooks.
//
// Only tool_name and tool_input are read. Fields with an unexpected JSON type
// decode as empty values so that any well-formed document yields a Request.
type Request struct {
	ToolName  string
	ToolInput map[string]any
}

// Command returns the tool_input.command string, or "" when absent.
func (r *Request) Command() string {
	if r == nil {
		return ""
	}
	cmd, _ := r.ToolInput["command"].(string)
	return cmd
}

// UnmarshalJSON decodes a request leniently. Only invalid JSON is an error.
func (r *Request) UnmarshalJSON(data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	*r = Request{}
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil
	}
	r.ToolName, _ = obj["tool_name"].(string)
	r.ToolInput, _ = obj["tool_input"].(map[string]any)
	return nil
}

// Response is the decision returned to Claude Code on stdout.
type Response struct {
	Proceed bool   `json:"proceed"`
	Reason  string `json:"reason,omitempty"` // Advisory text when Proceed is false
}

// Allow returns a response that lets the command run.
func Allow() Response {
	return Response{Proceed: true}
}

// Advise returns a response that stops the command with guidance.
func Advise(reason string) Response {
	return Response{Proceed: false, Reason: reason}
}

// ReadRequest reads the whole stream and parses it as a single JSON document.
// Trailing data after the document is treated as malformed input.
func ReadRequest(r io.Reader) (*Request, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read hook input: %w", err)
	}

	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to decode hook input: %w", err)
	}
	return &req, nil
}

// WriteResponse writes resp as one newline-terminated JSON document.
func WriteResponse(w io.Writer, resp Response) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(resp); err != nil {
		return fmt.Errorf("failed to encode hook response: %w", err)
	}
	return nil
}
