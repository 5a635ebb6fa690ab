package tools

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"
	"github.com/tkuutti/screenshot-mcp/pkg/schema"
)

var logger = xlog.NewPackageLogger("github.com/tkuutti/screenshot-mcp", "tools")

// ErrInvalidInput is returned when the call arguments do not match the tool schema
var ErrInvalidInput = errors.New("invalid arguments")

// ITool is a tool that can be listed and called by MCP clients.
type ITool interface {
	// Name returns the name of the Tool.
	Name() string
	// Description returns the description of the tool, advertised to clients.
	Description() string
	// Parameters returns the schema of the tool input.
	Parameters() *schema.Schema

	// Call executes the tool with the JSON encoded arguments.
	// Faults are reported in the returned Result, including malformed input.
	Call(context.Context, []byte) Result
}

// Callback receives tool lifecycle events.
type Callback interface {
	OnToolStart(context.Context, ITool, string)
	OnToolEnd(context.Context, ITool, string, Result)
	OnToolError(context.Context, ITool, string, error)
}

// Tool is an ITool with a typed request.
type Tool[I any] interface {
	ITool
	Run(context.Context, *I) Result
}

// Result is the outcome of a tool call: a single text message,
// and the fault behind it when the call failed.
type Result struct {
	// Text is returned to the client
	Text string
	// Err is nil on success
	Err error
}

// Success returns a successful Result
func Success(format string, args ...any) Result {
	return Result{Text: fmt.Sprintf(format, args...)}
}

// Failure returns a failed Result with text "<prefix>: <err>"
func Failure(prefix string, err error) Result {
	return Result{
		Text: prefix + ": " + err.Error(),
		Err:  err,
	}
}

// Failed returns true if the call failed
func (r Result) Failed() bool {
	return r.Err != nil
}

func (r Result) String() string {
	return r.Text
}
