package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"
	"github.com/google/uuid"
	"github.com/invopop/jsonschema"
	"github.com/tkuutti/screenshot-mcp/pkg/metricskey"
)

// Descriptor describes a tool advertised to clients
type Descriptor struct {
	Name        string             `json:"name" yaml:"name"`
	Description string             `json:"description" yaml:"description"`
	InputSchema *jsonschema.Schema `json:"inputSchema" yaml:"inputSchema"`
}

// Dispatcher routes calls to tools by name.
// It holds no mutable state after construction and is safe to share.
type Dispatcher struct {
	list     []ITool
	byName   map[string]ITool
	callback Callback
}

// NewDispatcher returns a Dispatcher for the tools, in catalog order.
// A tool with a duplicate name is an error.
func NewDispatcher(list ...ITool) (*Dispatcher, error) {
	d := &Dispatcher{
		list:   list,
		byName: make(map[string]ITool, len(list)),
	}
	for _, t := range list {
		if _, ok := d.byName[t.Name()]; ok {
			return nil, errors.Newf("duplicate tool: %s", t.Name())
		}
		d.byName[t.Name()] = t
	}
	return d, nil
}

// WithCallback sets the callback.
func (d *Dispatcher) WithCallback(cb Callback) *Dispatcher {
	d.callback = cb
	return d
}

// Tools returns the tools in catalog order
func (d *Dispatcher) Tools() []ITool {
	return d.list
}

// Catalog returns the tool descriptors in catalog order
func (d *Dispatcher) Catalog() []Descriptor {
	list := make([]Descriptor, 0, len(d.list))
	for _, t := range d.list {
		list = append(list, Descriptor{
			Name:        t.Name(),
			Description: t.Description(),
			InputSchema: t.Parameters().Parameters,
		})
	}
	return list
}

// Dispatch calls the named tool with the arguments and returns its Result.
// It never panics: unknown tools and recovered panics are reported as text.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, args map[string]any) (res Result) {
	ctx = WithCallID(ctx, uuid.NewString())

	tool, ok := d.byName[name]
	if !ok {
		metricskey.StatsToolCallsNotFound.IncrCounter(1, name)
		logger.ContextKV(ctx, xlog.WARNING,
			"call_id", CallID(ctx),
			"status", "unknown_tool",
			"tool", name,
		)
		return Success("Unknown tool: %s", name)
	}

	started := time.Now()
	defer metricskey.PerfToolCall.MeasureSince(started, name)

	input, err := json.Marshal(args)
	if err != nil {
		return d.failed(ctx, tool, "", Failure("Error executing "+name, errors.Wrap(err, "invalid arguments")))
	}

	defer func() {
		if r := recover(); r != nil {
			metricskey.StatsToolCallsPanicked.IncrCounter(1, name)
			logger.ContextKV(ctx, xlog.ERROR,
				"call_id", CallID(ctx),
				"status", "panic",
				"tool", name,
				"err", fmt.Sprint(r),
				"stack", string(debug.Stack()),
			)
			res = d.failed(ctx, tool, string(input), Failure("Error executing "+name, errors.Newf("panic: %v", r)))
		}
	}()

	if d.callback != nil {
		d.callback.OnToolStart(ctx, tool, string(input))
	}

	res = tool.Call(ctx, input)
	if res.Failed() {
		return d.failed(ctx, tool, string(input), res)
	}

	metricskey.StatsToolCallsSucceeded.IncrCounter(1, name)
	if d.callback != nil {
		d.callback.OnToolEnd(ctx, tool, string(input), res)
	}
	return res
}

func (d *Dispatcher) failed(ctx context.Context, tool ITool, input string, res Result) Result {
	metricskey.StatsToolCallsFailed.IncrCounter(1, tool.Name())
	if d.callback != nil {
		d.callback.OnToolError(ctx, tool, input, res.Err)
	}
	return res
}

type contextKey struct{}

// WithCallID returns a context carrying the call id used in logs
func WithCallID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// CallID returns the call id from the context, if any
func CallID(ctx context.Context) string {
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}
