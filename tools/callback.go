package tools

import (
	"context"

	"github.com/effective-security/xlog"
)

// PackageLoggerCallback is a callback handler that prints to the logger.
type PackageLoggerCallback struct {
	logger *xlog.PackageLogger
}

// NewPackageLoggerCallback returns a callback logging to the given logger,
// or to the tools package logger if it is nil.
func NewPackageLoggerCallback(l *xlog.PackageLogger) *PackageLoggerCallback {
	if l == nil {
		l = logger
	}
	return &PackageLoggerCallback{logger: l}
}

var _ Callback = (*PackageLoggerCallback)(nil)

func (l *PackageLoggerCallback) OnToolStart(ctx context.Context, tool ITool, input string) {
	l.logger.ContextKV(ctx, xlog.DEBUG,
		"event", "tool_start",
		"call_id", CallID(ctx),
		"tool", tool.Name(),
		"input", input,
	)
}

func (l *PackageLoggerCallback) OnToolEnd(ctx context.Context, tool ITool, input string, res Result) {
	l.logger.ContextKV(ctx, xlog.INFO,
		"event", "tool_end",
		"call_id", CallID(ctx),
		"tool", tool.Name(),
		"output", res.Text,
	)
}

func (l *PackageLoggerCallback) OnToolError(ctx context.Context, tool ITool, input string, err error) {
	l.logger.ContextKV(ctx, xlog.ERROR,
		"event", "tool_error",
		"call_id", CallID(ctx),
		"tool", tool.Name(),
		"err", err.Error(),
	)
}
