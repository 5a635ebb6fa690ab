// Package mcp serves the tool catalog over the Model Context Protocol.
//
// JSON-RPC handling and the initialize handshake are provided by
// github.com/mark3labs/mcp-go. This package binds the tools.Dispatcher to it,
// keeps the catalog order in tools/list, answers calls to unknown tools
// with a text result, and frames messages over stdio one at a time.
package mcp

import (
	"context"
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/tkuutti/screenshot-mcp/pkg/imaging"
	"github.com/tkuutti/screenshot-mcp/tools"
	"github.com/tkuutti/screenshot-mcp/tools/clipboard"
	"github.com/tkuutti/screenshot-mcp/tools/screenshot"
)

var logger = xlog.NewPackageLogger("github.com/tkuutti/screenshot-mcp", "mcp")

// Backend provides the screen, clipboard and file access for the tools
type Backend struct {
	Screen    imaging.Screen
	Clipboard imaging.Clipboard
	Writer    *imaging.Writer
}

// NewCatalog returns the Dispatcher for take_screenshot and save_image_from_clipboard,
// in this order.
func NewCatalog(b Backend) (*tools.Dispatcher, error) {
	d, err := tools.NewDispatcher(
		screenshot.New(b.Screen, b.Writer),
		clipboard.New(b.Clipboard, b.Writer),
	)
	if err != nil {
		return nil, err
	}
	return d.WithCallback(tools.NewPackageLoggerCallback(nil)), nil
}

// Server is the MCP server for a tools.Dispatcher.
// It is stateless besides the registered tools.
type Server struct {
	dispatcher *tools.Dispatcher
	mcp        *server.MCPServer
	order      map[string]int
}

// New returns a Server advertising the dispatcher tools
func New(name, version string, d *tools.Dispatcher) (*Server, error) {
	s := &Server{
		dispatcher: d,
		order:      make(map[string]int),
	}

	s.mcp = server.NewMCPServer(name, version,
		server.WithToolCapabilities(false),
		server.WithToolFilter(s.catalogOrder),
		server.WithRecovery(),
	)

	for i, t := range d.Tools() {
		raw, err := t.Parameters().RawMessage()
		if err != nil {
			return nil, errors.Wrapf(err, "tool %s", t.Name())
		}
		s.order[t.Name()] = i
		s.mcp.AddTool(mcp.NewToolWithRawSchema(t.Name(), t.Description(), raw), s.callTool)
	}

	return s, nil
}

// MCPServer returns the underlying protocol server
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// HandleMessage processes one JSON-RPC message and returns the response,
// or nil for notifications.
func (s *Server) HandleMessage(ctx context.Context, raw json.RawMessage) mcp.JSONRPCMessage {
	if resp := s.unknownToolCall(ctx, raw); resp != nil {
		return resp
	}
	return s.mcp.HandleMessage(ctx, raw)
}

func (s *Server) callTool(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res := s.dispatcher.Dispatch(ctx, req.Params.Name, req.GetArguments())
	return mcp.NewToolResultText(res.Text), nil
}

type toolCallMessage struct {
	ID     mcp.RequestId `json:"id"`
	Method string        `json:"method"`
	Params struct {
		Name      string         `json:"name"`
		Arguments map[string]any `json:"arguments"`
	} `json:"params"`
}

// unknownToolCall answers tools/call for a name outside the catalog with a text result,
// the protocol server would reply with an error instead.
func (s *Server) unknownToolCall(ctx context.Context, raw json.RawMessage) mcp.JSONRPCMessage {
	var msg toolCallMessage
	if err := json.Unmarshal(raw, &msg); err != nil || msg.Method != string(mcp.MethodToolsCall) {
		return nil
	}
	if _, ok := s.order[msg.Params.Name]; ok {
		return nil
	}

	res := s.dispatcher.Dispatch(ctx, msg.Params.Name, msg.Params.Arguments)
	return mcp.JSONRPCResponse{
		JSONRPC: mcp.JSONRPC_VERSION,
		ID:      msg.ID,
		Result:  mcp.NewToolResultText(res.Text),
	}
}

// catalogOrder sorts tools/list by catalog position,
// the protocol server lists tools by name.
func (s *Server) catalogOrder(_ context.Context, list []mcp.Tool) []mcp.Tool {
	sorted := make([]mcp.Tool, len(list))
	copy(sorted, list)
	pos := func(name string) int {
		if i, ok := s.order[name]; ok {
			return i
		}
		return len(s.order)
	}
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && pos(sorted[j].Name) < pos(sorted[j-1].Name); j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	return sorted
}
