// Package tools defines the tools exposed to MCP clients: the ITool interface,
// the Result returned by every call, typed input decoding and validation,
// and the Dispatcher that routes a call by name and never fails outward.
package tools
