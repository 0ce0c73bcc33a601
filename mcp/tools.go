package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"time"

	"github.com/viant/fluxor/model/types"
	"github.com/viant/fluxor/runtime/execution"
	"github.com/viant/jsonrpc"
	mcpschema "github.com/viant/mcp-protocol/schema"
	serverproto "github.com/viant/mcp-protocol/server"
	"github.com/viant/trie-mcp/internal/conv"
	"github.com/viant/trie-mcp/mcp/matcher"
	"github.com/viant/trie-mcp/mcp/tool"
)

// toolEntry holds the MCP tool built from one action method.
type toolEntry struct {
	service   types.Service
	signature types.Signature
	entry     *serverproto.ToolEntry
}

// buildToolRegistry converts every extension method into a tool entry.
func (s *Service) buildToolRegistry() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tools = make(map[string]*toolEntry)
	for _, svc := range s.Workflow.Extensions {
		for _, sig := range svc.Methods() {
			name := tool.NewName(svc.Name(), sig.Name).String()
			if _, dup := s.tools[name]; dup {
				continue
			}
			s.tools[name] = newToolEntry(name, svc, sig)
		}
	}
}

func newToolEntry(name string, svc types.Service, sig types.Signature) *toolEntry {
	var inputSchema mcpschema.ToolInputSchema
	if sig.Input != nil {
		_ = inputSchema.Load(newValue(sig.Input))
	}
	if inputSchema.Type == "" {
		inputSchema.Type = "object"
	}
	ret := &toolEntry{service: svc, signature: sig}
	ret.entry = &serverproto.ToolEntry{
		Metadata: mcpschema.Tool{
			Name:        name,
			Description: conv.Pointer(sig.Description),
			InputSchema: inputSchema,
		},
		Handler: ret.handle,
	}
	return ret
}

// handle executes the action directly; action failures are reported as
// error results rather than protocol errors.
func (e *toolEntry) handle(ctx context.Context, request *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
	exec, err := e.service.Method(e.signature.Name)
	if err != nil {
		return nil, jsonrpc.NewError(jsonrpc.InternalError, err.Error(), nil)
	}
	var input, output interface{}
	if e.signature.Input != nil {
		input = newValue(e.signature.Input)
		if len(request.Params.Arguments) > 0 {
			if err := conv.Convert(map[string]interface{}(request.Params.Arguments), input); err != nil {
				return errorResult(err), nil
			}
		}
	}
	if e.signature.Output != nil {
		output = newValue(e.signature.Output)
	}
	if err := exec(ctx, input, output); err != nil {
		return errorResult(err), nil
	}
	data, err := json.Marshal(output)
	if err != nil {
		return nil, jsonrpc.NewError(jsonrpc.InternalError, err.Error(), nil)
	}
	return &mcpschema.CallToolResult{Content: []mcpschema.CallToolResultContentElem{{
		Type: "text",
		Text: string(data),
	}}}, nil
}

func errorResult(err error) *mcpschema.CallToolResult {
	return &mcpschema.CallToolResult{
		IsError: conv.Pointer(true),
		Content: []mcpschema.CallToolResultContentElem{{Type: "text", Text: err.Error()}},
	}
}

// newValue returns a pointer to a fresh value of t, or of t's element type
// when t is already a pointer.
func newValue(t reflect.Type) interface{} {
	if t.Kind() == reflect.Pointer {
		return reflect.New(t.Elem()).Interface()
	}
	return reflect.New(t).Interface()
}

// ToolNames returns registered tool names in ascending order.
func (s *Service) ToolNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedNames()
}

// Tools returns all registered tools ordered by name.
func (s *Service) Tools() serverproto.Tools {
	return s.MatchTools("*")
}

// MatchTools returns tools whose name matches pattern (see matcher.Match).
// Patterns may use either slash or canonical notation, e.g. "trie/" or
// "trie/get".
func (s *Service) MatchTools(pattern string) serverproto.Tools {
	pattern = tool.Pattern(pattern)
	var result = make(serverproto.Tools, 0)
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, name := range s.sortedNames() {
		if matcher.Match(pattern, name) {
			result = append(result, s.tools[name].entry)
		}
	}
	return result
}

func (s *Service) sortedNames() []string {
	names := make([]string, 0, len(s.tools))
	for name := range s.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupTool returns the tool registered under name.
func (s *Service) LookupTool(name string) (*serverproto.ToolEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if e, ok := s.tools[tool.Canonical(name)]; ok {
		return e.entry, nil
	}
	return nil, fmt.Errorf("unknown tool: %v", name)
}

// ToolMetadata returns description and input schema for a named tool.
func (s *Service) ToolMetadata(name string) (string, interface{}, bool) {
	e, err := s.LookupTool(name)
	if err != nil {
		return "", nil, false
	}
	return conv.Dereference(e.Metadata.Description), e.Metadata.InputSchema, true
}

// ExecuteTool runs the named action through the Fluxor runtime and waits up
// to timeout for its output.
func (s *Service) ExecuteTool(ctx context.Context, name string, args map[string]interface{}, timeout time.Duration) (interface{}, error) {
	toolName := tool.Name(tool.Canonical(name))
	exec, err := execution.NewAtHocExecution(toolName.Service(), toolName.Method(), args)
	if err != nil {
		return nil, err
	}
	waitFn, err := s.Runtime.ScheduleExecution(ctx, exec)
	if err != nil {
		return nil, err
	}
	anExec, err := waitFn(timeout)
	if err != nil {
		return nil, err
	}
	if anExec.Error != "" {
		return nil, fmt.Errorf("%v: %v", name, anExec.Error)
	}
	return anExec.Output, nil
}
