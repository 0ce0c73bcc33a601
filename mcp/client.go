package mcp

import (
	"context"

	"github.com/viant/jsonrpc"
	protoclient "github.com/viant/mcp-protocol/client"
	mcpschema "github.com/viant/mcp-protocol/schema"
)

// remoteClient answers server-initiated requests on outgoing connections.
// The trie client never offers roots, sampling, elicitation or user
// interaction, so every such request is rejected.
type remoteClient struct{}

func (*remoteClient) Init(context.Context, *mcpschema.ClientCapabilities) {}

func (*remoteClient) OnNotification(context.Context, *jsonrpc.Notification) {}

func (*remoteClient) Implements(string) bool { return false }

func (*remoteClient) ListRoots(context.Context, *mcpschema.ListRootsRequestParams) (*mcpschema.ListRootsResult, *jsonrpc.Error) {
	return nil, notImplemented()
}

func (*remoteClient) CreateMessage(context.Context, *mcpschema.CreateMessageRequestParams) (*mcpschema.CreateMessageResult, *jsonrpc.Error) {
	return nil, notImplemented()
}

func (*remoteClient) Elicit(context.Context, *mcpschema.ElicitRequestParams) (*mcpschema.ElicitResult, *jsonrpc.Error) {
	return nil, notImplemented()
}

func (*remoteClient) CreateUserInteraction(context.Context, *mcpschema.CreateUserInteractionRequestParams) (*mcpschema.CreateUserInteractionResult, *jsonrpc.Error) {
	return nil, notImplemented()
}

func notImplemented() *jsonrpc.Error {
	return jsonrpc.NewError(jsonrpc.MethodNotFound, "not implemented", nil)
}

func newRemoteClient() protoclient.Handler { return &remoteClient{} }
