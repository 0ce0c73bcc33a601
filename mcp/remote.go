package mcp

import (
	"fmt"

	"github.com/viant/mcp"
	"github.com/viant/trie-mcp/mcp/tool"
)

// Dial connects to a trie MCP server at address (SSE transport) and returns
// a typed table client.
func Dial(address string) (*tool.Client, error) {
	options := &mcp.ClientOptions{
		Name: "trie-mcp",
		Transport: mcp.ClientTransport{
			Type:                "sse",
			ClientTransportHTTP: mcp.ClientTransportHTTP{URL: address},
		},
	}
	options.Init()
	cli, err := mcp.NewClient(newRemoteClient(), options)
	if err != nil {
		return nil, fmt.Errorf("create mcp client %q: %w", address, err)
	}
	return tool.NewClient(cli), nil
}
