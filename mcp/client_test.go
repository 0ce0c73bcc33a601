package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/jsonrpc"
	mcpschema "github.com/viant/mcp-protocol/schema"
)

func TestRemoteClient_RejectsServerRequests(t *testing.T) {
	ctx := context.Background()
	handler := newRemoteClient()
	for _, method := range []string{"roots/list", "sampling/createMessage", "elicitation/create"} {
		assert.False(t, handler.Implements(method), method)
	}

	_, err := handler.ListRoots(ctx, &mcpschema.ListRootsRequestParams{})
	require.NotNil(t, err)
	assert.EqualValues(t, jsonrpc.MethodNotFound, err.Code)

	_, err = handler.CreateMessage(ctx, &mcpschema.CreateMessageRequestParams{})
	require.NotNil(t, err)
	assert.EqualValues(t, jsonrpc.MethodNotFound, err.Code)
}
