package tool

import (
	"context"
	"encoding/json"
	"fmt"

	mcpschema "github.com/viant/mcp-protocol/schema"
	mcpclient "github.com/viant/mcp/client"
	"github.com/viant/trie-mcp/internal/conv"
	"github.com/viant/trie-mcp/mcp/table"
)

// Client calls trie tools exposed by an MCP server.
type Client struct {
	client mcpclient.Interface
}

// NewClient wraps an MCP client.
func NewClient(cli mcpclient.Interface) *Client {
	return &Client{client: cli}
}

// Insert stores value under key in the named table.
func (c *Client) Insert(ctx context.Context, tableName, key string, value interface{}) (*table.InsertOutput, error) {
	output := &table.InsertOutput{}
	err := c.call(ctx, "insert", &table.InsertInput{Table: tableName, Key: key, Value: value}, output)
	return output, err
}

// Get looks up key in the named table.
func (c *Client) Get(ctx context.Context, tableName, key string) (*table.GetOutput, error) {
	output := &table.GetOutput{}
	err := c.call(ctx, "get", &table.GetInput{Table: tableName, Key: key}, output)
	return output, err
}

// Len returns the number of keys in the named table.
func (c *Client) Len(ctx context.Context, tableName string) (int, error) {
	output := &table.LenOutput{}
	if err := c.call(ctx, "len", &table.LenInput{Table: tableName}, output); err != nil {
		return 0, err
	}
	return output.Size, nil
}

func (c *Client) call(ctx context.Context, method string, input, output interface{}) error {
	name := NewName(table.Name, method).String()
	args, err := conv.ToMap(input)
	if err != nil {
		return err
	}
	res, callErr := c.client.CallTool(ctx, &mcpschema.CallToolRequestParams{
		Name:      name,
		Arguments: mcpschema.CallToolRequestParamsArguments(args),
	})
	if callErr != nil {
		return fmt.Errorf("call %v: %v", name, callErr)
	}
	if len(res.Content) == 0 {
		return fmt.Errorf("call %v: empty result", name)
	}
	text := res.Content[0].Text
	if conv.Dereference(res.IsError) {
		return fmt.Errorf("call %v: %v", name, text)
	}
	if err = json.Unmarshal([]byte(text), output); err != nil {
		return fmt.Errorf("decode %v output: %w", name, err)
	}
	return nil
}
