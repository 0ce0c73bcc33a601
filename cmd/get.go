package cmd

import (
	"context"
	"fmt"
)

// GetCmd looks up a key in a table.
type GetCmd struct {
	Table   string `short:"t" long:"table" description:"table name" default:"default"`
	Key     string `short:"k" long:"key" description:"key to look up"`
	Address string `short:"a" long:"address" description:"trie MCP server SSE address; local service when empty"`
}

func (c *GetCmd) Execute(_ []string) error {
	cli, err := newTableClient(c.Address)
	if err != nil {
		return err
	}
	out, err := cli.Get(context.Background(), c.Table, c.Key)
	if err != nil {
		return err
	}
	if !out.Found {
		return fmt.Errorf("key %q not found in table %q", c.Key, out.Table)
	}
	return printJSON(out.Value)
}
