package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
)

// InsertCmd stores a JSON value under a key.  Without --address the insert
// only lives for the duration of the command.
type InsertCmd struct {
	Table   string `short:"t" long:"table" description:"table name" default:"default"`
	Key     string `short:"k" long:"key" description:"key to store"`
	Value   string `short:"v" long:"value" description:"JSON value" required:"yes"`
	Address string `short:"a" long:"address" description:"trie MCP server SSE address; local service when empty"`
}

func (c *InsertCmd) Execute(_ []string) error {
	var value interface{}
	if err := json.Unmarshal([]byte(c.Value), &value); err != nil {
		return fmt.Errorf("invalid JSON value: %w", err)
	}
	if c.Address == "" {
		log.Warn().Str("table", c.Table).Str("key", c.Key).Msg("no --address given, insert only lives for this command")
	}
	cli, err := newTableClient(c.Address)
	if err != nil {
		return err
	}
	out, err := cli.Insert(context.Background(), c.Table, c.Key, value)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%s\t%d\n", out.Table, out.Size)
	return nil
}
